// Package feedback provides the optional tactile/audible cue fired on
// wheel value changes. Providers are probed once, in rank order, when a
// chain is built; triggering is fire-and-forget and can never fail or
// block the input path. An environment with no usable provider degrades
// to a silent no-op.
package feedback

import "io"

// Intensity grades a feedback cue.
type Intensity int

const (
	Light Intensity = iota
	Medium
	Heavy
)

// Provider is a single feedback capability.
type Provider interface {
	// Name identifies the provider for diagnostics.
	Name() string

	// Available reports whether the capability can be used in this
	// environment. Called once, at chain construction.
	Available() bool

	// Trigger fires the cue. Implementations must swallow all errors.
	Trigger(i Intensity)
}

// New probes the given providers in order and returns the first
// available one, falling back to a no-op. Candidates are ranked by the
// caller; probing happens here, not per trigger.
func New(candidates ...Provider) Provider {
	for _, p := range candidates {
		if p != nil && p.Available() {
			return p
		}
	}
	return Noop{}
}

// Noop is the silent fallback provider.
type Noop struct{}

func (Noop) Name() string        { return "noop" }
func (Noop) Available() bool     { return true }
func (Noop) Trigger(_ Intensity) {}

// Bell sounds the terminal bell. Heavier intensities still emit a
// single bell; terminals have one volume.
type Bell struct {
	Out io.Writer
}

func (b Bell) Name() string    { return "bell" }
func (b Bell) Available() bool { return b.Out != nil }

func (b Bell) Trigger(_ Intensity) {
	if b.Out == nil {
		return
	}
	// Write errors are deliberately dropped: feedback must never
	// surface a failure to the input path.
	_, _ = b.Out.Write([]byte{'\a'})
}
