// Package picker implements the date/time picker widget as a Bubble Tea
// model. The selection state machine and range logic live in pure
// functions so they stay testable without a terminal; the model wires
// them to key events and renders with styles built from a resolved
// theme.
package picker

import (
	"time"

	"chronopick/internal/calendar"
)

// Mode selects what the picker asks for.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
	ModeTime
	ModeDateTime
)

// View is the current navigational granularity.
type View int

const (
	ViewDays View = iota
	ViewMonths
	ViewYears
	ViewTime
)

// initialView returns the entry view for a mode: time-only pickers
// start on the wheel, everything else on the day grid.
func initialView(m Mode) View {
	if m == ModeTime {
		return ViewTime
	}
	return ViewDays
}

// zoomOut moves days -> months -> years; further taps stay at years.
func zoomOut(v View) View {
	switch v {
	case ViewDays:
		return ViewMonths
	case ViewMonths:
		return ViewYears
	default:
		return v
	}
}

// zoomIn moves years -> months -> days; further taps stay at days.
func zoomIn(v View) View {
	switch v {
	case ViewYears:
		return ViewMonths
	case ViewMonths:
		return ViewDays
	default:
		return v
	}
}

// Range is a start/end pair of dates. Zero values mean unset; End is
// never set without Start and never precedes it.
type Range struct {
	Start time.Time
	End   time.Time
}

// Tap applies one date tap to the range per the selection rules:
//
//   - no start yet: the tap sets the start;
//   - start only, tap at or after it: the tap completes the range;
//   - start only, tap before it: the range restarts at the tap;
//   - both set: a new range begins at the tap.
//
// complete reports whether this tap finished a range. The result is
// never inverted.
func (r Range) Tap(d time.Time) (out Range, complete bool) {
	d = calendar.StripTime(d)

	switch {
	case r.Start.IsZero():
		return Range{Start: d}, false
	case r.End.IsZero():
		if d.Before(r.Start) {
			return Range{Start: d}, false
		}
		return Range{Start: r.Start, End: d}, true
	default:
		return Range{Start: d}, false
	}
}

// Phase is the sheet's visual open/close lifecycle. It is driven by
// explicit transition events from the presentation shell and is fully
// independent of the selection state machine.
type Phase int

const (
	PhaseUnmounted Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

// Lifecycle is a small state machine over Phase. Invalid transitions
// are ignored rather than erroring; a cosmetic lifecycle must never
// take the widget down.
type Lifecycle struct {
	phase Phase
}

// Phase returns the current phase.
func (l Lifecycle) Phase() Phase { return l.phase }

// OpenRequested begins opening from the unmounted state.
func (l Lifecycle) OpenRequested() Lifecycle {
	if l.phase == PhaseUnmounted {
		l.phase = PhaseOpening
	}
	return l
}

// Opened completes the opening transition.
func (l Lifecycle) Opened() Lifecycle {
	if l.phase == PhaseOpening {
		l.phase = PhaseOpen
	}
	return l
}

// CloseRequested begins closing from the open (or still-opening) state.
func (l Lifecycle) CloseRequested() Lifecycle {
	if l.phase == PhaseOpen || l.phase == PhaseOpening {
		l.phase = PhaseClosing
	}
	return l
}

// Closed completes the closing transition back to unmounted.
func (l Lifecycle) Closed() Lifecycle {
	if l.phase == PhaseClosing {
		l.phase = PhaseUnmounted
	}
	return l
}
