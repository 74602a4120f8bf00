// Package backdrop dims the host view behind the picker sheet. The
// available treatments are interchangeable backends behind a registry:
// "plain" flattens the view to a uniform dim wash, "shade" keeps the
// view's text readable at reduced emphasis (the terminal stand-in for a
// platform blur layer). Unknown or unavailable backends degrade to
// plain dimming rather than failing.
package backdrop

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"chronopick/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backend renders the dimmed version of a full-screen base view.
type Backend interface {
	Name() string
	Render(base string, t theme.Theme) string
}

var (
	mu       sync.RWMutex
	registry = map[string]Backend{}
)

// Register adds a backend under its name. Registering a duplicate
// panics; backends are wired once at startup.
func Register(b Backend) {
	if b == nil || b.Name() == "" {
		panic("backdrop: invalid backend")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[b.Name()]; exists {
		panic(fmt.Sprintf("backdrop: backend %q already registered", b.Name()))
	}
	registry[b.Name()] = b
}

// Get returns the named backend, falling back to Plain for unknown
// names. A missing dim treatment is cosmetic, never an error.
func Get(name string) Backend {
	mu.RLock()
	defer mu.RUnlock()
	if b, ok := registry[name]; ok {
		return b
	}
	return Plain{}
}

// List returns the registered backend names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Plain{})
	Register(Shade{})
}

// Plain replaces the base content with a uniform dim wash.
type Plain struct{}

func (Plain) Name() string { return "plain" }

func (Plain) Render(base string, t theme.Theme) string {
	bg := lipgloss.Color(string(t.Colors.Background))
	wash := lipgloss.NewStyle().Background(bg)

	lines := strings.Split(base, "\n")
	for i, line := range lines {
		lines[i] = wash.Render(strings.Repeat(" ", lipgloss.Width(line)))
	}
	return strings.Join(lines, "\n")
}

// Shade keeps the base text visible but strips its styling and renders
// it muted, approximating a translucent blur layer.
type Shade struct{}

func (Shade) Name() string { return "shade" }

func (Shade) Render(base string, t theme.Theme) string {
	muted := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(theme.Flatten(t.Colors.DisabledForeground, t.Colors.Background)))).
		Faint(true)

	lines := strings.Split(base, "\n")
	for i, line := range lines {
		lines[i] = muted.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
