package pick

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"chronopick/internal/config"
	"chronopick/internal/logging"
	"chronopick/internal/picker"
	"chronopick/internal/picker/backdrop"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// shellModel hosts the picker sheet: it owns the backdrop, the overlay
// compositing, and the open/close lifecycle. The picker itself only
// renders its sheet.
type shellModel struct {
	picker  picker.Model
	backend backdrop.Backend
	life    picker.Lifecycle

	width  int
	height int
}

func newShell(m picker.Model, backend backdrop.Backend) shellModel {
	return shellModel{
		picker:  m,
		backend: backend,
		life:    picker.Lifecycle{}.OpenRequested(),
	}
}

func (s shellModel) Init() tea.Cmd {
	return s.picker.Init()
}

func (s shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = ws.Width
		s.height = ws.Height
		// The first size report means the terminal is ready to draw.
		s.life = s.life.Opened()
	}

	inner, cmd := s.picker.Update(msg)
	s.picker = inner.(picker.Model)

	if s.picker.Done() {
		s.life = s.life.CloseRequested().Closed()
	}

	return s, cmd
}

func (s shellModel) View() string {
	if s.life.Phase() != picker.PhaseOpen {
		return ""
	}

	sheet := s.picker.View()
	if sheet == "" {
		return ""
	}

	base := blankCanvas(s.width, s.height)
	dimmed := s.backend.Render(base, s.picker.Theme())
	return picker.Overlay(dimmed, sheet, s.width, s.height)
}

// blankCanvas builds an empty full-screen base for the backdrop to dim.
func blankCanvas(w, h int) string {
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}

	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// runPicker runs the picker program and returns the committed
// selection. ok is false when the user cancelled.
func runPicker(cmd *cobra.Command, cfg *config.Config, opts picker.Options) (picker.Selection, bool, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return picker.Selection{}, false, errors.New("pick requires an interactive terminal")
	}

	backendName, _ := cmd.Flags().GetString("backdrop")
	if backendName == "" {
		backendName = cfg.Backdrop
	}

	logger := logging.Component("pick")
	logger.Debug().
		Str("backdrop", backdrop.Get(backendName).Name()).
		Int("mode", int(opts.Mode)).
		Msg("opening picker")

	shell := newShell(picker.New(opts), backdrop.Get(backendName))

	p := tea.NewProgram(shell, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return picker.Selection{}, false, fmt.Errorf("failed to run picker: %w", err)
	}

	final := result.(shellModel)
	sel, ok := final.picker.Result()
	logger.Debug().Bool("committed", ok).Msg("picker closed")
	return sel, ok, nil
}
