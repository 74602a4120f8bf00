package picker

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the picker's key bindings, surfaced through the
// bubbles help component.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	PrevPage key.Binding
	NextPage key.Binding

	Select   key.Binding
	ZoomOut  key.Binding
	TimeView key.Binding
	DaysView key.Binding
	Jump     key.Binding
	NextCol  key.Binding
	Period   key.Binding

	Help   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newKeyMap(mode Mode) keyMap {
	km := keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "previous")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		ZoomOut:  key.NewBinding(key.WithKeys("o", "backspace"), key.WithHelp("o", "zoom out")),
		TimeView: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time")),
		DaysView: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "calendar")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to date")),
		NextCol:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next wheel")),
		Period:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "am/pm")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}

	if mode != ModeDateTime {
		km.TimeView.SetEnabled(false)
		km.DaysView.SetEnabled(false)
	}
	if mode == ModeTime {
		km.ZoomOut.SetEnabled(false)
		km.Jump.SetEnabled(false)
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.ZoomOut, k.Jump, k.Help, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevPage, k.NextPage, k.Select, k.ZoomOut},
		{k.TimeView, k.DaysView, k.Jump, k.NextCol, k.Period},
		{k.Help, k.Cancel, k.Quit},
	}
}
