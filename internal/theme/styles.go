package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the set of Lip Gloss styles the picker renders with, built
// once from a resolved Theme. Alpha-derived tokens are flattened over
// the surface they sit on, since terminals have no transparency.
type Styles struct {
	Sheet   lipgloss.Style
	Header  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Divider lipgloss.Style

	Weekday     lipgloss.Style
	Day         lipgloss.Style
	DayOutside  lipgloss.Style
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
	DayInRange  lipgloss.Style
	DayDisabled lipgloss.Style

	WheelValue    lipgloss.Style
	WheelSelected lipgloss.Style
	WheelDim      lipgloss.Style

	Button       lipgloss.Style
	ButtonAccent lipgloss.Style

	Key     lipgloss.Style
	KeyDesc lipgloss.Style
}

// NewStyles builds the style set for a resolved theme.
func NewStyles(t Theme) Styles {
	c := t.Colors

	surface := lipgloss.Color(string(c.Surface))
	fg := lipgloss.Color(string(Flatten(c.Foreground, c.Surface)))
	muted := lipgloss.Color(string(Flatten(c.MutedForeground, c.Surface)))
	border := lipgloss.Color(string(Flatten(c.Border, c.Surface)))
	divider := lipgloss.Color(string(Flatten(c.Divider, c.Surface)))
	accent := lipgloss.Color(string(c.Accent))
	onAccent := lipgloss.Color(string(Flatten(c.OnAccent, c.Accent)))
	disabled := lipgloss.Color(string(Flatten(c.DisabledForeground, c.Surface)))

	sheetBorder := lipgloss.NormalBorder()
	if t.Radii.Sheet > 0 {
		sheetBorder = lipgloss.RoundedBorder()
	}

	return Styles{
		Sheet: lipgloss.NewStyle().
			Border(sheetBorder).
			BorderForeground(border).
			Background(surface).
			Padding(t.Spacing.SM, t.Spacing.MD),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(string(c.Header))).
			Foreground(fg).
			Bold(true).
			Padding(0, t.Spacing.SM),

		Title: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface),

		Divider: lipgloss.NewStyle().
			Foreground(divider).
			Background(surface),

		Weekday: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Bold(true),

		Day: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface),

		DayOutside: lipgloss.NewStyle().
			Foreground(disabled).
			Background(surface),

		DayToday: lipgloss.NewStyle().
			Foreground(accent).
			Background(surface).
			Bold(true),

		DaySelected: lipgloss.NewStyle().
			Foreground(onAccent).
			Background(accent).
			Bold(true),

		DayInRange: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(string(Flatten(WithAlpha(c.Accent, 0.3), c.Surface)))),

		DayDisabled: lipgloss.NewStyle().
			Foreground(disabled).
			Background(surface),

		WheelValue: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface),

		WheelSelected: lipgloss.NewStyle().
			Foreground(onAccent).
			Background(accent).
			Bold(true),

		WheelDim: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface),

		Button: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface).
			Padding(0, t.Spacing.MD),

		ButtonAccent: lipgloss.NewStyle().
			Foreground(onAccent).
			Background(accent).
			Bold(true).
			Padding(0, t.Spacing.MD),

		Key: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		KeyDesc: lipgloss.NewStyle().
			Foreground(muted),
	}
}
