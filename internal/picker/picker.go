package picker

import (
	"time"

	"chronopick/internal/calendar"
	"chronopick/internal/clock"
	"chronopick/internal/feedback"
	"chronopick/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Selection is the committed outcome reported to the change callback.
type Selection struct {
	Date    time.Time
	Range   Range
	Time    calendar.TimeOfDay
	HasTime bool
}

// Options configure a picker model. Zero values are usable: a single
// date picker over the default dark theme with no constraints.
type Options struct {
	Mode Mode

	// Theme is the raw theme input; Inherited is the ambient theme it
	// resolves against. Both may be nil.
	Theme     theme.Input
	Inherited *theme.Theme

	FirstDay       time.Weekday
	Constraint     calendar.Constraint
	TimeBounds     calendar.TimeBounds
	MinuteInterval int
	ClockFormat    clock.Format

	// Initial is the pre-selected date (controlled value), if any.
	Initial time.Time

	// Now supplies "today" and is injectable for tests. Nil means
	// time.Now.
	Now func() time.Time

	// Feedback fires on wheel value changes. Nil means silent.
	Feedback feedback.Provider

	// OnChange is invoked once when a selection commits.
	OnChange func(Selection)
}

// Model is the picker sheet as a Bubble Tea model.
type Model struct {
	mode Mode
	view View

	th     theme.Theme
	styles theme.Styles

	keys keyMap
	help help.Model
	jump textinput.Model

	jumping bool

	now        func() time.Time
	bounds     calendar.Bounds
	timeBounds calendar.TimeBounds
	firstDay   time.Weekday
	interval   int
	format     clock.Format
	fb         feedback.Provider
	onChange   func(Selection)

	cursor   time.Time // focused day; defines the displayed month
	yearBase int       // first year of the current years page
	sel      time.Time // committed-in-progress single date
	rng      Range
	tod      calendar.TimeOfDay
	wheelCol int

	width  int
	height int

	committed bool
	canceled  bool
}

// New builds a picker model from the given options.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	today := calendar.StripTime(now())

	th := theme.Resolve(opts.Theme, opts.Inherited)

	cursor := today
	if !opts.Initial.IsZero() {
		cursor = calendar.StripTime(opts.Initial)
	}

	fb := opts.Feedback
	if fb == nil {
		fb = feedback.Noop{}
	}

	interval := opts.MinuteInterval
	if interval <= 0 {
		interval = 1
	}

	st := theme.NewStyles(th)

	ji := textinput.New()
	ji.Placeholder = "YYYY-MM-DD"
	ji.CharLimit = 10
	ji.Width = 12

	hl := help.New()
	hl.Styles.ShortKey = st.Key
	hl.Styles.ShortDesc = st.KeyDesc
	hl.Styles.FullKey = st.Key
	hl.Styles.FullDesc = st.KeyDesc

	m := Model{
		mode:       opts.Mode,
		view:       initialView(opts.Mode),
		th:         th,
		styles:     st,
		keys:       newKeyMap(opts.Mode),
		help:       hl,
		jump:       ji,
		now:        now,
		bounds:     calendar.ResolveDateBounds(opts.Constraint, today),
		timeBounds: opts.TimeBounds,
		firstDay:   opts.FirstDay,
		interval:   interval,
		format:     opts.ClockFormat,
		fb:         fb,
		onChange:   opts.OnChange,
		cursor:     cursor,
		yearBase:   yearPageBase(cursor.Year()),
		tod: calendar.TimeOfDay{
			Hour:   now().Hour(),
			Minute: clock.SnapMinute(now().Minute(), interval),
		},
	}
	if !opts.Initial.IsZero() && opts.Mode == ModeSingle {
		m.sel = calendar.StripTime(opts.Initial)
	}
	return m
}

// Theme returns the resolved theme, for the shell's backdrop styling.
func (m Model) Theme() theme.Theme { return m.th }

// Done reports whether the picker has finished, by commit or cancel.
func (m Model) Done() bool { return m.committed || m.canceled }

// Result returns the committed selection. The bool is false when the
// picker was cancelled or is still open.
func (m Model) Result() (Selection, bool) {
	if !m.committed {
		return Selection{}, false
	}
	return m.selection(), true
}

func (m Model) selection() Selection {
	s := Selection{Date: m.sel, Range: m.rng}
	if m.mode == ModeTime || m.mode == ModeDateTime {
		s.Time = m.tod
		s.HasTime = true
	}
	return s
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.canceled = true
		return m, tea.Quit
	}

	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Jump) && m.view == ViewDays:
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()

	case key.Matches(msg, m.keys.ZoomOut) && m.view != ViewTime:
		m.view = zoomOut(m.view)
		return m, nil

	case key.Matches(msg, m.keys.TimeView) && m.mode == ModeDateTime && m.view == ViewDays:
		m.view = ViewTime
		return m, nil

	case key.Matches(msg, m.keys.DaysView) && m.mode == ModeDateTime && m.view == ViewTime:
		m.view = ViewDays
		return m, nil
	}

	switch m.view {
	case ViewDays:
		return m.handleDaysKey(msg)
	case ViewMonths:
		return m.handleMonthsKey(msg)
	case ViewYears:
		return m.handleYearsKey(msg)
	case ViewTime:
		return m.handleTimeKey(msg)
	}
	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if d, err := calendar.ParseDate(m.jump.Value()); err == nil {
			// Browsing anywhere is allowed; only selection is bounded.
			m.cursor = d
			m.yearBase = yearPageBase(d.Year())
		}
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m Model) handleDaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.cursor.AddDate(0, 0, -7)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.cursor.AddDate(0, 0, 7)
	case key.Matches(msg, m.keys.Left):
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case key.Matches(msg, m.keys.PrevPage):
		m.cursor = calendar.AddMonths(m.cursor, -1)
	case key.Matches(msg, m.keys.NextPage):
		m.cursor = calendar.AddMonths(m.cursor, 1)
	case key.Matches(msg, m.keys.Select):
		return m.selectDay()
	}
	return m, nil
}

// selectDay applies a tap on the focused day. Out-of-bounds days are
// rejected silently: no state change, no callback.
func (m Model) selectDay() (tea.Model, tea.Cmd) {
	if !m.bounds.Contains(m.cursor) {
		return m, nil
	}

	switch m.mode {
	case ModeRange:
		var complete bool
		m.rng, complete = m.rng.Tap(m.cursor)
		if complete {
			return m.commit()
		}
		return m, nil

	case ModeDateTime:
		m.sel = m.cursor
		m.view = ViewTime
		return m, nil

	default:
		m.sel = m.cursor
		return m.commit()
	}
}

func (m Model) handleMonthsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = calendar.AddMonths(m.cursor, -3)
	case key.Matches(msg, m.keys.Down):
		m.cursor = calendar.AddMonths(m.cursor, 3)
	case key.Matches(msg, m.keys.Left):
		m.cursor = calendar.AddMonths(m.cursor, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = calendar.AddMonths(m.cursor, 1)
	case key.Matches(msg, m.keys.PrevPage):
		m.cursor = calendar.AddMonths(m.cursor, -12)
	case key.Matches(msg, m.keys.NextPage):
		m.cursor = calendar.AddMonths(m.cursor, 12)
	case key.Matches(msg, m.keys.Select):
		m.view = ViewDays
	}
	return m, nil
}

func (m Model) handleYearsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.setYear(m.cursor.Year() - yearCols)
	case key.Matches(msg, m.keys.Down):
		m.setYear(m.cursor.Year() + yearCols)
	case key.Matches(msg, m.keys.Left):
		m.setYear(m.cursor.Year() - 1)
	case key.Matches(msg, m.keys.Right):
		m.setYear(m.cursor.Year() + 1)
	case key.Matches(msg, m.keys.PrevPage):
		m.setYear(m.cursor.Year() - yearsPerPage)
	case key.Matches(msg, m.keys.NextPage):
		m.setYear(m.cursor.Year() + yearsPerPage)
	case key.Matches(msg, m.keys.Select):
		m.view = ViewMonths
	}
	return m, nil
}

// setYear moves the cursor to the same month/day in another year,
// clamping Feb 29 to Feb 28 off leap years. There is no hard bound on
// browsable years.
func (m *Model) setYear(y int) {
	if y < 1 {
		y = 1
	}

	day := m.cursor.Day()
	if max := calendar.DaysInMonth(y, m.cursor.Month()); day > max {
		day = max
	}
	m.cursor = time.Date(y, m.cursor.Month(), day, 0, 0, 0, 0, time.UTC)
	m.yearBase = yearPageBase(y)
}

func (m Model) handleTimeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.wheelColumns()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.wheelCol = (m.wheelCol + cols - 1) % cols
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextCol):
		m.wheelCol = (m.wheelCol + 1) % cols
	case key.Matches(msg, m.keys.Up):
		m.spinWheel(+1)
	case key.Matches(msg, m.keys.Down):
		m.spinWheel(-1)
	case key.Matches(msg, m.keys.Period) && m.format == clock.Format12:
		m.tod.Hour = clock.TogglePeriod(m.tod.Hour)
		m.fb.Trigger(feedback.Light)
	case key.Matches(msg, m.keys.Select):
		return m.commitTime()
	}
	return m, nil
}

// spinWheel adjusts the focused wheel column by one step and fires the
// feedback cue. The hour and minute wheels wrap. In 12-hour display the
// hour wheel moves the displayed digit only; the period is the AM/PM
// column's job and never changes as a side effect.
func (m *Model) spinWheel(dir int) {
	switch m.wheelColumn() {
	case colHour:
		if m.format == clock.Format12 {
			digit := clock.To12Hour(m.tod.Hour).Hour
			digit = ((digit-1+dir)%12+12)%12 + 1
			m.tod.Hour = clock.WithDisplayHour(m.tod.Hour, digit)
		} else {
			m.tod.Hour = ((m.tod.Hour+dir)%24 + 24) % 24
		}
	case colMinute:
		step := m.interval
		m.tod.Minute = ((m.tod.Minute+dir*step)%60 + 60) % 60
		m.tod.Minute = clock.SnapMinute(m.tod.Minute, m.interval)
	case colPeriod:
		m.tod.Hour = clock.TogglePeriod(m.tod.Hour)
	}
	m.fb.Trigger(feedback.Light)
}

// commitTime finishes the time view. A time outside the allowed window
// is rejected silently, exactly like an out-of-bounds day tap.
func (m Model) commitTime() (tea.Model, tea.Cmd) {
	if !m.timeBounds.Allows(m.tod.Hour, m.tod.Minute) {
		return m, nil
	}
	return m.commit()
}

// commit fires the change callback once and closes the picker.
func (m Model) commit() (tea.Model, tea.Cmd) {
	m.committed = true
	if m.onChange != nil {
		m.onChange(m.selection())
	}
	return m, tea.Quit
}

// Wheel column identities. The period column only exists in 12-hour
// display.
type wheelColumnID int

const (
	colHour wheelColumnID = iota
	colMinute
	colPeriod
)

func (m Model) wheelColumns() int {
	if m.format == clock.Format12 {
		return 3
	}
	return 2
}

func (m Model) wheelColumn() wheelColumnID {
	return wheelColumnID(m.wheelCol % m.wheelColumns())
}
