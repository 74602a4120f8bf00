package picker

import (
	"fmt"
	"strings"
	"time"

	"chronopick/internal/calendar"

	"github.com/charmbracelet/lipgloss"
)

const (
	dayCellWidth = 4
	gridCols     = 4
	yearCols     = 4
	yearsPerPage = 12
)

// yearPageBase returns the first year of the 12-year page containing y.
func yearPageBase(y int) int {
	return y - y%yearsPerPage
}

// renderDays renders the month grid for the cursor's month.
func (m Model) renderDays() string {
	today := calendar.StripTime(m.now())
	grid := calendar.MonthMatrix(m.cursor.Year(), m.cursor.Month(), m.firstDay)

	var b strings.Builder

	labels := calendar.WeekdayLabels(m.firstDay)
	cells := make([]string, len(labels))
	for i, l := range labels {
		cells[i] = m.styles.Weekday.Width(dayCellWidth).Align(lipgloss.Center).Render(l)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteByte('\n')

	for r, row := range grid {
		cells = cells[:0]
		for _, c := range row {
			cells = append(cells, m.renderDayCell(c, today))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderDayCell(c calendar.Cell, today time.Time) string {
	label := fmt.Sprintf("%2d", c.Date.Day())

	style := m.styles.Day
	switch {
	case calendar.SameDay(c.Date, m.cursor):
		style = m.styles.Day.Reverse(true).Bold(true)
	case m.isSelectedDay(c.Date):
		style = m.styles.DaySelected
	case m.isInRange(c.Date):
		style = m.styles.DayInRange
	case !m.bounds.Contains(c.Date):
		style = m.styles.DayDisabled
	case !c.InMonth:
		style = m.styles.DayOutside
	case calendar.SameDay(c.Date, today):
		style = m.styles.DayToday
	}

	return style.Width(dayCellWidth).Align(lipgloss.Center).Render(label)
}

func (m Model) isSelectedDay(d time.Time) bool {
	if !m.sel.IsZero() && calendar.SameDay(d, m.sel) {
		return true
	}
	if !m.rng.Start.IsZero() && calendar.SameDay(d, m.rng.Start) {
		return true
	}
	return !m.rng.End.IsZero() && calendar.SameDay(d, m.rng.End)
}

func (m Model) isInRange(d time.Time) bool {
	if m.rng.Start.IsZero() || m.rng.End.IsZero() {
		return false
	}
	d = calendar.StripTime(d)
	return d.After(m.rng.Start) && d.Before(m.rng.End)
}

// renderMonths renders the 3x4 month grid for the cursor's year.
func (m Model) renderMonths() string {
	var rows []string
	for r := 0; r < 3; r++ {
		cells := make([]string, 0, gridCols)
		for c := 0; c < gridCols; c++ {
			month := time.Month(r*gridCols + c + 1)
			label := month.String()[:3]

			style := m.styles.Day
			if month == m.cursor.Month() {
				style = m.styles.DaySelected
			}
			cells = append(cells, style.Width(6).Align(lipgloss.Center).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderYears renders the current 12-year page.
func (m Model) renderYears() string {
	var rows []string
	for r := 0; r < yearsPerPage/yearCols; r++ {
		cells := make([]string, 0, yearCols)
		for c := 0; c < yearCols; c++ {
			year := m.yearBase + r*yearCols + c

			style := m.styles.Day
			if year == m.cursor.Year() {
				style = m.styles.DaySelected
			}
			cells = append(cells, style.Width(6).Align(lipgloss.Center).Render(fmt.Sprintf("%d", year)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
