package picker

import (
	"fmt"
	"strings"

	"chronopick/internal/clock"

	"github.com/charmbracelet/lipgloss"
)

// wheelWindow is how many values show above and below the selected one.
const wheelWindow = 2

// renderTime renders the hour/minute(/period) wheels side by side.
func (m Model) renderTime() string {
	hour := m.renderWheel(colHour)
	minute := m.renderWheel(colMinute)

	columns := []string{hour, m.renderColon(), minute}
	if m.format == clock.Format12 {
		columns = append(columns, " ", m.renderWheel(colPeriod))
	}

	wheels := lipgloss.JoinHorizontal(lipgloss.Center, columns...)

	window := m.timeWindowHint()
	if window == "" {
		return wheels
	}
	return lipgloss.JoinVertical(lipgloss.Center, wheels, "", window)
}

// renderWheel renders one column: the selected value highlighted, with
// dimmed neighbors above and below.
func (m Model) renderWheel(id wheelColumnID) string {
	focused := m.wheelColumn() == id

	lines := make([]string, 0, wheelWindow*2+1)
	for off := -wheelWindow; off <= wheelWindow; off++ {
		label := m.wheelLabel(id, off)

		style := m.styles.WheelDim
		if off == 0 {
			style = m.styles.WheelValue
			if focused {
				style = m.styles.WheelSelected
			}
		}
		lines = append(lines, style.Padding(0, 1).Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// wheelLabel returns the display text for a column at the given offset
// from the selected value.
func (m Model) wheelLabel(id wheelColumnID, off int) string {
	switch id {
	case colHour:
		h := ((m.tod.Hour+off)%24 + 24) % 24
		return clock.HourLabel(h, m.format)
	case colMinute:
		step := m.interval
		mm := ((m.tod.Minute+off*step)%60 + 60) % 60
		return fmt.Sprintf("%02d", mm)
	default:
		// The period wheel has only two values; neighbors collapse.
		h := m.tod.Hour
		if off != 0 {
			h = clock.TogglePeriod(h)
		}
		return clock.PeriodLabel(h)
	}
}

func (m Model) renderColon() string {
	blank := strings.Repeat(" \n", wheelWindow)
	return blank + m.styles.Title.Render(":") + "\n" + strings.TrimSuffix(blank, "\n")
}

// timeWindowHint describes the allowed time window, when one is set.
func (m Model) timeWindowHint() string {
	if m.timeBounds.Min == nil && m.timeBounds.Max == nil {
		return ""
	}

	var parts []string
	if m.timeBounds.Min != nil {
		parts = append(parts, fmt.Sprintf("from %02d:%02d", m.timeBounds.Min.Hour, m.timeBounds.Min.Minute))
	}
	if m.timeBounds.Max != nil {
		parts = append(parts, fmt.Sprintf("until %02d:%02d", m.timeBounds.Max.Hour, m.timeBounds.Max.Minute))
	}
	return m.styles.Muted.Render(strings.Join(parts, " "))
}
