package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sheetWidth is the inner width of the picker sheet.
const sheetWidth = 30

// View renders the picker sheet. The presentation shell composes the
// result over its own backdrop.
func (m Model) View() string {
	if m.committed || m.canceled {
		return ""
	}

	var content string
	switch m.view {
	case ViewDays:
		content = m.renderDays()
	case ViewMonths:
		content = m.renderMonths()
	case ViewYears:
		content = m.renderYears()
	case ViewTime:
		content = m.renderTime()
	}

	sections := []string{
		m.renderHeader(),
		"",
		content,
	}
	if m.mode == ModeRange && m.view == ViewDays {
		sections = append(sections, "", m.styles.Muted.Render(m.rangeStatus()))
	}
	sections = append(sections, "", m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return m.styles.Sheet.Width(sheetWidth).Render(body)
}

// renderHeader renders the navigation header for the current view: the
// month/year breadcrumb that taps zoom through, or the jump input.
func (m Model) renderHeader() string {
	if m.jumping {
		return m.jump.View()
	}

	var title string
	switch m.view {
	case ViewDays:
		title = fmt.Sprintf("%s %d", m.cursor.Month(), m.cursor.Year())
	case ViewMonths:
		title = fmt.Sprintf("%d", m.cursor.Year())
	case ViewYears:
		title = fmt.Sprintf("%d – %d", m.yearBase, m.yearBase+yearsPerPage-1)
	case ViewTime:
		title = m.timeTitle()
	}

	arrows := m.styles.Muted.Render("‹ ") + m.styles.Title.Render(title) + m.styles.Muted.Render(" ›")
	return m.styles.Header.Width(sheetWidth - 2).Align(lipgloss.Center).Render(arrows)
}

// timeTitle shows the pending date in datetime mode, or a plain label.
func (m Model) timeTitle() string {
	if m.mode == ModeDateTime && !m.sel.IsZero() {
		return m.sel.Format("Jan 2, 2006")
	}
	return "Select time"
}

// rangeStatus summarizes the in-progress range for the footer.
func (m Model) rangeStatus() string {
	switch {
	case m.rng.Start.IsZero():
		return "pick a start date"
	case m.rng.End.IsZero():
		return m.rng.Start.Format("Jan 2") + " → pick an end date"
	default:
		return m.rng.Start.Format("Jan 2") + " → " + m.rng.End.Format("Jan 2")
	}
}

// Overlay places the sheet over a full-screen base render, centered.
// ANSI-safe splicing keeps styled backdrop lines intact.
func Overlay(base, sheet string, width, height int) string {
	if sheet == "" {
		return base
	}

	sheetLines := strings.Split(sheet, "\n")
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	sheetH := len(sheetLines)
	sheetW := 0
	for _, l := range sheetLines {
		if w := lipgloss.Width(l); w > sheetW {
			sheetW = w
		}
	}

	startRow := (height - sheetH) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (width - sheetW) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, line := range sheetLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], line, startCol, width)
	}

	return strings.Join(baseLines, "\n")
}
