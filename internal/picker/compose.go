package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spliceLine overlays a sheet line onto a base line starting at the
// given visual column. Truncation is ANSI-aware so styled backdrop text
// is not corrupted mid escape sequence.
func spliceLine(base, overlay string, startCol, width int) string {
	left := ansi.Truncate(base, startCol, "")
	if w := lipgloss.Width(left); w < startCol {
		left += strings.Repeat(" ", startCol-w)
	}

	overlayW := lipgloss.Width(overlay)
	endCol := startCol + overlayW

	right := ""
	if lipgloss.Width(base) > endCol {
		right = ansi.TruncateLeft(base, endCol, "")
	}

	line := left + overlay + right
	if w := lipgloss.Width(line); w > width && width > 0 {
		line = ansi.Truncate(line, width, "")
	}
	return line
}
