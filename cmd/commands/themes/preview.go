package themes

import (
	"fmt"
	"strings"

	"chronopick/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// PreviewCommand returns the "themes preview" command.
func PreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Render a sample of a theme preset",
		Long: `Render a small sample sheet in the given preset so you can judge it
before setting it as your default.

Examples:
  chronopick themes preview dark
  chronopick themes preview catppuccin-latte`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPreview,
		SilenceUsage: true,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	name := args[0]

	th, ok := theme.Preset(name)
	if !ok {
		return fmt.Errorf("unknown theme preset %q (valid: %s)", name, strings.Join(theme.PresetNames(), ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSample(name, th))
	return nil
}

// renderSample draws a miniature picker sheet in the given theme.
func renderSample(name string, th theme.Theme) string {
	st := theme.NewStyles(th)

	days := []string{
		st.Weekday.Render("Su Mo Tu We Th Fr Sa"),
		strings.Join([]string{
			st.DayOutside.Render("30"),
			st.Day.Render(" 1"),
			st.Day.Render(" 2"),
			st.DaySelected.Render(" 3"),
			st.DayInRange.Render(" 4"),
			st.DayToday.Render(" 5"),
			st.DayDisabled.Render(" 6"),
		}, " "),
	}

	sections := []string{
		st.Title.Render(name),
		st.Muted.Render(string(th.Scheme) + " scheme"),
		"",
		strings.Join(days, "\n"),
		"",
		st.ButtonAccent.Render(" Done ") + " " + st.Button.Render(" Cancel "),
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return st.Sheet.Render(body)
}

// swatch renders a small color block for table output.
func swatch(c theme.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(string(c))).
		Render("  ")
}
