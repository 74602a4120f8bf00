package pick

import (
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// DateCommand returns the "pick date" command.
func DateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Pick a single date",
		Long: `Pick a single date from a calendar.

Date bounds compose: explicit --min/--max dates intersect with the
age-derived window from --min-age/--max-age, and the narrower result
wins.

Examples:
  chronopick pick date
  chronopick pick date --min-age 18              # date of birth, adults only
  chronopick pick date --min 2024-01-01 --max 2024-12-31`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, picker.ModeSingle)
		},
		SilenceUsage: true,
	}

	registerCommonFlags(cmd)
	registerDateFlags(cmd)

	return cmd
}
