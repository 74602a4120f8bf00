package pick

import (
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// RangeCommand returns the "pick range" command.
func RangeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Pick a date range",
		Long: `Pick a start and end date from a calendar.

The first selected day starts the range; selecting a later day
completes it. Selecting an earlier day instead restarts the range from
that day, so the result is never inverted.

Examples:
  chronopick pick range
  chronopick pick range --min 2024-01-01 -o json`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, picker.ModeRange)
		},
		SilenceUsage: true,
	}

	registerCommonFlags(cmd)
	registerDateFlags(cmd)

	return cmd
}
