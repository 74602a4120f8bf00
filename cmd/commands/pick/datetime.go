package pick

import (
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// DateTimeCommand returns the "pick datetime" command.
func DateTimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datetime",
		Short: "Pick a date and time together",
		Long: `Pick a date from the calendar, then a time on the wheels.

Selecting a day moves to the time wheels; press d to go back to the
calendar before committing.

Examples:
  chronopick pick datetime
  chronopick pick datetime --interval 30 -o json`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, picker.ModeDateTime)
		},
		SilenceUsage: true,
	}

	registerCommonFlags(cmd)
	registerDateFlags(cmd)
	registerTimeFlags(cmd)

	return cmd
}
