package pick

import (
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// TimeCommand returns the "pick time" command.
func TimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Pick a time of day",
		Long: `Pick a time of day on hour and minute wheels.

With --clock 12 the wheel shows 12-hour values with an AM/PM column;
the result prints in 24-hour form either way.

Examples:
  chronopick pick time
  chronopick pick time --clock 12 --interval 15
  chronopick pick time --min-time 09:00 --max-time 17:30`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, picker.ModeTime)
		},
		SilenceUsage: true,
	}

	registerCommonFlags(cmd)
	registerTimeFlags(cmd)

	return cmd
}
