package cmd

import (
	"os"

	cfgcmd "chronopick/cmd/commands/config"
	"chronopick/cmd/commands/pick"
	"chronopick/cmd/commands/themes"
	"chronopick/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "chronopick",
		Short: "A themeable date and time picker for the terminal",
		Long: `chronopick is an interactive date, time, and date-range picker that runs
in your terminal. Themes resolve from presets or custom palettes, with
automatic contrast correction for readability.

Quick start:
  chronopick pick date             # Pick a single date
  chronopick pick range            # Pick a date range
  chronopick pick time --clock 12  # Pick a time on a 12-hour wheel
  chronopick themes list           # See the available theme presets`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !debug {
				debug = os.Getenv("CHRONOPICK_DEBUG") != ""
			}
			if debug {
				return logging.Init(os.Getenv("CHRONOPICK_DEBUG_FILE"))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to chronopick-debug.log")

	cmd.AddCommand(pick.NewCommand())
	cmd.AddCommand(themes.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
