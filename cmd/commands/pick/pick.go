// Package pick wires the interactive picker into the CLI. Each
// subcommand opens a full-screen picker sheet over a dimmed backdrop
// and prints the committed selection to stdout.
package pick

import (
	"fmt"

	"chronopick/internal/config"
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// NewCommand returns the "pick" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open an interactive picker",
		Long: `Open an interactive date, time, or range picker.

The picker runs full screen; navigate with the arrow keys (or hjkl),
confirm with enter, and cancel with esc. Press ? inside the picker for
the full key reference.

Examples:
  chronopick pick date --min-age 18        # birthdate-style picker
  chronopick pick range                    # date range
  chronopick pick time --clock 12          # 12-hour wheel
  chronopick pick datetime -o json         # machine-readable output`,
	}

	cmd.AddCommand(DateCommand())
	cmd.AddCommand(RangeCommand())
	cmd.AddCommand(TimeCommand())
	cmd.AddCommand(DateTimeCommand())

	return cmd
}

// run is the shared body of every pick subcommand: load preferences,
// translate flags into picker options, run the program, print the result.
func run(cmd *cobra.Command, mode picker.Mode) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := buildOptions(cmd, cfg, mode)
	if err != nil {
		return err
	}

	sel, ok, err := runPicker(cmd, cfg, opts)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return nil
	}

	return printResult(cmd, sel, mode)
}
