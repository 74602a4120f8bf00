// Package themes exposes the theme presets on the CLI: listing,
// previewing, and a guided wizard for building a custom theme.
package themes

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "themes" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and build picker themes",
		Long: `Inspect the built-in theme presets and build custom themes.

A theme resolves a small palette into the full set of picker colors,
correcting foreground colors that would be unreadable against their
background.

Examples:
  chronopick themes list
  chronopick themes preview catppuccin-mocha
  chronopick themes create          # guided wizard, saved to config`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PreviewCommand())
	cmd.AddCommand(CreateCommand())

	return cmd
}
