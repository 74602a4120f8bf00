package themes

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"chronopick/internal/theme"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// presetRow is one resolved preset, with the derived contrast ratio of
// its main text pairing.
type presetRow struct {
	Name     string      `json:"name"`
	Scheme   string      `json:"scheme"`
	Theme    theme.Theme `json:"theme"`
	Contrast float64     `json:"contrast"`
}

// ListCommand returns the "themes list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available theme presets",
		Long: `List the built-in theme presets with their key colors and the
contrast ratio of foreground text over the surface color.`,
		Args:         cobra.ExactArgs(0),
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	rows, err := resolvePresets()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCHEME\tBACKGROUND\tFOREGROUND\tACCENT\tCONTRAST\t")
	fmt.Fprintln(w, "----\t------\t----------\t----------\t------\t--------\t")

	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s %s\t%s %s\t%.1f:1\t\n",
			row.Name,
			row.Scheme,
			swatch(row.Theme.Colors.Background), row.Theme.Colors.Background,
			swatch(row.Theme.Colors.Foreground), row.Theme.Colors.Foreground,
			swatch(row.Theme.Colors.Accent), row.Theme.Colors.Accent,
			row.Contrast,
		)
	}

	w.Flush()
	return nil
}

// resolvePresets resolves every preset concurrently and returns the
// rows in preset-name order.
func resolvePresets() ([]presetRow, error) {
	names := theme.PresetNames()
	rows := make([]presetRow, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			th, ok := theme.Preset(name)
			if !ok {
				return fmt.Errorf("preset %q disappeared during listing", name)
			}
			rows[i] = presetRow{
				Name:     name,
				Scheme:   string(th.Scheme),
				Theme:    th,
				Contrast: theme.ContrastRatio(th.Colors.Foreground, th.Colors.Surface),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
