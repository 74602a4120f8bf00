package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"chronopick/internal/config"
	"chronopick/internal/theme"
	"chronopick/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("theme creation aborted by user")

// CreateCommand returns the "themes create" command.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build a custom theme interactively",
		Long: `Walk through building a custom theme: pick a base preset, supply a
palette, and preview the resolved colors before saving.

The result is saved as your default theme in the config file. Set the
ACCESSIBLE environment variable for a screen-reader friendly flow.`,
		Args:         cobra.ExactArgs(0),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	raw, err := CreateThemeForm()
	if err != nil {
		if errors.Is(err, ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		return err
	}

	accessible := os.Getenv("ACCESSIBLE") != ""

	saveErr := spinner.New().
		Title("Saving theme...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Theme = raw
			return cfg.Save()
		}).
		Run()
	if saveErr != nil {
		return fmt.Errorf("failed to save theme: %w", saveErr)
	}

	path, err := config.Path()
	if err != nil {
		path = "config"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme saved to %s\n", path)
	return nil
}

// CreateThemeForm runs an interactive wizard that collects a theme
// creation request and returns it as a raw theme block ready for the
// config file.
func CreateThemeForm() (map[string]any, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	state := struct {
		base         string
		primary      string
		secondary    string
		accent       string
		autoContrast bool
	}{autoContrast: true}

	baseOpts := []huh.Option[string]{huh.NewOption("none (derive from palette)", "")}
	for _, name := range theme.PresetNames() {
		baseOpts = append(baseOpts, huh.NewOption(name, name))
	}

	baseField := huh.NewSelect[string]().
		Title("Base preset").
		Description("Tokens you leave empty fall back to this preset.").
		Options(baseOpts...).
		Value(&state.base)

	primaryField := huh.NewInput().
		Title("Primary color").
		Description("Main background family, e.g. #1A1A2E").
		Value(&state.primary).
		Validate(func(v string) error {
			return util.ValidateHexColor(strings.TrimSpace(v))
		})

	secondaryField := huh.NewInput().
		Title("Secondary color").
		Description("Text family. Leave empty to derive a readable one.").
		Value(&state.secondary).
		Validate(optionalHex)

	accentField := huh.NewInput().
		Title("Accent color").
		Description("Selection highlight. Leave empty for the base accent.").
		Value(&state.accent).
		Validate(optionalHex)

	contrastField := huh.NewConfirm().
		Title("Auto-correct unreadable colors?").
		Description("Adjusts text colors that fall below a 4.5:1 contrast ratio.").
		Value(&state.autoContrast)

	confirm := false
	summaryNote := huh.NewNote().
		Title("Resolved theme").
		DescriptionFunc(func() string {
			return summarize(buildSpec(state.base, state.primary, state.secondary, state.accent, state.autoContrast))
		}, &state)

	confirmField := huh.NewConfirm().
		Title("Save this theme?").
		Value(&confirm)

	if err := runForm(accessible,
		huh.NewGroup(baseField),
		huh.NewGroup(primaryField, secondaryField, accentField),
		huh.NewGroup(contrastField),
		huh.NewGroup(summaryNote, confirmField),
	); err != nil {
		return nil, err
	}

	if !confirm {
		return nil, ErrAborted
	}

	return rawTheme(state.base, state.primary, state.secondary, state.accent, state.autoContrast), nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func optionalHex(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return util.ValidateHexColor(strings.TrimSpace(v))
}

// buildSpec assembles the typed creation request from the wizard state.
func buildSpec(base, primary, secondary, accent string, autoContrast bool) theme.Spec {
	return theme.Spec{
		Preset: base,
		Palette: theme.Palette{
			Primary:   theme.Color(strings.TrimSpace(primary)),
			Secondary: theme.Color(strings.TrimSpace(secondary)),
			Accent:    theme.Color(strings.TrimSpace(accent)),
		},
		Options: theme.Options{AutoContrast: &autoContrast},
	}
}

// rawTheme is the config-file shape of the same request.
func rawTheme(base, primary, secondary, accent string, autoContrast bool) map[string]any {
	palette := map[string]any{
		"primary": strings.TrimSpace(primary),
	}
	if s := strings.TrimSpace(secondary); s != "" {
		palette["secondary"] = s
	}
	if a := strings.TrimSpace(accent); a != "" {
		palette["accent"] = a
	}

	raw := map[string]any{
		"palette": palette,
		"options": map[string]any{"autoContrast": autoContrast},
	}
	if base != "" {
		raw["preset"] = base
	}
	return raw
}

// summarize resolves the creation request and reports the key derived tokens.
func summarize(s theme.Spec) string {
	th := theme.Create(s)

	var b strings.Builder
	fmt.Fprintf(&b, "Scheme:      %s\n", th.Scheme)
	fmt.Fprintf(&b, "Background:  %s\n", th.Colors.Background)
	fmt.Fprintf(&b, "Surface:     %s\n", th.Colors.Surface)
	fmt.Fprintf(&b, "Foreground:  %s\n", th.Colors.Foreground)
	fmt.Fprintf(&b, "Accent:      %s on %s\n", th.Colors.OnAccent, th.Colors.Accent)
	fmt.Fprintf(&b, "Contrast:    %.1f:1 text, %.1f:1 accent",
		theme.ContrastRatio(th.Colors.Foreground, th.Colors.Surface),
		theme.ContrastRatio(th.Colors.OnAccent, th.Colors.Accent),
	)
	return b.String()
}
