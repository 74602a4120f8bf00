package pick

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"chronopick/internal/calendar"
	"chronopick/internal/clock"
	"chronopick/internal/config"
	"chronopick/internal/feedback"
	"chronopick/internal/picker"
	"chronopick/internal/picker/backdrop"
	"chronopick/internal/theme"

	"github.com/spf13/cobra"
)

// registerCommonFlags adds the flags shared by every pick subcommand.
func registerCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("theme", "", "Theme preset name (overrides the configured preset)")
	f.String("theme-file", "", "Path to a JSON theme file")
	f.String("first-day", "", "First weekday of calendar rows: sunday or monday")
	f.String("backdrop", "", "Backdrop treatment behind the sheet: "+strings.Join(backdrop.List(), ", "))
	f.StringP("output", "o", "text", "Output format: text or json")
}

// registerDateFlags adds the date-bound flags used by date-carrying modes.
func registerDateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("min", "", "Earliest selectable date (YYYY-MM-DD)")
	f.String("max", "", "Latest selectable date (YYYY-MM-DD)")
	f.Int("min-age", 0, "Require the selected date to be at least this many years ago")
	f.Int("max-age", 0, "Require the selected date to be at most this many years ago")
	f.String("initial", "", "Pre-selected date (YYYY-MM-DD)")
}

// registerTimeFlags adds the clock flags used by time-carrying modes.
func registerTimeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("clock", "", "Hour format: 12 or 24")
	f.Int("interval", 0, "Minute wheel step (must divide 60)")
	f.String("min-time", "", "Earliest selectable time (HH:MM)")
	f.String("max-time", "", "Latest selectable time (HH:MM)")
}

// buildOptions translates flags and persisted preferences into picker
// options. Flags win over config; config wins over built-in defaults.
func buildOptions(cmd *cobra.Command, cfg *config.Config, mode picker.Mode) (picker.Options, error) {
	opts := picker.Options{Mode: mode}

	in, err := themeInput(cmd, cfg)
	if err != nil {
		return opts, err
	}
	opts.Theme = in

	firstDay, _ := cmd.Flags().GetString("first-day")
	if firstDay == "" {
		firstDay = cfg.FirstDay
	}
	switch strings.ToLower(firstDay) {
	case "", "sunday":
		opts.FirstDay = time.Sunday
	case "monday":
		opts.FirstDay = time.Monday
	default:
		return opts, fmt.Errorf("invalid first-day %q (valid: sunday, monday)", firstDay)
	}

	if hasFlag(cmd, "min") {
		if err := applyDateFlags(cmd, &opts); err != nil {
			return opts, err
		}
	}
	if hasFlag(cmd, "clock") {
		if err := applyTimeFlags(cmd, cfg, &opts); err != nil {
			return opts, err
		}
	}

	opts.Feedback = feedback.New(feedback.Bell{Out: os.Stderr})

	return opts, nil
}

func applyDateFlags(cmd *cobra.Command, opts *picker.Options) error {
	f := cmd.Flags()

	for _, spec := range []struct {
		name string
		dst  *time.Time
	}{
		{"min", &opts.Constraint.MinDate},
		{"max", &opts.Constraint.MaxDate},
		{"initial", &opts.Initial},
	} {
		raw, _ := f.GetString(spec.name)
		if raw == "" {
			continue
		}
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", spec.name, err)
		}
		*spec.dst = d
	}

	opts.Constraint.MinAge, _ = f.GetInt("min-age")
	opts.Constraint.MaxAge, _ = f.GetInt("max-age")
	if opts.Constraint.MinAge < 0 || opts.Constraint.MaxAge < 0 {
		return fmt.Errorf("age bounds must not be negative")
	}

	return nil
}

func applyTimeFlags(cmd *cobra.Command, cfg *config.Config, opts *picker.Options) error {
	f := cmd.Flags()

	clockFlag, _ := f.GetString("clock")
	if clockFlag == "" {
		clockFlag = cfg.ClockFormat
	}
	switch clockFlag {
	case "", "24":
		opts.ClockFormat = clock.Format24
	case "12":
		opts.ClockFormat = clock.Format12
	default:
		return fmt.Errorf("invalid clock format %q (valid: 12, 24)", clockFlag)
	}

	interval, _ := f.GetInt("interval")
	if interval == 0 {
		interval = cfg.MinuteInterval
	}
	if interval != 0 && (interval < 1 || interval > 60 || 60%interval != 0) {
		return fmt.Errorf("minute interval must divide 60, got %d", interval)
	}
	opts.MinuteInterval = interval

	for _, spec := range []struct {
		name string
		dst  **calendar.TimeOfDay
	}{
		{"min-time", &opts.TimeBounds.Min},
		{"max-time", &opts.TimeBounds.Max},
	} {
		raw, _ := f.GetString(spec.name)
		if raw == "" {
			continue
		}
		t, err := calendar.ParseTimeOfDay(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", spec.name, err)
		}
		*spec.dst = &t
	}

	return nil
}

// themeInput picks the theme source in priority order: --theme-file,
// --theme, the configured theme block, the configured preset name.
func themeInput(cmd *cobra.Command, cfg *config.Config) (theme.Input, error) {
	if path, _ := cmd.Flags().GetString("theme-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
		}
		return theme.Classify(raw), nil
	}

	if name, _ := cmd.Flags().GetString("theme"); name != "" {
		if _, ok := theme.Preset(name); !ok {
			return nil, fmt.Errorf("unknown theme preset %q (valid: %s)", name, strings.Join(theme.PresetNames(), ", "))
		}
		return theme.Spec{Preset: name}, nil
	}

	if len(cfg.Theme) > 0 {
		return theme.Classify(cfg.Theme), nil
	}
	if cfg.Preset != "" {
		if _, ok := theme.Preset(cfg.Preset); !ok {
			return nil, fmt.Errorf("configured preset %q no longer exists (valid: %s)", cfg.Preset, strings.Join(theme.PresetNames(), ", "))
		}
		return theme.Spec{Preset: cfg.Preset}, nil
	}

	return nil, nil
}

// hasFlag reports whether the command declares the named flag. Not all
// pick subcommands carry the date or time flag sets.
func hasFlag(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name) != nil
}
