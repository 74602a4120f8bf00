package pick

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"chronopick/internal/calendar"
	"chronopick/internal/clock"
	"chronopick/internal/config"
	"chronopick/internal/picker"
	"chronopick/internal/theme"

	"github.com/spf13/cobra"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildOptions_Defaults(t *testing.T) {
	cmd := DateCommand()

	opts, err := buildOptions(cmd, &config.Config{}, picker.ModeSingle)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if opts.FirstDay != time.Sunday {
		t.Errorf("expected default first day Sunday, got %v", opts.FirstDay)
	}
	if opts.Theme != nil {
		t.Errorf("expected nil theme input, got %#v", opts.Theme)
	}
	if opts.Feedback == nil {
		t.Error("expected a feedback provider")
	}
}

func TestBuildOptions_DateFlags(t *testing.T) {
	cmd := DateCommand()
	mustSet(t, cmd, "min", "2024-01-01")
	mustSet(t, cmd, "max", "2024-12-31")
	mustSet(t, cmd, "min-age", "18")
	mustSet(t, cmd, "initial", "2024-06-15")

	opts, err := buildOptions(cmd, &config.Config{}, picker.ModeSingle)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if got, want := opts.Constraint.MinDate, date(2024, time.January, 1); !got.Equal(want) {
		t.Errorf("MinDate = %v, want %v", got, want)
	}
	if got, want := opts.Constraint.MaxDate, date(2024, time.December, 31); !got.Equal(want) {
		t.Errorf("MaxDate = %v, want %v", got, want)
	}
	if opts.Constraint.MinAge != 18 {
		t.Errorf("MinAge = %d, want 18", opts.Constraint.MinAge)
	}
	if got, want := opts.Initial, date(2024, time.June, 15); !got.Equal(want) {
		t.Errorf("Initial = %v, want %v", got, want)
	}
}

func TestBuildOptions_InvalidDate(t *testing.T) {
	cmd := DateCommand()
	mustSet(t, cmd, "min", "january 1st")

	if _, err := buildOptions(cmd, &config.Config{}, picker.ModeSingle); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestBuildOptions_FirstDayFromConfig(t *testing.T) {
	cmd := DateCommand()

	opts, err := buildOptions(cmd, &config.Config{FirstDay: "monday"}, picker.ModeSingle)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.FirstDay != time.Monday {
		t.Errorf("FirstDay = %v, want Monday", opts.FirstDay)
	}
}

func TestBuildOptions_FlagBeatsConfig(t *testing.T) {
	cmd := DateCommand()
	mustSet(t, cmd, "first-day", "sunday")

	opts, err := buildOptions(cmd, &config.Config{FirstDay: "monday"}, picker.ModeSingle)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.FirstDay != time.Sunday {
		t.Errorf("FirstDay = %v, want Sunday", opts.FirstDay)
	}
}

func TestBuildOptions_TimeFlags(t *testing.T) {
	cmd := TimeCommand()
	mustSet(t, cmd, "clock", "12")
	mustSet(t, cmd, "interval", "15")
	mustSet(t, cmd, "min-time", "09:00")
	mustSet(t, cmd, "max-time", "17:30")

	opts, err := buildOptions(cmd, &config.Config{}, picker.ModeTime)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}

	if opts.ClockFormat != clock.Format12 {
		t.Errorf("ClockFormat = %v, want Format12", opts.ClockFormat)
	}
	if opts.MinuteInterval != 15 {
		t.Errorf("MinuteInterval = %d, want 15", opts.MinuteInterval)
	}
	if opts.TimeBounds.Min == nil || opts.TimeBounds.Min.Hour != 9 {
		t.Errorf("unexpected min time: %+v", opts.TimeBounds.Min)
	}
	if opts.TimeBounds.Max == nil || opts.TimeBounds.Max.Hour != 17 || opts.TimeBounds.Max.Minute != 30 {
		t.Errorf("unexpected max time: %+v", opts.TimeBounds.Max)
	}
}

func TestBuildOptions_ClockFromConfig(t *testing.T) {
	cmd := TimeCommand()

	opts, err := buildOptions(cmd, &config.Config{ClockFormat: "12", MinuteInterval: 5}, picker.ModeTime)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.ClockFormat != clock.Format12 {
		t.Errorf("ClockFormat = %v, want Format12", opts.ClockFormat)
	}
	if opts.MinuteInterval != 5 {
		t.Errorf("MinuteInterval = %d, want 5", opts.MinuteInterval)
	}
}

func TestBuildOptions_InvalidInterval(t *testing.T) {
	cmd := TimeCommand()
	mustSet(t, cmd, "interval", "7")

	if _, err := buildOptions(cmd, &config.Config{}, picker.ModeTime); err == nil {
		t.Fatal("expected error for interval that does not divide 60")
	}
}

func TestThemeInput_PresetFlag(t *testing.T) {
	cmd := DateCommand()
	mustSet(t, cmd, "theme", "catppuccin-mocha")

	in, err := themeInput(cmd, &config.Config{})
	if err != nil {
		t.Fatalf("themeInput failed: %v", err)
	}

	spec, ok := in.(theme.Spec)
	if !ok {
		t.Fatalf("expected theme.Spec, got %T", in)
	}
	if spec.Preset != "catppuccin-mocha" {
		t.Errorf("Preset = %q, want catppuccin-mocha", spec.Preset)
	}
}

func TestThemeInput_UnknownPreset(t *testing.T) {
	cmd := DateCommand()
	mustSet(t, cmd, "theme", "solarized-nope")

	if _, err := themeInput(cmd, &config.Config{}); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestThemeInput_ThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	raw := `{"palette": {"primary": "#1A1A2E", "secondary": "#E2E2E2"}}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}

	cmd := DateCommand()
	mustSet(t, cmd, "theme-file", path)

	in, err := themeInput(cmd, &config.Config{})
	if err != nil {
		t.Fatalf("themeInput failed: %v", err)
	}

	spec, ok := in.(theme.Spec)
	if !ok {
		t.Fatalf("expected theme.Spec, got %T", in)
	}
	if spec.Palette.Primary != "#1A1A2E" {
		t.Errorf("Palette.Primary = %q, want #1A1A2E", spec.Palette.Primary)
	}
}

func TestThemeInput_ConfigFallbacks(t *testing.T) {
	cmd := DateCommand()

	// Theme block wins over preset name.
	in, err := themeInput(cmd, &config.Config{
		Preset: "light",
		Theme:  map[string]any{"palette": map[string]any{"primary": "#101010"}},
	})
	if err != nil {
		t.Fatalf("themeInput failed: %v", err)
	}
	if _, ok := in.(theme.Spec); !ok {
		t.Fatalf("expected theme.Spec from theme block, got %T", in)
	}

	in, err = themeInput(cmd, &config.Config{Preset: "light"})
	if err != nil {
		t.Fatalf("themeInput failed: %v", err)
	}
	spec, ok := in.(theme.Spec)
	if !ok {
		t.Fatalf("expected theme.Spec from preset, got %T", in)
	}
	if spec.Preset != "light" {
		t.Errorf("Preset = %q, want light", spec.Preset)
	}
}

func TestTextResult(t *testing.T) {
	sel := picker.Selection{
		Date:  date(2024, time.June, 15),
		Range: picker.Range{Start: date(2024, time.June, 10), End: date(2024, time.June, 15)},
		Time:  calendar.TimeOfDay{Hour: 9, Minute: 5},
	}

	cases := []struct {
		mode picker.Mode
		want string
	}{
		{picker.ModeSingle, "2024-06-15"},
		{picker.ModeRange, "2024-06-10 to 2024-06-15"},
		{picker.ModeTime, "09:05"},
		{picker.ModeDateTime, "2024-06-15 09:05"},
	}

	for _, tc := range cases {
		if got := textResult(sel, tc.mode); got != tc.want {
			t.Errorf("mode %v: got %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestBuildResult_OnlyModeFields(t *testing.T) {
	sel := picker.Selection{
		Date: date(2024, time.June, 15),
		Time: calendar.TimeOfDay{Hour: 9, Minute: 5},
	}

	r := buildResult(sel, picker.ModeTime)
	if r.Time != "09:05" {
		t.Errorf("Time = %q, want 09:05", r.Time)
	}
	if r.Date != "" || r.Start != "" || r.End != "" {
		t.Errorf("expected only the time field set, got %+v", r)
	}
}

func mustSet(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	if err := cmd.Flags().Set(name, value); err != nil {
		t.Fatalf("failed to set flag %s: %v", name, err)
	}
}
