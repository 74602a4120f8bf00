package themes

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"chronopick/internal/theme"

	"github.com/spf13/cobra"
)

// execThemes runs one of this package's commands with wired-up output
// buffers and returns what was written to stdout and stderr.
func execThemes(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestResolvePresets_CoversAll(t *testing.T) {
	rows, err := resolvePresets()
	if err != nil {
		t.Fatalf("resolvePresets failed: %v", err)
	}

	names := theme.PresetNames()
	if len(rows) != len(names) {
		t.Fatalf("expected %d rows, got %d", len(names), len(rows))
	}
	for i, row := range rows {
		if row.Name != names[i] {
			t.Errorf("row %d: name %q, want %q", i, row.Name, names[i])
		}
		if row.Contrast < 4.5 {
			t.Errorf("preset %q: foreground/surface contrast %.2f below 4.5:1", row.Name, row.Contrast)
		}
	}
}

func TestList_TextOutput(t *testing.T) {
	stdout, stderr := execThemes(t, ListCommand())

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, name := range theme.PresetNames() {
		if !strings.Contains(stdout, name) {
			t.Errorf("expected preset %q in output:\n%s", name, stdout)
		}
	}
}

func TestList_JSONOutput(t *testing.T) {
	stdout, _ := execThemes(t, ListCommand(), "-o", "json")

	var rows []presetRow
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if len(rows) != len(theme.PresetNames()) {
		t.Errorf("expected %d rows, got %d", len(theme.PresetNames()), len(rows))
	}
}

func TestPreview_KnownPreset(t *testing.T) {
	stdout, stderr := execThemes(t, PreviewCommand(), "dark")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "dark") {
		t.Errorf("expected preset name in preview:\n%s", stdout)
	}
}

func TestPreview_UnknownPreset(t *testing.T) {
	_, stderr := execThemes(t, PreviewCommand(), "no-such-theme")

	if !strings.Contains(stderr, "unknown theme preset") {
		t.Errorf("expected 'unknown theme preset' error, got: %s", stderr)
	}
}

func TestRawTheme_Shape(t *testing.T) {
	raw := rawTheme("catppuccin-mocha", "#1A1A2E", "", "#5FAFFF", true)

	if raw["preset"] != "catppuccin-mocha" {
		t.Errorf("preset = %v, want catppuccin-mocha", raw["preset"])
	}

	palette, ok := raw["palette"].(map[string]any)
	if !ok {
		t.Fatalf("palette has wrong shape: %T", raw["palette"])
	}
	if palette["primary"] != "#1A1A2E" {
		t.Errorf("primary = %v, want #1A1A2E", palette["primary"])
	}
	if _, present := palette["secondary"]; present {
		t.Error("empty secondary should be omitted")
	}
	if palette["accent"] != "#5FAFFF" {
		t.Errorf("accent = %v, want #5FAFFF", palette["accent"])
	}
}

func TestRawTheme_ClassifiesAsSpec(t *testing.T) {
	raw := rawTheme("", "#1A1A2E", "#E2E2E2", "", false)

	in := theme.Classify(raw)
	spec, ok := in.(theme.Spec)
	if !ok {
		t.Fatalf("expected theme.Spec, got %T", in)
	}
	if spec.Palette.Primary != "#1A1A2E" {
		t.Errorf("Palette.Primary = %q, want #1A1A2E", spec.Palette.Primary)
	}
	if spec.Options.AutoContrast == nil || *spec.Options.AutoContrast {
		t.Errorf("expected autoContrast false, got %+v", spec.Options.AutoContrast)
	}
}

func TestSummarize_ReportsDerivedTokens(t *testing.T) {
	got := summarize(buildSpec("", "#1A1A2E", "", "", true))

	for _, want := range []string{"Scheme:", "Background:", "#1A1A2E", "Contrast:"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
