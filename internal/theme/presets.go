package theme

import (
	"sort"

	catppuccin "github.com/catppuccin/go"
)

// DefaultDark is the hard-coded fallback theme used when no input and no
// inherited theme exist. It must always be a complete token set.
func DefaultDark() Theme {
	return Theme{
		Scheme: SchemeDark,
		Colors: SemanticColors{
			Background:         "#1A1A2E",
			Surface:            "#16213E",
			Header:             "#16213E",
			Foreground:         "#E2E2E2",
			MutedForeground:    WithAlpha("#E2E2E2", 0.7),
			Border:             WithAlpha("#E2E2E2", 0.15),
			Divider:            WithAlpha("#E2E2E2", 0.15),
			Accent:             "#5FAFFF",
			OnAccent:           "#000000",
			DisabledForeground: WithAlpha("#E2E2E2", 0.4),
		},
		Radii:     defaultRadii(),
		Spacing:   defaultSpacing(),
		FontScale: defaultFontScale(),
		Shadow:    Shadow{Enabled: true, Elevation: 2},
	}
}

// DefaultLight is the built-in light preset.
func DefaultLight() Theme {
	return Theme{
		Scheme: SchemeLight,
		Colors: SemanticColors{
			Background:         "#FFFFFF",
			Surface:            "#F4F4F5",
			Header:             "#F4F4F5",
			Foreground:         "#1A1A1A",
			MutedForeground:    WithAlpha("#1A1A1A", 0.7),
			Border:             WithAlpha("#1A1A1A", 0.15),
			Divider:            WithAlpha("#1A1A1A", 0.15),
			Accent:             "#2563EB",
			OnAccent:           "#FFFFFF",
			DisabledForeground: WithAlpha("#1A1A1A", 0.4),
		},
		Radii:     defaultRadii(),
		Spacing:   defaultSpacing(),
		FontScale: defaultFontScale(),
		Shadow:    Shadow{Enabled: true, Elevation: 2},
	}
}

// catppuccinTheme builds a preset from Catppuccin palette colors.
func catppuccinTheme(scheme Scheme, base, mantle, text, mauve, crust Color) Theme {
	return Theme{
		Scheme: scheme,
		Colors: SemanticColors{
			Background:         base,
			Surface:            mantle,
			Header:             mantle,
			Foreground:         text,
			MutedForeground:    WithAlpha(text, 0.7),
			Border:             WithAlpha(text, 0.15),
			Divider:            WithAlpha(text, 0.15),
			Accent:             mauve,
			OnAccent:           crust,
			DisabledForeground: WithAlpha(text, 0.4),
		},
		Radii:     defaultRadii(),
		Spacing:   defaultSpacing(),
		FontScale: defaultFontScale(),
		Shadow:    Shadow{Enabled: true, Elevation: 2},
	}
}

// presets maps preset names to constructors. Constructors (rather than
// shared values) keep the returned themes independently mutable by
// callers without aliasing.
var presets = map[string]func() Theme{
	"dark":  DefaultDark,
	"light": DefaultLight,
	"catppuccin-mocha": func() Theme {
		f := catppuccin.Mocha
		return catppuccinTheme(SchemeDark,
			Color(f.Base().Hex), Color(f.Mantle().Hex), Color(f.Text().Hex),
			Color(f.Mauve().Hex), Color(f.Crust().Hex))
	},
	"catppuccin-latte": func() Theme {
		f := catppuccin.Latte
		return catppuccinTheme(SchemeLight,
			Color(f.Base().Hex), Color(f.Mantle().Hex), Color(f.Text().Hex),
			Color(f.Mauve().Hex), Color(f.Crust().Hex))
	},
}

// Preset returns the named built-in theme. The bool reports whether the
// name is known; unknown names yield the dark default.
func Preset(name string) (Theme, bool) {
	if f, ok := presets[name]; ok {
		return f(), true
	}
	return DefaultDark(), false
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
