package theme

// Derived-token opacity levels. The muted, border, divider and disabled
// tokens are alpha fractions of the resolved foreground.
const (
	mutedAlpha    = 0.7
	borderAlpha   = 0.15
	dividerAlpha  = 0.15
	disabledAlpha = 0.4
)

// surfaceLift is how far the surface color is blended away from the
// background toward white (dark schemes) or black (light schemes).
const surfaceLift = 0.06

// Resolve turns a theme input into a complete Theme. It never fails:
// a nil input yields the inherited theme, and a nil inherited theme
// yields the built-in dark default. Precedence is resolved input >
// creation request > legacy shape > inherited > default.
func Resolve(in Input, inherited *Theme) Theme {
	base := DefaultDark()
	if inherited != nil {
		base = *inherited
	}

	switch v := in.(type) {
	case nil:
		return base
	case Resolved:
		return mergeResolved(v.Theme, base)
	case Spec:
		return resolveSpec(v, base)
	case Legacy:
		return resolveLegacy(v, base)
	default:
		return base
	}
}

// Create resolves a creation request with no inherited context.
func Create(s Spec) Theme {
	return Resolve(s, nil)
}

// mergeResolved overlays an already-resolved theme onto the inherited
// one: root fields replace, color tokens merge key by key. The incoming
// theme is trusted; no contrast correction is re-applied.
func mergeResolved(t, base Theme) Theme {
	out := t
	out.Colors = base.Colors.merge(t.Colors)
	if out.Scheme == "" {
		out.Scheme = base.Scheme
	}
	return out
}

func resolveSpec(s Spec, inherited Theme) Theme {
	base := specBase(s.Preset, s.Palette.Primary, inherited)

	threshold := s.Options.ContrastThreshold
	if threshold <= 0 {
		threshold = DefaultContrastThreshold
	}
	auto := s.Options.AutoContrast == nil || *s.Options.AutoContrast

	colors := base.Colors

	if s.Palette.Primary != "" {
		colors.Background = s.Palette.Primary
		colors.Surface = liftSurface(s.Palette.Primary, base.Scheme)
		colors.Header = colors.Surface
	}

	fg := colors.Foreground
	if s.Palette.Secondary != "" {
		fg = s.Palette.Secondary
	}
	if auto {
		fg = EnsureReadable(fg, colors.Background, threshold)
	}
	colors.Foreground = fg
	colors.MutedForeground = WithAlpha(fg, mutedAlpha)
	colors.Border = WithAlpha(fg, borderAlpha)
	colors.Divider = WithAlpha(fg, dividerAlpha)
	colors.DisabledForeground = WithAlpha(fg, disabledAlpha)

	if s.Palette.Accent != "" {
		colors.Accent = s.Palette.Accent
	}
	if auto {
		colors.OnAccent = EnsureReadable(colors.OnAccent, colors.Accent, threshold)
	}

	out := base
	out.Colors = colors

	// Explicit overrides land last and bypass auto-contrast.
	return Extend(out, s.Overrides)
}

// resolveLegacy adapts the older ad hoc shape. Field mapping:
//
//	primary    -> background/surface/header (surface family)
//	secondary  -> foreground + derived tokens (text family)
//	colors.*   -> 1:1 per legacyTokenNames, applied last, no correction
//	radius     -> sheet/button radii; dayRadius -> day cell, else circular
//	shadow     -> false disables the elevation descriptor entirely
func resolveLegacy(l Legacy, inherited Theme) Theme {
	base := specBase(l.Preset, l.Primary, inherited)

	threshold := l.ContrastThreshold
	if threshold <= 0 {
		threshold = DefaultContrastThreshold
	}
	auto := l.AutoContrast == nil || *l.AutoContrast

	colors := base.Colors

	if l.Primary != "" {
		colors.Background = l.Primary
		colors.Surface = liftSurface(l.Primary, base.Scheme)
		colors.Header = colors.Surface
	}

	fg := colors.Foreground
	if l.Secondary != "" {
		fg = l.Secondary
	}
	if auto {
		fg = EnsureReadable(fg, colors.Background, threshold)
	}
	colors.Foreground = fg
	colors.MutedForeground = WithAlpha(fg, mutedAlpha)
	colors.Border = WithAlpha(fg, borderAlpha)
	colors.Divider = WithAlpha(fg, dividerAlpha)
	colors.DisabledForeground = WithAlpha(fg, disabledAlpha)

	if auto {
		colors.OnAccent = EnsureReadable(colors.OnAccent, colors.Accent, threshold)
	}

	// Explicit per-token colors are pinned: applied after correction.
	for name, value := range l.Colors {
		if slot, ok := legacyTokenNames[name]; ok {
			*slot(&colors) = value
		}
	}

	out := base
	out.Colors = colors

	if l.Radius != nil {
		out.Radii.Sheet = *l.Radius
		out.Radii.Button = *l.Radius
	}
	if l.DayRadius != nil {
		out.Radii.DayCell = *l.DayRadius
	} else {
		// Circular day cells unless the legacy shape pins them.
		out.Radii.DayCell = RadiusFull
	}
	if l.Spacing != nil {
		out.Spacing = *l.Spacing
	}
	if l.FontScale != nil {
		out.FontScale = *l.FontScale
	}
	if l.Shadow != nil {
		out.Shadow.Enabled = *l.Shadow
		if !*l.Shadow {
			out.Shadow.Elevation = 0
		}
	}

	return out
}

// specBase picks the starting theme for a creation request or legacy
// shape: a named preset wins, then the primary color's perceived
// lightness chooses between the built-in pair, then the inherited theme.
func specBase(preset string, primary Color, inherited Theme) Theme {
	if preset != "" {
		if t, ok := Preset(preset); ok {
			return t
		}
	}
	if primary != "" {
		if IsDark(primary) {
			return DefaultDark()
		}
		return DefaultLight()
	}
	return inherited
}

// liftSurface derives the surface color from the background: nudged
// toward white on dark schemes and toward black on light ones so the
// sheet separates from the backdrop.
func liftSurface(background Color, scheme Scheme) Color {
	if scheme == SchemeLight {
		return blend(background, Black, surfaceLift)
	}
	return blend(background, White, surfaceLift)
}
