// Package theme resolves user-supplied theme inputs into a complete,
// internally consistent set of semantic color tokens for the picker.
//
// Resolution is a pure function: a small input (a preset name, a two- or
// three-color palette, explicit per-token overrides, or a legacy shape)
// is expanded into every token the rendering layer needs, with automatic
// contrast correction of text colors against the surfaces they sit on.
// Nothing in this package touches the terminal.
package theme

// Color is a color value as understood by the resolver: a 3- or 6-digit
// hex string, or an rgba() expression produced by WithAlpha.
type Color string

// Scheme tags a theme as light or dark.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// SemanticColors is the fixed record of named color roles the picker
// renders with. Every token holds a valid color once resolved.
type SemanticColors struct {
	Background         Color `json:"background,omitempty"`
	Surface            Color `json:"surface,omitempty"`
	Header             Color `json:"header,omitempty"`
	Foreground         Color `json:"foreground,omitempty"`
	MutedForeground    Color `json:"mutedForeground,omitempty"`
	Border             Color `json:"border,omitempty"`
	Divider            Color `json:"divider,omitempty"`
	Accent             Color `json:"accent,omitempty"`
	OnAccent           Color `json:"onAccent,omitempty"`
	DisabledForeground Color `json:"disabledForeground,omitempty"`
}

// merge overlays the set fields of o onto a copy of c, key by key.
func (c SemanticColors) merge(o SemanticColors) SemanticColors {
	out := c
	for _, f := range []struct {
		dst *Color
		src Color
	}{
		{&out.Background, o.Background},
		{&out.Surface, o.Surface},
		{&out.Header, o.Header},
		{&out.Foreground, o.Foreground},
		{&out.MutedForeground, o.MutedForeground},
		{&out.Border, o.Border},
		{&out.Divider, o.Divider},
		{&out.Accent, o.Accent},
		{&out.OnAccent, o.OnAccent},
		{&out.DisabledForeground, o.DisabledForeground},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return out
}

// complete reports whether every token is populated, i.e. the value can
// be treated as a fully resolved token set.
func (c SemanticColors) complete() bool {
	return c.Background != "" && c.Surface != "" && c.Header != "" &&
		c.Foreground != "" && c.MutedForeground != "" && c.Border != "" &&
		c.Divider != "" && c.Accent != "" && c.OnAccent != "" &&
		c.DisabledForeground != ""
}

// RadiusFull marks a corner radius large enough to read as circular;
// the day-cell default.
const RadiusFull = 999

// Radii holds corner radii for the picker's shapes. Terminal rendering
// quantizes these to border styles, but the values round-trip through
// themes unchanged so host applications can consume them too.
type Radii struct {
	Sheet   int `json:"sheet"`
	Button  int `json:"button"`
	DayCell int `json:"dayCell"`
}

// Spacing is the spacing scale, in cells.
type Spacing struct {
	XS int `json:"xs"`
	SM int `json:"sm"`
	MD int `json:"md"`
	LG int `json:"lg"`
}

// FontScale is the relative type scale. Terminals cannot vary glyph
// size, so the renderer maps steps above Body to bold/emphasis.
type FontScale struct {
	Caption int `json:"caption"`
	Body    int `json:"body"`
	Title   int `json:"title"`
}

// Shadow describes the sheet's elevation treatment. Disabled means the
// backdrop renders flat with no dim layer under the sheet edge.
type Shadow struct {
	Enabled   bool `json:"enabled"`
	Elevation int  `json:"elevation"`
}

// Theme is a fully resolved set of design tokens. It is an immutable
// value: Extend and Resolve always return a new Theme rather than
// mutating in place, so themes are safe to share and memoize.
type Theme struct {
	Scheme    Scheme         `json:"scheme"`
	Colors    SemanticColors `json:"colors"`
	Radii     Radii          `json:"radii"`
	Spacing   Spacing        `json:"spacing"`
	FontScale FontScale      `json:"fontScale"`
	Shadow    Shadow         `json:"shadow"`
}

// resolved reports whether t carries a scheme tag and a full token set.
func (t Theme) resolved() bool {
	return (t.Scheme == SchemeLight || t.Scheme == SchemeDark) && t.Colors.complete()
}

// defaultRadii, defaultSpacing and defaultFontScale are the secondary
// token defaults shared by every built-in preset.
func defaultRadii() Radii { return Radii{Sheet: 12, Button: 8, DayCell: RadiusFull} }

func defaultSpacing() Spacing { return Spacing{XS: 1, SM: 1, MD: 2, LG: 3} }

func defaultFontScale() FontScale { return FontScale{Caption: 1, Body: 2, Title: 3} }

// Overrides is a partial theme applied on top of a base. Zero-valued
// fields are left alone; Colors merges token by token while the root
// fields replace wholesale.
type Overrides struct {
	Scheme    Scheme         `json:"scheme,omitempty"`
	Colors    SemanticColors `json:"colors,omitempty"`
	Radii     *Radii         `json:"radii,omitempty"`
	Spacing   *Spacing       `json:"spacing,omitempty"`
	FontScale *FontScale     `json:"fontScale,omitempty"`
	Shadow    *Shadow        `json:"shadow,omitempty"`
}

// Extend returns a new Theme with the overrides applied: root fields
// replace, color tokens deep-merge. The base is not modified.
func Extend(base Theme, o Overrides) Theme {
	out := base
	if o.Scheme != "" {
		out.Scheme = o.Scheme
	}
	out.Colors = base.Colors.merge(o.Colors)
	if o.Radii != nil {
		out.Radii = *o.Radii
	}
	if o.Spacing != nil {
		out.Spacing = *o.Spacing
	}
	if o.FontScale != nil {
		out.FontScale = *o.FontScale
	}
	if o.Shadow != nil {
		out.Shadow = *o.Shadow
	}
	return out
}
