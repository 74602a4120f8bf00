package theme

// Input is the discriminated union of shapes a theme may arrive in.
// The variant is decided once, at the boundary where the input enters
// the system (Classify for dynamic data, or direct construction for
// typed callers); resolution never probes fields to guess a shape.
type Input interface {
	themeInput()
}

// Resolved wraps an already-resolved Theme. It is trusted as-is and
// merged over the inherited theme without re-derivation.
type Resolved struct {
	Theme Theme
}

// Palette is the two- or three-color seed of a creation request.
// Primary becomes the surface family, Secondary the text family, and
// Accent (optional) the accent family.
type Palette struct {
	Primary   Color `json:"primary,omitempty"`
	Secondary Color `json:"secondary,omitempty"`
	Accent    Color `json:"accent,omitempty"`
}

// Options tune the resolution of a creation request.
type Options struct {
	// ContrastThreshold is the minimum acceptable contrast ratio for
	// auto-corrected text tokens. Zero means DefaultContrastThreshold.
	ContrastThreshold float64 `json:"contrastThreshold,omitempty"`

	// AutoContrast enables contrast correction of foreground and
	// onAccent. Nil means enabled.
	AutoContrast *bool `json:"autoContrast,omitempty"`
}

// Spec is a theme creation request: preset + palette + overrides.
type Spec struct {
	Preset    string    `json:"preset,omitempty"`
	Palette   Palette   `json:"palette,omitempty"`
	Overrides Overrides `json:"overrides,omitempty"`
	Options   Options   `json:"options,omitempty"`
}

// Legacy is the older ad hoc theme shape, kept for callers that still
// pass it. Pointer fields distinguish "unset" from zero values.
type Legacy struct {
	Primary   Color            `json:"primary,omitempty"`
	Secondary Color            `json:"secondary,omitempty"`
	Colors    map[string]Color `json:"colors,omitempty"`

	Radius    *int       `json:"radius,omitempty"`
	DayRadius *int       `json:"dayRadius,omitempty"`
	Spacing   *Spacing   `json:"spacing,omitempty"`
	FontScale *FontScale `json:"typography,omitempty"`

	Preset            string  `json:"preset,omitempty"`
	AutoContrast      *bool   `json:"autoContrast,omitempty"`
	ContrastThreshold float64 `json:"contrastThreshold,omitempty"`
	Shadow            *bool   `json:"shadow,omitempty"`
}

func (Resolved) themeInput() {}
func (Spec) themeInput()     {}
func (Legacy) themeInput()   {}

// legacyTokenNames maps legacy colors-map keys to semantic tokens.
// This is the documented 1:1 mapping table; keys absent here are
// ignored rather than guessed at.
var legacyTokenNames = map[string]func(*SemanticColors) *Color{
	"background":         func(c *SemanticColors) *Color { return &c.Background },
	"surface":            func(c *SemanticColors) *Color { return &c.Surface },
	"header":             func(c *SemanticColors) *Color { return &c.Header },
	"text":               func(c *SemanticColors) *Color { return &c.Foreground },
	"foreground":         func(c *SemanticColors) *Color { return &c.Foreground },
	"muted":              func(c *SemanticColors) *Color { return &c.MutedForeground },
	"mutedForeground":    func(c *SemanticColors) *Color { return &c.MutedForeground },
	"border":             func(c *SemanticColors) *Color { return &c.Border },
	"divider":            func(c *SemanticColors) *Color { return &c.Divider },
	"accent":             func(c *SemanticColors) *Color { return &c.Accent },
	"accentText":         func(c *SemanticColors) *Color { return &c.OnAccent },
	"onAccent":           func(c *SemanticColors) *Color { return &c.OnAccent },
	"disabled":           func(c *SemanticColors) *Color { return &c.DisabledForeground },
	"disabledForeground": func(c *SemanticColors) *Color { return &c.DisabledForeground },
}
