package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// White and Black are the fallback candidates used by EnsureReadable.
const (
	White Color = "#FFFFFF"
	Black Color = "#000000"
)

// DefaultContrastThreshold is the minimum contrast ratio applied when a
// theme spec does not set its own. 4.5:1 matches the WCAG AA requirement
// for normal text.
const DefaultContrastThreshold = 4.5

// parseHex decodes a 3- or 6-digit hex color, with or without a leading
// "#". It returns ok=false for anything else.
func parseHex(c Color) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// linearize converts a single sRGB channel (0..1) to its linear-light
// value per the WCAG relative-luminance definition.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of a hex color in 0..1.
// Malformed colors report 0 (treated as black).
func Luminance(c Color) float64 {
	r, g, b, ok := parseHex(c)
	if !ok {
		return 0
	}
	return 0.2126*linearize(float64(r)/255) +
		0.7152*linearize(float64(g)/255) +
		0.0722*linearize(float64(b)/255)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// (L1+0.05)/(L2+0.05) with L1 >= L2. The result is symmetric in its
// arguments and lies in [1, 21].
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// EnsureReadable returns a color readable against bg at the given
// threshold ratio. Candidates are tried in order: desired, white, black;
// the first meeting the threshold wins. If none do, whichever of
// white/black scores higher against bg is returned, so the result is
// always the best achievable.
func EnsureReadable(desired, bg Color, threshold float64) Color {
	if threshold <= 0 {
		threshold = DefaultContrastThreshold
	}

	for _, c := range []Color{desired, White, Black} {
		if ContrastRatio(c, bg) >= threshold {
			return c
		}
	}

	if ContrastRatio(White, bg) >= ContrastRatio(Black, bg) {
		return White
	}
	return Black
}

// WithAlpha converts a 3- or 6-digit hex color into an equivalent
// rgba() expression at the given opacity. Malformed input is returned
// unchanged rather than rejected; a widget must not crash over a bad
// color string. The alpha fraction is clamped to [0, 1].
func WithAlpha(c Color, alpha float64) Color {
	r, g, b, ok := parseHex(c)
	if !ok {
		return c
	}

	alpha = math.Min(math.Max(alpha, 0), 1)
	return Color(fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b,
		strconv.FormatFloat(alpha, 'f', -1, 64)))
}

// Flatten resolves a color to a plain hex value a terminal can render.
// rgba() expressions (as produced by WithAlpha) are composited over the
// given backdrop; anything else passes through.
func Flatten(c, over Color) Color {
	s := strings.TrimSpace(string(c))
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return c
	}

	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "rgba("), ")"), ",")
	if len(parts) != 4 {
		return c
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return c
		}
		ch[i] = float64(v)
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return c
	}
	alpha = math.Min(math.Max(alpha, 0), 1)

	br, bg_, bb, ok := parseHex(over)
	if !ok {
		br, bg_, bb = 0, 0, 0
	}
	base := [3]float64{float64(br), float64(bg_), float64(bb)}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		out[i] = uint8(math.Round(ch[i]*alpha + base[i]*(1-alpha)))
	}
	return Color(fmt.Sprintf("#%02X%02X%02X", out[0], out[1], out[2]))
}

// blend mixes c toward target by the given fraction, used to derive the
// surface family from a single primary color.
func blend(c, target Color, frac float64) Color {
	r1, g1, b1, ok := parseHex(c)
	if !ok {
		return c
	}
	r2, g2, b2, ok := parseHex(target)
	if !ok {
		return c
	}

	frac = math.Min(math.Max(frac, 0), 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-frac) + float64(b)*frac))
	}
	return Color(fmt.Sprintf("#%02X%02X%02X", mix(r1, r2), mix(g1, g2), mix(b1, b2)))
}

// IsDark reports whether a color reads as a dark backdrop. Malformed
// colors count as dark, matching the dark default elsewhere.
func IsDark(c Color) bool {
	return Luminance(c) < 0.5
}
