package util

import (
	"fmt"
	"regexp"
)

// validHexColor matches a 3- or 6-digit hex color with a leading #.
var validHexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that a string is a well-formed hex color:
//   - Leading # is required
//   - 3 or 6 hex digits, case-insensitive
func ValidateHexColor(s string) error {
	if s == "" {
		return fmt.Errorf("color is required")
	}
	if !validHexColor.MatchString(s) {
		return fmt.Errorf("color %q must be a hex value like #1A2B3C", s)
	}
	return nil
}
