package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "first-day").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). Returns an error when
	// the value is not valid for the key.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "preset",
		Description: "Theme preset used when --theme is not specified",
		Get:         func(cfg *Config) string { return cfg.Preset },
		Set: func(cfg *Config, v string) error {
			cfg.Preset = v
			return nil
		},
	},
	{
		Name:        "first-day",
		Description: "First weekday of calendar rows: sunday or monday",
		Get:         func(cfg *Config) string { return cfg.FirstDay },
		Set: func(cfg *Config, v string) error {
			switch strings.ToLower(v) {
			case "sunday", "monday":
				cfg.FirstDay = strings.ToLower(v)
				return nil
			}
			return fmt.Errorf("first-day must be %q or %q, got %q", "sunday", "monday", v)
		},
	},
	{
		Name:        "clock-format",
		Description: "Hour format for time wheels: 12 or 24",
		Get:         func(cfg *Config) string { return cfg.ClockFormat },
		Set: func(cfg *Config, v string) error {
			switch v {
			case "12", "24":
				cfg.ClockFormat = v
				return nil
			}
			return fmt.Errorf("clock-format must be %q or %q, got %q", "12", "24", v)
		},
	},
	{
		Name:        "minute-interval",
		Description: "Minute wheel granularity in minutes (must divide 60)",
		Get: func(cfg *Config) string {
			if cfg.MinuteInterval == 0 {
				return ""
			}
			return strconv.Itoa(cfg.MinuteInterval)
		},
		Set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("minute-interval must be a number, got %q", v)
			}
			if n < 1 || n > 60 || 60%n != 0 {
				return fmt.Errorf("minute-interval must divide 60, got %d", n)
			}
			cfg.MinuteInterval = n
			return nil
		},
	},
	{
		Name:        "backdrop",
		Description: "Dim treatment behind the sheet (see chronopick pick --help)",
		Get:         func(cfg *Config) string { return cfg.Backdrop },
		Set: func(cfg *Config, v string) error {
			cfg.Backdrop = v
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
