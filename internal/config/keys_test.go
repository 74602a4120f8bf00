package config

import (
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	spec := Lookup("first-day")
	if spec == nil {
		t.Fatal("expected to find key 'first-day', got nil")
	}
	if spec.Name != "first-day" {
		t.Errorf("expected Name %q, got %q", "first-day", spec.Name)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("FIRST-DAY")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "first-day" {
		t.Errorf("expected Name %q, got %q", "first-day", spec.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	spec := Lookup("nonexistent-key")
	if spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_GetSetRoundtrip(t *testing.T) {
	// One valid value per key.
	values := map[string]string{
		"preset":          "catppuccin-latte",
		"first-day":       "monday",
		"clock-format":    "12",
		"minute-interval": "15",
		"backdrop":        "shade",
	}

	for _, k := range Keys {
		v, ok := values[k.Name]
		if !ok {
			t.Fatalf("no test value registered for key %q", k.Name)
		}
		cfg := &Config{}
		if err := k.Set(cfg, v); err != nil {
			t.Errorf("key %q: Set(%q) failed: %v", k.Name, v, err)
			continue
		}
		if got := k.Get(cfg); got != v {
			t.Errorf("key %q: Set then Get = %q, want %q", k.Name, got, v)
		}
	}
}

func TestKeys_SetRejectsInvalid(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"first-day", "tuesday"},
		{"clock-format", "13"},
		{"minute-interval", "7"},
		{"minute-interval", "0"},
		{"minute-interval", "abc"},
	}

	for _, tc := range cases {
		spec := Lookup(tc.key)
		if spec == nil {
			t.Fatalf("key %q not found", tc.key)
		}
		if err := spec.Set(&Config{}, tc.value); err == nil {
			t.Errorf("key %q: expected error for value %q, got nil", tc.key, tc.value)
		}
	}
}

func TestKeys_FirstDayNormalizesCase(t *testing.T) {
	cfg := &Config{}
	spec := Lookup("first-day")
	if err := spec.Set(cfg, "Monday"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cfg.FirstDay != "monday" {
		t.Errorf("expected normalized %q, got %q", "monday", cfg.FirstDay)
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
		if !strings.Contains(help, k.Description) {
			t.Errorf("expected description %q in help output", k.Description)
		}
	}
}
