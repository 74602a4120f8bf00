package theme

import "encoding/json"

// Classify decides the Input variant for untyped theme data (for
// example a theme block read from a JSON config file). The decision is
// made once, here, by shape:
//
//   - a scheme tag plus a complete token set is trusted as Resolved;
//   - palette/overrides/options keys mark a creation request (Spec);
//   - anything else falls back to the Legacy adapter.
//
// Classify never fails: unparseable data classifies as an empty Legacy,
// which resolves to the inherited theme untouched.
func Classify(raw map[string]any) Input {
	if raw == nil {
		return nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return Legacy{}
	}

	if _, ok := raw["scheme"]; ok {
		var t Theme
		if json.Unmarshal(data, &t) == nil && t.resolved() {
			return Resolved{Theme: t}
		}
	}

	_, hasPalette := raw["palette"]
	_, hasOverrides := raw["overrides"]
	_, hasOptions := raw["options"]
	if hasPalette || hasOverrides || hasOptions {
		var s Spec
		if json.Unmarshal(data, &s) == nil {
			return s
		}
	}

	var l Legacy
	if json.Unmarshal(data, &l) != nil {
		return Legacy{}
	}
	return l
}
