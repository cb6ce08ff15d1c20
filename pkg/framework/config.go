package framework

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
)

// MaxBagBytes caps the serialized size of a configuration bag.
const MaxBagBytes = 100 * 1024

// reservedKeys are rejected anywhere in a configuration bag. They mean
// nothing to this process, but bags round-trip through JavaScript
// clients where these keys mutate object prototypes.
var reservedKeys = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

// Config is an opaque framework configuration bag. The engine never
// interprets its keys; only the owning plugin does.
type Config map[string]any

// CheckBag enforces the bag's structural limits: serialized size at
// most MaxBagBytes and no reserved key at any nesting depth.
func (c Config) CheckBag() error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("configuration is not serializable: %w", err)
	}
	if len(raw) > MaxBagBytes {
		return fmt.Errorf("configuration exceeds %d bytes when serialized (got %d)", MaxBagBytes, len(raw))
	}
	if key := findReservedKey(map[string]any(c)); key != "" {
		return fmt.Errorf("configuration contains reserved key %q", key)
	}
	return nil
}

// findReservedKey walks nested maps and slices looking for denied keys.
func findReservedKey(v any) string {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if reservedKeys[k] {
				return k
			}
			if found := findReservedKey(inner); found != "" {
				return found
			}
		}
	case []any:
		for _, inner := range val {
			if found := findReservedKey(inner); found != "" {
				return found
			}
		}
	}
	return ""
}

// Merge returns the effective bag for one run: base (the agent's stored
// configuration) overlaid with per-run overrides. Nested maps merge
// recursively; override values win. Neither input is mutated.
func Merge(base, overrides Config) (Config, error) {
	merged := Config{}
	if err := mergo.Merge(&merged, base, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	if err := mergo.Merge(&merged, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration overrides: %w", err)
	}
	return merged, nil
}

// String returns the string value at key. ok is false when the key is
// absent or holds a different type.
func (c Config) String(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Number returns the numeric value at key. JSON decoding yields
// float64; bags built in Go may hold native integer types.
func (c Config) Number(key string) (float64, bool) {
	switch n := c[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Bool returns the boolean value at key.
func (c Config) Bool(key string) (bool, bool) {
	b, ok := c[key].(bool)
	return b, ok
}
