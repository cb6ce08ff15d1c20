package framework

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// FieldType enumerates the value types a schema field accepts.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldBool   FieldType = "boolean"
	FieldObject FieldType = "object"
)

// Field describes one accepted configuration key.
type Field struct {
	Type        FieldType `json:"type"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Schema declares the configuration keys a framework accepts. Served
// to clients as-is so they can render configuration forms.
type Schema struct {
	Fields map[string]Field `json:"fields"`
}

// Check returns one message per violation of the declared fields:
// missing required keys, type mismatches, out-of-range numbers, values
// outside an enum, and keys the schema does not declare. Messages are
// sorted for deterministic output.
func (s *Schema) Check(cfg Config) []string {
	var errs []string
	for name, f := range s.Fields {
		v, present := cfg[name]
		if !present {
			if f.Required {
				errs = append(errs, fmt.Sprintf("%s is required", name))
			}
			continue
		}
		errs = append(errs, f.check(name, v)...)
	}
	for key := range cfg {
		if _, declared := s.Fields[key]; !declared {
			errs = append(errs, fmt.Sprintf("%s is not an accepted key", key))
		}
	}
	sort.Strings(errs)
	return errs
}

func (f Field) check(name string, v any) []string {
	switch f.Type {
	case FieldString:
		s, ok := v.(string)
		if !ok {
			return []string{fmt.Sprintf("%s must be a string", name)}
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return []string{fmt.Sprintf("%s must be one of: %s", name, strings.Join(f.Enum, ", "))}
		}
	case FieldNumber:
		n, ok := Config{name: v}.Number(name)
		if !ok {
			return []string{fmt.Sprintf("%s must be a number", name)}
		}
		if f.Min != nil && n < *f.Min {
			return []string{fmt.Sprintf("%s must be at least %v", name, *f.Min)}
		}
		if f.Max != nil && n > *f.Max {
			return []string{fmt.Sprintf("%s must be at most %v", name, *f.Max)}
		}
	case FieldBool:
		if _, ok := v.(bool); !ok {
			return []string{fmt.Sprintf("%s must be a boolean", name)}
		}
	case FieldObject:
		if _, ok := v.(map[string]any); !ok {
			return []string{fmt.Sprintf("%s must be an object", name)}
		}
	}
	return nil
}

// floatPtr is a convenience for Field literals.
func floatPtr(v float64) *float64 {
	return &v
}
