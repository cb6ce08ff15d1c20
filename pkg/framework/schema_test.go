package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Check(t *testing.T) {
	schema := &Schema{
		Fields: map[string]Field{
			"model":       {Type: FieldString, Required: true, Enum: []string{"small", "large"}},
			"temperature": {Type: FieldNumber, Min: floatPtr(0), Max: floatPtr(2)},
			"stream":      {Type: FieldBool},
			"options":     {Type: FieldObject},
		},
	}

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "valid configuration",
			cfg: Config{
				"model":       "small",
				"temperature": 1.5,
				"stream":      true,
				"options":     map[string]any{"k": "v"},
			},
			want: nil,
		},
		{
			name: "missing required key",
			cfg:  Config{},
			want: []string{"model is required"},
		},
		{
			name: "enum violation",
			cfg:  Config{"model": "medium"},
			want: []string{"model must be one of: small, large"},
		},
		{
			name: "type mismatches",
			cfg:  Config{"model": "small", "temperature": "hot", "stream": 1},
			want: []string{"stream must be a boolean", "temperature must be a number"},
		},
		{
			name: "range violations",
			cfg:  Config{"model": "small", "temperature": 2.5},
			want: []string{"temperature must be at most 2"},
		},
		{
			name: "below minimum",
			cfg:  Config{"model": "small", "temperature": -0.1},
			want: []string{"temperature must be at least 0"},
		},
		{
			name: "undeclared key",
			cfg:  Config{"model": "small", "bogus": 1},
			want: []string{"bogus is not an accepted key"},
		},
		{
			name: "object type mismatch",
			cfg:  Config{"model": "small", "options": "nope"},
			want: []string{"options must be an object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schema.Check(tt.cfg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchema_CheckIntegerAsNumber(t *testing.T) {
	schema := &Schema{
		Fields: map[string]Field{
			"max_tokens": {Type: FieldNumber, Min: floatPtr(1)},
		},
	}

	// JSON decoding produces float64, but bags assembled in Go carry
	// native ints. Both must pass.
	assert.Empty(t, schema.Check(Config{"max_tokens": 100}))
	assert.Empty(t, schema.Check(Config{"max_tokens": float64(100)}))
	assert.Equal(t, []string{"max_tokens must be at least 1"}, schema.Check(Config{"max_tokens": 0}))
}
