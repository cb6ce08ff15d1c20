package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_CheckBag(t *testing.T) {
	t.Run("accepts a normal bag", func(t *testing.T) {
		cfg := Config{
			"model":       "llama3.1-8b",
			"temperature": 0.7,
			"nested":      map[string]any{"retries": 3},
		}
		assert.NoError(t, cfg.CheckBag())
	})

	t.Run("accepts an empty bag", func(t *testing.T) {
		assert.NoError(t, Config{}.CheckBag())
	})

	t.Run("rejects oversized bags", func(t *testing.T) {
		cfg := Config{"blob": strings.Repeat("a", MaxBagBytes+1)}
		err := cfg.CheckBag()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("rejects reserved keys at the top level", func(t *testing.T) {
		for _, key := range []string{"__proto__", "constructor", "prototype"} {
			cfg := Config{key: "x"}
			err := cfg.CheckBag()
			require.Error(t, err, "key %s", key)
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("rejects reserved keys nested in maps and slices", func(t *testing.T) {
		cfg := Config{
			"outer": map[string]any{
				"list": []any{
					map[string]any{"__proto__": map[string]any{"polluted": true}},
				},
			},
		}
		err := cfg.CheckBag()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "__proto__")
	})
}

func TestConfig_Merge(t *testing.T) {
	t.Run("overrides win and nested maps merge", func(t *testing.T) {
		base := Config{
			"model": "llama3.1-8b",
			"options": map[string]any{
				"temperature": 0.2,
				"max_tokens":  100,
			},
		}
		overrides := Config{
			"options": map[string]any{"temperature": 0.9},
			"stream":  true,
		}

		merged, err := Merge(base, overrides)
		require.NoError(t, err)

		assert.Equal(t, "llama3.1-8b", merged["model"])
		assert.Equal(t, true, merged["stream"])

		options, ok := merged["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 0.9, options["temperature"])
		assert.Equal(t, 100, options["max_tokens"])
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		base := Config{"a": 1}
		overrides := Config{"a": 2, "b": 3}

		_, err := Merge(base, overrides)
		require.NoError(t, err)

		assert.Equal(t, 1, base["a"])
		assert.NotContains(t, base, "b")
	})

	t.Run("nil inputs are fine", func(t *testing.T) {
		merged, err := Merge(nil, Config{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, "v", merged["k"])

		merged, err = Merge(Config{"k": "v"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "v", merged["k"])
	})
}

func TestConfig_Accessors(t *testing.T) {
	cfg := Config{
		"name":   "echo",
		"count":  float64(3),
		"native": 7,
		"flag":   true,
	}

	s, ok := cfg.String("name")
	assert.True(t, ok)
	assert.Equal(t, "echo", s)

	_, ok = cfg.String("count")
	assert.False(t, ok)

	n, ok := cfg.Number("count")
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	n, ok = cfg.Number("native")
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = cfg.Number("name")
	assert.False(t, ok)

	b, ok := cfg.Bool("flag")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = cfg.Bool("missing")
	assert.False(t, ok)
}
