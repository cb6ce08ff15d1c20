package framework

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCerebras(t *testing.T, handler http.HandlerFunc) *CerebrasPlugin {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	plugin := NewCerebrasPlugin()
	plugin.BaseURL = srv.URL
	return plugin
}

func TestCerebrasPlugin_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("non-streaming completion", func(t *testing.T) {
		var gotAuth string
		var gotBody cerebrasRequest
		plugin := newTestCerebras(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &gotBody))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "42"}},
				},
				"usage": map[string]any{
					"prompt_tokens":     1000,
					"completion_tokens": 2000,
					"total_tokens":      3000,
				},
			})
		})

		run := &RunContext{
			Input: "meaning of life?",
			Config: Config{
				"model":       "llama3.1-8b",
				"api_key":     "csk-test",
				"temperature": 0.3,
				"max_tokens":  float64(64),
			},
		}
		result, err := plugin.Execute(ctx, run)
		require.NoError(t, err)

		assert.Equal(t, "Bearer csk-test", gotAuth)
		assert.Equal(t, "llama3.1-8b", gotBody.Model)
		require.Len(t, gotBody.Messages, 1)
		assert.Equal(t, "user", gotBody.Messages[0].Role)
		assert.Equal(t, "meaning of life?", gotBody.Messages[0].Content)
		require.NotNil(t, gotBody.Temperature)
		assert.Equal(t, 0.3, *gotBody.Temperature)
		require.NotNil(t, gotBody.MaxTokens)
		assert.Equal(t, 64, *gotBody.MaxTokens)
		assert.False(t, gotBody.Stream)

		assert.Equal(t, "42", result.Output["content"])
		assert.Equal(t, "llama3.1-8b", result.Output["model"])
		assert.Equal(t, 3000, result.TokensUsed)
		// llama3.1-8b: 0.10/Mtok both ways.
		assert.InDelta(t, 1000*0.10/1e6+2000*0.10/1e6, result.CostUSD, 1e-9)
	})

	t.Run("streaming forwards deltas to the log sink", func(t *testing.T) {
		plugin := newTestCerebras(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			chunks := []string{
				`{"choices":[{"delta":{"content":"Hel"}}]}`,
				`{"choices":[{"delta":{"content":"lo"}}]}`,
				`{"choices":[{"delta":{}}],"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}}`,
			}
			for _, c := range chunks {
				_, _ = fmt.Fprintf(w, "data: %s\n\n", c)
			}
			_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
		})

		var deltas []string
		run := &RunContext{
			Input:  "hi",
			Config: Config{"model": "llama3.1-8b", "api_key": "csk-test", "stream": true},
			LogSink: func(level, message string, meta map[string]any) {
				assert.Equal(t, LevelDebug, level)
				deltas = append(deltas, message)
			},
		}
		result, err := plugin.Execute(ctx, run)
		require.NoError(t, err)

		assert.Equal(t, []string{"Hel", "lo"}, deltas)
		assert.Equal(t, "Hello", result.Output["content"])
		assert.Equal(t, 12, result.TokensUsed)
	})

	t.Run("upstream error surfaces status and body", func(t *testing.T) {
		plugin := newTestCerebras(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
		})

		run := &RunContext{
			Input:  "hi",
			Config: Config{"model": "llama3.1-8b", "api_key": "bad"},
		}
		_, err := plugin.Execute(ctx, run)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("missing api key fails before calling upstream", func(t *testing.T) {
		t.Setenv("CEREBRAS_API_KEY", "")
		plugin := NewCerebrasPlugin()

		run := &RunContext{Input: "hi", Config: Config{"model": "llama3.1-8b"}}
		_, err := plugin.Execute(ctx, run)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no API key")
	})

	t.Run("api key falls back to environment", func(t *testing.T) {
		t.Setenv("CEREBRAS_API_KEY", "csk-env")
		var gotAuth string
		plugin := newTestCerebras(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
				"usage":   map[string]any{"total_tokens": 1},
			})
		})

		run := &RunContext{Input: "hi", Config: Config{"model": "llama3.1-8b"}}
		_, err := plugin.Execute(ctx, run)
		require.NoError(t, err)
		assert.Equal(t, "Bearer csk-env", gotAuth)
	})
}

func TestCerebrasPlugin_Validate(t *testing.T) {
	plugin := NewCerebrasPlugin()

	assert.Empty(t, plugin.Validate(Config{
		"model":       "llama-3.3-70b",
		"temperature": 1.0,
		"max_tokens":  float64(512),
		"stream":      true,
	}))

	errs := plugin.Validate(Config{})
	assert.Contains(t, errs, "model is required")

	errs = plugin.Validate(Config{"model": "made-up-model"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "model must be one of")

	errs = plugin.Validate(Config{"model": "llama3.1-8b", "temperature": 3.0})
	assert.Contains(t, errs, "temperature must be at most 2")
}

func TestCerebrasCatalog(t *testing.T) {
	models := loadCerebrasCatalog()
	require.NotEmpty(t, models)

	m, ok := models["llama3.1-8b"]
	require.True(t, ok)
	assert.Greater(t, m.InputPerMTok, 0.0)
	assert.Greater(t, m.OutputPerMTok, 0.0)
}
