package framework

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoPlugin_Execute(t *testing.T) {
	plugin := NewEchoPlugin()
	ctx := context.Background()

	t.Run("echoes input with prefix", func(t *testing.T) {
		var logged []string
		var progress []float64
		run := &RunContext{
			Input:  "hello",
			Config: Config{"prefix": "says: "},
			LogSink: func(level, message string, meta map[string]any) {
				logged = append(logged, level+" "+message)
			},
			ProgressSink: func(percent float64) {
				progress = append(progress, percent)
			},
		}

		result, err := plugin.Execute(ctx, run)
		require.NoError(t, err)
		assert.Equal(t, "says: hello", result.Output["content"])
		assert.Zero(t, result.TokensUsed)
		require.Len(t, logged, 1)
		assert.Contains(t, logged[0], "info")
		assert.Equal(t, []float64{100}, progress)
	})

	t.Run("fail flag fails the run", func(t *testing.T) {
		run := &RunContext{Input: "x", Config: Config{"fail": true}}
		_, err := plugin.Execute(ctx, run)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configured to fail")
	})

	t.Run("delay honors cancellation", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		run := &RunContext{Input: "x", Config: Config{"delay_ms": float64(10_000)}}

		done := make(chan error, 1)
		go func() {
			_, err := plugin.Execute(cancelCtx, run)
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("plugin did not return after cancellation")
		}
	})

	t.Run("delay honors deadline", func(t *testing.T) {
		deadlineCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		run := &RunContext{Input: "x", Config: Config{"delay_ms": float64(10_000)}}

		_, err := plugin.Execute(deadlineCtx, run)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil sinks are safe", func(t *testing.T) {
		run := &RunContext{Input: "quiet"}
		result, err := plugin.Execute(ctx, run)
		require.NoError(t, err)
		assert.Equal(t, "quiet", result.Output["content"])
	})
}

func TestEchoPlugin_Validate(t *testing.T) {
	plugin := NewEchoPlugin()

	assert.Empty(t, plugin.Validate(Config{"delay_ms": float64(50), "prefix": "p", "fail": false}))
	assert.Empty(t, plugin.Validate(Config{}))

	errs := plugin.Validate(Config{"delay_ms": -1, "bogus": true})
	assert.Contains(t, errs, "bogus is not an accepted key")
	assert.Contains(t, errs, "delay_ms must be at least 0")
}
