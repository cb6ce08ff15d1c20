package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	name string
}

func (p *stubPlugin) Name() string                { return p.name }
func (p *stubPlugin) Validate(cfg Config) []string { return nil }
func (p *stubPlugin) Schema() *Schema             { return &Schema{} }
func (p *stubPlugin) Execute(ctx context.Context, run *RunContext) (*Result, error) {
	return &Result{}, nil
}

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&stubPlugin{name: "echo"}))

		p, err := r.Get("echo")
		require.NoError(t, err)
		assert.Equal(t, "echo", p.Name())
	})

	t.Run("unknown tag returns ErrUnsupportedFramework", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Get("langchain")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedFramework))
		assert.Contains(t, err.Error(), "langchain")
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&stubPlugin{name: "echo"}))
		err := r.Register(&stubPlugin{name: "echo"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("empty name rejected", func(t *testing.T) {
		r := NewRegistry()
		assert.Error(t, r.Register(&stubPlugin{name: ""}))
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&stubPlugin{name: "zeta"}))
		require.NoError(t, r.Register(&stubPlugin{name: "alpha"}))
		assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
	})
}
