package framework

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// EchoPlugin is the loopback framework: it returns its input, with an
// optional prefix, after an optional delay. The delay honors ctx, so
// the plugin exercises the engine's timeout and cancellation paths in
// development and tests without an upstream provider.
type EchoPlugin struct{}

// NewEchoPlugin returns the echo framework plugin.
func NewEchoPlugin() *EchoPlugin {
	return &EchoPlugin{}
}

// Name implements Plugin.
func (p *EchoPlugin) Name() string {
	return "echo"
}

// Schema implements Plugin.
func (p *EchoPlugin) Schema() *Schema {
	return &Schema{
		Fields: map[string]Field{
			"delay_ms": {
				Type:        FieldNumber,
				Description: "Milliseconds to sleep before answering",
				Min:         floatPtr(0),
				Max:         floatPtr(10 * 60 * 1000),
				Default:     0,
			},
			"prefix": {
				Type:        FieldString,
				Description: "Prepended to the echoed input",
			},
			"fail": {
				Type:        FieldBool,
				Description: "Fail the run instead of answering",
				Default:     false,
			},
		},
	}
}

// Validate implements Plugin.
func (p *EchoPlugin) Validate(cfg Config) []string {
	return p.Schema().Check(cfg)
}

// Execute implements Plugin.
func (p *EchoPlugin) Execute(ctx context.Context, run *RunContext) (*Result, error) {
	if delay, ok := run.Config.Number("delay_ms"); ok && delay > 0 {
		select {
		case <-time.After(time.Duration(delay) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if fail, _ := run.Config.Bool("fail"); fail {
		return nil, errors.New("echo configured to fail")
	}

	prefix, _ := run.Config.String("prefix")
	content := prefix + run.Input

	run.Log(LevelInfo, fmt.Sprintf("echoing %d bytes", len(run.Input)), nil)
	run.Progress(100)

	return &Result{
		Output: map[string]any{"content": content},
	}, nil
}
