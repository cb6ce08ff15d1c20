// Package framework defines the plugin contract execution frameworks
// implement, the configuration bag rules, and the process-wide
// registry mapping framework tags to plugins.
package framework

import (
	"context"
	"errors"
)

// ErrUnsupportedFramework is returned when no plugin is registered for
// a framework tag. Fails agent create/update and execution submission.
var ErrUnsupportedFramework = errors.New("unsupported framework")

// Log levels accepted by the log sink.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

// Plugin is implemented by every execution framework.
//
// Plugins are pure with respect to engine state: they read inputs from
// the RunContext and emit effects only through its sinks (and their own
// outbound HTTP to upstream providers).
type Plugin interface {
	// Name returns the framework tag agents reference.
	Name() string

	// Validate checks a configuration bag. The returned slice is empty
	// when the bag is acceptable, otherwise it holds one message per
	// problem. Pure; called at agent create/update and again at
	// dispatch.
	Validate(cfg Config) []string

	// Schema describes the accepted configuration keys.
	Schema() *Schema

	// Execute runs the framework. It honors ctx cancellation; the
	// engine arms ctx with the execution's deadline. A nil error means
	// the run succeeded and the Result carries its output. A non-nil
	// error surfaces as the execution's failure message.
	Execute(ctx context.Context, run *RunContext) (*Result, error)
}

// Result is a successful execution's output. TokensUsed and CostUSD
// are zero when the framework has no notion of them.
type Result struct {
	Output     map[string]any
	TokensUsed int
	CostUSD    float64
}

// LogFunc receives a log line from a running plugin. meta may be nil.
type LogFunc func(level, message string, meta map[string]any)

// ProgressFunc receives completion percentage updates.
type ProgressFunc func(percent float64)

// RunContext carries everything a plugin may read or emit during one
// execution.
type RunContext struct {
	AgentID     string
	SubmitterID string
	Input       string
	Config      Config // effective bag: agent configuration overlaid with per-run overrides
	Environment string

	// Sinks wired by the engine. Optional; the Log and Progress
	// helpers are nil-safe.
	LogSink      LogFunc
	ProgressSink ProgressFunc
}

// Log emits a log line through the sink if one is attached.
func (r *RunContext) Log(level, message string, meta map[string]any) {
	if r.LogSink != nil {
		r.LogSink(level, message, meta)
	}
}

// Progress reports completion percentage, clamped to [0,100].
func (r *RunContext) Progress(percent float64) {
	if r.ProgressSink == nil {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	r.ProgressSink(percent)
}
