package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/events"
)

// RecoverStartupOrphans fails executions this process can prove dead:
// rows still claiming this pod from a previous life, and any
// non-terminal row old enough that every deadline and grace period has
// long passed. Called once at boot, before Start.
func (e *Engine) RecoverStartupOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-e.cfg.staleAfter())

	rows, err := e.client.Execution.Query().
		Where(
			execution.StateIn(execution.StatePending, execution.StateRunning),
			execution.Or(
				execution.CreatedAtLT(cutoff),
				execution.And(
					execution.StateEQ(execution.StateRunning),
					execution.PodIDEQ(e.podID),
				),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query startup orphans: %w", err)
	}
	return e.reap(ctx, rows, "orphaned: recovered at startup"), nil
}

// recoverStale fails running rows whose heartbeat stopped long enough
// ago that their pod is presumed dead. Runs periodically on every pod;
// the conditional update in reap makes concurrent sweeps converge.
func (e *Engine) recoverStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-e.cfg.staleAfter())

	rows, err := e.client.Execution.Query().
		Where(
			execution.StateEQ(execution.StateRunning),
			execution.Or(
				execution.LastHeartbeatAtLT(cutoff),
				execution.And(
					execution.LastHeartbeatAtIsNil(),
					execution.StartedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale executions: %w", err)
	}
	return e.reap(ctx, rows, "orphaned: heartbeat lost"), nil
}

// reap moves each row to failed if still non-terminal, then fans out
// the terminal event for transitions it won.
func (e *Engine) reap(ctx context.Context, rows []*ent.Execution, reason string) int {
	recovered := 0
	for _, row := range rows {
		now := time.Now()
		update := e.client.Execution.Update().
			Where(
				execution.IDEQ(row.ID),
				execution.StateIn(execution.StatePending, execution.StateRunning),
			).
			SetState(execution.StateFailed).
			SetError(reason).
			SetCompletedAt(now)
		if row.StartedAt != nil {
			update.SetDurationMs(now.Sub(*row.StartedAt).Milliseconds())
		}

		n, err := update.Save(ctx)
		if err != nil {
			slog.Error("Failed to reap orphaned execution",
				"execution_id", row.ID, "error", err)
			continue
		}
		if n == 0 {
			continue
		}

		pod := ""
		if row.PodID != nil {
			pod = *row.PodID
		}
		slog.Warn("Recovered orphaned execution",
			"execution_id", row.ID, "agent_id", row.AgentID, "last_pod_id", pod, "reason", reason)

		if row.StartedAt != nil {
			if err := e.agents.RecordRun(ctx, row.AgentID, execution.StateFailed, now.Sub(*row.StartedAt)); err != nil {
				slog.Warn("Failed to record orphaned run on agent stats",
					"execution_id", row.ID, "agent_id", row.AgentID, "error", err)
			}
		}

		reloaded, err := e.client.Execution.Get(ctx, row.ID)
		if err != nil {
			slog.Warn("Failed to reload orphaned execution for terminal event",
				"execution_id", row.ID, "error", err)
			continue
		}
		e.publishTerminal(ctx, reloaded, events.TypeExecutionFailed)
		recovered++
	}
	return recovered
}
