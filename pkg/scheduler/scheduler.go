// Package scheduler runs deferred and recurring jobs off the durable
// scheduled_jobs table: future one-shot executions, cron-style
// recurring executions, and the retention sweeps.
//
// Every pod ticks; due rows are claimed with FOR UPDATE SKIP LOCKED and
// advanced (next occurrence computed, or deactivated for one-shots)
// inside the claim transaction, before the job body runs. A pod dying
// mid-job therefore costs at most that one firing; it never fires
// twice.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
	"github.com/agent-orchestra/orchestra/pkg/engine"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// System job keys and their cadence.
const (
	// KeyExecutionCleanup prunes finished executions past retention,
	// daily at 02:00.
	KeyExecutionCleanup  = "execution-cleanup"
	cronExecutionCleanup = "0 2 * * *"

	// KeyLogCleanup prunes audit logs and settled webhook deliveries,
	// weekly on Sunday at 03:00.
	KeyLogCleanup  = "log-cleanup"
	cronLogCleanup = "0 3 * * 0"
)

// fieldParser accepts standard 5-field cron expressions.
var fieldParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCron rejects expressions the scheduler cannot parse.
func ValidateCron(expr string) error {
	if _, err := fieldParser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// nextRun computes the occurrence after t.
func nextRun(expr string, t time.Time) (time.Time, error) {
	sched, err := fieldParser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return sched.Next(t), nil
}

// Submitter is the slice of the engine the scheduler drives.
type Submitter interface {
	Submit(ctx context.Context, in engine.SubmitInput) (*ent.Execution, error)
}

// Config tunes the scheduler. Zero values select the defaults.
type Config struct {
	// TickInterval spaces due-job scans. Default 30s.
	TickInterval time.Duration

	// ClaimBatch caps how many due jobs one tick fires. Default 20.
	ClaimBatch int

	// ExecutionRetention is how long finished executions (and their
	// logs) are kept. Default 30 days.
	ExecutionRetention time.Duration

	// LogRetention is how long audit logs and settled webhook
	// deliveries are kept. Default 7 days.
	LogRetention time.Duration
}

func (c Config) withDefaults() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = 30 * time.Second
	}
	if c.ClaimBatch <= 0 {
		c.ClaimBatch = 20
	}
	if c.ExecutionRetention <= 0 {
		c.ExecutionRetention = 30 * 24 * time.Hour
	}
	if c.LogRetention <= 0 {
		c.LogRetention = 7 * 24 * time.Hour
	}
	return c
}

// Scheduler owns the scheduled_jobs table: user-facing schedules for
// future and recurring executions, plus the built-in retention jobs.
type Scheduler struct {
	client    *ent.Client
	submitter Submitter
	execs     *services.ExecutionService
	webhooks  *services.WebhookService
	audit     *services.AuditService
	cfg       Config

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(client *ent.Client, submitter Submitter, execs *services.ExecutionService, webhooks *services.WebhookService, audit *services.AuditService, cfg Config) *Scheduler {
	return &Scheduler{
		client:    client,
		submitter: submitter,
		execs:     execs,
		webhooks:  webhooks,
		audit:     audit,
		cfg:       cfg.withDefaults(),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the tick loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
	slog.Info("Scheduler started", "tick_interval", s.cfg.TickInterval)
}

// Stop halts ticking and waits for an in-progress tick to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				slog.Error("Scheduler tick failed", "error", err)
			}
		}
	}
}

// executionJobPayload is the stored shape of a scheduled execution.
type executionJobPayload struct {
	AgentID        string         `json:"agent_id"`
	SubmitterID    string         `json:"submitter_id"`
	SubmitterRole  string         `json:"submitter_role"`
	Input          string         `json:"input"`
	Priority       int            `json:"priority,omitempty"`
	Environment    string         `json:"environment,omitempty"`
	ConfigOverride map[string]any `json:"config_override,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	TimeoutMs      int64          `json:"timeout_ms,omitempty"`
}

func (p executionJobPayload) toMap() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode job payload: %w", err)
	}
	return m, nil
}

func payloadFromMap(m map[string]any) (executionJobPayload, error) {
	var p executionJobPayload
	raw, err := json.Marshal(m)
	if err != nil {
		return p, fmt.Errorf("failed to decode job payload: %w", err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("failed to decode job payload: %w", err)
	}
	return p, nil
}

// ExecutionSchedule describes a submission to run later (once) or on a
// cron cadence.
type ExecutionSchedule struct {
	AgentID        string
	Actor          models.Actor
	Input          string
	Priority       models.Priority
	Environment    string
	ConfigOverride map[string]any
	Metadata       map[string]any
	Timeout        time.Duration
}

func (es ExecutionSchedule) payload() (map[string]any, error) {
	return executionJobPayload{
		AgentID:        es.AgentID,
		SubmitterID:    es.Actor.ID,
		SubmitterRole:  es.Actor.Role,
		Input:          es.Input,
		Priority:       int(es.Priority),
		Environment:    es.Environment,
		ConfigOverride: es.ConfigOverride,
		Metadata:       es.Metadata,
		TimeoutMs:      es.Timeout.Milliseconds(),
	}.toMap()
}

// DeferredKey names a one-shot schedule for an agent at a given due
// time. Distinct due times coexist; re-scheduling the same instant
// replaces.
func DeferredKey(agentID string, runAt time.Time) string {
	return fmt.Sprintf("scheduled-%s-%d", agentID, runAt.UnixMilli())
}

// RecurringKey names the single recurring schedule an agent may have.
func RecurringKey(agentID string) string {
	return fmt.Sprintf("recurring-%s", agentID)
}

// ScheduleAt registers a one-shot execution at runAt. runAt must be in
// the future.
func (s *Scheduler) ScheduleAt(ctx context.Context, es ExecutionSchedule, runAt time.Time) (*ent.ScheduledJob, error) {
	if !runAt.After(time.Now()) {
		return nil, services.NewValidationError("run_at", "must be in the future")
	}
	payload, err := es.payload()
	if err != nil {
		return nil, err
	}
	return s.upsert(ctx, DeferredKey(es.AgentID, runAt), scheduledjob.QueueExecution,
		scheduledjob.KindDeferred, "", runAt, payload)
}

// ScheduleRecurring registers (or replaces) the agent's recurring
// execution on a 5-field cron cadence.
func (s *Scheduler) ScheduleRecurring(ctx context.Context, es ExecutionSchedule, cronExpr string) (*ent.ScheduledJob, error) {
	next, err := nextRun(cronExpr, time.Now())
	if err != nil {
		return nil, services.NewValidationError("cron", err.Error())
	}
	payload, err := es.payload()
	if err != nil {
		return nil, err
	}
	return s.upsert(ctx, RecurringKey(es.AgentID), scheduledjob.QueueExecution,
		scheduledjob.KindRecurring, cronExpr, next, payload)
}

// CancelSchedule deactivates a schedule by key. Idempotent: an unknown
// or already-inactive key is a no-op. The row stays behind so a
// re-schedule of the same key reactivates it through upsert.
func (s *Scheduler) CancelSchedule(ctx context.Context, key string) error {
	n, err := s.client.ScheduledJob.Update().
		Where(scheduledjob.KeyEQ(key), scheduledjob.ActiveEQ(true)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel schedule: %w", err)
	}
	if n > 0 {
		slog.Info("Schedule cancelled", "key", key)
	}
	return nil
}

// ListSchedules returns active schedules whose payload belongs to the
// actor; admins see everything. Deactivated schedules are not listed.
func (s *Scheduler) ListSchedules(ctx context.Context, actor models.Actor) ([]*ent.ScheduledJob, error) {
	rows, err := s.client.ScheduledJob.Query().
		Where(
			scheduledjob.QueueEQ(scheduledjob.QueueExecution),
			scheduledjob.ActiveEQ(true),
		).
		Order(ent.Asc(scheduledjob.FieldRunAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if actor.IsAdmin() {
		return rows, nil
	}
	mine := rows[:0]
	for _, row := range rows {
		if sub, _ := row.Payload["submitter_id"].(string); sub == actor.ID {
			mine = append(mine, row)
		}
	}
	return mine, nil
}

// EnsureSystemJobs registers the built-in retention jobs, refreshing
// their cadence if it changed. Called once at boot.
func (s *Scheduler) EnsureSystemJobs(ctx context.Context) error {
	for _, job := range []struct {
		key  string
		expr string
	}{
		{KeyExecutionCleanup, cronExecutionCleanup},
		{KeyLogCleanup, cronLogCleanup},
	} {
		next, err := nextRun(job.expr, time.Now())
		if err != nil {
			return err
		}
		if _, err := s.upsert(ctx, job.key, scheduledjob.QueueCleanup,
			scheduledjob.KindRecurring, job.expr, next, nil); err != nil {
			return err
		}
	}
	return nil
}

// upsert replaces the schedule stored under key. The unique key column
// arbitrates racing creators; the loser falls back to an update.
func (s *Scheduler) upsert(ctx context.Context, key string, queue scheduledjob.Queue, kind scheduledjob.Kind, cronExpr string, runAt time.Time, payload map[string]any) (*ent.ScheduledJob, error) {
	update := func() (*ent.ScheduledJob, error) {
		existing, err := s.client.ScheduledJob.Query().
			Where(scheduledjob.KeyEQ(key)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		builder := s.client.ScheduledJob.UpdateOne(existing).
			SetQueue(queue).
			SetKind(kind).
			SetCronExpr(cronExpr).
			SetRunAt(runAt).
			SetActive(true).
			ClearLastError()
		if payload != nil {
			builder.SetPayload(payload)
		}
		return builder.Save(ctx)
	}

	if row, err := update(); err == nil {
		return row, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to update schedule %q: %w", key, err)
	}

	builder := s.client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetKey(key).
		SetQueue(queue).
		SetKind(kind).
		SetCronExpr(cronExpr).
		SetRunAt(runAt)
	if payload != nil {
		builder.SetPayload(payload)
	}
	row, err := builder.Save(ctx)
	if err == nil {
		slog.Info("Schedule registered", "key", key, "queue", queue, "kind", kind, "run_at", runAt)
		return row, nil
	}
	if ent.IsConstraintError(err) {
		// Lost the create race; the row exists now.
		if row, uerr := update(); uerr == nil {
			return row, nil
		}
	}
	return nil, fmt.Errorf("failed to register schedule %q: %w", key, err)
}

// Tick claims and fires every due job, up to the batch limit. Exported
// for tests that step the clock themselves.
func (s *Scheduler) Tick(ctx context.Context) error {
	jobs, err := s.claimDue(ctx)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		s.fire(ctx, job)
	}
	return nil
}

// claimDue locks due rows and advances them before anything runs:
// recurring jobs get their next occurrence, one-shots deactivate.
func (s *Scheduler) claimDue(ctx context.Context) ([]*ent.ScheduledJob, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin scheduler transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	due, err := tx.ScheduledJob.Query().
		Where(
			scheduledjob.ActiveEQ(true),
			scheduledjob.RunAtLTE(now),
		).
		Order(ent.Asc(scheduledjob.FieldRunAt)).
		Limit(s.cfg.ClaimBatch).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due jobs: %w", err)
	}

	claimed := make([]*ent.ScheduledJob, 0, len(due))
	for _, job := range due {
		builder := tx.ScheduledJob.UpdateOne(job).SetLastRunAt(now)
		if job.Kind == scheduledjob.KindRecurring {
			next, nerr := nextRun(job.CronExpr, now)
			if nerr != nil {
				// Unparseable cadence; park the job instead of
				// re-firing it every tick.
				builder.SetActive(false).SetLastError(nerr.Error())
			} else {
				builder.SetRunAt(next)
			}
		} else {
			builder.SetActive(false)
		}
		updated, uerr := builder.Save(ctx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to advance job %q: %w", job.Key, uerr)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scheduler claim: %w", err)
	}
	return claimed, nil
}

// fire runs one claimed job. Failures are recorded on the row and never
// propagate; the schedule itself already advanced.
func (s *Scheduler) fire(ctx context.Context, job *ent.ScheduledJob) {
	log := slog.With("job_key", job.Key, "queue", job.Queue, "kind", job.Kind)
	var err error
	switch job.Queue {
	case scheduledjob.QueueExecution:
		err = s.fireExecution(ctx, job)
	case scheduledjob.QueueCleanup:
		err = s.fireCleanup(ctx, job)
	default:
		log.Warn("No handler for job queue")
		return
	}
	if err != nil {
		log.Warn("Scheduled job failed", "error", err)
		if uerr := s.client.ScheduledJob.UpdateOneID(job.ID).
			SetLastError(err.Error()).
			Exec(ctx); uerr != nil {
			log.Error("Failed to record job error", "error", uerr)
		}
		return
	}
	log.Info("Scheduled job fired")
}

func (s *Scheduler) fireExecution(ctx context.Context, job *ent.ScheduledJob) error {
	p, err := payloadFromMap(job.Payload)
	if err != nil {
		return err
	}

	trigger := execution.TriggerScheduled
	if job.Kind == scheduledjob.KindRecurring {
		trigger = execution.TriggerRecurring
	}

	_, err = s.submitter.Submit(ctx, engine.SubmitInput{
		AgentID:        p.AgentID,
		Actor:          models.Actor{ID: p.SubmitterID, Role: p.SubmitterRole},
		Input:          p.Input,
		Priority:       models.Priority(p.Priority),
		Trigger:        trigger,
		Environment:    p.Environment,
		ConfigOverride: p.ConfigOverride,
		Metadata:       p.Metadata,
		Timeout:        time.Duration(p.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		if busy, ok := services.AsAgentBusy(err); ok {
			return fmt.Errorf("agent busy with execution %s", busy.ExecutionID)
		}
		return err
	}
	return nil
}

func (s *Scheduler) fireCleanup(ctx context.Context, job *ent.ScheduledJob) error {
	now := time.Now()
	switch job.Key {
	case KeyExecutionCleanup:
		n, err := s.execs.DeleteFinishedBefore(ctx, now.Add(-s.cfg.ExecutionRetention))
		if err != nil {
			return err
		}
		slog.Info("Execution retention sweep finished",
			"deleted", n, "retention", s.cfg.ExecutionRetention)
		return nil
	case KeyLogCleanup:
		cutoff := now.Add(-s.cfg.LogRetention)
		audits, err := s.audit.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		deliveries, err := s.webhooks.DeleteDeliveriesBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		slog.Info("Log retention sweep finished",
			"audit_rows", audits, "deliveries", deliveries, "retention", s.cfg.LogRetention)
		return nil
	default:
		return fmt.Errorf("unknown cleanup job %q", job.Key)
	}
}
