package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	entagent "github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/google/uuid"
)

// Listing bounds shared by execution and log queries.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// SnapshotLogTail is how many trailing logs ride along with the
// snapshot pushed to new realtime subscribers.
const SnapshotLogTail = 50

// DetailLogTail is how many trailing logs the REST detail response
// carries.
const DetailLogTail = 10

// terminalStates are the states an execution never leaves.
var terminalStates = []execution.State{
	execution.StateCompleted,
	execution.StateFailed,
	execution.StateCancelled,
	execution.StateTimeout,
}

// ExecutionService owns execution and execution-log rows: creation of
// pending (queued) rows, reads with ownership scoping, the cancel
// transition, and retention sweeps. Claiming and terminal transitions
// of running executions belong to the engine.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// ExecutionSnapshotPayload is the store-backed catch-up document pushed
// to new subscribers and served by the detail endpoint.
type ExecutionSnapshotPayload struct {
	Execution *ent.Execution      `json:"execution"`
	Logs      []*ent.ExecutionLog `json:"logs"`
}

// CreatePendingParams carries a validated submission. The engine clamps
// Timeout and resolves Priority before calling.
type CreatePendingParams struct {
	AgentID        string
	SubmitterID    string
	Input          string
	Priority       models.Priority
	Trigger        execution.Trigger
	Environment    string
	ConfigOverride map[string]any
	Metadata       map[string]any
	Timeout        time.Duration
}

// CreatePending inserts a queued execution row. The partial unique
// index on (agent_id) over non-terminal states enforces single-flight;
// a violation surfaces as *AgentBusyError naming the blocking run.
func (s *ExecutionService) CreatePending(httpCtx context.Context, p CreatePendingParams) (*ent.Execution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := func() (*ent.Execution, error) {
		builder := s.client.Execution.Create().
			SetID(uuid.New().String()).
			SetAgentID(p.AgentID).
			SetSubmitterID(p.SubmitterID).
			SetInput(p.Input).
			SetPriority(int(p.Priority)).
			SetTrigger(p.Trigger).
			SetTimeoutMs(p.Timeout.Milliseconds())
		if p.Environment != "" {
			builder.SetEnvironment(p.Environment)
		}
		if p.ConfigOverride != nil {
			builder.SetConfigOverride(p.ConfigOverride)
		}
		if p.Metadata != nil {
			builder.SetMetadata(p.Metadata)
		}
		return builder.Save(ctx)
	}

	row, err := create()
	if err == nil {
		return row, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	// The insert collided with either the single-flight index or a
	// vanished FK target. A blocking row decides which.
	blocking, lookupErr := s.BlockingExecution(ctx, p.AgentID)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if blocking != nil {
		return nil, &AgentBusyError{ExecutionID: blocking.ID}
	}

	// The blocker finished between insert and lookup; one retry.
	row, err = create()
	if err == nil {
		return row, nil
	}
	if ent.IsConstraintError(err) {
		return nil, &AgentBusyError{}
	}
	return nil, fmt.Errorf("failed to create execution: %w", err)
}

// BlockingExecution returns the agent's non-terminal execution, or nil.
func (s *ExecutionService) BlockingExecution(ctx context.Context, agentID string) (*ent.Execution, error) {
	row, err := s.client.Execution.Query().
		Where(
			execution.AgentIDEQ(agentID),
			execution.StateIn(execution.StatePending, execution.StateRunning),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query blocking execution: %w", err)
	}
	return row, nil
}

// CountActiveForUser returns how many non-terminal executions the user
// has submitted. Feeds the per-user concurrency cap.
func (s *ExecutionService) CountActiveForUser(ctx context.Context, userID string) (int, error) {
	n, err := s.client.Execution.Query().
		Where(
			execution.SubmitterIDEQ(userID),
			execution.StateIn(execution.StatePending, execution.StateRunning),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active executions: %w", err)
	}
	return n, nil
}

// Get returns an execution the actor may see: its submitter, the
// owning agent's owner, or an admin. Anyone else gets ErrNotFound.
func (s *ExecutionService) Get(ctx context.Context, actor models.Actor, id string) (*ent.Execution, error) {
	row, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, row); err != nil {
		return nil, err
	}
	return row, nil
}

// GetByID returns an execution without ownership scoping. Internal
// callers only (engine, webhook payload assembly).
func (s *ExecutionService) GetByID(ctx context.Context, id string) (*ent.Execution, error) {
	row, err := s.client.Execution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return row, nil
}

// authorize hides rows the actor has no claim to.
func (s *ExecutionService) authorize(ctx context.Context, actor models.Actor, row *ent.Execution) error {
	if actor.IsAdmin() || row.SubmitterID == actor.ID {
		return nil
	}
	owns, err := s.client.Agent.Query().
		Where(entagent.IDEQ(row.AgentID), entagent.OwnerIDEQ(actor.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check agent ownership: %w", err)
	}
	if !owns {
		return ErrNotFound
	}
	return nil
}

// ExecutionFilters narrows an execution listing.
type ExecutionFilters struct {
	AgentID string
	State   string
	Limit   int
	Offset  int
}

// List returns the actor's executions, newest first, with the total
// matching count for pagination.
func (s *ExecutionService) List(ctx context.Context, actor models.Actor, f ExecutionFilters) ([]*ent.Execution, int, error) {
	q := s.client.Execution.Query()
	if !actor.IsAdmin() {
		q = q.Where(execution.SubmitterIDEQ(actor.ID))
	}
	if f.AgentID != "" {
		q = q.Where(execution.AgentIDEQ(f.AgentID))
	}
	if f.State != "" {
		state := execution.State(f.State)
		if err := execution.StateValidator(state); err != nil {
			return nil, 0, NewValidationError("state", fmt.Sprintf("unknown state %q", f.State))
		}
		q = q.Where(execution.StateEQ(state))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := q.
		Order(ent.Desc(execution.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}
	return rows, total, nil
}

// Logs returns an execution's log rows ordered by sequence, plus the
// total count matching the filter.
func (s *ExecutionService) Logs(ctx context.Context, actor models.Actor, id string, f models.LogFilters) ([]*ent.ExecutionLog, int, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, 0, err
	}

	q := s.client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(id))
	if f.Level != "" {
		level := executionlog.Level(f.Level)
		if err := executionlog.LevelValidator(level); err != nil {
			return nil, 0, NewValidationError("level", fmt.Sprintf("unknown level %q", f.Level))
		}
		q = q.Where(executionlog.LevelEQ(level))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count logs: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	logs, err := q.
		Order(ent.Asc(executionlog.FieldSequence)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, total, nil
}

// TailLogs returns the execution's most recent n logs, eldest first.
func (s *ExecutionService) TailLogs(ctx context.Context, id string, n int) ([]*ent.ExecutionLog, error) {
	logs, err := s.client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(id)).
		Order(ent.Desc(executionlog.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query log tail: %w", err)
	}
	// Reverse into ascending sequence order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// Detail returns the execution row plus its trailing logs.
func (s *ExecutionService) Detail(ctx context.Context, actor models.Actor, id string) (*ent.Execution, []*ent.ExecutionLog, error) {
	row, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	logs, err := s.TailLogs(ctx, id, DetailLogTail)
	if err != nil {
		return nil, nil, err
	}
	return row, logs, nil
}

// AppendLog persists one log line. Sequence is assigned by the caller
// (the engine's emitter) and is unique per execution. The execution row
// is share-locked for the insert so a concurrent terminal transition
// either lands after the log commits or makes this call return
// ErrExecutionFinished; no log row can commit after the row turned
// terminal.
func (s *ExecutionService) AppendLog(ctx context.Context, executionID string, sequence int, level, message string, meta map[string]any) (*ent.ExecutionLog, error) {
	lvl := executionlog.Level(level)
	if err := executionlog.LevelValidator(lvl); err != nil {
		lvl = executionlog.LevelInfo
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin log transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Execution.Query().
		Where(execution.IDEQ(executionID)).
		ForShare().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock execution for log append: %w", err)
	}
	for _, st := range terminalStates {
		if row.State == st {
			return nil, ErrExecutionFinished
		}
	}

	builder := tx.ExecutionLog.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetLevel(lvl).
		SetMessage(message).
		SetSequence(sequence)
	if meta != nil {
		builder.SetMetadata(meta)
	}

	logRow, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit log append: %w", err)
	}
	return logRow, nil
}

// Cancel transitions a non-terminal execution to cancelled. The bool
// result reports whether this call won the transition; on a lost race
// the current (already terminal) row comes back with false. The winner
// is responsible for event fan-out.
func (s *ExecutionService) Cancel(httpCtx context.Context, actor models.Actor, id string) (*ent.Execution, bool, error) {
	row, err := s.Get(httpCtx, actor, id)
	if err != nil {
		return nil, false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.Execution.Update().
		Where(
			execution.IDEQ(id),
			execution.StateIn(execution.StatePending, execution.StateRunning),
		).
		SetState(execution.StateCancelled).
		SetError("cancelled by user").
		SetCompletedAt(now)
	if row.StartedAt != nil {
		update.SetDurationMs(now.Sub(*row.StartedAt).Milliseconds())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to cancel execution: %w", err)
	}

	row, err = s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return row, n > 0, nil
}

// DeleteFinishedBefore removes terminal executions (and their logs)
// whose completion predates the cutoff. Runs in batches so a large
// backlog cannot hold one transaction open for minutes.
func (s *ExecutionService) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	const batch = 500
	deleted := 0

	for {
		ids, err := s.client.Execution.Query().
			Where(
				execution.StateIn(terminalStates...),
				execution.CompletedAtLT(cutoff),
			).
			Limit(batch).
			IDs(ctx)
		if err != nil {
			return deleted, fmt.Errorf("failed to query expired executions: %w", err)
		}
		if len(ids) == 0 {
			return deleted, nil
		}

		// Logs are deleted explicitly even though the FK cascades.
		if _, err := s.client.ExecutionLog.Delete().
			Where(executionlog.ExecutionIDIn(ids...)).
			Exec(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete expired logs: %w", err)
		}

		n, err := s.client.Execution.Delete().
			Where(execution.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return deleted, fmt.Errorf("failed to delete expired executions: %w", err)
		}
		deleted += n

		if n < batch {
			return deleted, nil
		}
	}
}

// AuthorizeRoom implements events.RoomGate. Admins may join any room;
// users may join their own user room, rooms of executions they can
// see, and rooms of agents they own.
func (s *ExecutionService) AuthorizeRoom(ctx context.Context, sub events.Subscriber, room string) error {
	kind, id, ok := events.SplitRoom(room)
	if !ok {
		return fmt.Errorf("unknown room %q", room)
	}

	actor := models.Actor{ID: sub.UserID, Role: sub.Role}
	if actor.IsAdmin() {
		return nil
	}

	switch kind {
	case events.RoomUser:
		if id != sub.UserID {
			return ErrForbidden
		}
		return nil
	case events.RoomExecution:
		_, err := s.Get(ctx, actor, id)
		return err
	case events.RoomAgent:
		owns, err := s.client.Agent.Query().
			Where(entagent.IDEQ(id), entagent.OwnerIDEQ(sub.UserID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check agent ownership: %w", err)
		}
		if !owns {
			return ErrNotFound
		}
		return nil
	}
	return fmt.Errorf("unknown room %q", room)
}

// ExecutionSnapshot implements events.RoomGate: the catch-up document
// for a fresh execution room subscriber.
func (s *ExecutionService) ExecutionSnapshot(ctx context.Context, executionID string) (any, error) {
	row, err := s.GetByID(ctx, executionID)
	if err != nil {
		return nil, err
	}
	logs, err := s.TailLogs(ctx, executionID, SnapshotLogTail)
	if err != nil {
		return nil, err
	}
	return &ExecutionSnapshotPayload{Execution: row, Logs: logs}, nil
}
