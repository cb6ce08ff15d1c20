package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	entagent "github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/google/uuid"
)

// maxAgentNameLen bounds agent names.
const maxAgentNameLen = 100

// AgentService manages agent definitions and their aggregate execution
// statistics. Configuration bags are validated against the owning
// framework plugin at create and update; the engine re-validates the
// merged bag at dispatch.
type AgentService struct {
	client   *ent.Client
	registry *framework.Registry
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, registry *framework.Registry) *AgentService {
	return &AgentService{client: client, registry: registry}
}

// CreateAgentRequest carries the fields for a new agent.
type CreateAgentRequest struct {
	Name          string
	Framework     string
	Configuration map[string]any
	Tags          []string
}

// UpdateAgentRequest carries the mutable agent fields. Nil pointers and
// nil maps leave the current value unchanged. Framework is immutable.
type UpdateAgentRequest struct {
	Name          *string
	Configuration map[string]any
	Tags          []string
	Active        *bool
}

// Create inserts a new agent after validating its configuration with
// the framework plugin. Names are unique per owner.
func (s *AgentService) Create(httpCtx context.Context, actor models.Actor, req CreateAgentRequest) (*ent.Agent, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(name) > maxAgentNameLen {
		return nil, NewValidationError("name", fmt.Sprintf("longer than %d characters", maxAgentNameLen))
	}
	if req.Framework == "" {
		return nil, NewValidationError("framework", "required")
	}

	cfg := framework.Config(req.Configuration)
	if cfg == nil {
		cfg = framework.Config{}
	}
	if err := s.validateConfiguration(req.Framework, cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agent, err := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetOwnerID(actor.ID).
		SetName(name).
		SetFramework(req.Framework).
		SetConfiguration(cfg).
		SetTags(req.Tags).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return agent, nil
}

// validateConfiguration runs the bag checks and the plugin's own
// validation, folding problems into a single ValidationError.
func (s *AgentService) validateConfiguration(frameworkTag string, cfg framework.Config) error {
	plugin, err := s.registry.Get(frameworkTag)
	if err != nil {
		return err // ErrUnsupportedFramework
	}
	if err := cfg.CheckBag(); err != nil {
		return NewValidationError("configuration", err.Error())
	}
	if problems := plugin.Validate(cfg); len(problems) > 0 {
		return NewValidationError("configuration", strings.Join(problems, "; "))
	}
	return nil
}

// Get returns an agent the actor may see. Non-owners get ErrNotFound.
func (s *AgentService) Get(ctx context.Context, actor models.Actor, id string) (*ent.Agent, error) {
	agent, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrNotFound
	}
	return agent, nil
}

// List returns the actor's agents, newest first. Admins see every
// agent.
func (s *AgentService) List(ctx context.Context, actor models.Actor) ([]*ent.Agent, error) {
	q := s.client.Agent.Query()
	if !actor.IsAdmin() {
		q = q.Where(entagent.OwnerIDEQ(actor.ID))
	}
	agents, err := q.Order(ent.Desc(entagent.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// Update applies the changed fields. A new configuration replaces the
// stored bag wholesale and is validated against the plugin first.
func (s *AgentService) Update(httpCtx context.Context, actor models.Actor, id string, req UpdateAgentRequest) (*ent.Agent, error) {
	agent, err := s.Get(httpCtx, actor, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Agent.UpdateOneID(agent.ID)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name", "required")
		}
		if len(name) > maxAgentNameLen {
			return nil, NewValidationError("name", fmt.Sprintf("longer than %d characters", maxAgentNameLen))
		}
		update.SetName(name)
	}
	if req.Configuration != nil {
		cfg := framework.Config(req.Configuration)
		if err := s.validateConfiguration(agent.Framework, cfg); err != nil {
			return nil, err
		}
		update.SetConfiguration(cfg)
	}
	if req.Tags != nil {
		update.SetTags(req.Tags)
	}
	if req.Active != nil {
		update.SetActive(*req.Active)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agent, err = update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return agent, nil
}

// Delete removes an agent and, by FK cascade, its executions.
// Rejected while the agent still has an execution in flight.
func (s *AgentService) Delete(httpCtx context.Context, actor models.Actor, id string) error {
	agent, err := s.Get(httpCtx, actor, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	active, err := s.client.Execution.Query().
		Where(
			execution.AgentIDEQ(agent.ID),
			execution.StateIn(execution.StatePending, execution.StateRunning),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for active executions: %w", err)
	}
	if active {
		return NewValidationError("agent", "has an execution in flight")
	}

	if err := s.client.Agent.DeleteOneID(agent.ID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// RecordRun folds one finished execution into the agent's statistics:
// total always, successful/failed by terminal state, and the rolling
// average duration over successful runs. Runs in a short transaction
// with the row locked so concurrent replicas cannot lose updates
// (single-flight makes that rare, but orphan recovery can overlap).
func (s *AgentService) RecordRun(httpCtx context.Context, agentID string, finalState execution.State, duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	agent, err := tx.Agent.Query().
		Where(entagent.IDEQ(agentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock agent: %w", err)
	}

	update := tx.Agent.UpdateOneID(agent.ID).
		AddTotalExecutions(1).
		SetLastExecutedAt(time.Now())

	switch finalState {
	case execution.StateCompleted:
		// Exact mean over successful runs.
		n := float64(agent.SuccessfulExecutions)
		avg := (agent.AvgDurationMs*n + float64(duration.Milliseconds())) / (n + 1)
		update.AddSuccessfulExecutions(1).SetAvgDurationMs(avg)
	case execution.StateFailed, execution.StateTimeout:
		update.AddFailedExecutions(1)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update agent statistics: %w", err)
	}
	return tx.Commit()
}
