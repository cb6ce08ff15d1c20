package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

// stubPlugin answers for the "scripted" framework in service tests.
// A configuration bag with invalid=true fails validation.
type stubPlugin struct{}

func (p *stubPlugin) Name() string { return "scripted" }

func (p *stubPlugin) Validate(cfg framework.Config) []string {
	if bad, _ := cfg["invalid"].(bool); bad {
		return []string{"invalid flag set"}
	}
	return nil
}

func (p *stubPlugin) Schema() *framework.Schema { return &framework.Schema{} }

func (p *stubPlugin) Execute(context.Context, *framework.RunContext) (*framework.Result, error) {
	return &framework.Result{}, nil
}

// svcHarness wires every service against one scratch schema.
type svcHarness struct {
	client *ent.Client
	box    *auth.SecretBox
	users  *UserService
	keys   *APIKeyService
	agents *AgentService
	execs  *ExecutionService
	hooks  *WebhookService
	audit  *AuditService
}

func newServicesHarness(t *testing.T) *svcHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	box, err := auth.NewSecretBox(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	registry := framework.NewRegistry()
	require.NoError(t, registry.Register(&stubPlugin{}))

	return &svcHarness{
		client: db.Client,
		box:    box,
		users:  NewUserService(db.Client),
		keys:   NewAPIKeyService(db.Client, "test-pepper"),
		agents: NewAgentService(db.Client, registry),
		execs:  NewExecutionService(db.Client),
		hooks:  NewWebhookService(db.Client, box, webhook.URLPolicy{AllowLoopback: true}),
		audit:  NewAuditService(db.Client),
	}
}

func (h *svcHarness) newUser(t *testing.T, role entuser.Role) *ent.User {
	t.Helper()
	u, err := h.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (h *svcHarness) newAgent(t *testing.T, owner *ent.User) *ent.Agent {
	t.Helper()
	agent, err := h.agents.Create(context.Background(), actorOf(owner), CreateAgentRequest{
		Name:      "agent-" + uuid.New().String()[:8],
		Framework: "scripted",
	})
	require.NoError(t, err)
	return agent
}

func actorOf(u *ent.User) models.Actor {
	return models.Actor{ID: u.ID, Role: string(u.Role)}
}

func adminActor() models.Actor {
	return models.Actor{ID: "admin-" + uuid.New().String()[:8], Role: models.RoleAdmin}
}
