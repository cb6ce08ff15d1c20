package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/execution"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/cache"
	"github.com/agent-orchestra/orchestra/pkg/config"
	"github.com/agent-orchestra/orchestra/pkg/database"
	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
	testdb "github.com/agent-orchestra/orchestra/test/database"
	"github.com/agent-orchestra/orchestra/test/util"
)

// scriptedPlugin answers for the "scripted" framework in handler tests.
type scriptedPlugin struct{}

func (p *scriptedPlugin) Name() string { return "scripted" }

func (p *scriptedPlugin) Validate(cfg framework.Config) []string {
	if bad, _ := cfg["invalid"].(bool); bad {
		return []string{"invalid flag set"}
	}
	return nil
}

func (p *scriptedPlugin) Schema() *framework.Schema { return &framework.Schema{} }

func (p *scriptedPlugin) Execute(context.Context, *framework.RunContext) (*framework.Result, error) {
	return &framework.Result{}, nil
}

// apiHarness wires a Server against a scratch schema and an in-process
// cache. The engine is left nil: handler paths that reach it are
// covered end to end in test/e2e.
type apiHarness struct {
	s     *Server
	db    *database.Client
	cache *cache.Client
	mr    *miniredis.Miniredis

	users  *services.UserService
	keys   *services.APIKeyService
	agents *services.AgentService
	execs  *services.ExecutionService
	hooks  *services.WebhookService
	jwt    *auth.JWTManager
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	cacheClient, mr := util.SetupTestCache(t)

	box, err := auth.NewSecretBox(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)
	registry := framework.NewRegistry()
	require.NoError(t, registry.Register(&scriptedPlugin{}))

	h := &apiHarness{
		db:     db,
		cache:  cacheClient,
		mr:     mr,
		users:  services.NewUserService(db.Client),
		keys:   services.NewAPIKeyService(db.Client, "test-pepper"),
		agents: services.NewAgentService(db.Client, registry),
		execs:  services.NewExecutionService(db.Client),
		hooks:  services.NewWebhookService(db.Client, box, webhook.URLPolicy{AllowLoopback: true}),
		jwt:    auth.NewJWTManager("test-secret"),
	}

	cfg := &config.Config{
		Environment:          "test",
		AllowedOrigins:       []string{"*"},
		RateLimitWindow:      time.Minute,
		RateLimitMaxRequests: 1000,
		AuthRateLimitMax:     100,
	}

	h.s = NewServer(cfg, Deps{
		DB:         db,
		Users:      h.users,
		Keys:       h.keys,
		Agents:     h.agents,
		Executions: h.execs,
		Webhooks:   h.hooks,
		Cache:      cacheClient,
		JWT:        h.jwt,
	})
	t.Cleanup(func() { _ = h.s.Shutdown(context.Background()) })
	return h
}

func (h *apiHarness) newUser(t *testing.T, role entuser.Role) *ent.User {
	t.Helper()
	u, err := h.db.Client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// newAPIKey mints a key for owner and returns its plaintext.
func (h *apiHarness) newAPIKey(t *testing.T, owner *ent.User, perms ...string) string {
	t.Helper()
	if len(perms) == 0 {
		perms = []string{auth.CapAdminAll}
	}
	_, plaintext, err := h.keys.Create(context.Background(), actorFor(owner), services.CreateAPIKeyRequest{
		Name:        "key-" + uuid.New().String()[:8],
		Permissions: perms,
	})
	require.NoError(t, err)
	return plaintext
}

func (h *apiHarness) newSession(t *testing.T, u *ent.User) string {
	t.Helper()
	token, err := h.jwt.Mint(u.ID, string(u.Role), time.Hour)
	require.NoError(t, err)
	return token
}

// do drives one request through the full routing and middleware chain.
func (h *apiHarness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func (h *apiHarness) newAgent(t *testing.T, owner *ent.User) *ent.Agent {
	t.Helper()
	agent, err := h.agents.Create(context.Background(), actorFor(owner), services.CreateAgentRequest{
		Name:      "agent-" + uuid.New().String()[:8],
		Framework: "scripted",
	})
	require.NoError(t, err)
	return agent
}

func (h *apiHarness) newExecution(t *testing.T, owner *ent.User, agent *ent.Agent) *ent.Execution {
	t.Helper()
	row, err := h.execs.CreatePending(context.Background(), services.CreatePendingParams{
		AgentID:     agent.ID,
		SubmitterID: owner.ID,
		Input:       "review the deployment diff",
		Priority:    models.PriorityNormal,
		Trigger:     execution.TriggerManual,
		Timeout:     time.Minute,
	})
	require.NoError(t, err)
	return row
}

func actorFor(u *ent.User) models.Actor {
	return models.Actor{ID: u.ID, Role: string(u.Role)}
}
