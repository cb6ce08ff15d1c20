package e2e

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// requireStatus reads a response fully and asserts its status, keeping
// the body in the failure message.
func requireStatus(t *testing.T, resp *http.Response, want int) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, want, resp.StatusCode, "body: %s", body)
	return string(body)
}

// TestAuthGate rejects missing and bogus credentials on the API group
// while leaving the health endpoint open.
func TestAuthGate(t *testing.T) {
	app := NewTestApp(t)

	body := requireStatus(t,
		app.do(t, "", http.MethodGet, "/api/executions/whatever", nil),
		http.StatusUnauthorized)
	assert.Contains(t, body, "UNAUTHORIZED")

	body = requireStatus(t,
		app.do(t, "aok_definitely-not-a-key", http.MethodGet, "/api/executions/whatever", nil),
		http.StatusUnauthorized)
	assert.Contains(t, body, "UNAUTHORIZED")

	body = requireStatus(t,
		app.do(t, "not-even-prefixed", http.MethodGet, "/api/executions/whatever", nil),
		http.StatusUnauthorized)
	assert.Contains(t, body, "UNAUTHORIZED")

	health := app.GetHealth(t)
	assert.Equal(t, "pass", health["status"])
	checks, ok := health["checks"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, checks, "database")
	assert.Contains(t, checks, "cache")
	assert.Contains(t, checks, "queue")
}

// TestAPIKeyCapabilities scopes a key to read-only execution access and
// verifies writes and other resources are refused.
func TestAPIKeyCapabilities(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-guarded", "echo", nil)
	execID := app.SubmitExecution(t, acct, agentID, "visible")

	actor := models.Actor{ID: acct.User.ID, Role: string(acct.User.Role)}
	_, readOnly, err := app.Keys.Create(context.Background(), actor, services.CreateAPIKeyRequest{
		Name:        "read-only",
		Permissions: []string{auth.CapExecutionsRead},
	})
	require.NoError(t, err)

	// Reads pass.
	requireStatus(t,
		app.do(t, readOnly, http.MethodGet, "/api/executions/"+execID, nil),
		http.StatusOK)

	// Writes are refused with the missing capability named.
	body := requireStatus(t,
		app.do(t, readOnly, http.MethodPost, "/api/executions",
			map[string]any{"agentId": agentID, "input": "nope"}),
		http.StatusForbidden)
	assert.Contains(t, body, "FORBIDDEN")
	assert.Contains(t, body, auth.CapExecutionsWrite)

	requireStatus(t,
		app.do(t, readOnly, http.MethodPost, "/api/agents",
			map[string]any{"name": "nope", "framework": "echo"}),
		http.StatusForbidden)

	requireStatus(t,
		app.do(t, readOnly, http.MethodDelete, "/api/executions/"+execID, nil),
		http.StatusForbidden)
}

// TestJWTSession authenticates with a minted session token instead of
// an API key. Tokens are not capability-scoped, so writes pass.
func TestJWTSession(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-session", "echo", nil)

	// Minted with the harness signing secret, as a session service
	// in front of this API would.
	jwtManager := auth.NewJWTManager(testJWTSecret)
	token, err := jwtManager.Mint(acct.User.ID, string(acct.User.Role), time.Minute)
	require.NoError(t, err)

	resp := app.postJSON(t, token, "/api/executions",
		map[string]any{"agentId": agentID, "input": "via session"}, http.StatusCreated)
	assert.NotEmpty(t, resp["executionId"])

	// An expired token is rejected.
	stale, err := jwtManager.Mint(acct.User.ID, string(acct.User.Role), -time.Minute)
	require.NoError(t, err)
	body := requireStatus(t,
		app.do(t, stale, http.MethodGet, "/api/executions/whatever", nil),
		http.StatusUnauthorized)
	assert.Contains(t, body, "UNAUTHORIZED")

	// A token signed with a different secret is rejected.
	forged, err := auth.NewJWTManager("some-other-secret-entirely-here!").
		Mint(acct.User.ID, string(acct.User.Role), time.Minute)
	require.NoError(t, err)
	requireStatus(t,
		app.do(t, forged, http.MethodGet, "/api/executions/whatever", nil),
		http.StatusUnauthorized)
}

// TestTenantIsolation keeps one user's executions invisible to another,
// including through the not-found shape of the response.
func TestTenantIsolation(t *testing.T) {
	app := NewTestApp(t)
	owner := app.NewAccount(t, models.RoleUser)
	stranger := app.NewAccount(t, models.RoleUser)
	admin := app.NewAccount(t, models.RoleAdmin)

	agentID := app.CreateAgent(t, owner, "echo-mine", "echo", nil)
	execID := app.SubmitExecution(t, owner, agentID, "private")

	// The stranger sees a plain 404, indistinguishable from a bad id.
	body := requireStatus(t,
		app.do(t, stranger.Key, http.MethodGet, "/api/executions/"+execID, nil),
		http.StatusNotFound)
	assert.Contains(t, body, "NOT_FOUND")
	requireStatus(t,
		app.do(t, stranger.Key, http.MethodDelete, "/api/executions/"+execID, nil),
		http.StatusNotFound)
	requireStatus(t,
		app.do(t, stranger.Key, http.MethodGet, "/api/agents/"+agentID, nil),
		http.StatusNotFound)

	// Admins cross tenant boundaries.
	requireStatus(t,
		app.do(t, admin.Key, http.MethodGet, "/api/executions/"+execID, nil),
		http.StatusOK)
}
