package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// TestRateLimitWindow tightens the per-user request budget to five and
// verifies the sixth request inside the window is rejected with the
// window expiry in the body. Agents are seeded through the service
// layer so setup does not eat into the budget under test.
func TestRateLimitWindow(t *testing.T) {
	cfg := DefaultTestConfig()
	cfg.RateLimitMaxRequests = 5

	app := NewTestApp(t, WithConfig(cfg))
	acct := app.NewAccount(t, models.RoleUser)
	actor := models.Actor{ID: acct.User.ID, Role: string(acct.User.Role)}

	ctx := context.Background()
	var agentIDs []string
	for i := 0; i < 6; i++ {
		agent, err := app.Agents.Create(ctx, actor, services.CreateAgentRequest{
			Name:      fmt.Sprintf("limited-%d", i),
			Framework: "echo",
		})
		require.NoError(t, err)
		agentIDs = append(agentIDs, agent.ID)
	}

	for i := 0; i < 5; i++ {
		resp := app.do(t, acct.Key, http.MethodPost, "/api/executions",
			map[string]any{"agentId": agentIDs[i], "input": "counted"})
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode, "request %d, body: %s", i+1, body)
		assert.Equal(t, "5", resp.Header.Get("X-RateLimit-Limit"))
		assert.Equal(t, fmt.Sprintf("%d", 4-i), resp.Header.Get("X-RateLimit-Remaining"))
	}

	resp := app.do(t, acct.Key, http.MethodPost, "/api/executions",
		map[string]any{"agentId": agentIDs[5], "input": "over budget"})
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "body: %s", body)
	assert.Contains(t, string(body), "RATE_LIMITED")
	assert.Contains(t, string(body), "resetAt", "the body must carry the window expiry")
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))

	// The budget is per user: another account is unaffected.
	other := app.NewAccount(t, models.RoleUser)
	otherActor := models.Actor{ID: other.User.ID, Role: string(other.User.Role)}
	otherAgent, err := app.Agents.Create(ctx, otherActor, services.CreateAgentRequest{
		Name:      "unlimited",
		Framework: "echo",
	})
	require.NoError(t, err)

	otherResp := app.do(t, other.Key, http.MethodPost, "/api/executions",
		map[string]any{"agentId": otherAgent.ID, "input": "fresh budget"})
	otherBody, err := io.ReadAll(otherResp.Body)
	require.NoError(t, err)
	_ = otherResp.Body.Close()
	assert.Equal(t, http.StatusCreated, otherResp.StatusCode, "body: %s", otherBody)
}
