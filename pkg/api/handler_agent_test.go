package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/auth"
)

func TestCreateAgent(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	key := h.newAPIKey(t, owner, auth.CapAgentsManage)

	t.Run("creates and returns the agent", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/agents", key, CreateAgentRequest{
			Name:      "deploy-reviewer",
			Framework: "scripted",
			Tags:      []string{"ci"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		got := decodeJSON[AgentResponse](t, rec)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, "deploy-reviewer", got.Name)
		assert.Equal(t, "scripted", got.Framework)
		assert.Equal(t, []string{"ci"}, got.Tags)
		assert.True(t, got.Active)
	})

	t.Run("duplicate name answers 409", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/agents", key, CreateAgentRequest{
			Name:      "deploy-reviewer",
			Framework: "scripted",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing name answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/agents", key, CreateAgentRequest{
			Framework: "scripted",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown framework answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/agents", key, CreateAgentRequest{
			Name:      "other-agent",
			Framework: "imaginary",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("plugin-rejected configuration answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/agents", key, CreateAgentRequest{
			Name:          "misconfigured",
			Framework:     "scripted",
			Configuration: map[string]any{"invalid": true},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAgent(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	agent := h.newAgent(t, owner)
	token := h.newSession(t, owner)

	t.Run("owner reads the agent", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/agents/"+agent.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeJSON[AgentResponse](t, rec)
		assert.Equal(t, agent.ID, got.ID)
		assert.Equal(t, agent.Name, got.Name)
	})

	t.Run("another user's agent is invisible", func(t *testing.T) {
		stranger := h.newUser(t, "user")
		rec := h.do(t, http.MethodGet, "/api/agents/"+agent.ID, h.newSession(t, stranger), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateAgent(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	agent := h.newAgent(t, owner)
	token := h.newSession(t, owner)

	t.Run("renames and deactivates", func(t *testing.T) {
		name := "renamed-agent"
		active := false
		rec := h.do(t, http.MethodPut, "/api/agents/"+agent.ID, token, UpdateAgentRequest{
			Name:   &name,
			Active: &active,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decodeJSON[AgentResponse](t, rec)
		assert.Equal(t, "renamed-agent", got.Name)
		assert.False(t, got.Active)
	})

	t.Run("absent fields keep their values", func(t *testing.T) {
		rec := h.do(t, http.MethodPut, "/api/agents/"+agent.ID, token, UpdateAgentRequest{
			Tags: []string{"retagged"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeJSON[AgentResponse](t, rec)
		assert.Equal(t, "renamed-agent", got.Name)
		assert.Equal(t, []string{"retagged"}, got.Tags)
	})
}
