package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
)

func TestCreateWebhook(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	token := h.newSession(t, owner)

	t.Run("creates and returns the secret once", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
			URL:    "http://127.0.0.1:9999/hooks",
			Events: []string{events.TypeExecutionCompleted, events.TypeExecutionFailed},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		got := decodeJSON[WebhookResponse](t, rec)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.True(t, got.Active)
		assert.True(t, strings.HasPrefix(got.Secret, webhook.SecretPrefix),
			"generated secret should carry the %s prefix", webhook.SecretPrefix)

		// The plaintext never comes back after creation.
		stats := h.do(t, http.MethodGet, "/api/webhooks/"+got.ID+"/stats", token, nil)
		require.Equal(t, http.StatusOK, stats.Code)
		assert.NotContains(t, stats.Body.String(), got.Secret)
	})

	t.Run("missing events answer 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
			URL: "http://127.0.0.1:9999/hooks",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event type answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
			URL:    "http://127.0.0.1:9999/hooks",
			Events: []string{"execution.reticulated"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparseable url answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
			URL:    "ftp://files.example.com/drop",
			Events: []string{events.TypeExecutionCompleted},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateWebhook(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	token := h.newSession(t, owner)

	create := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
		URL:    "http://127.0.0.1:9999/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.Equal(t, http.StatusCreated, create.Code)
	hook := decodeJSON[WebhookResponse](t, create)

	t.Run("replaces url and subscriptions", func(t *testing.T) {
		url := "http://127.0.0.1:9999/hooks/v2"
		rec := h.do(t, http.MethodPut, "/api/webhooks/"+hook.ID, token, UpdateWebhookRequest{
			URL:    &url,
			Events: []string{events.TypeExecutionFailed},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decodeJSON[WebhookResponse](t, rec)
		assert.Equal(t, url, got.URL)
		assert.Equal(t, []string{events.TypeExecutionFailed}, got.Events)
		assert.Empty(t, got.Secret)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		active := true
		rec := h.do(t, http.MethodPut, "/api/webhooks/"+uuid.New().String(), token, UpdateWebhookRequest{
			Active: &active,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("another user's webhook is invisible", func(t *testing.T) {
		stranger := h.newUser(t, "user")
		active := false
		rec := h.do(t, http.MethodPut, "/api/webhooks/"+hook.ID, h.newSession(t, stranger), UpdateWebhookRequest{
			Active: &active,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteWebhook(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	token := h.newSession(t, owner)

	create := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
		URL:    "http://127.0.0.1:9999/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.Equal(t, http.StatusCreated, create.Code)
	hook := decodeJSON[WebhookResponse](t, create)

	rec := h.do(t, http.MethodDelete, "/api/webhooks/"+hook.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/webhooks/"+hook.ID+"/stats", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookStats(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	token := h.newSession(t, owner)

	create := h.do(t, http.MethodPost, "/api/webhooks", token, CreateWebhookRequest{
		URL:    "http://127.0.0.1:9999/hooks",
		Events: []string{events.TypeExecutionCompleted},
	})
	require.Equal(t, http.StatusCreated, create.Code)
	hook := decodeJSON[WebhookResponse](t, create)

	rec := h.do(t, http.MethodGet, "/api/webhooks/"+hook.ID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decodeJSON[WebhookStatsResponse](t, rec)
	assert.Zero(t, got.Pending)
	assert.Zero(t, got.Delivered)
	assert.Zero(t, got.Failed)
	assert.True(t, got.Active)
	assert.Empty(t, got.Recent)
}
