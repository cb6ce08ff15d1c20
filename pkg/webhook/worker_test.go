package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/auditlog"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/events"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

type deliveryHarness struct {
	client *ent.Client
	box    *auth.SecretBox
	bus    *events.Bus
	pool   *DeliveryPool
}

func newDeliveryHarness(t *testing.T, cfg Config) *deliveryHarness {
	t.Helper()

	db := testdb.NewTestClient(t)
	box, err := auth.NewSecretBox(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)
	bus := events.NewBus(64)
	pool := NewDeliveryPool(db.Client, box, events.NewPublisher(bus, nil), cfg)

	return &deliveryHarness{client: db.Client, box: box, bus: bus, pool: pool}
}

func fastDeliveryConfig() Config {
	return Config{
		Workers:        2,
		PollInterval:   20 * time.Millisecond,
		RequestTimeout: 5 * time.Second,
		BaseDelay:      50 * time.Millisecond,
	}
}

func (h *deliveryHarness) createOwner(t *testing.T) *ent.User {
	t.Helper()
	u, err := h.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String()[:8] + "@example.com").
		SetRole(entuser.RoleUser).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (h *deliveryHarness) createWebhook(t *testing.T, owner *ent.User, url, secret string, subscribed []string) *ent.Webhook {
	t.Helper()
	sealed, err := h.box.Seal(secret)
	require.NoError(t, err)
	hook, err := h.client.Webhook.Create().
		SetID(uuid.New().String()).
		SetOwnerID(owner.ID).
		SetURL(url).
		SetSubscribedEvents(subscribed).
		SetSecretEncrypted(sealed).
		Save(context.Background())
	require.NoError(t, err)
	return hook
}

func (h *deliveryHarness) createDelivery(t *testing.T, hook *ent.Webhook, eventID string) *ent.WebhookDelivery {
	t.Helper()
	row, err := h.client.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetWebhookID(hook.ID).
		SetEventID(eventID).
		SetEventType(events.TypeExecutionFailed).
		SetPayload(map[string]any{"id": eventID, "type": events.TypeExecutionFailed}).
		SetScheduledAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

// step drives DeliverNext until the predicate holds, waiting out
// backoff windows as they come due.
func (h *deliveryHarness) step(t *testing.T, pred func() bool, within time.Duration) {
	t.Helper()
	ctx := context.Background()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if pred() {
			return
		}
		if err := h.pool.DeliverNext(ctx); err != nil {
			require.ErrorIs(t, err, ErrNoDeliveriesDue)
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatal("condition never reached while stepping deliveries")
}

func (h *deliveryHarness) chainRows(t *testing.T, eventID string) []*ent.WebhookDelivery {
	t.Helper()
	rows, err := h.client.WebhookDelivery.Query().
		Where(webhookdelivery.EventIDEQ(eventID)).
		Order(ent.Asc(webhookdelivery.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func (h *deliveryHarness) deliveredCount(t *testing.T, eventID string) int {
	t.Helper()
	n, err := h.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.EventIDEQ(eventID),
			webhookdelivery.StateEQ(webhookdelivery.StateDelivered),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestDeliverySignedRequest(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())
	secret := "whsec_test_secret_0123456789"

	type captured struct {
		event     string
		delivery  string
		timestamp string
		signature string
		userAgent string
		body      []byte
	}
	var mu sync.Mutex
	var got captured

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = captured{
			event:     r.Header.Get("X-Webhook-Event"),
			delivery:  r.Header.Get("X-Webhook-Delivery"),
			timestamp: r.Header.Get("X-Webhook-Timestamp"),
			signature: r.Header.Get("X-Webhook-Signature"),
			userAgent: r.Header.Get("User-Agent"),
			body:      body,
		}
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, secret, []string{events.TypeExecutionFailed})
	row := h.createDelivery(t, hook, uuid.New().String())

	require.NoError(t, h.pool.DeliverNext(context.Background()))

	final, err := h.client.WebhookDelivery.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StateDelivered, final.State)
	assert.Equal(t, 1, final.AttemptCount)
	require.NotNil(t, final.DeliveredAt)
	require.NotNil(t, final.LastStatusCode)
	assert.Equal(t, http.StatusOK, *final.LastStatusCode)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, events.TypeExecutionFailed, got.event)
	assert.Equal(t, row.ID, got.delivery)
	assert.Equal(t, userAgent, got.userAgent)

	unix, err := strconv.ParseInt(got.timestamp, 10, 64)
	require.NoError(t, err)
	assert.True(t, Verify(secret, time.Unix(unix, 0), got.body, got.signature),
		"recipient recomputation must match the signature header")
}

func TestDeliveryRetryLadder(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 3 {
			http.Error(w, "not yet", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_retry", []string{events.TypeExecutionFailed})
	eventID := uuid.New().String()
	h.createDelivery(t, hook, eventID)

	h.step(t, func() bool { return h.deliveredCount(t, eventID) == 1 }, 10*time.Second)

	rows := h.chainRows(t, eventID)
	require.Len(t, rows, 4, "one row per attempt")

	wantStates := []webhookdelivery.State{
		webhookdelivery.StateRetry,
		webhookdelivery.StateRetry,
		webhookdelivery.StateRetry,
		webhookdelivery.StateDelivered,
	}
	base := h.pool.cfg.BaseDelay
	for i, row := range rows {
		assert.Equal(t, wantStates[i], row.State, "row %d", i)
		assert.Equal(t, i+1, row.AttemptCount, "row %d", i)
		if row.State == webhookdelivery.StateRetry {
			require.NotNil(t, row.LastStatusCode)
			assert.Equal(t, http.StatusInternalServerError, *row.LastStatusCode)
			require.NotNil(t, row.LastError)
		}
		if i > 0 {
			// Successor rows are created at fail time and scheduled
			// BaseDelay*2^attempt later.
			backoff := row.ScheduledAt.Sub(row.CreatedAt)
			want := base * time.Duration(1<<i)
			assert.InDelta(t, want.Milliseconds(), backoff.Milliseconds(), float64(base.Milliseconds()),
				"row %d backoff", i)
		}
	}
	assert.EqualValues(t, 4, calls.Load())
}

func TestDeliveryFailsAtAttemptCap(t *testing.T) {
	cfg := fastDeliveryConfig()
	cfg.MaxAttempts = 3
	h := newDeliveryHarness(t, cfg)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permanently broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_cap", []string{events.TypeExecutionFailed})
	eventID := uuid.New().String()
	h.createDelivery(t, hook, eventID)

	failedExists := func() bool {
		n, err := h.client.WebhookDelivery.Query().
			Where(
				webhookdelivery.EventIDEQ(eventID),
				webhookdelivery.StateEQ(webhookdelivery.StateFailed),
			).
			Count(context.Background())
		require.NoError(t, err)
		return n == 1
	}
	h.step(t, failedExists, 10*time.Second)

	rows := h.chainRows(t, eventID)
	require.Len(t, rows, 3)
	last := rows[2]
	assert.Equal(t, webhookdelivery.StateFailed, last.State)
	assert.Equal(t, 3, last.AttemptCount)
	require.NotNil(t, last.FailedAt)
	require.NotNil(t, last.LastStatusCode)
	assert.Equal(t, http.StatusBadGateway, *last.LastStatusCode)
	require.NotNil(t, last.LastError)
	assert.Contains(t, *last.LastError, "permanently broken")

	// One failed chain stays well under the disable threshold.
	reloaded, err := h.client.Webhook.Get(context.Background(), hook.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Active)
}

func TestAutoDisableAfterRepeatedFailures(t *testing.T) {
	cfg := fastDeliveryConfig()
	cfg.MaxAttempts = 1
	cfg.DisableThreshold = 3
	h := newDeliveryHarness(t, cfg)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_dying", []string{events.TypeExecutionFailed})

	sub := h.bus.Subscribe("")
	defer sub.Close()

	for i := 0; i < 3; i++ {
		h.createDelivery(t, hook, uuid.New().String())
	}

	disabled := func() bool {
		reloaded, err := h.client.Webhook.Get(context.Background(), hook.ID)
		require.NoError(t, err)
		return !reloaded.Active
	}
	h.step(t, disabled, 10*time.Second)

	reloaded, err := h.client.Webhook.Get(context.Background(), hook.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
	require.NotNil(t, reloaded.DisabledReason)
	assert.Contains(t, *reloaded.DisabledReason, "auto-disabled")
	assert.NotNil(t, reloaded.DisabledAt)

	// Owner notification on the bus.
	select {
	case evt := <-sub.C:
		assert.Equal(t, events.TypeWebhookDisabled, evt.Type)
		assert.Equal(t, owner.ID, evt.UserID)
		assert.Equal(t, hook.ID, evt.Data["webhook_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("webhook.disabled event never published")
	}

	// Audit trail records the system action.
	n, err := h.client.AuditLog.Query().
		Where(
			auditlog.ActionEQ("webhook.auto_disable"),
			auditlog.ResourceIDEQ(hook.ID),
		).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDisabledWebhookDrainsWithoutPosting(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_x", []string{events.TypeExecutionFailed})
	row := h.createDelivery(t, hook, uuid.New().String())

	_, err := h.client.Webhook.UpdateOneID(hook.ID).SetActive(false).Save(context.Background())
	require.NoError(t, err)

	require.NoError(t, h.pool.DeliverNext(context.Background()))

	final, err := h.client.WebhookDelivery.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StateFailed, final.State)
	require.NotNil(t, final.LastError)
	assert.Contains(t, *final.LastError, "disabled")
	assert.Zero(t, calls.Load(), "no request goes out to a disabled endpoint")
}

func TestClaimSkipsWebhookWithInFlightSibling(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_x", []string{events.TypeExecutionFailed})

	// A sibling already in flight blocks the pending row.
	inflight := h.createDelivery(t, hook, uuid.New().String())
	_, err := h.client.WebhookDelivery.UpdateOneID(inflight.ID).
		SetState(webhookdelivery.StateDelivering).
		Save(ctx)
	require.NoError(t, err)
	h.createDelivery(t, hook, uuid.New().String())

	err = h.pool.DeliverNext(ctx)
	assert.ErrorIs(t, err, ErrNoDeliveriesDue)

	// Once the sibling settles, the pending row becomes claimable.
	_, err = h.client.WebhookDelivery.UpdateOneID(inflight.ID).
		SetState(webhookdelivery.StateDelivered).
		SetDeliveredAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	err = h.pool.DeliverNext(ctx)
	assert.NotErrorIs(t, err, ErrNoDeliveriesDue)
}

func TestFutureScheduledDeliveryNotClaimed(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())
	ctx := context.Background()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, "https://8.8.8.8/hooks", "whsec_x", []string{events.TypeExecutionFailed})

	_, err := h.client.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetWebhookID(hook.ID).
		SetEventID(uuid.New().String()).
		SetEventType(events.TypeExecutionFailed).
		SetPayload(map[string]any{}).
		SetScheduledAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, h.pool.DeliverNext(ctx), ErrNoDeliveriesDue)
}

func TestDeliveryPoolStartStop(t *testing.T) {
	h := newDeliveryHarness(t, fastDeliveryConfig())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	owner := h.createOwner(t)
	hook := h.createWebhook(t, owner, srv.URL, "whsec_x", []string{events.TypeExecutionFailed})
	row := h.createDelivery(t, hook, uuid.New().String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.pool.Start(ctx)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		final, err := h.client.WebhookDelivery.Get(ctx, row.ID)
		require.NoError(t, err)
		if final.State == webhookdelivery.StateDelivered {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	h.pool.Stop()

	final, err := h.client.WebhookDelivery.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StateDelivered, final.State)
}
