package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/predicate"
	entwebhook "github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/events"
)

// ErrNoDeliveriesDue signals an empty delivery queue.
var ErrNoDeliveriesDue = errors.New("no deliveries due")

// userAgent identifies outbound webhook traffic.
const userAgent = "AgentOrchestra/1.0"

// errorBodyLimit caps how much of a failing response body is kept as
// the delivery error.
const errorBodyLimit = 4096

// Config tunes the delivery pool. Zero values select the defaults.
type Config struct {
	// Workers is the number of concurrent delivery goroutines. Default 4.
	Workers int

	// PollInterval is the idle sleep between claim attempts. Default 1s.
	PollInterval time.Duration

	// RequestTimeout bounds each POST. Default 30s.
	RequestTimeout time.Duration

	// MaxAttempts caps a delivery chain. Default 5.
	MaxAttempts int

	// BaseDelay scales the backoff: a failure at attempt n schedules
	// the next try after BaseDelay * 2^n. Default 1s, giving the
	// 2s/4s/8s/16s ladder.
	BaseDelay time.Duration

	// DisableThreshold and DisableWindow drive auto-disable: a webhook
	// accumulating DisableThreshold failed chains inside DisableWindow
	// is deactivated. Defaults 10 and 24h.
	DisableThreshold int
	DisableWindow    time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = time.Second
	}
	if c.DisableThreshold <= 0 {
		c.DisableThreshold = 10
	}
	if c.DisableWindow <= 0 {
		c.DisableWindow = 24 * time.Hour
	}
	return c
}

// DeliveryPool claims due delivery rows and POSTs them to their
// endpoints. Claims use FOR UPDATE SKIP LOCKED, so pools on every pod
// drain the same table without double-sending a row.
type DeliveryPool struct {
	client    *ent.Client
	box       *auth.SecretBox
	publisher *events.Publisher
	cfg       Config
	http      *http.Client

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewDeliveryPool creates a DeliveryPool. The box must be the one that
// sealed the webhook secrets at registration.
func NewDeliveryPool(client *ent.Client, box *auth.SecretBox, publisher *events.Publisher, cfg Config) *DeliveryPool {
	cfg = cfg.withDefaults()
	return &DeliveryPool{
		client:    client,
		box:       box,
		publisher: publisher,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
			// Redirects are never followed: a 3xx is a failed attempt.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start launches the delivery workers.
func (p *DeliveryPool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	slog.Info("Webhook delivery pool started",
		"workers", p.cfg.Workers, "poll_interval", p.cfg.PollInterval)
}

// Stop signals the workers and waits for in-flight POSTs to finish.
func (p *DeliveryPool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Webhook delivery pool stopped")
}

func (p *DeliveryPool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		err := p.DeliverNext(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoDeliveriesDue):
			p.sleep(ctx)
		case ctx.Err() != nil:
			return
		default:
			slog.Error("Webhook delivery worker poll failed", "worker", id, "error", err)
			p.sleep(ctx)
		}
	}
}

func (p *DeliveryPool) sleep(ctx context.Context) {
	d := p.cfg.PollInterval
	d += time.Duration(rand.Int64N(int64(d/5) + 1))
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-p.stopCh:
	case <-ctx.Done():
	case <-timer.C:
	}
}

// noSiblingInFlight skips rows whose webhook already has a delivery in
// the delivering state, keeping attempts to one endpoint serialized.
// Best effort: the check rides inside the claim's snapshot, so two
// simultaneous claims for one webhook can still both pass.
func noSiblingInFlight() predicate.WebhookDelivery {
	return func(s *sql.Selector) {
		busy := sql.Table(webhookdelivery.Table).As("busy")
		s.Where(sql.NotExists(
			sql.Select(busy.C(webhookdelivery.FieldID)).
				From(busy).
				Where(sql.And(
					sql.ColumnsEQ(busy.C(webhookdelivery.FieldWebhookID), s.C(webhookdelivery.FieldWebhookID)),
					sql.EQ(busy.C(webhookdelivery.FieldState), string(webhookdelivery.StateDelivering)),
				)),
		))
	}
}

// DeliverNext claims one due delivery and runs the attempt to its
// outcome. Returns ErrNoDeliveriesDue when the queue has nothing
// schedulable. Exported for tests that need deterministic stepping.
func (p *DeliveryPool) DeliverNext(ctx context.Context) error {
	row, err := p.claim(ctx)
	if err != nil {
		return err
	}
	p.attempt(ctx, row)
	return nil
}

// claim locks the earliest due pending row, flips it to delivering, and
// increments its attempt count.
func (p *DeliveryPool) claim(ctx context.Context) (*ent.WebhookDelivery, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.WebhookDelivery.Query().
		Where(
			webhookdelivery.StateEQ(webhookdelivery.StatePending),
			webhookdelivery.ScheduledAtLTE(time.Now()),
			noSiblingInFlight(),
		).
		Order(ent.Asc(webhookdelivery.FieldScheduledAt, webhookdelivery.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoDeliveriesDue
		}
		return nil, fmt.Errorf("failed to query due deliveries: %w", err)
	}

	row, err = tx.WebhookDelivery.UpdateOne(row).
		SetState(webhookdelivery.StateDelivering).
		AddAttemptCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark delivery in flight: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delivery claim: %w", err)
	}
	return row, nil
}

// attempt POSTs the payload and settles the row: delivered, retry with
// a scheduled successor, or failed (possibly disabling the webhook).
func (p *DeliveryPool) attempt(ctx context.Context, row *ent.WebhookDelivery) {
	log := slog.With("delivery_id", row.ID, "webhook_id", row.WebhookID,
		"event_id", row.EventID, "attempt", row.AttemptCount)

	hook, err := p.client.Webhook.Get(ctx, row.WebhookID)
	if err != nil {
		log.Error("Failed to load webhook for delivery", "error", err)
		p.fail(ctx, row, nil, "webhook no longer exists", log)
		return
	}
	if !hook.Active {
		// Disabled after this row was enqueued; don't keep poking it.
		p.fail(ctx, row, nil, "webhook disabled", log)
		return
	}

	statusCode, err := p.post(ctx, hook, row)
	if err == nil {
		now := time.Now()
		if uerr := p.client.WebhookDelivery.UpdateOneID(row.ID).
			SetState(webhookdelivery.StateDelivered).
			SetDeliveredAt(now).
			SetLastStatusCode(statusCode).
			Exec(ctx); uerr != nil {
			log.Error("Failed to mark delivery delivered", "error", uerr)
			return
		}
		log.Info("Webhook delivered", "status", statusCode)
		return
	}

	log.Warn("Webhook attempt failed", "status", statusCode, "error", err)
	if row.AttemptCount < p.cfg.MaxAttempts {
		p.retry(ctx, row, statusCode, err.Error(), log)
		return
	}
	p.failWithStatus(ctx, row, statusCode, err.Error(), log)
	p.maybeDisable(ctx, hook, log)
}

// post sends one signed attempt. A nil error means a 2xx came back.
func (p *DeliveryPool) post(ctx context.Context, hook *ent.Webhook, row *ent.WebhookDelivery) (int, error) {
	secret, err := p.box.Open(hook.SecretEncrypted)
	if err != nil {
		return 0, fmt.Errorf("failed to unseal webhook secret: %w", err)
	}

	body, err := json.Marshal(row.Payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal delivery payload: %w", err)
	}

	now := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Webhook-Event", row.EventType)
	req.Header.Set("X-Webhook-Delivery", row.ID)
	req.Header.Set("X-Webhook-Timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("X-Webhook-Signature", Sign(secret, now, body))

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if len(snippet) > 0 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet)
	}
	return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// retry finishes the row as retry and enqueues its successor with
// exponential backoff.
func (p *DeliveryPool) retry(ctx context.Context, row *ent.WebhookDelivery, statusCode int, errMsg string, log *slog.Logger) {
	delay := p.cfg.BaseDelay * time.Duration(1<<row.AttemptCount)

	update := p.client.WebhookDelivery.UpdateOneID(row.ID).
		SetState(webhookdelivery.StateRetry).
		SetLastError(errMsg)
	if statusCode > 0 {
		update.SetLastStatusCode(statusCode)
	}
	if err := update.Exec(ctx); err != nil {
		log.Error("Failed to mark delivery for retry", "error", err)
		return
	}

	_, err := p.client.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetWebhookID(row.WebhookID).
		SetEventID(row.EventID).
		SetEventType(row.EventType).
		SetPayload(row.Payload).
		SetAttemptCount(row.AttemptCount).
		SetScheduledAt(time.Now().Add(delay)).
		Save(ctx)
	if err != nil {
		log.Error("Failed to enqueue retry delivery", "error", err)
		return
	}
	log.Info("Webhook retry scheduled", "delay", delay, "next_attempt", row.AttemptCount+1)
}

func (p *DeliveryPool) fail(ctx context.Context, row *ent.WebhookDelivery, statusCode *int, errMsg string, log *slog.Logger) {
	update := p.client.WebhookDelivery.UpdateOneID(row.ID).
		SetState(webhookdelivery.StateFailed).
		SetFailedAt(time.Now()).
		SetLastError(errMsg)
	if statusCode != nil && *statusCode > 0 {
		update.SetLastStatusCode(*statusCode)
	}
	if err := update.Exec(ctx); err != nil {
		log.Error("Failed to mark delivery failed", "error", err)
	}
}

func (p *DeliveryPool) failWithStatus(ctx context.Context, row *ent.WebhookDelivery, statusCode int, errMsg string, log *slog.Logger) {
	p.fail(ctx, row, &statusCode, errMsg, log)
	log.Warn("Webhook delivery chain exhausted", "attempts", row.AttemptCount)
}

// maybeDisable deactivates a webhook whose failed chains crossed the
// threshold inside the trailing window. The conditional update makes
// racing workers elect a single disabler, so the owner is notified
// exactly once.
func (p *DeliveryPool) maybeDisable(ctx context.Context, hook *ent.Webhook, log *slog.Logger) {
	cutoff := time.Now().Add(-p.cfg.DisableWindow)
	failed, err := p.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.WebhookIDEQ(hook.ID),
			webhookdelivery.StateEQ(webhookdelivery.StateFailed),
			webhookdelivery.FailedAtGTE(cutoff),
		).
		Count(ctx)
	if err != nil {
		log.Error("Failed to count failed deliveries", "error", err)
		return
	}
	if failed < p.cfg.DisableThreshold {
		return
	}

	now := time.Now()
	reason := fmt.Sprintf("auto-disabled: %d failed deliveries in %s", failed, p.cfg.DisableWindow)
	n, err := p.client.Webhook.Update().
		Where(entwebhook.IDEQ(hook.ID), entwebhook.ActiveEQ(true)).
		SetActive(false).
		SetDisabledReason(reason).
		SetDisabledAt(now).
		Save(ctx)
	if err != nil {
		log.Error("Failed to auto-disable webhook", "error", err)
		return
	}
	if n == 0 {
		return
	}

	log.Warn("Webhook auto-disabled", "url", hook.URL, "failed_in_window", failed)

	if err := p.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetUserID(hook.OwnerID).
		SetAction("webhook.auto_disable").
		SetResource("webhook").
		SetResourceID(hook.ID).
		SetMetadata(map[string]any{"reason": reason, "failed_in_window": failed}).
		Exec(ctx); err != nil {
		log.Warn("Failed to write auto-disable audit row", "error", err)
	}

	if p.publisher != nil {
		p.publisher.Publish(ctx, events.Event{
			ID:        uuid.New().String(),
			Type:      events.TypeWebhookDisabled,
			UserID:    hook.OwnerID,
			Sequence:  now.UnixNano(),
			Timestamp: now,
			Data: map[string]any{
				"webhook_id": hook.ID,
				"url":        hook.URL,
				"reason":     reason,
			},
		})
	}
}
