package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	entwebhook "github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/webhook"
	"github.com/google/uuid"
)

// minSecretLen bounds caller-supplied signing secrets.
const minSecretLen = 16

// WebhookService manages webhook registrations. Signing secrets are
// sealed with AES-GCM before storage; the plaintext is returned exactly
// once, at registration.
type WebhookService struct {
	client *ent.Client
	box    *auth.SecretBox
	policy webhook.URLPolicy
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, box *auth.SecretBox, policy webhook.URLPolicy) *WebhookService {
	return &WebhookService{client: client, box: box, policy: policy}
}

// CreateWebhookRequest carries the fields for a new webhook. Secret is
// optional; when empty a whsec_ secret is generated.
type CreateWebhookRequest struct {
	URL    string
	Events []string
	Secret string
}

// UpdateWebhookRequest carries the mutable webhook fields. Setting
// Active=true on an auto-disabled webhook re-enables it and clears the
// disable bookkeeping.
type UpdateWebhookRequest struct {
	URL    *string
	Events []string
	Active *bool
}

// WebhookStats aggregates a webhook's delivery history.
type WebhookStats struct {
	Pending        int                    `json:"pending"`
	Delivering     int                    `json:"delivering"`
	Delivered      int                    `json:"delivered"`
	Retrying       int                    `json:"retrying"`
	Failed         int                    `json:"failed"`
	SuccessRate    float64                `json:"success_rate"`
	Recent         []*ent.WebhookDelivery `json:"recent"`
	Active         bool                   `json:"active"`
	DisabledReason string                 `json:"disabled_reason,omitempty"`
	DisabledAt     *time.Time             `json:"disabled_at,omitempty"`
}

// Create registers a webhook after vetting its URL against the SSRF
// policy. Returns the row and the plaintext signing secret.
func (s *WebhookService) Create(httpCtx context.Context, actor models.Actor, req CreateWebhookRequest) (*ent.Webhook, string, error) {
	if req.URL == "" {
		return nil, "", NewValidationError("url", "required")
	}
	if err := s.policy.Check(httpCtx, req.URL); err != nil {
		return nil, "", NewValidationError("url", err.Error())
	}
	if err := validateSubscribedEvents(req.Events); err != nil {
		return nil, "", err
	}

	secret := req.Secret
	if secret == "" {
		generated, err := webhook.GenerateSecret()
		if err != nil {
			return nil, "", err
		}
		secret = generated
	} else if len(secret) < minSecretLen {
		return nil, "", NewValidationError("secret", fmt.Sprintf("shorter than %d characters", minSecretLen))
	}

	sealed, err := s.box.Seal(secret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to seal webhook secret: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.Webhook.Create().
		SetID(uuid.New().String()).
		SetOwnerID(actor.ID).
		SetURL(req.URL).
		SetSubscribedEvents(req.Events).
		SetSecretEncrypted(sealed).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create webhook: %w", err)
	}
	return row, secret, nil
}

func validateSubscribedEvents(types []string) error {
	if len(types) == 0 {
		return NewValidationError("events", "at least one event type is required")
	}
	for _, t := range types {
		if !events.IsLifecycleType(t) {
			return NewValidationError("events", fmt.Sprintf("%q is not a subscribable event type", t))
		}
	}
	return nil
}

// Get returns a webhook the actor may see. Non-owners get ErrNotFound.
func (s *WebhookService) Get(ctx context.Context, actor models.Actor, id string) (*ent.Webhook, error) {
	row, err := s.client.Webhook.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	if row.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrNotFound
	}
	return row, nil
}

// List returns the actor's webhooks, newest first.
func (s *WebhookService) List(ctx context.Context, actor models.Actor) ([]*ent.Webhook, error) {
	q := s.client.Webhook.Query()
	if !actor.IsAdmin() {
		q = q.Where(entwebhook.OwnerIDEQ(actor.ID))
	}
	rows, err := q.Order(ent.Desc(entwebhook.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return rows, nil
}

// Update applies the changed fields. A changed URL is re-vetted.
func (s *WebhookService) Update(httpCtx context.Context, actor models.Actor, id string, req UpdateWebhookRequest) (*ent.Webhook, error) {
	row, err := s.Get(httpCtx, actor, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Webhook.UpdateOneID(row.ID)

	if req.URL != nil && *req.URL != row.URL {
		if err := s.policy.Check(httpCtx, *req.URL); err != nil {
			return nil, NewValidationError("url", err.Error())
		}
		update.SetURL(*req.URL)
	}
	if req.Events != nil {
		if err := validateSubscribedEvents(req.Events); err != nil {
			return nil, err
		}
		update.SetSubscribedEvents(req.Events)
	}
	if req.Active != nil {
		update.SetActive(*req.Active)
		if *req.Active {
			update.ClearDisabledReason().ClearDisabledAt()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}
	return row, nil
}

// Delete removes a webhook and, by FK cascade, its delivery history.
func (s *WebhookService) Delete(ctx context.Context, actor models.Actor, id string) error {
	row, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.client.Webhook.DeleteOneID(row.ID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// Stats aggregates delivery outcomes for one webhook.
func (s *WebhookService) Stats(ctx context.Context, actor models.Actor, id string) (*WebhookStats, error) {
	row, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	stats := &WebhookStats{Active: row.Active, DisabledAt: row.DisabledAt}
	if row.DisabledReason != nil {
		stats.DisabledReason = *row.DisabledReason
	}

	counts := []struct {
		state webhookdelivery.State
		dst   *int
	}{
		{webhookdelivery.StatePending, &stats.Pending},
		{webhookdelivery.StateDelivering, &stats.Delivering},
		{webhookdelivery.StateDelivered, &stats.Delivered},
		{webhookdelivery.StateRetry, &stats.Retrying},
		{webhookdelivery.StateFailed, &stats.Failed},
	}
	for _, c := range counts {
		n, err := s.client.WebhookDelivery.Query().
			Where(
				webhookdelivery.WebhookIDEQ(row.ID),
				webhookdelivery.StateEQ(c.state),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count deliveries: %w", err)
		}
		*c.dst = n
	}

	// Success rate over finished chains: delivered vs exhausted.
	if finished := stats.Delivered + stats.Failed; finished > 0 {
		stats.SuccessRate = float64(stats.Delivered) / float64(finished)
	}

	recent, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(row.ID)).
		Order(ent.Desc(webhookdelivery.FieldCreatedAt)).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent deliveries: %w", err)
	}
	stats.Recent = recent

	return stats, nil
}

// DeleteDeliveriesBefore removes finished delivery rows older than the
// cutoff. Pending and in-flight rows are never touched.
func (s *WebhookService) DeleteDeliveriesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.WebhookDelivery.Delete().
		Where(
			webhookdelivery.StateIn(
				webhookdelivery.StateDelivered,
				webhookdelivery.StateRetry,
				webhookdelivery.StateFailed,
			),
			webhookdelivery.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old deliveries: %w", err)
	}
	return n, nil
}
