package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	entapikey "github.com/agent-orchestra/orchestra/ent/apikey"
	"github.com/agent-orchestra/orchestra/pkg/auth"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/google/uuid"
)

// APIKeyService manages API keys: creation (the only moment the
// plaintext exists), verification on the request path, and usage
// analytics.
type APIKeyService struct {
	client *ent.Client
	pepper string
}

// NewAPIKeyService creates a new APIKeyService. pepper is
// API_SECRET_KEY; key hashes are HMACs under it.
func NewAPIKeyService(client *ent.Client, pepper string) *APIKeyService {
	return &APIKeyService{client: client, pepper: pepper}
}

// CreateAPIKeyRequest carries the fields for a new key.
type CreateAPIKeyRequest struct {
	Name        string
	Permissions []string
	ExpiresAt   *time.Time
}

// Create mints a new API key for the actor. The returned plaintext is
// shown exactly once; only its hash is stored.
func (s *APIKeyService) Create(httpCtx context.Context, actor models.Actor, req CreateAPIKeyRequest) (*ent.ApiKey, string, error) {
	if req.Name == "" {
		return nil, "", NewValidationError("name", "required")
	}
	if len(req.Permissions) == 0 {
		return nil, "", NewValidationError("permissions", "at least one capability is required")
	}
	for _, p := range req.Permissions {
		if !auth.IsKnownCapability(p) {
			return nil, "", NewValidationError("permissions", fmt.Sprintf("unknown capability %q", p))
		}
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		return nil, "", NewValidationError("expires_at", "must be in the future")
	}

	plaintext, err := auth.GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ApiKey.Create().
		SetID(uuid.New().String()).
		SetUserID(actor.ID).
		SetName(req.Name).
		SetKeyHash(auth.HashKey(s.pepper, plaintext)).
		SetKeyPrefix(auth.DisplayPrefix(plaintext)).
		SetPermissions(req.Permissions)
	if req.ExpiresAt != nil {
		builder.SetExpiresAt(*req.ExpiresAt)
	}

	key, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create api key: %w", err)
	}
	return key, plaintext, nil
}

// Verify resolves a presented plaintext key to its row and owning user.
// Unknown, inactive, and expired keys all return ErrInvalidCredentials.
// Expired keys are deactivated on first sight.
func (s *APIKeyService) Verify(ctx context.Context, plaintext string) (*ent.ApiKey, *ent.User, error) {
	hash := auth.HashKey(s.pepper, plaintext)

	key, err := s.client.ApiKey.Query().
		Where(entapikey.KeyHashEQ(hash)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	if !key.Active {
		return nil, nil, ErrInvalidCredentials
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		// Lazy expiry: flip the row off so listings show it as dead.
		if err := s.client.ApiKey.UpdateOneID(key.ID).SetActive(false).Exec(ctx); err != nil {
			slog.Warn("Failed to deactivate expired api key", "api_key_id", key.ID, "error", err)
		}
		return nil, nil, ErrInvalidCredentials
	}

	owner := key.Edges.User
	if owner == nil || !owner.Active {
		return nil, nil, ErrInvalidCredentials
	}

	// Touch usage counters. Best effort; the request proceeds either way.
	if err := s.client.ApiKey.UpdateOneID(key.ID).
		AddUsageCount(1).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		slog.Warn("Failed to touch api key usage", "api_key_id", key.ID, "error", err)
	}

	return key, owner, nil
}

// List returns the actor's keys, newest first. Plaintext is never
// recoverable; rows carry only the display prefix.
func (s *APIKeyService) List(ctx context.Context, actor models.Actor) ([]*ent.ApiKey, error) {
	keys, err := s.client.ApiKey.Query().
		Where(entapikey.UserIDEQ(actor.ID)).
		Order(ent.Desc(entapikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

// Revoke deactivates a key. Owner or admin.
func (s *APIKeyService) Revoke(ctx context.Context, actor models.Actor, id string) error {
	key, err := s.client.ApiKey.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get api key: %w", err)
	}
	if key.UserID != actor.ID && !actor.IsAdmin() {
		return ErrNotFound
	}

	if err := s.client.ApiKey.UpdateOneID(id).SetActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	return nil
}

// RecordUsage appends one usage row for an admitted API-key request.
// Fire-and-forget: failures are logged, never surfaced to the request.
func (s *APIKeyService) RecordUsage(keyID, endpoint, method string, statusCode int, ip, userAgent string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ApiKeyUsage.Create().
		SetID(uuid.New().String()).
		SetAPIKeyID(keyID).
		SetEndpoint(endpoint).
		SetMethod(method).
		SetStatusCode(statusCode).
		SetIP(ip).
		SetUserAgent(userAgent).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to record api key usage", "api_key_id", keyID, "error", err)
	}
}
