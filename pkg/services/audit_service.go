package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	"github.com/agent-orchestra/orchestra/ent/auditlog"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/google/uuid"
)

// AuditService records security-relevant actions: resource mutations,
// gate rejections, webhook auto-disables. Entries are best-effort; the
// mainline operation never fails because the audit write did.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// AuditEntry is one recorded action.
type AuditEntry struct {
	UserID     string
	Action     string // e.g. "agent.create", "webhook.auto_disable"
	Resource   string // entity kind
	ResourceID string
	IP         string
	Metadata   map[string]any
}

// Record persists an entry with its own bounded context, detached from
// the request. Failures are logged and swallowed.
func (s *AuditService) Record(entry AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetAction(entry.Action).
		SetResource(entry.Resource)
	if entry.UserID != "" {
		builder.SetUserID(entry.UserID)
	}
	if entry.ResourceID != "" {
		builder.SetResourceID(entry.ResourceID)
	}
	if entry.IP != "" {
		builder.SetIP(entry.IP)
	}
	if entry.Metadata != nil {
		builder.SetMetadata(entry.Metadata)
	}

	if err := builder.Exec(ctx); err != nil {
		slog.Warn("Failed to record audit entry",
			"action", entry.Action, "resource", entry.Resource, "error", err)
	}
}

// List returns recent audit entries, newest first. Admin only.
func (s *AuditService) List(ctx context.Context, actor models.Actor, limit int) ([]*ent.AuditLog, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	rows, err := s.client.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return rows, nil
}

// DeleteOlderThan removes audit entries past the retention window.
func (s *AuditService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit entries: %w", err)
	}
	return n, nil
}
