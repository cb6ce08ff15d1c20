package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agent-orchestra/orchestra/ent"
	entuser "github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/google/uuid"
)

// UserService manages user accounts. Identity issuance (JWTs) lives in
// pkg/auth; this service owns the rows everything else hangs off.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// CreateUserRequest carries the fields for a new user.
type CreateUserRequest struct {
	Email string
	Name  string
	Role  string // "user" (default) or "admin"
}

// Create inserts a new user. Email must be unique.
func (s *UserService) Create(httpCtx context.Context, req CreateUserRequest) (*ent.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "not a valid address")
	}

	role := entuser.RoleUser
	switch req.Role {
	case "", models.RoleUser:
	case models.RoleAdmin:
		role = entuser.RoleAdmin
	default:
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetName(req.Name).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*ent.User, error) {
	user, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByEmail returns a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(strings.TrimSpace(strings.ToLower(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// SetActive enables or disables an account. Admin only. Disabled
// accounts fail authentication on their next request.
func (s *UserService) SetActive(ctx context.Context, actor models.Actor, id string, active bool) (*ent.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	user, err := s.client.User.UpdateOneID(id).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Admin only. Agents, executions, API keys, and
// webhooks owned by the user are removed by FK cascade.
func (s *UserService) Delete(ctx context.Context, actor models.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := s.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
