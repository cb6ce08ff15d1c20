package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found. Ownership
	// misses map here too, so callers cannot probe for other tenants'
	// resource IDs.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrForbidden is returned when the actor is authenticated but not
	// allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned for unknown, inactive, or
	// expired API keys. Deliberately indistinct.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAgentInactive rejects submissions to a deactivated agent.
	ErrAgentInactive = errors.New("agent is inactive")

	// ErrConcurrencyExceeded rejects submissions past the per-user
	// active execution cap.
	ErrConcurrencyExceeded = errors.New("concurrent execution limit reached")

	// ErrExecutionFinished rejects log appends against an execution
	// that already reached a terminal state.
	ErrExecutionFinished = errors.New("execution already finished")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AgentBusyError rejects a submission because the agent already has an
// execution in flight. ExecutionID identifies the blocking run when it
// could be determined.
type AgentBusyError struct {
	ExecutionID string
}

func (e *AgentBusyError) Error() string {
	if e.ExecutionID == "" {
		return "agent already has an execution in flight"
	}
	return fmt.Sprintf("agent already has execution %s in flight", e.ExecutionID)
}

// AsAgentBusy unwraps an AgentBusyError if err carries one.
func AsAgentBusy(err error) (*AgentBusyError, bool) {
	var busy *AgentBusyError
	if errors.As(err, &busy) {
		return busy, true
	}
	return nil, false
}
