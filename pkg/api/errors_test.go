package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectHTTP int
		expectCode string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "required"),
			expectHTTP: http.StatusBadRequest,
			expectCode: codeValidation,
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectHTTP: http.StatusNotFound,
			expectCode: codeNotFound,
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectHTTP: http.StatusConflict,
			expectCode: codeAlreadyExists,
		},
		{
			name:       "busy agent maps to 409",
			err:        &services.AgentBusyError{ExecutionID: "exec-42"},
			expectHTTP: http.StatusConflict,
			expectCode: codeAgentBusy,
		},
		{
			name:       "inactive agent maps to 409",
			err:        services.ErrAgentInactive,
			expectHTTP: http.StatusConflict,
			expectCode: codeAgentInactive,
		},
		{
			name:       "concurrency ceiling maps to 429",
			err:        services.ErrConcurrencyExceeded,
			expectHTTP: http.StatusTooManyRequests,
			expectCode: codeConcurrency,
		},
		{
			name:       "unsupported framework maps to 400",
			err:        fmt.Errorf("%w: crewai", framework.ErrUnsupportedFramework),
			expectHTTP: http.StatusBadRequest,
			expectCode: codeUnsupported,
		},
		{
			name:       "forbidden maps to 403",
			err:        services.ErrForbidden,
			expectHTTP: http.StatusForbidden,
			expectCode: codeForbidden,
		},
		{
			name:       "invalid credentials map to 401",
			err:        services.ErrInvalidCredentials,
			expectHTTP: http.StatusUnauthorized,
			expectCode: codeUnauthorized,
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectHTTP: http.StatusInternalServerError,
			expectCode: codeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.expectHTTP, he.Code)

			body, ok := he.Message.(*ErrorBody)
			require.True(t, ok, "expected *ErrorBody message")
			assert.Equal(t, tt.expectCode, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestMapServiceErrorDetails(t *testing.T) {
	t.Run("validation error names the field", func(t *testing.T) {
		he := mapServiceError(services.NewValidationError("priority", "unknown value"))
		body := he.Message.(*ErrorBody)
		assert.Equal(t, "priority", body.Details["field"])
	})

	t.Run("busy agent names the blocking execution", func(t *testing.T) {
		he := mapServiceError(&services.AgentBusyError{ExecutionID: "exec-42"})
		body := he.Message.(*ErrorBody)
		assert.Equal(t, "exec-42", body.Details["runningExecutionId"])
	})
}

func TestAPIError(t *testing.T) {
	he := apiError(http.StatusNotFound, codeNotFound, "no such thing")
	assert.Equal(t, http.StatusNotFound, he.Code)

	body, ok := he.Message.(*ErrorBody)
	require.True(t, ok)
	assert.Equal(t, codeNotFound, body.Error)
	assert.Equal(t, "no such thing", body.Message)
	assert.Nil(t, body.ResetAt)
}
