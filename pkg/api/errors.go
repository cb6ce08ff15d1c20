package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/agent-orchestra/orchestra/pkg/framework"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// Error codes carried in the response envelope.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeNotFound      = "NOT_FOUND"
	codeAlreadyExists = "ALREADY_EXISTS"
	codeAgentBusy     = "AGENT_BUSY"
	codeAgentInactive = "AGENT_INACTIVE"
	codeConcurrency   = "CONCURRENCY_LIMIT"
	codeUnsupported   = "UNSUPPORTED_FRAMEWORK"
	codeForbidden     = "FORBIDDEN"
	codeUnauthorized  = "UNAUTHORIZED"
	codeRateLimited   = "RATE_LIMITED"
	codeInternal      = "INTERNAL_ERROR"
)

// ErrorBody is the envelope every non-2xx response carries. Handlers
// build the envelope and wrap it in an apiHTTPError, whose MarshalJSON
// hands it to echo's default error handler as-is. ResetAt is populated
// only on 429 responses.
type ErrorBody struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	ResetAt *time.Time     `json:"resetAt,omitempty"`
}

// apiHTTPError pairs a status code with the ErrorBody envelope.
// echo.HTTPError only carries string messages, but the default error
// handler serializes any error implementing HTTPStatusCoder and
// json.Marshaler verbatim, so the envelope reaches the client intact.
type apiHTTPError struct {
	Code    int
	Message any
}

func (he *apiHTTPError) Error() string {
	return fmt.Sprintf("code=%d, message=%v", he.Code, he.Message)
}

func (he *apiHTTPError) StatusCode() int { return he.Code }

func (he *apiHTTPError) MarshalJSON() ([]byte, error) {
	return json.Marshal(he.Message)
}

func apiError(status int, code, message string) *apiHTTPError {
	return &apiHTTPError{Code: status, Message: &ErrorBody{Error: code, Message: message}}
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *apiHTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return &apiHTTPError{Code: http.StatusBadRequest, Message: &ErrorBody{
			Error:   codeValidation,
			Message: validErr.Error(),
			Details: map[string]any{"field": validErr.Field},
		}}
	}
	if busy, ok := services.AsAgentBusy(err); ok {
		body := &ErrorBody{Error: codeAgentBusy, Message: busy.Error()}
		if busy.ExecutionID != "" {
			body.Details = map[string]any{"runningExecutionId": busy.ExecutionID}
		}
		return &apiHTTPError{Code: http.StatusConflict, Message: body}
	}
	if errors.Is(err, services.ErrNotFound) {
		return apiError(http.StatusNotFound, codeNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return apiError(http.StatusConflict, codeAlreadyExists, "resource already exists")
	}
	if errors.Is(err, services.ErrAgentInactive) {
		return apiError(http.StatusConflict, codeAgentInactive, "agent is inactive")
	}
	if errors.Is(err, services.ErrConcurrencyExceeded) {
		return apiError(http.StatusTooManyRequests, codeConcurrency, "concurrent execution limit reached")
	}
	if errors.Is(err, framework.ErrUnsupportedFramework) {
		return apiError(http.StatusBadRequest, codeUnsupported, err.Error())
	}
	if errors.Is(err, services.ErrForbidden) {
		return apiError(http.StatusForbidden, codeForbidden, "operation not permitted")
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return apiError(http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return apiError(http.StatusInternalServerError, codeInternal, "internal server error")
}
