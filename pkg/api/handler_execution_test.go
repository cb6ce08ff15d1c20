package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
)

func TestSubmitExecutionValidation(t *testing.T) {
	// Validation fails before the engine is consulted, so a bare Server
	// suffices. Happy paths run against a live engine in test/e2e.
	s := &Server{}

	t.Run("malformed body answers 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/executions", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.submitExecutionHandler(c)
		require.Error(t, err)
		he, ok := err.(*apiHTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("unknown priority answers 400", func(t *testing.T) {
		e := echo.New()
		body := `{"agentId":"a1","input":"hi","priority":"urgent"}`
		req := httptest.NewRequest(http.MethodPost, "/api/executions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.submitExecutionHandler(c)
		require.Error(t, err)
		he, ok := err.(*apiHTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		errBody, ok := he.Message.(*ErrorBody)
		require.True(t, ok)
		assert.Equal(t, codeValidation, errBody.Error)
	})
}

func TestGetExecution(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	agent := h.newAgent(t, owner)
	row := h.newExecution(t, owner, agent)

	ctx := context.Background()
	for i := 1; i <= 12; i++ {
		_, err := h.execs.AppendLog(ctx, row.ID, i, "info", fmt.Sprintf("step %d", i), nil)
		require.NoError(t, err)
	}

	t.Run("owner sees the detail with the log tail", func(t *testing.T) {
		token := h.newSession(t, owner)
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		detail := decodeJSON[ExecutionDetailResponse](t, rec)
		assert.Equal(t, row.ID, detail.ID)
		assert.Equal(t, agent.ID, detail.AgentID)
		assert.Equal(t, "pending", detail.State)
		require.Len(t, detail.LogsTail, 10)
		assert.Equal(t, 3, detail.LogsTail[0].Sequence)
		assert.Equal(t, 12, detail.LogsTail[9].Sequence)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		token := h.newSession(t, owner)
		rec := h.do(t, http.MethodGet, "/api/executions/"+uuid.New().String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("another user's execution is invisible", func(t *testing.T) {
		stranger := h.newUser(t, "user")
		token := h.newSession(t, stranger)
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("admin sees any execution", func(t *testing.T) {
		admin := h.newUser(t, "admin")
		token := h.newSession(t, admin)
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID, token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExecutionLogs(t *testing.T) {
	h := newAPIHarness(t)
	owner := h.newUser(t, "user")
	agent := h.newAgent(t, owner)
	row := h.newExecution(t, owner, agent)
	token := h.newSession(t, owner)

	ctx := context.Background()
	for i := 1; i <= 8; i++ {
		level := "info"
		if i%4 == 0 {
			level = "error"
		}
		_, err := h.execs.AppendLog(ctx, row.ID, i, level, fmt.Sprintf("line %d", i), nil)
		require.NoError(t, err)
	}

	t.Run("returns the page with totals", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		page := decodeJSON[LogsPage](t, rec)
		assert.Equal(t, 8, page.Total)
		assert.Len(t, page.Logs, 8)
		assert.Equal(t, 1, page.Logs[0].Sequence)
		assert.Equal(t, 0, page.Offset)
	})

	t.Run("offset and limit page through", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs?offset=2&limit=3", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decodeJSON[LogsPage](t, rec)
		assert.Equal(t, 8, page.Total)
		require.Len(t, page.Logs, 3)
		assert.Equal(t, 3, page.Logs[0].Sequence)
		assert.Equal(t, 5, page.Logs[2].Sequence)
		assert.Equal(t, 2, page.Offset)
		assert.Equal(t, 3, page.Limit)
	})

	t.Run("level filter narrows the set", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs?level=error", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decodeJSON[LogsPage](t, rec)
		assert.Equal(t, 2, page.Total)
		for _, l := range page.Logs {
			assert.Equal(t, "error", l.Level)
		}
	})

	t.Run("unknown level answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs?level=loud", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric paging answers 400", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs?offset=abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = h.do(t, http.MethodGet, "/api/executions/"+row.ID+"/logs?limit=many", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExecutionFinished(t *testing.T) {
	finished := []execution.State{
		execution.StateCompleted,
		execution.StateFailed,
		execution.StateCancelled,
		execution.StateTimeout,
	}
	for _, st := range finished {
		assert.True(t, executionFinished(st), string(st))
	}
	assert.False(t, executionFinished(execution.StatePending))
	assert.False(t, executionFinished(execution.StateRunning))
}

func TestWriteSSEEvent(t *testing.T) {
	var buf bytes.Buffer
	err := writeSSEEvent(&buf, "execution.log", []byte(`{"line":1}`))
	require.NoError(t, err)
	assert.Equal(t, "event: execution.log\ndata: {\"line\":1}\n\n", buf.String())
}
