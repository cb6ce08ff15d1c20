package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/engine"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
	"github.com/agent-orchestra/orchestra/pkg/services"
)

// ssePingInterval keeps idle streams alive through proxies.
const ssePingInterval = 15 * time.Second

// submitExecutionHandler handles POST /api/executions.
// Queues one run and returns immediately; any replica's worker pool
// picks it up.
func (s *Server) submitExecutionHandler(c *echo.Context) error {
	var req SubmitExecutionRequest
	if err := c.Bind(&req); err != nil {
		return apiError(http.StatusBadRequest, codeValidation, "invalid request body")
	}

	priority, err := models.ParsePriority(req.Priority)
	if err != nil {
		return apiError(http.StatusBadRequest, codeValidation, err.Error())
	}

	p := currentPrincipal(c)
	row, err := s.engine.Submit(c.Request().Context(), engine.SubmitInput{
		AgentID:        req.AgentID,
		Actor:          p.Actor,
		Input:          req.Input,
		Priority:       priority,
		Trigger:        execution.Trigger(req.Trigger),
		Environment:    req.Environment,
		ConfigOverride: req.Configuration,
		Metadata:       req.Metadata,
		Timeout:        time.Duration(req.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &SubmitExecutionResponse{
		ExecutionID: row.ID,
		Status:      "queued",
	})
}

// getExecutionHandler handles GET /api/executions/:id.
func (s *Server) getExecutionHandler(c *echo.Context) error {
	p := currentPrincipal(c)
	row, tail, err := s.execs.Detail(c.Request().Context(), p.Actor, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ExecutionDetailResponse{
		ExecutionResponse: newExecutionResponse(row),
		LogsTail:          newLogEntries(tail),
	})
}

// executionLogsHandler handles GET /api/executions/:id/logs.
func (s *Server) executionLogsHandler(c *echo.Context) error {
	filters := models.LogFilters{Level: c.QueryParam("level")}
	if v := c.QueryParam("offset"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &filters.Offset); err != nil {
			return apiError(http.StatusBadRequest, codeValidation, "offset must be an integer")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &filters.Limit); err != nil {
			return apiError(http.StatusBadRequest, codeValidation, "limit must be an integer")
		}
	}

	p := currentPrincipal(c)
	logs, total, err := s.execs.Logs(c.Request().Context(), p.Actor, c.Param("id"), filters)
	if err != nil {
		return mapServiceError(err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = services.DefaultListLimit
	}
	if limit > services.MaxListLimit {
		limit = services.MaxListLimit
	}
	return c.JSON(http.StatusOK, &LogsPage{
		Logs:   newLogEntries(logs),
		Total:  total,
		Offset: filters.Offset,
		Limit:  limit,
	})
}

// cancelExecutionHandler handles DELETE /api/executions/:id.
// Cancelled reports whether this request won the transition; false
// means the run reached a terminal state first.
func (s *Server) cancelExecutionHandler(c *echo.Context) error {
	p := currentPrincipal(c)
	row, won, err := s.engine.Cancel(c.Request().Context(), p.Actor, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &CancelExecutionResponse{
		Cancelled: won,
		State:     string(row.State),
	})
}

func executionFinished(st execution.State) bool {
	switch st {
	case execution.StateCompleted, execution.StateFailed, execution.StateCancelled, execution.StateTimeout:
		return true
	}
	return false
}

func writeSSEEvent(w io.Writer, eventType string, data []byte) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
	return err
}

// streamExecutionHandler handles GET /api/executions/:id/stream.
// Server-sent events: one snapshot, then live events relayed from the
// execution's room channel until the terminal event, client detach, or
// server shutdown. The channel subscription is opened before the
// snapshot is read so nothing falls into the gap between them; the
// boundary may deliver a log line both in the snapshot and live.
func (s *Server) streamExecutionHandler(c *echo.Context) error {
	id := c.Param("id")
	p := currentPrincipal(c)

	sub := events.Subscriber{UserID: p.Actor.ID, Role: p.Actor.Role}
	if err := s.execs.AuthorizeRoom(c.Request().Context(), sub, events.ExecutionRoom(id)); err != nil {
		return mapServiceError(err)
	}

	if s.cache == nil {
		return apiError(http.StatusServiceUnavailable, codeInternal, "event streaming not available")
	}

	w := http.ResponseWriter(c.Response())
	flusher, ok := w.(http.Flusher)
	if !ok {
		return apiError(http.StatusInternalServerError, codeInternal, "streaming not supported")
	}

	reqCtx := c.Request().Context()
	pubsub := s.cache.Subscriber(reqCtx)
	defer pubsub.Close()
	if err := pubsub.Subscribe(reqCtx, events.BridgeChannel(events.ExecutionRoom(id))); err != nil {
		return apiError(http.StatusServiceUnavailable, codeInternal, "event streaming not available")
	}

	snapshot, err := s.execs.ExecutionSnapshot(reqCtx, id)
	if err != nil {
		return mapServiceError(err)
	}
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeSSEEvent(w, "snapshot", snapshotJSON); err != nil {
		return nil
	}
	flusher.Flush()

	// A finished run has no live events coming; the snapshot is the
	// whole story.
	if payload, ok := snapshot.(*services.ExecutionSnapshotPayload); ok && executionFinished(payload.Execution.State) {
		return nil
	}

	ticker := time.NewTicker(ssePingInterval)
	defer ticker.Stop()
	ch := pubsub.Channel()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-s.baseCtx.Done():
			return nil
		case <-ticker.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return nil
			}
			flusher.Flush()
		case msg, open := <-ch:
			if !open {
				return nil
			}
			var evt events.Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				continue
			}
			if err := writeSSEEvent(w, evt.Type, []byte(msg.Payload)); err != nil {
				return nil
			}
			flusher.Flush()
			if events.IsTerminal(evt.Type) {
				return nil
			}
		}
	}
}
