package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/events"
	"github.com/agent-orchestra/orchestra/pkg/models"
)

// TestWebSocketStreaming subscribes to an execution's room while it is
// in flight and follows the stream through the terminal event:
// confirmation first, then the state snapshot, then live events.
func TestWebSocketStreaming(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-live", "echo", map[string]any{"delay_ms": 1500})

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, acct.Key)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	_, err = ws.WaitForEventType("connection.established", waitTimeout)
	require.NoError(t, err)

	execID := app.SubmitExecution(t, acct, agentID, "streamed")
	room := events.ExecutionRoom(execID)
	require.NoError(t, ws.Subscribe(room))

	confirmed, err := ws.WaitForEventType("subscription.confirmed", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, room, confirmed.Parsed["channel"])

	snap, err := ws.WaitForEventType("snapshot", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, room, snap.Parsed["channel"])
	data, ok := snap.Parsed["data"].(map[string]any)
	require.True(t, ok, "snapshot data: %s", snap.Raw)
	doc, ok := data["execution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, execID, doc["id"])
	assert.Contains(t, []any{"pending", "running"}, doc["state"],
		"the snapshot must precede the terminal state")

	term, err := ws.WaitForEventType("execution.completed", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, execID, term.Parsed["execution_id"])
	seq, ok := term.Parsed["sequence"].(float64)
	require.True(t, ok)
	assert.Greater(t, seq, float64(0))

	// Confirmed before snapshot before terminal.
	var confirmedIdx, snapIdx, termIdx int
	for i, evt := range ws.Events() {
		switch evt.Type {
		case "subscription.confirmed":
			confirmedIdx = i
		case "snapshot":
			snapIdx = i
		case "execution.completed":
			termIdx = i
		}
	}
	assert.Less(t, confirmedIdx, snapIdx)
	assert.Less(t, snapIdx, termIdx)
}

// TestWebSocketUserRoom receives an execution's terminal event through
// the submitter's user room, without an execution room subscription.
func TestWebSocketUserRoom(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-owned", "echo", nil)

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, acct.Key)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	require.NoError(t, ws.Subscribe(events.UserRoom(acct.User.ID)))
	_, err = ws.WaitForEventType("subscription.confirmed", waitTimeout)
	require.NoError(t, err)

	execID := app.SubmitExecution(t, acct, agentID, "for my room")
	term, err := ws.WaitForEventType("execution.completed", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, execID, term.Parsed["execution_id"])
	assert.Equal(t, acct.User.ID, term.Parsed["user_id"])
}

// TestWebSocketRoomAuthorization rejects a subscription to another
// tenant's execution room.
func TestWebSocketRoomAuthorization(t *testing.T) {
	app := NewTestApp(t)
	owner := app.NewAccount(t, models.RoleUser)
	intruder := app.NewAccount(t, models.RoleUser)

	agentID := app.CreateAgent(t, owner, "echo-private", "echo", map[string]any{"delay_ms": 3000})
	execID := app.SubmitExecution(t, owner, agentID, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, intruder.Key)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	require.NoError(t, ws.Subscribe(events.ExecutionRoom(execID)))
	rejection, err := ws.WaitForEventType("subscription.error", waitTimeout)
	require.NoError(t, err)
	assert.Equal(t, events.ExecutionRoom(execID), rejection.Parsed["channel"])
	assert.Contains(t, rejection.Parsed["message"], "not authorized")
	assert.Empty(t, ws.EventsByType("subscription.confirmed"))

	app.CancelExecution(t, owner, execID)
}

// sseFrame is one event/data pair read off a text/event-stream body.
type sseFrame struct {
	Event string
	Data  string
}

// readSSE consumes the stream until the server closes it.
func readSSE(t *testing.T, body *bufio.Scanner) []sseFrame {
	t.Helper()
	var frames []sseFrame
	var current sseFrame
	for body.Scan() {
		line := body.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.Event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.Data = strings.TrimPrefix(line, "data: ")
		case line == "" && current.Event != "":
			frames = append(frames, current)
			current = sseFrame{}
		}
	}
	require.NoError(t, body.Err())
	return frames
}

// TestSSEStreaming follows a live run over the server-sent events
// endpoint: a snapshot frame first, then events through the terminal
// one, after which the server ends the stream.
func TestSSEStreaming(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-sse", "echo", map[string]any{"delay_ms": 1500})

	execID := app.SubmitExecution(t, acct, agentID, "evented")

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		app.BaseURL+"/api/executions/"+execID+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+acct.Key)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	frames := readSSE(t, bufio.NewScanner(resp.Body))
	require.NotEmpty(t, frames)

	assert.Equal(t, "snapshot", frames[0].Event)
	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(frames[0].Data), &snap))
	doc, ok := snap["execution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, execID, doc["id"])

	last := frames[len(frames)-1]
	assert.Equal(t, "execution.completed", last.Event)
	var term map[string]any
	require.NoError(t, json.Unmarshal([]byte(last.Data), &term))
	assert.Equal(t, execID, term["execution_id"])
}

// TestSSEFinishedRun asks for the stream of an already-terminal run.
// The server answers with the snapshot alone and closes.
func TestSSEFinishedRun(t *testing.T) {
	app := NewTestApp(t)
	acct := app.NewAccount(t, models.RoleUser)
	agentID := app.CreateAgent(t, acct, "echo-archived", "echo", nil)

	execID := app.SubmitExecution(t, acct, agentID, "already done")
	app.WaitForExecutionState(t, execID, execution.StateCompleted)

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		app.BaseURL+"/api/executions/"+execID+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+acct.Key)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	frames := readSSE(t, bufio.NewScanner(resp.Body))
	require.Len(t, frames, 1)
	assert.Equal(t, "snapshot", frames[0].Event)

	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(frames[0].Data), &snap))
	doc := snap["execution"].(map[string]any)
	assert.Equal(t, "completed", doc["state"])
}
