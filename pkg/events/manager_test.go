package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGate implements RoomGate for tests.
type mockGate struct {
	denied   map[string]bool
	snapshot any
	snapErr  error
}

func (g *mockGate) AuthorizeRoom(_ context.Context, _ Subscriber, room string) error {
	if g.denied[room] {
		return fmt.Errorf("room %s not allowed", room)
	}
	return nil
}

func (g *mockGate) ExecutionSnapshot(_ context.Context, executionID string) (any, error) {
	if g.snapErr != nil {
		return nil, g.snapErr
	}
	if g.snapshot != nil {
		return g.snapshot, nil
	}
	return map[string]any{"id": executionID, "state": "running"}, nil
}

func setupManagerWithGate(t *testing.T, gate RoomGate) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(gate, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, Subscriber{UserID: "u-1", Role: "user"})
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	return setupManagerWithGate(t, &mockGate{})
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribePushesSnapshot(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "execution:exec-1"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "execution:exec-1", msg["channel"])

	snap := readJSON(t, conn)
	assert.Equal(t, "snapshot", snap["type"])
	assert.Equal(t, "execution:exec-1", snap["channel"])
	data, ok := snap["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "exec-1", data["id"])
	assert.Equal(t, "running", data["state"])

	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_UserRoomHasNoSnapshot(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "user:u-1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	// No snapshot follows for user rooms.
	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err)
}

func TestConnectionManager_UnauthorizedSubscribe(t *testing.T) {
	gate := &mockGate{denied: map[string]bool{"execution:forbidden": true}}
	_, server := setupManagerWithGate(t, gate)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "execution:forbidden"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Equal(t, "execution:forbidden", msg["channel"])
	assert.Contains(t, msg["message"], "not authorized")
}

func TestConnectionManager_UnknownRoomRejected(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "pod:nope"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Contains(t, msg["message"], "unknown channel")
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	// Connect two clients and subscribe both to the same room
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)

	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	room := "user:broadcast-test"
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: room})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: room})

	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	// Wait for subscriptions to propagate
	require.Eventually(t, func() bool { return manager.subscriberCount(room) == 2 },
		time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(Event{Type: TypeExecutionCompleted, ExecutionID: "e-1", Sequence: 9})
	manager.Broadcast(room, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, TypeExecutionCompleted, msg1["type"])
	assert.Equal(t, "e-1", msg1["execution_id"])
	assert.Equal(t, TypeExecutionCompleted, msg2["type"])
	assert.Equal(t, float64(9), msg2["sequence"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: "agent:a-1"})
	readJSON(t, conn1) // subscription.confirmed

	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: "agent:a-2"})
	readJSON(t, conn2) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount("agent:a-1") == 1 && manager.subscriberCount("agent:a-2") == 1
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "a-1"})
	manager.Broadcast("agent:a-1", payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "a-1", msg["target"])

	// conn2 should NOT receive agent:a-1 traffic; verify with timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive agent:a-1 broadcast")
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	room := "user:unsub-test"
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: room})
	readJSON(t, conn) // subscription.confirmed

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: room})

	require.Eventually(t, func() bool { return manager.subscriberCount(room) == 0 },
		time.Second, 10*time.Millisecond)

	// Broadcast should NOT be received
	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(room, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_SnapshotErrorKeepsConnection(t *testing.T) {
	gate := &mockGate{snapErr: fmt.Errorf("database unreachable")}
	_, server := setupManagerWithGate(t, gate)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "execution:err-test"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	// Snapshot failure is logged, not fatal; ping/pong still works.
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection should still be alive after validation errors
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetBridge(t *testing.T) {
	manager := NewConnectionManager(&mockGate{}, 5*time.Second)
	assert.Nil(t, manager.bridge)

	bridge := NewBridge(nil, manager)
	manager.SetBridge(bridge)

	manager.bridgeMu.RLock()
	assert.Equal(t, bridge, manager.bridge)
	manager.bridgeMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	room := "user:cleanup-test"
	data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: room})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return manager.ActiveConnections() == 0 },
		time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return manager.subscriberCount(room) == 0 },
		time.Second, 10*time.Millisecond)

	// Broadcast should not panic
	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(room, payload)
	})
}
