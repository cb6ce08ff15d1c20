package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/coder/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/cache"
)

// Full pipeline: Publisher → Redis pub/sub → Bridge → ConnectionManager
// → WebSocket client. This is the path an event takes when the engine
// pod and the subscriber's pod are different processes.
func TestEventPipeline_PublishReachesWebSocketClient(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cacheClient := cache.NewFromClient(rdb)

	manager := NewConnectionManager(&mockGate{}, 5*time.Second)
	bridge := NewBridge(cacheClient, manager)
	require.NoError(t, bridge.Start(context.Background()))
	t.Cleanup(bridge.Stop)
	manager.SetBridge(bridge)

	publisher := NewPublisher(NewBus(0), cacheClient)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, Subscriber{UserID: "u-1", Role: "user"})
	}))
	t.Cleanup(server.Close)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "execution:exec-9"})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	readJSON(t, conn) // snapshot

	evt := Event{
		ID:          "evt-1",
		Type:        TypeExecutionStarted,
		ExecutionID: "exec-9",
		AgentID:     "agent-1",
		UserID:      "u-1",
		Sequence:    1,
		Timestamp:   time.Now().UTC(),
	}
	publisher.Publish(context.Background(), evt)

	got := readJSON(t, conn)
	assert.Equal(t, TypeExecutionStarted, got["type"])
	assert.Equal(t, "exec-9", got["execution_id"])
	assert.Equal(t, float64(1), got["sequence"])
}

// A publish must reach both the user room and the execution room when
// different clients subscribe to each.
func TestEventPipeline_FanOutToMultipleRooms(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cacheClient := cache.NewFromClient(rdb)

	manager := NewConnectionManager(&mockGate{}, 5*time.Second)
	bridge := NewBridge(cacheClient, manager)
	require.NoError(t, bridge.Start(context.Background()))
	t.Cleanup(bridge.Stop)
	manager.SetBridge(bridge)

	publisher := NewPublisher(NewBus(0), cacheClient)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, Subscriber{UserID: "u-2", Role: "user"})
	}))
	t.Cleanup(server.Close)

	execConn := connectWS(t, server)
	readJSON(t, execConn) // connection.established
	writeClientMessage(t, execConn, ClientMessage{Action: "subscribe", Channel: "execution:exec-7"})
	readJSON(t, execConn) // subscription.confirmed
	readJSON(t, execConn) // snapshot

	userConn := connectWS(t, server)
	readJSON(t, userConn) // connection.established
	writeClientMessage(t, userConn, ClientMessage{Action: "subscribe", Channel: "user:u-2"})
	readJSON(t, userConn) // subscription.confirmed

	publisher.Publish(context.Background(), Event{
		ID:          "evt-2",
		Type:        TypeExecutionCompleted,
		ExecutionID: "exec-7",
		AgentID:     "agent-2",
		UserID:      "u-2",
		Sequence:    12,
		Timestamp:   time.Now().UTC(),
	})

	gotExec := readJSON(t, execConn)
	assert.Equal(t, TypeExecutionCompleted, gotExec["type"])

	gotUser := readJSON(t, userConn)
	assert.Equal(t, TypeExecutionCompleted, gotUser["type"])
	assert.Equal(t, "u-2", gotUser["user_id"])
}

// In-process subscribers keep receiving when Redis publishing fails.
func TestPublisher_BusLegSurvivesRedisOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cacheClient := cache.NewFromClient(rdb)

	bus := NewBus(0)
	publisher := NewPublisher(bus, cacheClient)

	sub := bus.Subscribe("exec-3")
	defer sub.Close()

	mr.Close() // Redis goes away

	publisher.Publish(context.Background(), Event{
		ID:          "evt-3",
		Type:        TypeExecutionLog,
		ExecutionID: "exec-3",
		Sequence:    1,
	})

	select {
	case evt := <-sub.C:
		assert.Equal(t, "evt-3", evt.ID)
	case <-time.After(time.Second):
		t.Fatal("bus subscriber should receive despite Redis outage")
	}
}

func TestPublisher_NilCacheSkipsRemoteLeg(t *testing.T) {
	bus := NewBus(0)
	publisher := NewPublisher(bus, nil)

	sub := bus.Subscribe("")
	defer sub.Close()

	require.NotPanics(t, func() {
		publisher.Publish(context.Background(), Event{ID: "evt-4", Type: TypeExecutionProgress, ExecutionID: "e"})
	})

	select {
	case evt := <-sub.C:
		assert.Equal(t, "evt-4", evt.ID)
	case <-time.After(time.Second):
		t.Fatal("expected bus delivery")
	}
}
