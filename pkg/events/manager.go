package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// subscribeTimeout bounds how long a Redis SUBSCRIBE may block when a
// room gains its first local subscriber. Without this, a stalled
// connection would block the subscribing goroutine (and thus the
// client's read loop) indefinitely.
const subscribeTimeout = 10 * time.Second

// Subscriber identifies the authenticated principal behind a WebSocket
// connection. Room authorization decisions are made against it.
type Subscriber struct {
	UserID string
	Role   string
}

// RoomGate authorizes room subscriptions against the persistent store
// and supplies the snapshot pushed to new execution room subscribers.
// Implemented by the execution service.
type RoomGate interface {
	// AuthorizeRoom returns nil if sub may join the room.
	AuthorizeRoom(ctx context.Context, sub Subscriber, room string) error

	// ExecutionSnapshot returns the current execution row plus its most
	// recent logs, eldest log first. The manager wraps it in a snapshot
	// message.
	ExecutionSnapshot(ctx context.Context, executionID string) (any, error)
}

// ConnectionManager manages WebSocket connections and room
// subscriptions. Each Go process (pod) has one ConnectionManager
// instance.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Room subscriptions: room → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// RoomGate for authorization and snapshots
	gate RoomGate

	// Bridge for dynamic Redis SUBSCRIBE/UNSUBSCRIBE (set after construction)
	bridge   *Bridge
	bridgeMu sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all
// reads and writes (subscribe, unsubscribe, unregisterConnection)
// happen on the single goroutine that owns this connection
// (HandleConnection's read loop and its deferred cleanup). If a
// Connection is ever mutated from a different goroutine (e.g. an admin
// "kick" feature), subscriptions must be protected by a mutex.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	Sub           Subscriber
	subscriptions map[string]bool // rooms this connection is subscribed to
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(gate RoomGate, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		gate:         gate,
		writeTimeout: writeTimeout,
	}
}

// SetBridge sets the Bridge for dynamic Redis channel relays. Called
// once during startup after both ConnectionManager and Bridge are
// created.
func (m *ConnectionManager) SetBridge(b *Bridge) {
	m.bridgeMu.Lock()
	defer m.bridgeMu.Unlock()
	m.bridge = b
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection. Called by the WebSocket HTTP handler after upgrade with
// the authenticated principal. Blocks until the connection closes or
// parentCtx ends (the API layer bounds parentCtx by the token's
// remaining validity).
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, sub Subscriber) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		Sub:           sub,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	// Send connection established message
	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop: process client messages until connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or errored, exit read loop
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends an event payload to all connections subscribed to the
// given room.
func (m *ConnectionManager) Broadcast(room string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[room]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	// Copy IDs to avoid holding lock during sends
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// sending. This avoids holding mu.RLock during potentially slow
	// writes (up to writeTimeout per connection), which would stall
	// connection register/unregister operations.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "room", room, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a room. Tests
// poll it instead of sleeping.
func (m *ConnectionManager) subscriberCount(room string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[room])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		kind, executionID, ok := SplitRoom(msg.Channel)
		if !ok {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "unknown channel",
			})
			return
		}
		if m.gate != nil {
			if err := m.gate.AuthorizeRoom(ctx, c.Sub, msg.Channel); err != nil {
				slog.Warn("Rejected room subscription",
					"connection_id", c.ID, "user_id", c.Sub.UserID, "channel", msg.Channel, "error", err)
				m.sendJSON(c, map[string]string{
					"type":    "subscription.error",
					"channel": msg.Channel,
					"message": "not authorized for channel",
				})
				return
			}
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Execution rooms get a snapshot of current state so the client
		// starts from a known point. Live events may overlap the
		// snapshot's log tail; clients dedupe by sequence.
		if kind == RoomExecution {
			m.sendSnapshot(ctx, c, msg.Channel, executionID)
		}

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a room and starts the Redis
// relay if it is the first local subscriber. The relay subscription is
// synchronous so it completes before subscribe returns: the subsequent
// snapshot query then runs with the relay already active, closing the
// gap where events published between snapshot and relay activation
// would be lost.
//
// Returns an error if the relay fails so the caller can inform the
// client instead of sending a false subscription.confirmed.
func (m *ConnectionManager) subscribe(c *Connection, room string) error {
	m.channelMu.Lock()
	needsRelay := false
	if _, exists := m.channels[room]; !exists {
		m.channels[room] = make(map[string]bool)
		needsRelay = true
	}
	m.channels[room][c.ID] = true
	m.channelMu.Unlock()

	if needsRelay {
		m.bridgeMu.RLock()
		b := m.bridge
		m.bridgeMu.RUnlock()
		if b != nil {
			relayCtx, relayCancel := context.WithTimeout(context.Background(), subscribeTimeout)
			defer relayCancel()
			if err := b.Subscribe(relayCtx, room); err != nil {
				slog.Error("Failed to subscribe relay channel", "room", room, "error", err)
				m.cleanupFailedChannel(c, room)
				return fmt.Errorf("subscribe room %s: %w", room, err)
			}
		}
	}

	c.subscriptions[room] = true
	return nil
}

// cleanupFailedChannel removes ALL subscribers from a room after a
// relay failure and notifies every affected connection (except the
// triggering one, which is notified by the caller via the returned
// error).
//
// Between unlocking channelMu (after creating the room entry) and
// b.Subscribe completing, other goroutines may have subscribed to the
// same room. Because they saw the room already existed they skipped the
// relay and returned success. Those connections are now orphaned: they
// received subscription.confirmed but the underlying Redis subscription
// was never established. This helper cleans them up.
//
// Client-side contract: an orphaned connection may observe the sequence
// subscription.confirmed → snapshot → subscription.error. Clients MUST
// treat subscription.error as authoritative: discard any previously
// received state for that room and either re-subscribe (with back-off)
// or fall back to REST polling.
//
// Note: affected connections may retain a stale c.subscriptions[room]
// entry. This is harmless: Broadcast uses m.channels (now deleted), and
// unsubscribe / unregisterConnection handle missing room entries
// gracefully.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, room string) {
	// Collect all affected connection IDs and delete the room entirely.
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[room]))
	for connID := range m.channels[room] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, room)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	// Look up connection pointers (without holding channelMu).
	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	// Notify each affected connection that the subscription failed.
	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after relay failure",
			"connection_id", conn.ID, "room", room)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": room,
			"message": "channel relay failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a room and stops the relay if
// it was the last local subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, room string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[room]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, room)
			// Last subscriber left, stop the relay.
			// The goroutine re-checks m.channels before issuing the
			// UNSUBSCRIBE to prevent a race where a rapid
			// unsubscribe/resubscribe cycle (e.g. React StrictMode
			// double-render) would drop the relay:
			//   subscribe → relay active
			//   unsubscribe → goroutine: UNSUBSCRIBE (deferred)
			//   resubscribe → room re-added to m.channels
			//   goroutine → sees resubscribed → skips UNSUBSCRIBE
			m.bridgeMu.RLock()
			b := m.bridge
			m.bridgeMu.RUnlock()
			if b != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[room]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := b.Unsubscribe(context.Background(), room); err != nil {
						slog.Error("Failed to unsubscribe relay channel", "room", room, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, room)
}

// sendSnapshot pushes the execution row and recent logs to a new
// execution room subscriber.
func (m *ConnectionManager) sendSnapshot(ctx context.Context, c *Connection, room, executionID string) {
	if m.gate == nil {
		return
	}

	snap, err := m.gate.ExecutionSnapshot(ctx, executionID)
	if err != nil {
		slog.Error("Snapshot query failed", "execution_id", executionID, "error", err)
		return
	}

	m.sendJSON(c, map[string]any{
		"type":    "snapshot",
		"channel": room,
		"data":    snap,
	})
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	// Remove from all room subscriptions
	for room := range c.subscriptions {
		m.unsubscribe(c, room)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
