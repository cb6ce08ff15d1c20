// Package events provides execution event fan-out: an in-process bus
// for engine subscribers, Redis pub/sub for cross-pod distribution, and
// a WebSocket connection manager for realtime clients.
//
// Every event carries a per-execution Sequence assigned at emit time.
// Within one execution the stream is ordered monotonically; across
// executions no ordering is promised. Subscribers attach to live
// traffic only; missed events are recovered from the store (execution
// row plus persisted logs), not replayed by the bus.
package events

import (
	"strings"
	"time"
)

// Event types published by the engine. Webhook subscriptions and client
// filters match on these strings.
const (
	TypeExecutionStarted   = "execution.started"
	TypeExecutionLog       = "execution.log"
	TypeExecutionProgress  = "execution.progress"
	TypeExecutionCompleted = "execution.completed"
	TypeExecutionFailed    = "execution.failed"
	TypeExecutionCancelled = "execution.cancelled"
	TypeExecutionTimeout   = "execution.timeout"

	// Emitted when a webhook is auto-disabled after repeated delivery
	// failures. Addressed to the owner's user room only.
	TypeWebhookDisabled = "webhook.disabled"
)

// Event is the envelope for everything published on the bus.
type Event struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	ExecutionID string         `json:"execution_id,omitempty"`
	AgentID     string         `json:"agent_id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Sequence    int64          `json:"sequence"`
	Timestamp   time.Time      `json:"timestamp"`
	Data        map[string]any `json:"data,omitempty"`
}

// IsTerminal reports whether the event type ends an execution's stream.
// At most one terminal event is ever emitted per execution.
func IsTerminal(eventType string) bool {
	switch eventType {
	case TypeExecutionCompleted, TypeExecutionFailed, TypeExecutionCancelled, TypeExecutionTimeout:
		return true
	}
	return false
}

// LifecycleTypes lists the event types webhooks may subscribe to:
// execution start plus the terminal states. High-frequency stream
// events (log, progress) are deliberately not deliverable over
// webhooks.
func LifecycleTypes() []string {
	return []string{
		TypeExecutionStarted,
		TypeExecutionCompleted,
		TypeExecutionFailed,
		TypeExecutionCancelled,
		TypeExecutionTimeout,
	}
}

// IsLifecycleType reports whether t is webhook-subscribable.
func IsLifecycleType(t string) bool {
	switch t {
	case TypeExecutionStarted, TypeExecutionCompleted, TypeExecutionFailed,
		TypeExecutionCancelled, TypeExecutionTimeout:
		return true
	}
	return false
}

// Room kinds clients may subscribe to.
const (
	RoomUser      = "user"
	RoomExecution = "execution"
	RoomAgent     = "agent"
)

// ExecutionRoom returns the room name for a single execution's events.
// Format: "execution:{execution_id}"
func ExecutionRoom(executionID string) string {
	return RoomExecution + ":" + executionID
}

// UserRoom returns the room name carrying events for all of a user's
// executions plus user-scoped notifications such as webhook.disabled.
func UserRoom(userID string) string {
	return RoomUser + ":" + userID
}

// AgentRoom returns the room name carrying events for all executions of
// one agent.
func AgentRoom(agentID string) string {
	return RoomAgent + ":" + agentID
}

// SplitRoom breaks a "kind:id" room name into its parts. ok is false
// for malformed names and unknown kinds.
func SplitRoom(room string) (kind, id string, ok bool) {
	kind, id, ok = strings.Cut(room, ":")
	if !ok || id == "" {
		return "", "", false
	}
	switch kind {
	case RoomUser, RoomExecution, RoomAgent:
		return kind, id, true
	}
	return "", "", false
}

// BridgeChannel maps a room to the Redis pub/sub channel carrying its
// traffic between pods. Execution rooms map to "execution:{id}:events".
func BridgeChannel(room string) string {
	return room + ":events"
}

// RoomFromBridgeChannel is the inverse of BridgeChannel.
func RoomFromBridgeChannel(channel string) string {
	return strings.TrimSuffix(channel, ":events")
}

// Rooms lists the realtime rooms an event is addressed to.
func (e Event) Rooms() []string {
	rooms := make([]string, 0, 3)
	if e.ExecutionID != "" {
		rooms = append(rooms, ExecutionRoom(e.ExecutionID))
	}
	if e.UserID != "" {
		rooms = append(rooms, UserRoom(e.UserID))
	}
	if e.AgentID != "" {
		rooms = append(rooms, AgentRoom(e.AgentID))
	}
	return rooms
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // room name, e.g. "execution:abc-123"
}
