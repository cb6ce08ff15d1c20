package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(executionID string, seq int64) Event {
	return Event{
		ID:          fmt.Sprintf("evt-%s-%d", executionID, seq),
		Type:        TypeExecutionLog,
		ExecutionID: executionID,
		Sequence:    seq,
		Timestamp:   time.Now(),
	}
}

func TestBus_SubscribeReceivesInOrder(t *testing.T) {
	bus := NewBus(10)
	sub := bus.Subscribe("exec-1")
	defer sub.Close()

	for i := int64(1); i <= 5; i++ {
		bus.Publish(testEvent("exec-1", i))
	}

	for i := int64(1); i <= 5; i++ {
		select {
		case evt := <-sub.C:
			assert.Equal(t, i, evt.Sequence)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestBus_ExecutionFilter(t *testing.T) {
	bus := NewBus(10)
	sub := bus.Subscribe("exec-1")
	defer sub.Close()

	bus.Publish(testEvent("exec-2", 1))
	bus.Publish(testEvent("exec-1", 1))

	select {
	case evt := <-sub.C:
		assert.Equal(t, "exec-1", evt.ExecutionID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for filtered event")
	}

	// Nothing else should be buffered.
	select {
	case evt := <-sub.C:
		t.Fatalf("unexpected event for execution %s", evt.ExecutionID)
	default:
	}
}

func TestBus_WildcardSubscriber(t *testing.T) {
	bus := NewBus(10)
	sub := bus.Subscribe("")
	defer sub.Close()

	bus.Publish(testEvent("exec-1", 1))
	bus.Publish(testEvent("exec-2", 1))

	received := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case evt := <-sub.C:
			received[evt.ExecutionID] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}
	assert.True(t, received["exec-1"])
	assert.True(t, received["exec-2"])
}

func TestBus_SlowSubscriberDropped(t *testing.T) {
	bus := NewBus(1)
	slow := bus.Subscribe("exec-1")
	other := bus.Subscribe("exec-1")
	defer other.Close()

	// First publish fills both buffers; second overflows them, so both
	// unread subscribers are dropped.
	bus.Publish(testEvent("exec-1", 1))
	bus.Publish(testEvent("exec-1", 2))

	assert.Equal(t, 0, bus.subscriberCount())

	// The slow subscriber drains its buffered event, then sees close.
	evt, ok := <-slow.C
	require.True(t, ok)
	assert.Equal(t, int64(1), evt.Sequence)

	_, ok = <-slow.C
	assert.False(t, ok, "dropped subscriber channel should be closed")
}

func TestBus_CloseIsIdempotent(t *testing.T) {
	bus := NewBus(10)
	sub := bus.Subscribe("exec-1")

	sub.Close()
	assert.NotPanics(t, func() { sub.Close() })
	assert.Equal(t, 0, bus.subscriberCount())

	// Publishing after all subscribers are gone must not panic.
	assert.NotPanics(t, func() { bus.Publish(testEvent("exec-1", 1)) })
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(256)
	sub := bus.Subscribe("")

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(seq int64) {
			defer wg.Done()
			bus.Publish(testEvent("exec-1", seq))
		}(int64(i))
	}
	wg.Wait()

	received := 0
	for received < n {
		select {
		case <-sub.C:
			received++
		case <-time.After(time.Second):
			t.Fatalf("received %d of %d events", received, n)
		}
	}
	sub.Close()
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(TypeExecutionCompleted))
	assert.True(t, IsTerminal(TypeExecutionFailed))
	assert.True(t, IsTerminal(TypeExecutionCancelled))
	assert.True(t, IsTerminal(TypeExecutionTimeout))

	assert.False(t, IsTerminal(TypeExecutionStarted))
	assert.False(t, IsTerminal(TypeExecutionLog))
	assert.False(t, IsTerminal(TypeExecutionProgress))
	assert.False(t, IsTerminal(TypeWebhookDisabled))
}

func TestSplitRoom(t *testing.T) {
	kind, id, ok := SplitRoom("execution:abc-123")
	require.True(t, ok)
	assert.Equal(t, RoomExecution, kind)
	assert.Equal(t, "abc-123", id)

	kind, id, ok = SplitRoom(UserRoom("u-1"))
	require.True(t, ok)
	assert.Equal(t, RoomUser, kind)
	assert.Equal(t, "u-1", id)

	for _, bad := range []string{"", "execution", "execution:", "pod:x", ":abc"} {
		_, _, ok := SplitRoom(bad)
		assert.False(t, ok, "room %q should be rejected", bad)
	}
}

func TestBridgeChannelRoundTrip(t *testing.T) {
	room := ExecutionRoom("abc-123")
	assert.Equal(t, "execution:abc-123:events", BridgeChannel(room))
	assert.Equal(t, room, RoomFromBridgeChannel(BridgeChannel(room)))
}

func TestEventRooms(t *testing.T) {
	evt := Event{
		Type:        TypeExecutionCompleted,
		ExecutionID: "e-1",
		AgentID:     "a-1",
		UserID:      "u-1",
	}
	assert.Equal(t, []string{"execution:e-1", "user:u-1", "agent:a-1"}, evt.Rooms())

	disabled := Event{Type: TypeWebhookDisabled, UserID: "u-1"}
	assert.Equal(t, []string{"user:u-1"}, disabled.Rooms())
}
