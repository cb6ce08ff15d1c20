package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/agent-orchestra/orchestra/pkg/cache"
)

// Bridge relays events published to Redis by any pod into the local
// ConnectionManager. Each Go process runs one Bridge. Rooms map to
// Redis channels via BridgeChannel; the first local subscriber of a
// room starts the Redis subscription and the last one stops it.
//
// go-redis reestablishes the subscription set itself after a connection
// loss, so there is no reconnect loop here.
type Bridge struct {
	cache   *cache.Client
	manager *ConnectionManager

	pubsub   *redis.PubSub
	rooms    map[string]bool
	roomsMu  sync.RWMutex
	running  atomic.Bool
	loopDone chan struct{}
}

// NewBridge creates a Bridge that dispatches into manager.
func NewBridge(cacheClient *cache.Client, manager *ConnectionManager) *Bridge {
	return &Bridge{
		cache:   cacheClient,
		manager: manager,
		rooms:   make(map[string]bool),
	}
}

// Start opens the pub/sub connection and begins relaying messages.
func (b *Bridge) Start(ctx context.Context) error {
	b.pubsub = b.cache.Subscriber(ctx)
	b.running.Store(true)
	b.loopDone = make(chan struct{})
	go func() {
		defer close(b.loopDone)
		b.receiveLoop()
	}()
	slog.Info("Event bridge started")
	return nil
}

// Subscribe starts relaying a room's Redis channel. Idempotent.
func (b *Bridge) Subscribe(ctx context.Context, room string) error {
	b.roomsMu.Lock()
	if b.rooms[room] {
		b.roomsMu.Unlock()
		return nil
	}
	b.roomsMu.Unlock()

	if !b.running.Load() {
		return fmt.Errorf("event bridge not started")
	}

	channel := BridgeChannel(room)
	if err := b.pubsub.Subscribe(ctx, channel); err != nil {
		return fmt.Errorf("SUBSCRIBE %s failed: %w", channel, err)
	}

	b.roomsMu.Lock()
	b.rooms[room] = true
	b.roomsMu.Unlock()
	slog.Debug("Bridge subscribed to room channel", "room", room)
	return nil
}

// Unsubscribe stops relaying a room's Redis channel.
func (b *Bridge) Unsubscribe(ctx context.Context, room string) error {
	b.roomsMu.Lock()
	if !b.rooms[room] {
		b.roomsMu.Unlock()
		return nil
	}
	b.roomsMu.Unlock()

	if !b.running.Load() {
		return nil
	}

	channel := BridgeChannel(room)
	if err := b.pubsub.Unsubscribe(ctx, channel); err != nil {
		return fmt.Errorf("UNSUBSCRIBE %s failed: %w", channel, err)
	}

	b.roomsMu.Lock()
	delete(b.rooms, room)
	b.roomsMu.Unlock()
	return nil
}

// receiveLoop relays pub/sub messages until the PubSub handle is closed.
func (b *Bridge) receiveLoop() {
	for msg := range b.pubsub.Channel() {
		b.manager.Broadcast(RoomFromBridgeChannel(msg.Channel), []byte(msg.Payload))
	}
}

// Stop closes the pub/sub connection and waits for the relay loop to
// drain.
func (b *Bridge) Stop() {
	b.running.Store(false)
	if b.pubsub != nil {
		_ = b.pubsub.Close()
	}
	if b.loopDone != nil {
		<-b.loopDone
	}
}
