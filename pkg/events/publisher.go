package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/agent-orchestra/orchestra/pkg/cache"
)

// Publisher delivers events to in-process bus subscribers and, best
// effort, to Redis pub/sub for other pods. The Redis leg is bounded by
// the cache client's operation timeout and its failures are only
// logged, so the engine never stalls on a broker hiccup.
type Publisher struct {
	bus   *Bus
	cache *cache.Client
}

// NewPublisher creates a Publisher. cacheClient may be nil, which
// disables the cross-pod leg (single-process tests).
func NewPublisher(bus *Bus, cacheClient *cache.Client) *Publisher {
	return &Publisher{bus: bus, cache: cacheClient}
}

// Bus exposes the in-process bus for direct subscribers (SSE streams,
// the webhook enqueuer).
func (p *Publisher) Bus() *Bus {
	return p.bus
}

// Publish fans the event out to both legs. The in-process leg always
// runs first so local subscribers observe events even when Redis is
// down.
func (p *Publisher) Publish(ctx context.Context, evt Event) {
	p.bus.Publish(evt)

	if p.cache == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("Failed to marshal event for pub/sub",
			"type", evt.Type, "execution_id", evt.ExecutionID, "error", err)
		return
	}
	for _, room := range evt.Rooms() {
		if err := p.cache.Publish(ctx, BridgeChannel(room), payload); err != nil {
			slog.Warn("Failed to publish event to Redis",
				"channel", BridgeChannel(room), "type", evt.Type, "error", err)
		}
	}
}
