package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStatus is one round trip against Postgres plus a snapshot of the
// stdlib pool underneath ent. Postgres doubles as the execution queue,
// so a starved pool means claims and heartbeats are queueing too.
type PoolStatus struct {
	LatencyMs int64 `json:"latency_ms"`
	Open      int   `json:"open_connections"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open_conns"`
	WaitCount int64 `json:"wait_count"`
	WaitedMs  int64 `json:"wait_duration_ms"`
}

// Saturated reports whether every pool slot is handed out.
func (p *PoolStatus) Saturated() bool {
	return p.MaxOpen > 0 && p.InUse >= p.MaxOpen
}

// Check pings the database and snapshots the pool. On ping failure the
// status carries only the observed latency and the error says why.
func Check(ctx context.Context, db *sql.DB) (*PoolStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &PoolStatus{LatencyMs: time.Since(start).Milliseconds()}, err
	}

	stats := db.Stats()
	return &PoolStatus{
		LatencyMs: time.Since(start).Milliseconds(),
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		MaxOpen:   stats.MaxOpenConnections,
		WaitCount: stats.WaitCount,
		WaitedMs:  stats.WaitDuration.Milliseconds(),
	}, nil
}
