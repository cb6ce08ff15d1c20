package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agent-orchestra/orchestra/ent/execution"
)

// PoolHealth summarizes this pod's dispatch capacity and the shared
// queue, for the health endpoint.
type PoolHealth struct {
	PodID            string         `json:"pod_id"`
	Workers          int            `json:"workers"`
	BusyWorkers      int            `json:"busy_workers"`
	ActiveExecutions int            `json:"active_executions"`
	QueueDepth       int            `json:"queue_depth"`
	QueueReachable   bool           `json:"queue_reachable"`
	LastOrphanScan   *time.Time     `json:"last_orphan_scan,omitempty"`
	OrphansRecovered int            `json:"orphans_recovered"`
	WorkerStats      []WorkerHealth `json:"worker_stats,omitempty"`
}

// Pool owns a pod's workers, the registry of in-flight cancel funcs,
// and the periodic orphan sweep. Worker count doubles as the pod's
// concurrency ceiling; there is no separate capacity gate.
type Pool struct {
	engine *Engine

	mu      sync.RWMutex
	workers []*Worker
	active  map[string]context.CancelFunc
	started bool

	lastOrphanScan   *time.Time
	orphansRecovered int

	stopOnce   sync.Once
	orphanStop chan struct{}
	orphanWG   sync.WaitGroup
}

func newPool(e *Engine) *Pool {
	return &Pool{
		engine:     e,
		active:     make(map[string]context.CancelFunc),
		orphanStop: make(chan struct{}),
	}
}

// Start spins up the configured number of workers and the orphan sweep.
// ctx must outlive the pool; cancel it only after Stop returns.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return errors.New("worker pool already started")
	}
	p.started = true
	for i := 0; i < p.engine.cfg.Workers; i++ {
		p.workers = append(p.workers, newWorker(fmt.Sprintf("worker-%d", i), p.engine, p))
	}
	workers := p.workers
	p.mu.Unlock()

	for _, w := range workers {
		w.Start(ctx)
	}
	p.orphanWG.Add(1)
	go p.orphanLoop(ctx)

	slog.Info("Worker pool started",
		"pod_id", p.engine.podID,
		"workers", len(workers),
		"poll_interval", p.engine.cfg.PollInterval,
		"heartbeat_interval", p.engine.cfg.HeartbeatInterval)
	return nil
}

// Stop drains the pool. Workers stop claiming immediately; in-flight
// runs get half the grace period to finish on their own, then their
// contexts are cancelled and the rest of the grace period is spent
// waiting for them to wind down.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		grace := p.engine.cfg.StopGrace
		slog.Info("Worker pool stopping", "grace", grace)

		close(p.orphanStop)
		workers := p.snapshotWorkers()
		for _, w := range workers {
			w.signalStop()
		}

		done := make(chan struct{})
		go func() {
			for _, w := range workers {
				w.wait()
			}
			p.orphanWG.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(grace / 2):
			n := p.CancelAll()
			slog.Warn("Grace period half spent, cancelling in-flight executions", "count", n)
			select {
			case <-done:
			case <-time.After(grace / 2):
				slog.Error("Worker pool stop timed out, abandoning workers")
				return
			}
		}
		slog.Info("Worker pool stopped")
	})
}

func (p *Pool) snapshotWorkers() []*Worker {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*Worker, len(p.workers))
	copy(out, p.workers)
	return out
}

// register records the cancel func for an in-flight execution so
// same-pod cancels interrupt the plugin immediately.
func (p *Pool) register(executionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[executionID] = cancel
}

func (p *Pool) unregister(executionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, executionID)
}

// CancelExecution interrupts an execution running on this pod. Reports
// whether the execution was found locally; a false tells the caller the
// run lives on another replica (or already finished). A remote run
// notices the state flip at its next heartbeat and winds itself down.
func (p *Pool) CancelExecution(executionID string) bool {
	p.mu.RLock()
	cancel, ok := p.active[executionID]
	p.mu.RUnlock()
	if ok {
		cancel()
	}
	return ok
}

// CancelAll interrupts every execution in flight on this pod.
func (p *Pool) CancelAll() int {
	p.mu.RLock()
	cancels := make([]context.CancelFunc, 0, len(p.active))
	for _, c := range p.active {
		cancels = append(cancels, c)
	}
	p.mu.RUnlock()
	for _, c := range cancels {
		c()
	}
	return len(cancels)
}

// Health snapshots the pool and queries the shared queue depth.
func (p *Pool) Health(ctx context.Context) *PoolHealth {
	p.mu.RLock()
	h := &PoolHealth{
		PodID:            p.engine.podID,
		Workers:          len(p.workers),
		ActiveExecutions: len(p.active),
		LastOrphanScan:   p.lastOrphanScan,
		OrphansRecovered: p.orphansRecovered,
	}
	workers := make([]*Worker, len(p.workers))
	copy(workers, p.workers)
	p.mu.RUnlock()

	for _, w := range workers {
		stat := w.Health()
		if stat.State == WorkerBusy {
			h.BusyWorkers++
		}
		h.WorkerStats = append(h.WorkerStats, stat)
	}

	depth, err := p.engine.client.Execution.Query().
		Where(execution.StateEQ(execution.StatePending)).
		Count(ctx)
	if err != nil {
		slog.Warn("Failed to query queue depth", "error", err)
		return h
	}
	h.QueueDepth = depth
	h.QueueReachable = true
	return h
}

// orphanLoop periodically reclaims running rows whose heartbeat went
// stale (crashed pod, partitioned pod past its deadline).
func (p *Pool) orphanLoop(ctx context.Context) {
	defer p.orphanWG.Done()
	ticker := time.NewTicker(p.engine.cfg.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.orphanStop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.engine.recoverStale(ctx)
			now := time.Now()
			p.mu.Lock()
			p.lastOrphanScan = &now
			p.orphansRecovered += n
			p.mu.Unlock()
			if err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}
