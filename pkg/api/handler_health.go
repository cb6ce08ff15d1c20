package api

import (
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/pkg/database"
	"github.com/agent-orchestra/orchestra/pkg/version"
)

const (
	// errorRateWindow is the trailing window for the failure-rate check.
	errorRateWindow = time.Hour

	// errorRateThreshold flips the check to warn once at least
	// errorRateMinSamples executions finished inside the window.
	errorRateThreshold  = 0.5
	errorRateMinSamples = 10
)

type databaseCheck struct {
	Status string `json:"status"`
	*database.PoolStatus
	Message string `json:"message,omitempty"`
}

// healthHandler reports service health. Overall status is "fail" with
// HTTP 503 when the database is unreachable; degraded-but-serving
// dependencies (cache, queue, error rate) yield "warn" with HTTP 200.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	overall := "pass"
	degrade := func(to string) {
		if overall == "pass" {
			overall = to
		}
	}

	checks := make(map[string]any, 4)

	pool, dbErr := database.Check(ctx, s.dbClient.DB())
	db := databaseCheck{Status: "pass", PoolStatus: pool}
	switch {
	case dbErr != nil:
		db.Status = "fail"
		db.Message = dbErr.Error()
		overall = "fail"
	case pool.Saturated():
		db.Status = "warn"
		db.Message = "connection pool saturated"
		degrade("warn")
	}
	checks["database"] = db

	// Rate limiting fails open and realtime fan-out pauses without the
	// cache, so its loss degrades rather than fails the service.
	cacheCheck := HealthCheck{Status: "pass"}
	switch {
	case s.cache == nil:
		cacheCheck = HealthCheck{Status: "warn", Message: "cache not configured"}
	default:
		if err := s.cache.Ping(ctx); err != nil {
			cacheCheck = HealthCheck{Status: "warn", Message: err.Error()}
		}
	}
	if cacheCheck.Status != "pass" {
		degrade("warn")
	}
	checks["cache"] = cacheCheck

	queueCheck := QueueCheck{Status: "pass"}
	if s.engine != nil {
		ph := s.engine.Health(ctx)
		queueCheck.Pending = ph.QueueDepth
		queueCheck.Running = ph.ActiveExecutions
		if !ph.QueueReachable {
			queueCheck.Status = "warn"
			queueCheck.Message = "queue unreachable"
			degrade("warn")
		}
	}
	checks["queue"] = queueCheck

	rateCheck := ErrorRateCheck{Status: "pass", Window: errorRateWindow.String()}
	if dbErr == nil {
		since := time.Now().UTC().Add(-errorRateWindow)
		terminal, tErr := s.dbClient.Execution.Query().
			Where(
				execution.StateIn(execution.StateCompleted, execution.StateFailed, execution.StateCancelled, execution.StateTimeout),
				execution.CompletedAtGTE(since),
			).
			Count(ctx)
		failed, fErr := s.dbClient.Execution.Query().
			Where(
				execution.StateIn(execution.StateFailed, execution.StateTimeout),
				execution.CompletedAtGTE(since),
			).
			Count(ctx)
		switch {
		case tErr != nil || fErr != nil:
			slog.Warn("Health error-rate query failed", "terminal_err", tErr, "failed_err", fErr)
			rateCheck.Status = "warn"
			degrade("warn")
		case terminal > 0:
			rateCheck.Samples = terminal
			rateCheck.Rate = float64(failed) / float64(terminal)
			if terminal >= errorRateMinSamples && rateCheck.Rate > errorRateThreshold {
				rateCheck.Status = "warn"
				degrade("warn")
			}
		}
	}
	checks["error_rate"] = rateCheck

	status := http.StatusOK
	if overall == "fail" {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, &HealthResponse{
		Status:        overall,
		Version:       version.GitCommit,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Checks:        checks,
	})
}
