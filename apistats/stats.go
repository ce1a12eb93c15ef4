// Package apistats maintains the engine's process-lifetime, concurrency-safe
// request counters and uptime clock. Every counter is updated via
// sync/atomic fetch-add so readers never block writers.
package apistats

import (
	"sync/atomic"
	"time"
)

// Stats holds the engine's running counters. The zero value is not ready for
// use; construct with New so startedAt and the route table are populated.
type Stats struct {
	startedAt time.Time

	requestsTotal    uint64
	solveTimeUsSum   uint64
	solveTimeUsCount uint64

	// routes is populated once at construction with every known route name
	// and never mutated afterward, so concurrent map reads by
	// IncrementRoute need no additional synchronization; only the
	// *uint64 values underneath are updated, atomically.
	routes map[string]*uint64
}

// New builds a Stats tracker pre-registering routes (every route name that
// will ever be passed to IncrementRoute).
func New(routes []string) *Stats {
	s := &Stats{
		startedAt: time.Now(),
		routes:    make(map[string]*uint64, len(routes)),
	}
	for _, r := range routes {
		var counter uint64
		s.routes[r] = &counter
	}
	return s
}

// RecordRequest increments requests_total, the named route's counter, and
// (when solveTimeUs >= 0) the solve-time sum/count used to derive an average.
// route must be a name passed to New; an unregistered route is a no-op on
// the per-route counter (requests_total and solve-time still update).
func (s *Stats) RecordRequest(route string, solveTimeUs int64) {
	atomic.AddUint64(&s.requestsTotal, 1)
	if counter, ok := s.routes[route]; ok {
		atomic.AddUint64(counter, 1)
	}
	if solveTimeUs >= 0 {
		atomic.AddUint64(&s.solveTimeUsSum, uint64(solveTimeUs))
		atomic.AddUint64(&s.solveTimeUsCount, 1)
	}
}

// Snapshot is a point-in-time, JSON-serializable read of the counters.
type Snapshot struct {
	RequestsTotal    uint64            `json:"requests_total"`
	RequestsPerRoute map[string]uint64 `json:"requests_per_route"`
	SolveTimeUsSum   uint64            `json:"solve_time_us_sum"`
	SolveTimeUsCount uint64            `json:"solve_time_us_count"`
	UptimeSeconds    float64           `json:"uptime_seconds"`
}

// Snapshot reads every counter consistently enough for reporting purposes;
// each field is read with its own atomic load rather than under a shared
// lock, so a concurrent writer can interleave between fields.
func (s *Stats) Snapshot() Snapshot {
	perRoute := make(map[string]uint64, len(s.routes))
	for name, counter := range s.routes {
		perRoute[name] = atomic.LoadUint64(counter)
	}
	return Snapshot{
		RequestsTotal:    atomic.LoadUint64(&s.requestsTotal),
		RequestsPerRoute: perRoute,
		SolveTimeUsSum:   atomic.LoadUint64(&s.solveTimeUsSum),
		SolveTimeUsCount: atomic.LoadUint64(&s.solveTimeUsCount),
		UptimeSeconds:    time.Since(s.startedAt).Seconds(),
	}
}

// Health is the minimal liveness payload for GET /health.
type Health struct {
	Status     string  `json:"status"`
	Version    string  `json:"version"`
	UptimeSecs float64 `json:"uptime_secs"`
}

// Health reports the engine's liveness payload.
func (s *Stats) Health(version string) Health {
	return Health{
		Status:     "ok",
		Version:    version,
		UptimeSecs: time.Since(s.startedAt).Seconds(),
	}
}
