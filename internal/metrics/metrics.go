package metrics

import (
	"sync"
	"time"
)

type backendStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about league API calls and
// form submissions, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	backend     map[string]*backendStats
	submissions map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		backend:     make(map[string]*backendStats),
		submissions: make(map[string]int),
		otel:        otel,
	}
}

// RecordBackendCall increments counters for a league API operation and stores the last observed latency.
func (r *Recorder) RecordBackendCall(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.backend[op]
	if !ok {
		stats = &backendStats{}
		r.backend[op] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBackendCall(op, duration, err)
	}
}

// RecordSubmission counts a finished submit by verb and result.
// verb is empty when the submission never reached dispatch.
func (r *Recorder) RecordSubmission(verb, result string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.submissions[result]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSubmission(verb, result, duration)
	}
}

// BackendCalls returns the total calls recorded for an operation.
func (r *Recorder) BackendCalls(op string) int {
	return r.Snapshot(op).Calls
}

// BackendErrors returns the failed calls recorded for an operation.
func (r *Recorder) BackendErrors(op string) int {
	return r.Snapshot(op).Errors
}

// Submissions returns how many submits finished with result.
func (r *Recorder) Submissions(result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submissions[result]
}

// Snapshot returns a copy of the current stats for a league API operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.backend[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
