package metrics

import (
	"sync"
	"time"
)

type cycleStats struct {
	runs        int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about polling cycles and
// notification dispatch, mirroring them to OTel instruments when configured.
// A nil Recorder is safe to call.
type Recorder struct {
	mu         sync.Mutex
	cycles     map[string]*cycleStats
	fetches    int
	fetchErrs  int
	dispatches int
	suppressed int
	sendErrs   int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		cycles: make(map[string]*cycleStats),
		otel:   otel,
	}
}

// RecordCycle tracks one scheduler cycle of the given kind.
func (r *Recorder) RecordCycle(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.cycles[kind]
	if stats == nil {
		stats = &cycleStats{}
		r.cycles[kind] = stats
	}
	stats.runs++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(kind, duration, err)
	}
}

// RecordFetch tracks one upstream fetch attempt.
func (r *Recorder) RecordFetch(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.fetches++
	if err != nil {
		r.fetchErrs++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(kind, duration, err)
	}
}

// RecordDispatch tracks one per-channel send attempt.
func (r *Recorder) RecordDispatch(gatewayName string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.dispatches++
	if err != nil {
		r.sendErrs++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDispatch(gatewayName, err)
	}
}

// RecordSuppressed tracks a notification suppressed by the dedupe set.
func (r *Recorder) RecordSuppressed() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.suppressed++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSuppressed()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current in-memory counters.
type Snapshot struct {
	CycleRuns    int
	CycleErrors  int
	Fetches      int
	FetchErrors  int
	Dispatches   int
	SendErrors   int
	Suppressed   int
	LastCycleLat time.Duration
}

// SnapshotCycle returns a copy of the counters for one cycle kind plus the
// shared dispatch counters.
func (r *Recorder) SnapshotCycle(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Fetches:     r.fetches,
		FetchErrors: r.fetchErrs,
		Dispatches:  r.dispatches,
		SendErrors:  r.sendErrs,
		Suppressed:  r.suppressed,
	}
	if stats := r.cycles[kind]; stats != nil {
		snap.CycleRuns = stats.runs
		snap.CycleErrors = stats.errors
		snap.LastCycleLat = stats.lastLatency
	}
	return snap
}
