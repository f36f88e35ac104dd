package metrics

import (
	"sync"
	"time"
)

type opKey struct {
	op     string
	result string
}

// Recorder captures lightweight, in-memory metrics and forwards them to otel when configured.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu           sync.Mutex
	ops          map[opKey]int
	readFailures int
	picks        int
	submissions  int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		ops:  make(map[opKey]int),
		otel: otel,
	}
}

// RecordWishlistOp counts a wishlist operation by name and result.
func (r *Recorder) RecordWishlistOp(op, result string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ops[opKey{op: op, result: result}]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordWishlistOp(op, result)
	}
}

// RecordStoreReadFailure counts a wishlist read that was treated as empty.
func (r *Recorder) RecordStoreReadFailure(backend string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.readFailures++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordReadFailure(backend)
	}
}

// RecordPick counts a random selection.
func (r *Recorder) RecordPick() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPick()
	}
}

// RecordSubmission counts an accepted or rejected submission.
func (r *Recorder) RecordSubmission(result string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if result == ResultOK {
		r.submissions++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSubmission(result)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the in-memory counters.
type Snapshot struct {
	Saves               int
	Removes             int
	WriteErrors         int
	StoreReadFailures   int
	Picks               int
	AcceptedSubmissions int
}

// WishlistOps returns how often op finished with result.
func (r *Recorder) WishlistOps(op, result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ops[opKey{op: op, result: result}]
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Saves:               r.ops[opKey{OpSave, ResultOK}],
		Removes:             r.ops[opKey{OpRemove, ResultOK}],
		WriteErrors:         r.ops[opKey{OpSave, ResultError}] + r.ops[opKey{OpRemove, ResultError}],
		StoreReadFailures:   r.readFailures,
		Picks:               r.picks,
		AcceptedSubmissions: r.submissions,
	}
}
