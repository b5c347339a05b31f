// internal/ratelimit/tracker.go

// Package ratelimit tracks the quota Reddit reports via response headers.
// The tracker is purely observational: it never delays or rejects a request.
// Quota exhaustion shows up as an HTTP 429 from Reddit, not as a gate here.
package ratelimit

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"reddit-tools/internal/metrics"
)

const (
	HeaderRemaining = "x-ratelimit-remaining"
	HeaderUsed      = "x-ratelimit-used"
	HeaderReset     = "x-ratelimit-reset"
)

// Snapshot is a point-in-time copy of the last observed quota headers.
// Nil pointer fields mean the value has never been observed.
type Snapshot struct {
	Remaining *float64
	Used      *float64
	// ResetAt is the absolute time the current window resets, derived from
	// the reset-seconds header at record time.
	ResetAt *time.Time
}

// Limit returns remaining+used when both are known.
func (s Snapshot) Limit() (float64, bool) {
	if s.Remaining == nil || s.Used == nil {
		return 0, false
	}
	return *s.Remaining + *s.Used, true
}

// Tracker holds the most recent quota snapshot. Concurrent recorders race
// with last-writer-wins semantics; there is no read-modify-write cycle, so a
// single atomic pointer swap is all the coordination needed.
type Tracker struct {
	current atomic.Pointer[Snapshot]
	now     func() time.Time
}

func NewTracker() *Tracker {
	t := &Tracker{now: time.Now}
	t.current.Store(&Snapshot{})
	return t
}

// Record extracts quota fields from response headers. A field that is missing
// or unparseable keeps its previous value; the snapshot is replaced whole.
func (t *Tracker) Record(h http.Header) {
	prev := t.current.Load()
	next := *prev

	if v, ok := parseHeaderFloat(h, HeaderRemaining); ok {
		next.Remaining = &v
	}
	if v, ok := parseHeaderFloat(h, HeaderUsed); ok {
		next.Used = &v
	}
	if v, ok := parseHeaderFloat(h, HeaderReset); ok {
		at := t.now().Add(time.Duration(v * float64(time.Second)))
		next.ResetAt = &at
	}

	t.current.Store(&next)

	metrics.RateLimitUpdates.Inc()
	if next.Remaining != nil {
		metrics.RateLimitRemaining.Set(*next.Remaining)
	}
	if next.Used != nil {
		metrics.RateLimitUsed.Set(*next.Used)
	}
}

// Status returns the current snapshot. It never blocks and performs no I/O.
func (t *Tracker) Status() Snapshot {
	return *t.current.Load()
}

func parseHeaderFloat(h http.Header, key string) (float64, bool) {
	raw := h.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
