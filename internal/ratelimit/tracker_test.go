// internal/ratelimit/tracker_test.go
package ratelimit

import (
	"net/http"
	"testing"
	"time"
)

func TestRecordFullHeaders(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(1700000000, 0)
	tr.now = func() time.Time { return now }

	h := http.Header{}
	h.Set("x-ratelimit-remaining", "96")
	h.Set("x-ratelimit-used", "4")
	h.Set("x-ratelimit-reset", "540")

	tr.Record(h)

	snap := tr.Status()
	if snap.Remaining == nil || *snap.Remaining != 96 {
		t.Errorf("expected remaining 96, got %v", snap.Remaining)
	}
	if snap.Used == nil || *snap.Used != 4 {
		t.Errorf("expected used 4, got %v", snap.Used)
	}
	if snap.ResetAt == nil || !snap.ResetAt.Equal(now.Add(540*time.Second)) {
		t.Errorf("expected reset at %v, got %v", now.Add(540*time.Second), snap.ResetAt)
	}

	limit, ok := snap.Limit()
	if !ok || limit != 100 {
		t.Errorf("expected limit 100, got %v (ok=%v)", limit, ok)
	}
}

func TestRecordMissingHeadersKeepsUnknown(t *testing.T) {
	tr := NewTracker()

	tr.Record(http.Header{})

	snap := tr.Status()
	if snap.Remaining != nil || snap.Used != nil || snap.ResetAt != nil {
		t.Errorf("expected all fields unknown, got %+v", snap)
	}
	if _, ok := snap.Limit(); ok {
		t.Error("expected unknown limit")
	}
}

func TestRecordPartialFailureKeepsPreviousValue(t *testing.T) {
	tr := NewTracker()

	h := http.Header{}
	h.Set("x-ratelimit-remaining", "50")
	h.Set("x-ratelimit-used", "50")
	tr.Record(h)

	// Second response with a garbage remaining field and no used field.
	h2 := http.Header{}
	h2.Set("x-ratelimit-remaining", "not-a-number")
	tr.Record(h2)

	snap := tr.Status()
	if snap.Remaining == nil || *snap.Remaining != 50 {
		t.Errorf("expected remaining to keep previous value 50, got %v", snap.Remaining)
	}
	if snap.Used == nil || *snap.Used != 50 {
		t.Errorf("expected used to keep previous value 50, got %v", snap.Used)
	}
}

func TestRecordReplacesWhole(t *testing.T) {
	tr := NewTracker()

	h := http.Header{}
	h.Set("x-ratelimit-remaining", "80")
	h.Set("x-ratelimit-used", "20")
	tr.Record(h)

	h2 := http.Header{}
	h2.Set("x-ratelimit-remaining", "79")
	h2.Set("x-ratelimit-used", "21")
	tr.Record(h2)

	snap := tr.Status()
	if *snap.Remaining != 79 || *snap.Used != 21 {
		t.Errorf("expected last observed values, got remaining=%v used=%v", *snap.Remaining, *snap.Used)
	}
}

func TestStatusIsSnapshot(t *testing.T) {
	tr := NewTracker()

	h := http.Header{}
	h.Set("x-ratelimit-remaining", "10")
	tr.Record(h)

	before := tr.Status()

	h2 := http.Header{}
	h2.Set("x-ratelimit-remaining", "9")
	tr.Record(h2)

	if *before.Remaining != 10 {
		t.Errorf("snapshot mutated by later record: %v", *before.Remaining)
	}
}
