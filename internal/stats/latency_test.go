package stats

import (
	"testing"
	"time"
)

func TestWindowSnapshotPercentiles(t *testing.T) {
	w := NewWindow(time.Hour)
	for _, ms := range []int64{500, 100, 400, 200, 300} {
		w.Record(ms)
	}

	snap := w.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Fatalf("expected min=100 max=500, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestWindowPrunesExpiredSamples(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	w := NewWindow(time.Minute)
	w.now = func() time.Time { return now }

	w.Record(100)
	now = now.Add(2 * time.Minute)

	if snap := w.Snapshot(); snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}

	w.Record(200)
	snap := w.Snapshot()
	if snap.Count != 1 || snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected a single 200ms sample, got %+v", snap)
	}
}

func TestWindowObserve(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	w := NewWindow(time.Hour)
	w.now = func() time.Time { return now }

	w.Observe(now.Add(-250 * time.Millisecond))
	if snap := w.Snapshot(); snap.MaxMs != 250 {
		t.Fatalf("expected 250ms, got %d", snap.MaxMs)
	}
}

func TestWindowRecordClampsNegative(t *testing.T) {
	w := NewWindow(0)
	w.Record(-10)
	snap := w.Snapshot()
	if snap.Count != 1 || snap.MaxMs != 0 {
		t.Fatalf("expected one clamped sample, got %+v", snap)
	}
}

func TestEmptySnapshot(t *testing.T) {
	if snap := NewWindow(time.Hour).Snapshot(); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
