package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(0, 0)

	if fs.Advance(start) {
		t.Fatal("first call must only prime the clock")
	}
	if fs.Advance(start.Add(60 * time.Millisecond)) {
		t.Fatal("tick fired before a full interval elapsed")
	}
	if !fs.Advance(start.Add(110 * time.Millisecond)) {
		t.Fatal("tick did not fire after a full interval")
	}
	if fs.Advance(start.Add(150 * time.Millisecond)) {
		t.Fatal("tick fired twice within one interval")
	}
}

func TestFixedStepDrainsBacklog(t *testing.T) {
	fs := NewFixedStep(50 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.Advance(start)

	now := start.Add(160 * time.Millisecond)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.Advance(now) {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("fired %d ticks for 160ms at 50ms, expected 3", fired)
	}
}

func TestFixedStepDefaultsAndReset(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("interval = %v, expected %v", fs.Interval(), DefaultInterval)
	}

	start := time.Unix(0, 0)
	fs.Advance(start)
	fs.Advance(start.Add(DefaultInterval - time.Millisecond))
	fs.Reset()
	if fs.Advance(start.Add(DefaultInterval + time.Millisecond)) {
		t.Fatal("Reset must discard accumulated time")
	}
}
