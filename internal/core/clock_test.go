package core

import (
	"testing"
	"time"
)

func TestClockFirstCallRuns(t *testing.T) {
	c := NewClock(60)
	if !c.Due(time.Unix(0, 0)) {
		t.Error("first Due() call should grant a step")
	}
}

func TestClockSkipsShortIntervals(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Due(start)

	if c.Due(start.Add(5 * time.Millisecond)) {
		t.Error("Due() should skip when less than one tick elapsed")
	}
	if !c.Due(start.Add(c.Tick())) {
		t.Error("Due() should run once a full tick elapsed")
	}
}

func TestClockDoesNotAccumulateDrift(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Due(start)

	// A very late callback grants a single step and re-anchors there.
	late := start.Add(10 * c.Tick())
	if !c.Due(late) {
		t.Fatal("late callback should run")
	}
	if c.Due(late.Add(time.Millisecond)) {
		t.Error("missed ticks must not be replayed")
	}
}

func TestClockDefaultRate(t *testing.T) {
	c := NewClock(0)
	if c.Tick() != time.Second/60 {
		t.Errorf("Tick() = %v, expected %v", c.Tick(), time.Second/60)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(60)
	start := time.Unix(100, 0)
	c.Due(start)
	c.Reset()
	if !c.Due(start.Add(time.Millisecond)) {
		t.Error("Due() after Reset should run immediately")
	}
}
