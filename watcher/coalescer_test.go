package watcher

import (
	"testing"
	"time"
)

const testInterval = 50 * time.Millisecond

func receiveSignal(t *testing.T, c *Coalescer, timeout time.Duration) int {
	t.Helper()
	select {
	case count := <-c.Output():
		return count
	case <-time.After(timeout):
		t.Fatal("timed out waiting for coalescer signal")
		return 0
	}
}

func Test_Coalescer_SingleChange(t *testing.T) {
	c := NewCoalescer(testInterval)

	c.Touch()

	if count := receiveSignal(t, c, 500*time.Millisecond); count != 1 {
		t.Errorf("expected 1 collapsed change, got %d", count)
	}
}

func Test_Coalescer_BurstCollapses(t *testing.T) {
	c := NewCoalescer(testInterval)

	// A burst of changes within the quiet window yields one signal.
	for i := 0; i < 5; i++ {
		c.Touch()
	}

	if count := receiveSignal(t, c, 500*time.Millisecond); count != 5 {
		t.Errorf("expected 5 collapsed changes, got %d", count)
	}

	// And nothing further without new changes.
	select {
	case count := <-c.Output():
		t.Errorf("unexpected extra signal carrying %d", count)
	case <-time.After(3 * testInterval):
	}
}

func Test_Coalescer_SeparateBursts(t *testing.T) {
	c := NewCoalescer(testInterval)

	c.Touch()
	if count := receiveSignal(t, c, 500*time.Millisecond); count != 1 {
		t.Fatalf("first burst: expected 1, got %d", count)
	}

	c.Touch()
	c.Touch()
	if count := receiveSignal(t, c, 500*time.Millisecond); count != 2 {
		t.Errorf("second burst: expected 2, got %d", count)
	}
}

func Test_Coalescer_QuietWithoutChanges(t *testing.T) {
	c := NewCoalescer(testInterval)

	select {
	case <-c.Output():
		t.Error("expected no signal without changes")
	case <-time.After(3 * testInterval):
	}
}
