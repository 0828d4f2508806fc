package watcher

import (
	"sync"
	"time"
)

// Coalescer collapses bursts of file change notifications into a single
// signal emitted after a quiet period. The index has no incremental update
// path — any change means a full rebuild — so there is nothing to keep per
// path, only the fact that something changed.
type Coalescer struct {
	interval time.Duration
	mu       sync.Mutex
	pending  int
	timer    *time.Timer
	output   chan int
}

// NewCoalescer creates a coalescer with the specified quiet interval.
func NewCoalescer(interval time.Duration) *Coalescer {
	return &Coalescer{
		interval: interval,
		output:   make(chan int, 1),
	}
}

// Output returns the channel that receives one value per quiet-period
// expiry, carrying the number of changes collapsed into the signal.
func (c *Coalescer) Output() <-chan int {
	return c.output
}

// Touch records one change and restarts the quiet-period timer.
func (c *Coalescer) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending++
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, c.flush)
}

// flush emits the accumulated change count and resets the counter. If the
// consumer has not drained the previous signal yet, the counts merge.
func (c *Coalescer) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == 0 {
		return
	}

	select {
	case c.output <- c.pending:
		c.pending = 0
	default:
		// Consumer still busy with the previous signal; retry after
		// another quiet interval.
		c.timer = time.AfterFunc(c.interval, c.flush)
	}
}
