package counter

import (
	"sync"
	"time"
)

// Counter tracks in-flight work and lets callers wait for it to drain.
type Counter struct {
	count int
	mu    sync.Mutex
	zero  *sync.Cond
}

func NewCounter() *Counter {
	c := &Counter{}
	c.zero = sync.NewCond(&c.mu)
	return c
}

func (c *Counter) Add(val int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += val
	if c.count <= 0 {
		c.zero.Broadcast()
	}
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// WaitZero blocks until the count drops to zero or timeout passes. It reports
// whether the count reached zero. On timeout the waiter goroutine lives on
// until the count drains.
func (c *Counter) WaitZero(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		c.mu.Lock()
		for c.count > 0 {
			c.zero.Wait()
		}
		c.mu.Unlock()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
