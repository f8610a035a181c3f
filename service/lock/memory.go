package lock

import (
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
)

type entry struct {
	ch   chan struct{}
	refs int
}

type memoryLocker struct {
	mu   sync.Mutex
	keys map[string]*entry
}

// NewMemory returns a Locker for a single process.
func NewMemory() Locker {
	return &memoryLocker{keys: map[string]*entry{}}
}

func (m *memoryLocker) acquire(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.keys[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		m.keys[key] = e
	}
	e.refs++
	return e
}

func (m *memoryLocker) release(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.keys, key)
	}
}

func (m *memoryLocker) Lock(c ctx.Ctx, key string) (func(), error) {
	e := m.acquire(key)
	select {
	case e.ch <- struct{}{}:
	case <-c.Done():
		m.release(key, e)
		c.WithField("key", key).Warn("lock timeout")
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			m.release(key, e)
		})
	}, nil
}

func (m *memoryLocker) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}
