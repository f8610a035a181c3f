package lock

import (
	"errors"

	"github.com/x-xyz/goauction/base/ctx"
)

// ErrLockTimeout is returned when the context ends before the key is free
var ErrLockTimeout = errors.New("lock timeout")

// Locker serializes work per key. Calls on different keys never wait on each
// other.
type Locker interface {
	// Lock blocks until key is held or c is done. unlock must be called once.
	Lock(c ctx.Ctx, key string) (unlock func(), err error)
}
