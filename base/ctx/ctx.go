package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/goauction/base/log"
)

const (
	keyRequestID = "requestId"
	keyCaller    = "caller"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. one handed over by a driver callback,
// keeping the logger of parent.
func From(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithRequestID(parent Ctx, id string) Ctx {
	return WithValue(parent, keyRequestID, id)
}

func RequestID(c Ctx) string {
	id, _ := c.Value(keyRequestID).(string)
	return id
}

// WithCaller records the authenticated identity acting in this context.
func WithCaller(parent Ctx, caller string) Ctx {
	return WithValue(parent, keyCaller, caller)
}

func Caller(c Ctx) string {
	caller, _ := c.Value(keyCaller).(string)
	return caller
}
