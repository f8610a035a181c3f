package lock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/backoff"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/service/redis"
)

const (
	defaultTTL     = 30 * time.Second
	backoffStart   = 10 * time.Millisecond
	backoffLimit   = 200 * time.Millisecond
	releaseTimeout = 2 * time.Second
)

var releaseScript = redis.NewScript("lock.release", 1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	redis redis.Service
	ttl   time.Duration
}

// NewRedis returns a Locker shared by every process using the same redis. A
// held key expires after ttl so a crashed holder cannot block it forever.
func NewRedis(r redis.Service, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisLocker{redis: r, ttl: ttl}
}

func (r *redisLocker) Lock(c ctx.Ctx, key string) (func(), error) {
	token := uuid.New().String()
	b := backoff.NewExponential(backoffStart, backoffLimit)
	err := b.Retry(c, func() (bool, error) {
		err := r.redis.SetNX(c, key, []byte(token), r.ttl)
		if err == redis.ErrNotSet {
			return false, nil
		}
		return err == nil, err
	})
	if err != nil {
		if c.Err() != nil {
			c.WithFields(log.Fields{"key": key, "tries": b.Count() + 1}).Warn("lock timeout")
			return nil, ErrLockTimeout
		}
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis.SetNX failed")
		return nil, err
	}

	return func() {
		// release even when the caller's context is already done
		rc, cancel := ctx.WithTimeout(ctx.From(c, context.Background()), releaseTimeout)
		defer cancel()
		if _, err := r.redis.ScriptDo(rc, releaseScript, key, token); err != nil {
			c.WithFields(log.Fields{"key": key, "err": err}).Error("release lock failed")
		}
	}, nil
}
