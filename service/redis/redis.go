package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/ctx"
)

const (
	// Forever means the key never expires
	Forever time.Duration = 0
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("key not set")
	// ErrGapTime is returned when no pool serves the command
	ErrGapTime = errors.New("no redis pool available")
)

// Script is a lua script bound to a fixed number of keys
type Script struct {
	name   string
	script *redis.Script
}

// NewScript loads src as a lua script taking keyCount keys
func NewScript(name string, keyCount int, src string) *Script {
	return &Script{name: name, script: redis.NewScript(keyCount, src)}
}

// Service is the subset of redis commands the service relies on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it does not exist, ErrNotSet otherwise
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL is the remaining time to live of key, Forever when it has none
	TTL(context ctx.Ctx, key string) (time.Duration, error)
	Ping(context ctx.Ctx) error
	ScriptDo(context ctx.Ctx, script *Script, keysAndArgs ...interface{}) (interface{}, error)
	Name() string
}
