package eventbus

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/counter"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/auction"
)

var met = metrics.New("eventbus")

type Config struct {
	Workers         int           `mapstructure:"workers"`
	QueueLength     int           `mapstructure:"queue_length"`
	ScheduleTimeout time.Duration `mapstructure:"schedule_timeout"`
	NotifyTimeout   time.Duration `mapstructure:"notify_timeout"`
}

// Service publishes committed events to observers on a bounded worker pool.
type Service interface {
	auction.Publisher
	// Drain waits until every scheduled notification finished
	Drain(timeout time.Duration) bool
	Close()
}

type impl struct {
	cfg       Config
	pool      *goroutines.Pool
	observers []auction.Observer
	pending   *counter.Counter
}

func New(cfg Config, observers ...auction.Observer) Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.QueueLength <= 0 {
		cfg.QueueLength = 1024
	}
	if cfg.ScheduleTimeout <= 0 {
		cfg.ScheduleTimeout = time.Second
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	return &impl{
		cfg:       cfg,
		pool:      goroutines.NewPool(cfg.Workers, goroutines.WithTaskQueueLength(cfg.QueueLength)),
		observers: observers,
		pending:   counter.NewCounter(),
	}
}

// Publish schedules one task per observer so each observer sees events in
// the order given.
func (im *impl) Publish(c ctx.Ctx, events ...*auction.Event) {
	if len(events) == 0 {
		return
	}
	// observers outlive the request
	bg := ctx.WithRequestID(ctx.Background(), ctx.RequestID(c))
	for _, o := range im.observers {
		o := o
		im.pending.Add(1)
		err := im.pool.ScheduleWithTimeout(im.cfg.ScheduleTimeout, func() {
			defer im.pending.Add(-1)
			goroutine.Run(func() {
				im.notify(bg, o, events)
			})
		})
		if err != nil {
			im.pending.Add(-1)
			met.BumpSum("dropped", float64(len(events)), "observer", o.Name())
			c.WithFields(log.Fields{
				"observer": o.Name(),
				"events":   len(events),
				"err":      err,
			}).Warn("pool.ScheduleWithTimeout failed, events dropped")
		}
	}
}

func (im *impl) notify(c ctx.Ctx, o auction.Observer, events []*auction.Event) {
	for _, e := range events {
		nc, cancel := ctx.WithTimeout(c, im.cfg.NotifyTimeout)
		err := o.Notify(nc, e)
		cancel()
		if err != nil {
			met.BumpSum("notify.err", 1, "observer", o.Name())
			c.WithFields(log.Fields{
				"observer": o.Name(),
				"event":    e.Id,
				"kind":     e.Kind,
				"err":      err,
			}).Error("observer.Notify failed")
			continue
		}
		met.BumpSum("notify", 1, "observer", o.Name(), "kind", string(e.Kind))
	}
}

func (im *impl) Drain(timeout time.Duration) bool {
	return im.pending.WaitZero(timeout)
}

func (im *impl) Close() {
	im.pool.Release()
}
