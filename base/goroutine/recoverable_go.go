package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/goauction/base/log"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	beforeStart    *func()
	afterEnded     *func()
	afterRecovered *func(panic interface{}, stake []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions) error

func getRecoverableGoOptions(fns ...RecoverableGoOptionsFunc) RecoverableGoOptions {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}
	return opts
}

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.beforeStart = &f
		return nil
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.afterEnded = &f
		return nil
	}
}

func WithAfterRecovered(f func(panic interface{}, stake []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) error {
		options.afterRecovered = &f
		return nil
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel yields the
// panic of f, or is closed when f returns normally.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) chan *PanicEvent {
	panicChan := make(chan *PanicEvent, 1)
	go func() {
		if p := Run(f, fns...); p != nil {
			panicChan <- p
			return
		}
		close(panicChan)
	}()
	return panicChan
}

// Run calls f on the current goroutine and turns a panic into a PanicEvent.
// Worker pool tasks use it so one bad task cannot take the process down.
func Run(f func(), fns ...RecoverableGoOptionsFunc) (event *PanicEvent) {
	opts := getRecoverableGoOptions(fns...)

	defer func() {
		if opts.afterEnded != nil {
			(*opts.afterEnded)()
		}

		if p := recover(); p != nil {
			stack := debug.Stack()

			logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")

			if opts.afterRecovered != nil {
				(*opts.afterRecovered)(p, stack)
			}
			event = &PanicEvent{p, stack}
		}
	}()

	if opts.beforeStart != nil {
		(*opts.beforeStart)()
	}

	f()
	return nil
}
