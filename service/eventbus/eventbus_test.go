package eventbus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/auction/mocks"
)

type recorder struct {
	mu    sync.Mutex
	kinds []auction.EventKind
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) Notify(c ctx.Ctx, e *auction.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, e.Kind)
	return nil
}

func TestPublishKeepsOrderPerObserver(t *testing.T) {
	rec := &recorder{}
	bus := New(Config{Workers: 2}, rec)
	defer bus.Close()

	bus.Publish(ctx.Background(),
		&auction.Event{Kind: auction.EventBidSubmitted},
		&auction.Event{Kind: auction.EventAuctionSettled},
	)
	require.True(t, bus.Drain(time.Second))
	require.Equal(t, []auction.EventKind{auction.EventBidSubmitted, auction.EventAuctionSettled}, rec.kinds)
}

func TestPublishIsolatesObserverFailures(t *testing.T) {
	failing := &mocks.Observer{}
	failing.On("Name").Return("failing")
	failing.On("Notify", mock.Anything, mock.Anything).Return(errors.New("webhook down"))

	panicking := &mocks.Observer{}
	panicking.On("Name").Return("panicking")
	panicking.On("Notify", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("bad observer")
	}).Return(nil)

	rec := &recorder{}
	bus := New(Config{}, failing, panicking, rec)
	defer bus.Close()

	bus.Publish(ctx.Background(), &auction.Event{Kind: auction.EventAuctionCanceled})
	require.True(t, bus.Drain(time.Second))
	require.Equal(t, []auction.EventKind{auction.EventAuctionCanceled}, rec.kinds)
	failing.AssertNumberOfCalls(t, "Notify", 1)
}

func TestPublishNothing(t *testing.T) {
	obs := &mocks.Observer{}
	bus := New(Config{}, obs)
	defer bus.Close()

	bus.Publish(ctx.Background())
	require.True(t, bus.Drain(10*time.Millisecond))
	obs.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
