package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

// ChangeFeed is an in-process feed for dev mode and tests. Publish delivers
// events in call order, matching the single-consumer contract of the
// Postgres feed.
type ChangeFeed struct {
	events chan prop.ChangeEvent
	state  atomic.Value
	once   sync.Once
}

func NewChangeFeed(buffer int) *ChangeFeed {
	if buffer <= 0 {
		buffer = 256
	}
	f := &ChangeFeed{events: make(chan prop.ChangeEvent, buffer)}
	f.state.Store(prop.FeedConnecting)
	return f
}

func (f *ChangeFeed) Start(_ context.Context) error {
	f.state.Store(prop.FeedConnected)
	return nil
}

func (f *ChangeFeed) Events() <-chan prop.ChangeEvent {
	return f.events
}

func (f *ChangeFeed) State() prop.FeedState {
	return f.state.Load().(prop.FeedState)
}

func (f *ChangeFeed) Close() error {
	f.once.Do(func() {
		close(f.events)
	})
	return nil
}

// Publish enqueues one event. It blocks if the buffer is full so tests keep
// strict ordering.
func (f *ChangeFeed) Publish(event prop.ChangeEvent) {
	f.events <- event
}

// SetState forces a connection state; tests only.
func (f *ChangeFeed) SetState(state prop.FeedState) {
	f.state.Store(state)
}
