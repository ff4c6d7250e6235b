package prop

import "context"

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ChangeEvent is one mutation notification from the offers change feed.
// New is nil on deletes; Old may be a partial row carrying only the id.
type ChangeEvent struct {
	Type EventType
	New  *Offer
	Old  *Offer
}

type FeedState string

const (
	FeedConnecting FeedState = "connecting"
	FeedConnected  FeedState = "connected"
	FeedError      FeedState = "error"
)

// ChangeFeed is the subscription the board drains. Events arrive in feed
// order on a single channel owned by the feed; the channel closes when the
// feed shuts down. A gap-then-resume on the underlying transport is just
// more events, never a reset.
type ChangeFeed interface {
	Start(ctx context.Context) error
	Events() <-chan ChangeEvent
	State() FeedState
	Close() error
}
