package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/platform/logging"
)

const (
	defaultFeedChannel     = "prop_offers_changes"
	listenerMinReconnect   = 500 * time.Millisecond
	listenerMaxReconnect   = 30 * time.Second
	listenerPingInterval   = 90 * time.Second
	changeFeedEventsBuffer = 256
)

// ErrMalformedPayload marks NOTIFY payloads that cannot be decoded. Such
// payloads are logged and skipped; they never stop the feed.
var ErrMalformedPayload = errors.New("malformed change feed payload")

// ChangeFeed streams prop offer mutations over Postgres LISTEN/NOTIFY. A
// trigger on prop_offers emits one JSON payload per row change; the feed
// decodes payloads into events on a single ordered channel.
type ChangeFeed struct {
	dsn     string
	channel string
	logger  *logging.Logger

	listener *pq.Listener
	events   chan prop.ChangeEvent
	state    atomic.Value

	wg        conc.WaitGroup
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewChangeFeed(dsn, channel string, logger *logging.Logger) *ChangeFeed {
	if channel == "" {
		channel = defaultFeedChannel
	}
	if logger == nil {
		logger = logging.Default()
	}

	feed := &ChangeFeed{
		dsn:     dsn,
		channel: channel,
		logger:  logger,
		events:  make(chan prop.ChangeEvent, changeFeedEventsBuffer),
	}
	feed.state.Store(prop.FeedConnecting)
	return feed
}

func (f *ChangeFeed) Start(ctx context.Context) error {
	f.listener = pq.NewListener(f.dsn, listenerMinReconnect, listenerMaxReconnect, f.onListenerEvent)

	if err := f.listener.Listen(f.channel); err != nil {
		f.state.Store(prop.FeedError)
		return errors.Wrapf(err, "listen on channel %s", f.channel)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancel = cancel
	f.wg.Go(func() { f.run(runCtx) })
	return nil
}

func (f *ChangeFeed) Events() <-chan prop.ChangeEvent {
	return f.events
}

func (f *ChangeFeed) State() prop.FeedState {
	state, ok := f.state.Load().(prop.FeedState)
	if !ok {
		return prop.FeedConnecting
	}
	return state
}

func (f *ChangeFeed) Close() error {
	var err error
	f.closeOnce.Do(func() {
		if f.cancel != nil {
			f.cancel()
		}
		if f.listener != nil {
			err = f.listener.Close()
		}
		f.wg.Wait()
		close(f.events)
	})
	return err
}

func (f *ChangeFeed) run(ctx context.Context) {
	ping := time.NewTicker(listenerPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-f.listener.Notify:
			if !ok {
				return
			}
			// A nil notification means the connection was re-established
			// after an outage. Resumed traffic is just more events.
			if notification == nil {
				continue
			}

			event, err := decodeChangeEvent([]byte(notification.Extra))
			if err != nil {
				f.logger.WarnContext(ctx, "skipping change feed payload",
					"channel", notification.Channel,
					"error", err,
				)
				continue
			}

			select {
			case f.events <- event:
			case <-ctx.Done():
				return
			}
		case <-ping.C:
			if err := f.listener.Ping(); err != nil {
				f.logger.WarnContext(ctx, "change feed ping failed", "error", err)
			}
		}
	}
}

func (f *ChangeFeed) onListenerEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected, pq.ListenerEventReconnected:
		f.state.Store(prop.FeedConnected)
		f.logger.Info("change feed connected", "channel", f.channel)
	case pq.ListenerEventDisconnected, pq.ListenerEventConnectionAttemptFailed:
		f.state.Store(prop.FeedError)
		f.logger.Warn("change feed disconnected", "channel", f.channel, "error", err)
	}
}

// changeFeedPayload mirrors the JSON the prop_offers trigger builds:
// {"action": TG_OP, "new": to_jsonb(NEW), "old": to_jsonb(OLD)}.
type changeFeedPayload struct {
	Action string        `json:"action"`
	New    *offerPayload `json:"new"`
	Old    *offerPayload `json:"old"`
}

type offerPayload struct {
	ID          string   `json:"id"`
	Source      string   `json:"source"`
	SportID     string   `json:"sport_id"`
	StatType    string   `json:"stat_type"`
	PlayerName  string   `json:"player_name"`
	TeamAbbr    string   `json:"team_abbr"`
	GameDisplay string   `json:"game_display"`
	Line        *float64 `json:"line"`
	OverPrice   string   `json:"over_price"`
	UnderPrice  string   `json:"under_price"`
	Status      string   `json:"status"`
	UpdatedAt   string   `json:"updated_at"`
}

func decodeChangeEvent(raw []byte) (prop.ChangeEvent, error) {
	var payload changeFeedPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return prop.ChangeEvent{}, errors.Mark(errors.Wrap(err, "decode payload"), ErrMalformedPayload)
	}

	var eventType prop.EventType
	switch payload.Action {
	case string(prop.EventInsert):
		eventType = prop.EventInsert
	case string(prop.EventUpdate):
		eventType = prop.EventUpdate
	case string(prop.EventDelete):
		eventType = prop.EventDelete
	default:
		return prop.ChangeEvent{}, errors.Mark(errors.Newf("unknown action %q", payload.Action), ErrMalformedPayload)
	}

	newOffer, err := payload.New.toDomain()
	if err != nil {
		return prop.ChangeEvent{}, errors.Mark(errors.Wrap(err, "decode new row"), ErrMalformedPayload)
	}
	oldOffer, err := payload.Old.toDomain()
	if err != nil {
		return prop.ChangeEvent{}, errors.Mark(errors.Wrap(err, "decode old row"), ErrMalformedPayload)
	}

	return prop.ChangeEvent{Type: eventType, New: newOffer, Old: oldOffer}, nil
}

func (p *offerPayload) toDomain() (*prop.Offer, error) {
	if p == nil {
		return nil, nil
	}

	offer := &prop.Offer{
		ID:          p.ID,
		Source:      prop.NormalizeSource(prop.Source(p.Source)),
		SportID:     p.SportID,
		StatType:    p.StatType,
		PlayerName:  p.PlayerName,
		TeamAbbr:    p.TeamAbbr,
		GameDisplay: p.GameDisplay,
		Line:        p.Line,
		OverPrice:   p.OverPrice,
		UnderPrice:  p.UnderPrice,
		Status:      p.Status,
	}

	if p.UpdatedAt != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, p.UpdatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "parse updated_at %q", p.UpdatedAt)
		}
		offer.UpdatedAt = updatedAt
	}

	return offer, nil
}
