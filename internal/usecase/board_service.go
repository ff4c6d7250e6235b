package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/props-dashboard/internal/domain/board"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/platform/cache"
	"github.com/riskibarqy/props-dashboard/internal/platform/logging"
)

const (
	defaultBulkFetchLimit  = 10000
	maxBulkFetchLimit      = 20000
	defaultHighlightWindow = 2 * time.Second
)

// BoardQuery carries the per-request UI state: enabled sources, filters and
// sort order. An empty source list means every known source is enabled.
type BoardQuery struct {
	Sources []prop.Source
	Filters board.Filters
	Sort    board.Sort
}

// BoardView is one atomic read of the merged board.
type BoardView struct {
	Rows       []board.MergedRow
	Highlights []prop.MergeKey
	FeedState  prop.FeedState
	Revision   uint64
}

// BoardService owns the offer snapshot and keeps it current by draining the
// change feed on a single consumer goroutine, so merge correctness never
// depends on transport timing. Reads recompute the merged view from the
// snapshot contents at call time; the fold is cheap at the live data volume
// and cached per (revision, enabled sources).
type BoardService struct {
	repo         prop.Repository
	feed         prop.ChangeFeed
	cacheStore   *cache.Store
	logger       *logging.Logger
	bulkLimit    int
	highlightTTL time.Duration
	now          func() time.Time

	mu         sync.RWMutex
	snapshot   *prop.Snapshot
	revision   uint64
	highlights map[prop.MergeKey]time.Time

	wg     conc.WaitGroup
	cancel context.CancelFunc
}

type BoardServiceConfig struct {
	BulkFetchLimit int
	HighlightTTL   time.Duration
	// Now overrides the clock; tests only.
	Now func() time.Time
}

func NewBoardService(
	repo prop.Repository,
	feed prop.ChangeFeed,
	cacheStore *cache.Store,
	logger *logging.Logger,
	cfg BoardServiceConfig,
) *BoardService {
	if logger == nil {
		logger = logging.Default()
	}

	bulkLimit := cfg.BulkFetchLimit
	if bulkLimit <= 0 {
		bulkLimit = defaultBulkFetchLimit
	}
	if bulkLimit > maxBulkFetchLimit {
		bulkLimit = maxBulkFetchLimit
	}

	highlightTTL := cfg.HighlightTTL
	if highlightTTL <= 0 {
		highlightTTL = defaultHighlightWindow
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &BoardService{
		repo:         repo,
		feed:         feed,
		cacheStore:   cacheStore,
		logger:       logger,
		bulkLimit:    bulkLimit,
		highlightTTL: highlightTTL,
		now:          now,
		snapshot:     prop.NewSnapshot(),
		highlights:   make(map[prop.MergeKey]time.Time),
	}
}

// Start bulk-loads the active offers, then subscribes to the change feed and
// begins draining it. The bulk fetch is bounded and recency-ordered; after
// it, only incremental deltas arrive — the mirror is best-effort live, not a
// guaranteed-consistent snapshot.
func (s *BoardService) Start(ctx context.Context) error {
	offers, err := s.repo.ListActive(ctx, s.bulkLimit)
	if err != nil {
		return fmt.Errorf("bulk load offers: %w", err)
	}

	s.mu.Lock()
	s.snapshot.Load(offers)
	s.revision++
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "board snapshot loaded", "offers", len(offers), "limit", s.bulkLimit)

	if err := s.feed.Start(ctx); err != nil {
		return fmt.Errorf("start change feed: %w", err)
	}

	drainCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Go(func() {
		s.drain(drainCtx)
	})

	return nil
}

// Close stops the drain loop and releases the feed subscription.
func (s *BoardService) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	err := s.feed.Close()
	s.wg.Wait()
	return err
}

func (s *BoardService) drain(ctx context.Context) {
	events := s.feed.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.applyEvent(event)
		}
	}
}

func (s *BoardService) applyEvent(event prop.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, highlight := s.snapshot.Apply(event)
	if key == "" {
		return
	}
	s.revision++
	if highlight {
		s.highlights[key] = s.now().Add(s.highlightTTL)
	}
}

// View returns the merged board for one request's UI state. The snapshot is
// read once under the lock, so the recompute never observes a half-applied
// event.
func (s *BoardService) View(ctx context.Context, query BoardQuery) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.View")
	defer span.End()

	enabled, err := resolveEnabledSources(query.Sources)
	if err != nil {
		return BoardView{}, err
	}

	s.mu.RLock()
	offers := s.snapshot.Offers()
	revision := s.revision
	s.mu.RUnlock()

	merged, err := s.mergedRows(ctx, revision, offers, enabled)
	if err != nil {
		return BoardView{}, err
	}

	rows := board.ApplyView(board.RowsByKey(merged), query.Filters, query.Sort)

	return BoardView{
		Rows:       rows,
		Highlights: s.activeHighlights(),
		FeedState:  s.feed.State(),
		Revision:   revision,
	}, nil
}

func (s *BoardService) mergedRows(
	ctx context.Context,
	revision uint64,
	offers []prop.Offer,
	enabled map[prop.Source]struct{},
) (map[prop.MergeKey]board.MergedRow, error) {
	if s.cacheStore == nil {
		return board.Merge(offers, enabled), nil
	}

	value, err := s.cacheStore.GetOrLoad(ctx, mergeCacheKey(revision, enabled), func(context.Context) (any, error) {
		return board.Merge(offers, enabled), nil
	})
	if err != nil {
		return nil, fmt.Errorf("load merged rows: %w", err)
	}

	merged, ok := value.(map[prop.MergeKey]board.MergedRow)
	if !ok {
		return board.Merge(offers, enabled), nil
	}
	return merged, nil
}

// Highlights returns the merge keys whose rows should currently flash,
// sorted for deterministic output. Expired entries are pruned on read.
func (s *BoardService) Highlights() []prop.MergeKey {
	return s.activeHighlights()
}

func (s *BoardService) activeHighlights() []prop.MergeKey {
	now := s.now()

	s.mu.Lock()
	keys := make([]prop.MergeKey, 0, len(s.highlights))
	for key, expiresAt := range s.highlights {
		if !expiresAt.After(now) {
			delete(s.highlights, key)
			continue
		}
		keys = append(keys, key)
	}
	s.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FeedState reports the change feed connection state for readiness checks.
func (s *BoardService) FeedState() prop.FeedState {
	return s.feed.State()
}

func resolveEnabledSources(sources []prop.Source) (map[prop.Source]struct{}, error) {
	if len(sources) == 0 {
		enabled := make(map[prop.Source]struct{}, len(prop.AllSources))
		for source := range prop.AllSources {
			enabled[source] = struct{}{}
		}
		return enabled, nil
	}

	enabled := make(map[prop.Source]struct{}, len(sources))
	for _, source := range sources {
		if _, ok := prop.AllSources[source]; !ok {
			return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, source)
		}
		enabled[source] = struct{}{}
	}
	return enabled, nil
}

func mergeCacheKey(revision uint64, enabled map[prop.Source]struct{}) string {
	names := make([]string, 0, len(enabled))
	for source := range enabled {
		names = append(names, string(source))
	}
	sort.Strings(names)
	return fmt.Sprintf("board:merge:%d:%s", revision, strings.Join(names, "+"))
}
