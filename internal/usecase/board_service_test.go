package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/props-dashboard/internal/domain/board"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/props-dashboard/internal/platform/cache"
)

var boardBase = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

func boardOffer(id string, source prop.Source, player, stat string, updatedAt time.Time) prop.Offer {
	line := 25.5
	return prop.Offer{
		ID:         id,
		Source:     source,
		SportID:    "NBA",
		StatType:   stat,
		PlayerName: player,
		Line:       &line,
		OverPrice:  "-110",
		UnderPrice: "-110",
		Status:     prop.StatusActive,
		UpdatedAt:  updatedAt,
	}
}

func startBoardService(t *testing.T, offers []prop.Offer) (*BoardService, *memory.ChangeFeed) {
	t.Helper()

	repo := memory.NewPropRepository(offers)
	feed := memory.NewChangeFeed(16)
	service := NewBoardService(repo, feed, cache.NewStore(time.Minute), nil, BoardServiceConfig{})

	require.NoError(t, service.Start(context.Background()))
	t.Cleanup(func() {
		_ = service.Close()
	})
	return service, feed
}

func waitForRevision(t *testing.T, service *BoardService, min uint64) BoardView {
	t.Helper()

	var view BoardView
	require.Eventually(t, func() bool {
		var err error
		view, err = service.View(context.Background(), BoardQuery{})
		require.NoError(t, err)
		return view.Revision >= min
	}, 2*time.Second, 5*time.Millisecond)
	return view
}

func TestBoardServiceMergesBulkLoad(t *testing.T) {
	t.Parallel()

	service, _ := startBoardService(t, []prop.Offer{
		boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase),
		boardOffer("b1", prop.SourceKalshi, "lebron james", "points", boardBase.Add(time.Minute)),
	})

	view, err := service.View(context.Background(), BoardQuery{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)

	row := view.Rows[0]
	require.Equal(t, prop.BuildMergeKey("lebron james", "points", "NBA"), row.Key)
	require.Len(t, row.Quotes, 2)
	require.True(t, row.LatestUpdate.Equal(boardBase.Add(time.Minute)))
	require.Equal(t, prop.FeedConnected, view.FeedState)
}

func TestBoardServiceAppliesFeedEvents(t *testing.T) {
	t.Parallel()

	service, feed := startBoardService(t, []prop.Offer{
		boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase),
		boardOffer("b1", prop.SourceKalshi, "LeBron James", "Points", boardBase.Add(time.Minute)),
	})

	// Deleting one source's record leaves the other slot in place.
	feed.Publish(prop.ChangeEvent{Type: prop.EventDelete, Old: &prop.Offer{ID: "a1"}})
	view := waitForRevision(t, service, 2)
	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Quotes, 1)
	require.Contains(t, view.Rows[0].Quotes, prop.SourceKalshi)

	// Deleting the last record removes the row entirely.
	feed.Publish(prop.ChangeEvent{Type: prop.EventDelete, Old: &prop.Offer{ID: "b1"}})
	view = waitForRevision(t, service, 3)
	require.Empty(t, view.Rows)
}

func TestBoardServiceHighlightsOnUpdate(t *testing.T) {
	t.Parallel()

	service, feed := startBoardService(t, nil)

	offer := boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase)
	feed.Publish(prop.ChangeEvent{Type: prop.EventInsert, New: &offer})

	view := waitForRevision(t, service, 2)
	require.Equal(t, []prop.MergeKey{offer.MergeKey()}, view.Highlights)
}

func TestBoardServiceHighlightExpires(t *testing.T) {
	t.Parallel()

	repo := memory.NewPropRepository(nil)
	feed := memory.NewChangeFeed(16)

	current := boardBase
	service := NewBoardService(repo, feed, nil, nil, BoardServiceConfig{
		HighlightTTL: 2 * time.Second,
		Now:          func() time.Time { return current },
	})
	require.NoError(t, service.Start(context.Background()))
	t.Cleanup(func() { _ = service.Close() })

	offer := boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase)
	feed.Publish(prop.ChangeEvent{Type: prop.EventInsert, New: &offer})

	view := waitForRevision(t, service, 2)
	require.Len(t, view.Highlights, 1)

	current = current.Add(3 * time.Second)
	require.Empty(t, service.Highlights())
}

func TestBoardServiceSourceToggle(t *testing.T) {
	t.Parallel()

	service, _ := startBoardService(t, []prop.Offer{
		boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase),
		boardOffer("b1", prop.SourceKalshi, "LeBron James", "Points", boardBase.Add(time.Minute)),
	})

	view, err := service.View(context.Background(), BoardQuery{
		Sources: []prop.Source{prop.SourceUnderdog},
	})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Quotes, 1)
	require.Contains(t, view.Rows[0].Quotes, prop.SourceUnderdog)

	_, err = service.View(context.Background(), BoardQuery{
		Sources: []prop.Source{"bovada"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBoardServiceRemovedStatusUpdateDeletes(t *testing.T) {
	t.Parallel()

	service, feed := startBoardService(t, []prop.Offer{
		boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase),
	})

	removed := boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase.Add(time.Minute))
	removed.Status = prop.StatusRemoved
	feed.Publish(prop.ChangeEvent{Type: prop.EventUpdate, New: &removed})

	view := waitForRevision(t, service, 2)
	require.Empty(t, view.Rows)
	require.Empty(t, view.Highlights)
}

func TestBoardServiceViewFiltersAndSorts(t *testing.T) {
	t.Parallel()

	nflOffer := boardOffer("c1", prop.SourcePrizePicks, "Josh Allen", "Pass Yds", boardBase.Add(2*time.Minute))
	nflOffer.SportID = "NFL"

	service, _ := startBoardService(t, []prop.Offer{
		boardOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", boardBase),
		boardOffer("b1", prop.SourceUnderdog, "Luka Doncic", "Assists", boardBase.Add(time.Minute)),
		nflOffer,
	})

	view, err := service.View(context.Background(), BoardQuery{
		Filters: board.Filters{SportID: "NBA"},
		Sort:    board.Sort{Field: board.SortPlayer, Ascending: true},
	})
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	require.Equal(t, "LeBron James", view.Rows[0].PlayerName)
	require.Equal(t, "Luka Doncic", view.Rows[1].PlayerName)
}
