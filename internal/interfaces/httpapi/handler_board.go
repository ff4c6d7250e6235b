package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/board"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/usecase"
)

const unknownPlayerPlaceholder = "Unknown Player"

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	query := r.URL.Query()

	view, err := h.boardService.View(ctx, usecase.BoardQuery{
		Sources: parseSourcesParam(query.Get("sources")),
		Filters: board.Filters{
			SportID:    strings.TrimSpace(query.Get("sport")),
			StatType:   strings.TrimSpace(query.Get("stat")),
			SearchText: strings.TrimSpace(query.Get("q")),
		},
		Sort: board.Sort{
			Field:     board.SortField(strings.TrimSpace(query.Get("sort"))),
			Ascending: !strings.EqualFold(strings.TrimSpace(query.Get("order")), "desc"),
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "board view failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardViewToDTO(ctx, view))
}

func (h *Handler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHighlights")
	defer span.End()

	keys := h.boardService.Highlights()
	items := make([]string, 0, len(keys))
	for _, key := range keys {
		items = append(items, string(key))
	}

	writeSuccess(ctx, w, http.StatusOK, highlightsDTO{Keys: items})
}

func parseSourcesParam(raw string) []prop.Source {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]prop.Source, 0, len(parts))
	for _, part := range parts {
		item := strings.ToLower(strings.TrimSpace(part))
		if item == "" {
			continue
		}
		out = append(out, prop.Source(item))
	}
	return out
}

type boardViewDTO struct {
	Rows       []mergedRowDTO `json:"rows"`
	Highlights []string       `json:"highlights"`
	FeedState  string         `json:"feedState"`
	Revision   uint64         `json:"revision"`
}

type mergedRowDTO struct {
	Key          string                    `json:"key"`
	PlayerName   string                    `json:"playerName"`
	SportID      string                    `json:"sportId"`
	StatType     string                    `json:"statType"`
	GameDisplay  string                    `json:"gameDisplay,omitempty"`
	TeamAbbr     string                    `json:"teamAbbr,omitempty"`
	Quotes       map[string]sourceQuoteDTO `json:"quotes"`
	LatestUpdate string                    `json:"latestUpdate"`
}

type sourceQuoteDTO struct {
	Line       *float64 `json:"line,omitempty"`
	OverPrice  string   `json:"overPrice,omitempty"`
	UnderPrice string   `json:"underPrice,omitempty"`
	UpdatedAt  string   `json:"updatedAt"`
	RecordID   string   `json:"recordId"`
}

type highlightsDTO struct {
	Keys []string `json:"keys"`
}

func boardViewToDTO(ctx context.Context, view usecase.BoardView) boardViewDTO {
	ctx, span := startSpan(ctx, "httpapi.boardViewToDTO")
	defer span.End()

	rows := make([]mergedRowDTO, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, mergedRowToDTO(ctx, row))
	}

	highlights := make([]string, 0, len(view.Highlights))
	for _, key := range view.Highlights {
		highlights = append(highlights, string(key))
	}

	return boardViewDTO{
		Rows:       rows,
		Highlights: highlights,
		FeedState:  string(view.FeedState),
		Revision:   view.Revision,
	}
}

func mergedRowToDTO(ctx context.Context, row board.MergedRow) mergedRowDTO {
	ctx, span := startSpan(ctx, "httpapi.mergedRowToDTO")
	defer span.End()

	playerName := strings.TrimSpace(row.PlayerName)
	if playerName == "" {
		playerName = unknownPlayerPlaceholder
	}

	quotes := make(map[string]sourceQuoteDTO, len(row.Quotes))
	for source, quote := range row.Quotes {
		quotes[string(source)] = sourceQuoteDTO{
			Line:       quote.Line,
			OverPrice:  quote.OverPrice,
			UnderPrice: quote.UnderPrice,
			UpdatedAt:  quote.UpdatedAt.UTC().Format(time.RFC3339Nano),
			RecordID:   quote.RecordID,
		}
	}

	return mergedRowDTO{
		Key:          string(row.Key),
		PlayerName:   playerName,
		SportID:      row.SportID,
		StatType:     row.StatType,
		GameDisplay:  row.GameDisplay,
		TeamAbbr:     row.TeamAbbr,
		Quotes:       quotes,
		LatestUpdate: row.LatestUpdate.UTC().Format(time.RFC3339Nano),
	}
}
