package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/usecase"
)

func (h *Handler) GetOfferHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOfferHistory")
	defer span.End()

	ids := splitParam(r.URL.Query().Get("ids"))
	if len(ids) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: ids query parameter is required", usecase.ErrInvalidInput))
		return
	}

	entries, err := h.historyService.ListByRecordIDs(ctx, ids)
	if err != nil {
		h.logger.WarnContext(ctx, "offer history failed", "record_ids", ids, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]historyEntryDTO, len(entries))
	for recordID, items := range entries {
		dtos := make([]historyEntryDTO, 0, len(items))
		for _, item := range items {
			dtos = append(dtos, historyEntryToDTO(item))
		}
		out[recordID] = dtos
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type historyEntryDTO struct {
	RecordID   string   `json:"recordId"`
	EventType  string   `json:"eventType"`
	Line       *float64 `json:"line,omitempty"`
	OverPrice  string   `json:"overPrice,omitempty"`
	UnderPrice string   `json:"underPrice,omitempty"`
	RecordedAt string   `json:"recordedAt"`
}

func historyEntryToDTO(entry prop.HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		RecordID:   entry.RecordID,
		EventType:  entry.EventType,
		Line:       entry.Line,
		OverPrice:  entry.OverPrice,
		UnderPrice: entry.UnderPrice,
		RecordedAt: entry.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}

func splitParam(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
