package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/usecase"
)

func (h *Handler) ListSportMappings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportMappings")
	defer span.End()

	items, err := h.mappingService.ListSports(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list sport mappings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportMappingsToDTO(items))
}

func (h *Handler) UpsertSportMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertSportMapping")
	defer span.End()

	var req upsertSportMappingRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.mappingService.UpsertSport(ctx, mapping.SportMapping{
		ID:             req.ID,
		Source:         prop.Source(req.Source),
		SourceSportID:  req.SourceSportID,
		CanonicalSport: req.CanonicalSport,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert sport mapping failed", "source", req.Source, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportMappingsToDTO(items))
}

func (h *Handler) DeleteSportMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSportMapping")
	defer span.End()

	items, err := h.mappingService.DeleteSport(ctx, r.PathValue("mappingID"))
	if err != nil {
		h.logger.WarnContext(ctx, "delete sport mapping failed", "mapping_id", r.PathValue("mappingID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportMappingsToDTO(items))
}

func (h *Handler) ListStatMappings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatMappings")
	defer span.End()

	items, err := h.mappingService.ListStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list stat mappings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statMappingsToDTO(items))
}

func (h *Handler) UpsertStatMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertStatMapping")
	defer span.End()

	var req upsertStatMappingRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.mappingService.UpsertStat(ctx, mapping.StatMapping{
		ID:             req.ID,
		Source:         prop.Source(req.Source),
		SourceStatType: req.SourceStatType,
		SportContext:   req.SportContext,
		CanonicalStat:  req.CanonicalStat,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert stat mapping failed", "source", req.Source, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statMappingsToDTO(items))
}

func (h *Handler) DeleteStatMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStatMapping")
	defer span.End()

	items, err := h.mappingService.DeleteStat(ctx, r.PathValue("mappingID"))
	if err != nil {
		h.logger.WarnContext(ctx, "delete stat mapping failed", "mapping_id", r.PathValue("mappingID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statMappingsToDTO(items))
}

type upsertSportMappingRequest struct {
	ID             string `json:"id"`
	Source         string `json:"source" validate:"required,max=40"`
	SourceSportID  string `json:"source_sport_id" validate:"required,max=120"`
	CanonicalSport string `json:"canonical_sport" validate:"required,max=120"`
}

type upsertStatMappingRequest struct {
	ID             string `json:"id"`
	Source         string `json:"source" validate:"required,max=40"`
	SourceStatType string `json:"source_stat_type" validate:"required,max=120"`
	SportContext   string `json:"sport_context" validate:"max=120"`
	CanonicalStat  string `json:"canonical_stat" validate:"required,max=120"`
}

type sportMappingDTO struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	SourceSportID  string `json:"source_sport_id"`
	CanonicalSport string `json:"canonical_sport"`
	UpdatedAtUTC   string `json:"updated_at_utc,omitempty"`
}

type statMappingDTO struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	SourceStatType string `json:"source_stat_type"`
	SportContext   string `json:"sport_context,omitempty"`
	CanonicalStat  string `json:"canonical_stat"`
	UpdatedAtUTC   string `json:"updated_at_utc,omitempty"`
}

func sportMappingsToDTO(items []mapping.SportMapping) []sportMappingDTO {
	out := make([]sportMappingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sportMappingDTO{
			ID:             item.ID,
			Source:         string(item.Source),
			SourceSportID:  item.SourceSportID,
			CanonicalSport: item.CanonicalSport,
			UpdatedAtUTC:   formatOptionalTime(item.UpdatedAt),
		})
	}
	return out
}

func statMappingsToDTO(items []mapping.StatMapping) []statMappingDTO {
	out := make([]statMappingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, statMappingDTO{
			ID:             item.ID,
			Source:         string(item.Source),
			SourceStatType: item.SourceStatType,
			SportContext:   item.SportContext,
			CanonicalStat:  item.CanonicalStat,
			UpdatedAtUTC:   formatOptionalTime(item.UpdatedAt),
		})
	}
	return out
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
