package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/platform/logging"
	"github.com/riskibarqy/props-dashboard/internal/usecase"
)

type Handler struct {
	boardService   *usecase.BoardService
	historyService *usecase.HistoryService
	mappingService *usecase.MappingService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	boardService *usecase.BoardService,
	historyService *usecase.HistoryService,
	mappingService *usecase.MappingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		boardService:   boardService,
		historyService: historyService,
		mappingService: mappingService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports the change feed state alongside liveness. A degraded feed
// still serves the last known board, so the endpoint stays 200 and lets the
// caller decide how to surface the state.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	feedState := h.boardService.FeedState()
	status := "ok"
	if feedState != prop.FeedConnected {
		status = "degraded"
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"status":    status,
		"feedState": string(feedState),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
