package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/pkg/logger"
	"github.com/futig/sitegen-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase AnalyticsUsecase
}

func NewHandler(usecase AnalyticsUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// RecordEvent handles POST /events
func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RecordEvent")

	var req entity.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.usecase.RecordEvent(ctx, &req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// RecordFeedback handles POST /feedback
func (h *Handler) RecordFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RecordFeedback")

	var req entity.RecordFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.usecase.RecordFeedback(ctx, &req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrMissingField) {
		ctxzap.Warn(ctx, "invalid analytics request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Error(ctx, "failed to record analytics entry", zap.Error(err))
	response.Error(w, http.StatusInternalServerError, "internal server error")
}
