package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/pkg/bundle"
	"github.com/futig/sitegen-backend/internal/pkg/logger"
	"github.com/futig/sitegen-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase GenerationUsecase
}

func NewHandler(usecase GenerationUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// GenerateSite handles POST /generate-code
func (h *Handler) GenerateSite(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateSite")

	var req entity.GenerateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "generating site",
		zap.Int("page_count", req.PageCount),
		zap.Int("description_length", len(req.Description)),
	)

	b, err := h.usecase.GenerateSite(ctx, &entity.GenerationRequest{
		Description: req.Description,
		PageCount:   req.PageCount,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, b)
}

// GenerateBusinessSite handles POST /generate-business-site
func (h *Handler) GenerateBusinessSite(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateBusinessSite")

	var req entity.GenerateBusinessSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "generating business site",
		zap.Int("description_length", len(req.Description)),
	)

	b, err := h.usecase.GenerateBusinessSite(ctx, req.Description)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, b)
}

// Download handles POST /download: the client posts a previously returned
// bundle back and receives it as a zip archive.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Download")

	var req entity.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b := &entity.SiteBundle{
		Pages: req.Pages,
		HTML:  req.HTML,
		CSS:   req.CSS,
		JS:    req.JS,
	}

	if len(b.Pages) == 0 || len(b.Pages) != len(b.HTML) {
		ctxzap.Warn(ctx, "malformed bundle in download request",
			zap.Int("pages", len(b.Pages)),
			zap.Int("html", len(b.HTML)),
		)
		response.Error(w, http.StatusBadRequest, "pages and html must be non-empty and the same length")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="website.zip"`)
	w.WriteHeader(http.StatusOK)

	if err := bundle.WriteZip(w, b); err != nil {
		// Headers are out; all we can do is log the broken stream.
		ctxzap.Error(ctx, "failed to stream zip archive", zap.Error(err))
		return
	}

	ctxzap.Info(ctx, "bundle downloaded", zap.Int("page_count", len(b.Pages)))
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "generation failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrEmptyDescription),
		errors.Is(err, entity.ErrInvalidPageCount),
		errors.Is(err, entity.ErrMissingField):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrGenerationFailed),
		errors.Is(err, entity.ErrEmptyGeneration),
		errors.Is(err, entity.ErrInvalidContentFormat):
		response.Error(w, http.StatusBadGateway, "site generation failed, please try again")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
