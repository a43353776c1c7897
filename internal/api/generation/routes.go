package generation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/generate-code", h.GenerateSite)
	r.Post("/generate-business-site", h.GenerateBusinessSite)
	r.Post("/download", h.Download)
}
