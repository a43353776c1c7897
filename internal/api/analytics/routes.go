package analytics

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers analytics routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/events", h.RecordEvent)
	r.Post("/feedback", h.RecordFeedback)
}
