package notifications

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the notification endpoints.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/notifications/fragment", h.Fragment)
	r.Post("/notifications/read", h.MarkRead)
	r.Get("/ws/notifications", h.ServeWS)
}
