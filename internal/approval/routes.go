package approval

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the approval and verification pages.
func RegisterRoutes(r chi.Router, c *Controller) {
	r.Get("/approval", c.Review)
	r.Post("/approval", c.Decide)
	r.Get("/verification", c.Verification)
}
