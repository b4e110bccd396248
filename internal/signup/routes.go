package signup

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the signup pages and their form endpoints.
func RegisterRoutes(r chi.Router, c *Controller) {
	r.Get("/signup", c.Mentee)
	r.Post("/signup", c.SubmitMentee)
	r.Get("/signup-mentor", c.Mentor)
	r.Post("/signup-mentor", c.SubmitMentor)
}
