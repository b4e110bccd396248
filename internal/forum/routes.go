package forum

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the forum pages and their form endpoints.
func RegisterRoutes(r chi.Router, c *Controller) {
	r.Get("/", c.Index)
	r.Get("/question", c.Question)
	r.Post("/question", c.PostQuestion)
	r.Post("/answer", c.PostAnswer)
	r.Post("/comment", c.PostComment)
	r.Post("/follow", c.Follow)
}
