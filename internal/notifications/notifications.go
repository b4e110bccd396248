// Package notifications serves the notification dropdown fragment and the
// live refresh channel behind it. Notifications are ephemeral: every fragment
// request re-fetches from the backend, nothing is stored locally.
package notifications

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/render"
)

const emptyFragment = `<li class="notification empty">No new notifications</li>
`

// Handler serves the notification endpoints for one backend API.
type Handler struct {
	api       *api.Client
	renderer  *render.Renderer
	pollEvery time.Duration
}

// NewHandler creates a notifications Handler.
func NewHandler(client *api.Client, renderer *render.Renderer) *Handler {
	return &Handler{api: client, renderer: renderer, pollEvery: pollInterval}
}

// Fragment returns the dropdown contents for the current session, one list
// item per notification in server order. A backend failure returns a non-2xx
// status so the caller keeps its last-known contents instead of blanking.
func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	items, err := h.api.WithSession(r).Notifications(r.Context())
	if err != nil {
		log.Printf("notifications: fetching: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if len(items) == 0 {
		buf.WriteString(emptyFragment)
	}
	for _, n := range items {
		buf.WriteString(string(h.renderer.Notification(n)))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// MarkRead records a notification-producing event on the backend. The form
// carries the event type and the id of the element it concerns.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	notifType := r.PostForm.Get("type")
	elementID, err := strconv.Atoi(r.PostForm.Get("modifiedElementId"))
	if notifType == "" || err != nil {
		http.Error(w, "invalid notification event", http.StatusBadRequest)
		return
	}

	if err := h.api.WithSession(r).MarkNotification(r.Context(), notifType, elementID); err != nil {
		log.Printf("notifications: marking %s event: %v", notifType, err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
