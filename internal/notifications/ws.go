package notifications

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// pollInterval is how often a connected client's pending notifications are
// re-counted against the backend. pollTimeout bounds each individual poll.
const (
	pollInterval = 30 * time.Second
	pollTimeout  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// refreshEvent is the outgoing WebSocket message format. It carries no
// notification data; the fragment endpoint remains the single source of
// truth. Connection identifies the sender so a page holding several sockets
// can tell their frames apart.
type refreshEvent struct {
	Type       string `json:"type"`
	Connection string `json:"connection"`
	Pending    int    `json:"pending"`
}

// ServeWS pushes refresh hints to a connected page. The connection polls the
// backend with the page's session and sends a refresh event whenever the
// pending count changes. Connection loss is not an error: the page falls
// back to per-load fetching.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notifications: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	client := h.api.WithSession(r)

	// Read pump: drains client frames and detects disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("notifications: websocket %s read: %v", connID, err)
				}
				return
			}
		}
	}()

	lastCount := -1
	ticker := time.NewTicker(h.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// The page request's context carries the router's request
			// timeout; polls get their own deadline so the connection
			// outlives it.
			ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
			items, err := client.Notifications(ctx)
			cancel()
			if err != nil {
				log.Printf("notifications: websocket %s poll: %v", connID, err)
				continue
			}
			if len(items) == lastCount {
				continue
			}
			lastCount = len(items)
			event := refreshEvent{Type: "refresh", Connection: connID, Pending: lastCount}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("notifications: websocket %s write: %v", connID, err)
				return
			}
		}
	}
}
