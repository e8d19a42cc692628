package websocket

import (
	"net/http"
	"time"

	"dfwportal/internal/events"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

func NewRequestHandler(hub *events.Hub) *Handler {
	return &Handler{
		Hub:      hub,
		Upgrader: websocket.Upgrader{},
	}
}

type Handler struct {
	Hub      *events.Hub
	Upgrader websocket.Upgrader
}

// ServeHTTP handles GET /v1/ws/events (WebSocket). Each connection gets
// its own subscription; push events are forwarded as JSON text messages
// until the client disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	up := h.Upgrader
	if up.CheckOrigin == nil {
		up.CheckOrigin = func(r *http.Request) bool { return true }
	}

	ws, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	sub := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(sub)

	// drain client frames so close handshakes are seen
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case ev, ok := <-sub:
			if !ok {
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := ws.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			_ = ws.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream closed"),
				time.Now().Add(1*time.Second),
			)
			return
		}
	}
}
