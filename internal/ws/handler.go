package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewFeedHandler upgrades observers onto the status feed.
func NewFeedHandler(hub *Hub, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("status feed upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(hub, conn)
		select {
		case hub.register <- client:
		case <-hub.done:
			// hub already stopped, refuse the feed
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	}
}
