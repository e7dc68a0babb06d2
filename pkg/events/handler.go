package events

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler serves the WebSocket market event feed.
type Handler struct {
	hub    *Hub
	logger interface {
		Printf(string, ...interface{})
	}
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub:    hub,
		logger: log.New(log.Writer(), "[events] ", log.LstdFlags),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

// HandleWebSocketGin upgrades the connection and streams market events until
// the client disconnects.
func (h *Handler) HandleWebSocketGin(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	sub := h.hub.Subscribe(uuid.NewString())
	h.logger.Printf("subscriber %s connected", sub.ID)

	go h.writeLoop(sub, conn)
	go h.readLoop(sub, conn)
}

// writeLoop delivers hub events and keepalive pings to one subscriber.
func (h *Handler) writeLoop(sub *Subscriber, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event := <-sub.Send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for subscriber %s: %v", sub.ID, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sub.Done:
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// readLoop discards inbound frames; the feed is one-way. It exists to notice
// client disconnects and pong replies.
func (h *Handler) readLoop(sub *Subscriber, conn *websocket.Conn) {
	defer func() {
		h.hub.Unsubscribe(sub.ID)
		conn.Close()
		h.logger.Printf("subscriber %s disconnected", sub.ID)
	}()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for subscriber %s: %v", sub.ID, err)
			}
			return
		}
	}
}
