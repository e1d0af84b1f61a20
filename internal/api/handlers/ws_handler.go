package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/Saujankhnl/remotely-internship/internal/services"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

// WSHandler streams screening batch progress to recruiters: events
// published to redis during a bulk screening pass are forwarded to the
// websocket as-is.
type WSHandler struct {
	screening services.ScreeningService
	redis     *redis.Client
	upgrader  websocket.Upgrader
}

func NewWSHandler(screening services.ScreeningService, rdb *redis.Client) *WSHandler {
	return &WSHandler{
		screening: screening,
		redis:     rdb,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeText(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.PingMessage, nil)
}

func (h *WSHandler) ScreeningWS(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postingID, ok := paramUint(c, "posting_id")
	if !ok {
		return
	}
	if h.redis == nil {
		writeError(c, utils.E(utils.CodeUnavailable, "WSHandler.ScreeningWS", "progress stream unavailable", nil))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := h.redis.Subscribe(ctx, services.ProgressChannel(postingID))
	defer pubsub.Close()

	// reader: only there to observe the close handshake
	go func() {
		defer cancel()
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		for {
			if _, _, rerr := conn.ReadMessage(); rerr != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(20 * time.Second)
	defer ticker.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := wc.ping(); err != nil {
				return
			}
		case msg, open := <-ch:
			if !open {
				return
			}
			if err := wc.writeText([]byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
