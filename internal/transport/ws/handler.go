package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	redisrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/redis"
	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

type EventSubscriber interface {
	SubscribeAccount(ctx context.Context, accountID int64) (*redisrepo.EventStream, error)
}

// Handler upgrades an authenticated connection and forwards the account's
// realtime events to it. Events published while the account has no open
// socket are dropped; the stream carries no history.
type Handler struct {
	events   EventSubscriber
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewHandler(events EventSubscriber, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		events: events,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	if h.events == nil {
		http.Error(w, "realtime events are unavailable", http.StatusServiceUnavailable)
		return
	}

	// The request context dies when the handler returns; the subscription
	// must outlive it and is torn down by the pumps instead.
	stream, err := h.events.SubscribeAccount(context.Background(), identity.AccountID)
	if err != nil {
		h.logger.Warn("subscribe realtime events failed", zap.Int64("account_id", identity.AccountID), zap.Error(err))
		http.Error(w, "realtime events are unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		_ = stream.Close()
		return
	}

	go h.writePump(conn, stream, identity.AccountID)
	go h.readPump(conn, stream)
}

func (h *Handler) writePump(conn *websocket.Conn, stream *redisrepo.EventStream, accountID int64) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = stream.Close()
		_ = conn.Close()
	}()

	for {
		select {
		case payload, ok := <-stream.C:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug("realtime write failed", zap.Int64("account_id", accountID), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames; it exists to notice the peer going away.
func (h *Handler) readPump(conn *websocket.Conn, stream *redisrepo.EventStream) {
	defer func() {
		_ = stream.Close()
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
