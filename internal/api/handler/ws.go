package handler

import (
	"net/http"

	"gigdesk/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Тільки з того ж хоста, з якого віддали сторінку
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// ServeToasts оновлює HTTP-з'єднання до WebSocket і стрімить toast-и поточної сесії
func (h *Handler) ServeToasts(c *gin.Context) {
	s := currentSession(c)

	// 1. Підписка до upgrade, щоб помилку Redis ще можна було віддати як HTTP
	ctx := c.Request.Context()
	toasts, cancel, err := h.Notifier.Subscribe(ctx, s.ID)
	if err != nil {
		h.Log.Error().Err(err).Str("session", s.ID).Msg("toast subscribe failed")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "notifications unavailable"})
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade сам відповів клієнту
		h.Log.Warn().Err(err).Str("session", s.ID).Msg("websocket upgrade failed")
		return
	}

	// 2. Клієнт живе, поки живе з'єднання
	client := &notify.WebSocketClient{
		SessionID: s.ID,
		Conn:      conn,
		Send:      toasts,
		Log:       h.Log,
		// відкрита вкладка тримає сесію живою
		OnPong: s.Touch,
	}
	client.Run(ctx)
}
