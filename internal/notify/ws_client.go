package notify

import (
	"context"
	"encoding/json"
	"time"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WebSocketClient streams the toasts of one session to one browser tab.
type WebSocketClient struct {
	SessionID string
	Conn      *websocket.Conn
	Send      <-chan models.Notification
	Log       zerolog.Logger
	// OnPong is called on every heartbeat answer from the browser.
	OnPong func()
}

// Run blocks until the browser goes away or ctx is cancelled. The caller owns the subscription
// behind Send and must cancel it afterwards.
func (c *WebSocketClient) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		c.readPump()
		cancel()
	}()
	c.writePump(ctx)
}

// readPump only processes control frames; the browser never sends toasts.
func (c *WebSocketClient) readPump() {
	c.Conn.SetReadLimit(config.WSMaxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(config.WSPongWait))
	c.Conn.SetPongHandler(func(string) error {
		if c.OnPong != nil {
			c.OnPong()
		}
		return c.Conn.SetReadDeadline(time.Now().Add(config.WSPongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Log.Warn().Err(err).Str("session", c.SessionID).Msg("error reading websocket")
			}
			return
		}
	}
}

// writePump пише тости з каналу Send у WebSocket і шле ping, щоб з'єднання не закрилось.
func (c *WebSocketClient) writePump(ctx context.Context) {
	ticker := time.NewTicker(config.WSPingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.Conn.SetWriteDeadline(time.Now().Add(config.WSWriteWait))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case toast, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(config.WSWriteWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			data, err := json.Marshal(toast)
			if err != nil {
				c.Log.Error().Err(err).Str("session", c.SessionID).Msg("error encoding toast")
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(config.WSWriteWait)); err != nil {
				return
			}
		}
	}
}
