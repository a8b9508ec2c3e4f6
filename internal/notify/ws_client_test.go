package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/notify"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketClient_StreamsToasts(t *testing.T) {
	hub := notify.NewLocalNotifier(zerolog.Nop())
	upgrader := websocket.Upgrader{}
	served := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ch, cancel, _ := hub.Subscribe(r.Context(), "s1")
		defer cancel()
		close(served)

		client := &notify.WebSocketClient{SessionID: "s1", Conn: conn, Send: ch, Log: zerolog.Nop()}
		client.Run(context.Background())
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-served:
	case <-time.After(time.Second):
		t.Fatal("server never subscribed")
	}

	toast := models.NewNotification("gig.activated", models.VariantDefault)
	toast.Title = "Gig Activated"
	require.NoError(t, hub.Publish(context.Background(), "s1", toast))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Notification
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, toast.ID, got.ID)
	assert.Equal(t, "Gig Activated", got.Title)
}

func TestWebSocketClient_CallsOnPong(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var pongs atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &notify.WebSocketClient{
			SessionID: "s1",
			Conn:      conn,
			Send:      make(chan models.Notification),
			Log:       zerolog.Nop(),
			OnPong:    func() { pongs.Add(1) },
		}
		client.Run(context.Background())
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteControl(websocket.PongMessage, nil, time.Now().Add(time.Second)))
	require.NoError(t, conn.WriteControl(websocket.PongMessage, nil, time.Now().Add(time.Second)))

	assert.Eventually(t, func() bool { return pongs.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}
