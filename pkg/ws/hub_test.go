package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesConnectedClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	e := echo.New()
	e.GET("/ws", hub.Serve)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// wait for registration before broadcasting
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Event{Type: "alert.created", Data: map[string]any{"id": "a-1"}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "alert.created", ev.Type)
}

func TestClientCountDropsOnDisconnect(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	e := echo.New()
	e.GET("/ws", hub.Serve)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// no Run loop: the buffered queue must absorb the events
	for i := 0; i < 300; i++ {
		hub.Broadcast(Event{Type: "noop"})
	}
}
