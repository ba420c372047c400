package telemetry

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Subscribers() == 2 }, time.Second, 10*time.Millisecond)

	hub.Notify(memerun.Event{Kind: memerun.EventCollect, Score: 10, Lives: 3, EntityID: 7})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second)) //nolint:errcheck
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var got memerun.Event
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, memerun.EventCollect, got.Kind)
		assert.Equal(t, 10, got.Score)
		assert.Equal(t, 7, got.EntityID)
	}
}

func TestHubDropsDepartedSubscribers(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)

	assert.NotPanics(t, func() { hub.Notify(memerun.Event{Kind: memerun.EventHit}) })
}

func TestHubNotifyNeverBlocks(t *testing.T) {
	hub := NewHub(nil)
	sub := &subscriber{send: make(chan []byte, 1)}
	require.True(t, hub.register(sub))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Notify(memerun.Event{Kind: memerun.EventCollect})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber")
	}
	assert.Equal(t, 9, hub.Dropped())
}

func TestHubRefusesAfterClose(t *testing.T) {
	hub := NewHub(nil)
	hub.Close()
	assert.False(t, hub.register(&subscriber{send: make(chan []byte, 1)}))
	assert.Equal(t, 0, hub.Subscribers())
}
