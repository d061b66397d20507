package board

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn, "staff")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPublishReachesClients(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(EventBookingStatusUpdated, map[string]interface{}{"booking_id": 7, "status": "Dicuci"})

	var msg Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventBookingStatusUpdated, msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "Dicuci", data["status"])
}

func TestUnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishOnNilHub(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() { hub.Publish(EventBookingDeleted, nil) })
}

func TestPublishDropsClientWithFullQueue(t *testing.T) {
	hub := NewHub()
	conn := new(websocket.Conn)
	stalled := &client{conn: conn, role: "staff", send: make(chan []byte, 1)}
	hub.clients[conn] = stalled

	hub.Publish(EventBookingCreated, map[string]interface{}{"booking_id": 1})
	assert.Equal(t, 1, hub.ClientCount())

	done := make(chan struct{})
	go func() {
		hub.Publish(EventBookingCreated, map[string]interface{}{"booking_id": 2})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a client that is not draining its queue")
	}

	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-stalled.send
	assert.True(t, open, "queued event is still delivered before close")
	_, open = <-stalled.send
	assert.False(t, open)
}
