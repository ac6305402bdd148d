package realtime

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cakes/internal/domain/constants"
	"cakes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	hub    *Hub
	server *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	hub := newHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn, r.URL.Query().Get("channel"), uuid.MustParse(r.URL.Query().Get("user")))
	}))
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})

	return &testServer{hub: hub, server: server}
}

func (s *testServer) dial(t *testing.T, channel string, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?channel=" + channel + "&user=" + userID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return s.hub.ConnectionCount(channel) > 0
	}, time.Second, 10*time.Millisecond)

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) service.RealtimeMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg service.RealtimeMessage
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_Broadcast(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.dial(t, constants.ChannelAdmin, uuid.New())

	ts.hub.Broadcast(constants.ChannelAdmin, &service.RealtimeMessage{Type: "order_placed", Payload: map[string]string{"order_number": "CK250101123456"}})

	msg := readMessage(t, admin)
	assert.Equal(t, "order_placed", msg.Type)
	assert.Equal(t, map[string]any{"order_number": "CK250101123456"}, msg.Payload)
}

func TestHub_SendToUser(t *testing.T) {
	ts := newTestServer(t)
	riderA, riderB := uuid.New(), uuid.New()
	connA := ts.dial(t, constants.ChannelDelivery, riderA)
	connB := ts.dial(t, constants.ChannelDelivery, riderB)
	require.Eventually(t, func() bool { return ts.hub.ConnectionCount(constants.ChannelDelivery) == 2 }, time.Second, 10*time.Millisecond)

	ts.hub.SendToUser(constants.ChannelDelivery, riderB, &service.RealtimeMessage{Type: "delivery_assigned"})

	msg := readMessage(t, connB)
	assert.Equal(t, "delivery_assigned", msg.Type)

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := connA.ReadMessage()
	assert.Error(t, err)
}

func TestHub_ChannelsAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.dial(t, constants.ChannelDelivery, uuid.New())

	ts.hub.Broadcast(constants.ChannelAdmin, &service.RealtimeMessage{Type: "status_changed"})

	require.NoError(t, rider.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := rider.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersClosedConnection(t *testing.T) {
	ts := newTestServer(t)
	conn := ts.dial(t, constants.ChannelAdmin, uuid.New())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return ts.hub.ConnectionCount(constants.ChannelAdmin) == 0
	}, 2*time.Second, 10*time.Millisecond)

	ts.hub.Broadcast(constants.ChannelAdmin, &service.RealtimeMessage{Type: "noop"})
}

func TestHub_Close(t *testing.T) {
	ts := newTestServer(t)
	ts.dial(t, constants.ChannelAdmin, uuid.New())
	ts.dial(t, constants.ChannelDelivery, uuid.New())

	ts.hub.Close()

	assert.Equal(t, 0, ts.hub.ConnectionCount(constants.ChannelAdmin))
	assert.Equal(t, 0, ts.hub.ConnectionCount(constants.ChannelDelivery))
}
