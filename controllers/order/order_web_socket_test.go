package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/circuitshelf/componentstore-api/models"
)

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func feedClientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

func TestOrderFeedDeliversBroadcast(t *testing.T) {
	srv := newFeedServer(t)
	conn := dialFeed(t, srv)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return feedClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	placed := []models.Order{{Username: "alice", ProductName: "10Ω Resistor", Quantity: 2}}
	broadcastOrders(placed)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got []models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	require.Equal(t, "alice", got[0].Username)
	require.Equal(t, 2, got[0].Quantity)
}

func TestOrderFeedDropsDeadClients(t *testing.T) {
	srv := newFeedServer(t)
	conn := dialFeed(t, srv)

	require.Eventually(t, func() bool {
		return feedClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	// The first write after the close may still land in the socket buffer,
	// so keep broadcasting until the dead connection is evicted.
	require.Eventually(t, func() bool {
		broadcastOrders([]models.Order{{Username: "bob"}})
		return feedClientCount() == 0
	}, 2*time.Second, 20*time.Millisecond)
}
