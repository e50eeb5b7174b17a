package tests

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ribgsilva/note-service/business/v1/broadcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	return c
}

func read(t *testing.T, c *websocket.Conn) string {
	t.Helper()
	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := c.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestBroadcast(t *testing.T) {
	a := newApp(t)
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	first := dial(t, srv)
	second := dial(t, srv)
	defer func() { _ = second.Close() }()
	require.Eventually(t, func() bool { return a.hub.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, first.WriteMessage(websocket.TextMessage, []byte("hello")))
	assert.Equal(t, "Message: hello", read(t, first))
	assert.Equal(t, "Message: hello", read(t, second))

	_ = first.Close()
	assert.Equal(t, broadcast.DisconnectNotice, read(t, second))
	require.Eventually(t, func() bool { return a.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
}
