// Package ws upgrades requests to websockets connected to the broadcast hub.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ribgsilva/note-service/business/v1/broadcast"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type Handlers struct {
	Log *zap.SugaredLogger
	Hub *broadcast.Hub
}

// conn serializes writes, gorilla allows one concurrent writer
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) WriteText(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, []byte(msg))
}

// Serve godoc
// @Summary Broadcast channel
// @Description Websocket. Every text frame received is sent to all connected clients as "Message: <text>".
// @Tags Broadcast
// @Router /ws [get]
func (h Handlers) Serve(ctx *gin.Context) {
	wsConn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.Log.Warnw("ws upgrade", "ERROR", err)
		return
	}
	defer func() {
		_ = wsConn.Close()
	}()

	c := &conn{ws: wsConn}
	h.Hub.Join(c)
	defer h.Hub.Leave(c)

	for {
		kind, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.Log.Warnw("ws read", "ERROR", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		h.Hub.Receive(string(data))
	}
}
