// Package broadcast relays text between every connected stream.
package broadcast

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// DisconnectNotice is sent to the remaining streams when one leaves
const DisconnectNotice = "Client disconnected"

// Conn is one connected stream
type Conn interface {
	WriteText(msg string) error
}

type Hub struct {
	log   *zap.SugaredLogger
	mu    sync.Mutex
	conns map[Conn]struct{}
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{log: log, conns: make(map[Conn]struct{})}
}

func (h *Hub) Join(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

// Leave removes c and tells the others about it
func (h *Hub) Leave(c Conn) {
	if h.remove(c) {
		h.notify(1)
	}
}

// Receive relays an inbound message to every stream, sender included
func (h *Hub) Receive(msg string) {
	h.Broadcast(fmt.Sprintf("Message: %s", msg))
}

// Broadcast writes msg to every stream. A stream failing the write is dropped
// and the others get a disconnect notice for it.
func (h *Hub) Broadcast(msg string) {
	h.notify(h.send(msg))
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// notify sends one disconnect notice per dropped stream. Streams failing a
// notice are dropped too and get their own notice, so the loop ends when no
// write fails or no stream is left.
func (h *Hub) notify(dropped int) {
	for ; dropped > 0; dropped-- {
		dropped += h.send(DisconnectNotice)
	}
}

// send writes msg outside the lock and reports how many streams it dropped
func (h *Hub) send(msg string) int {
	h.mu.Lock()
	conns := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	dropped := 0
	for _, c := range conns {
		if err := c.WriteText(msg); err != nil {
			h.log.Warnw("broadcast", "ERROR", err)
			if h.remove(c) {
				dropped++
			}
		}
	}
	return dropped
}

// remove reports whether c was still registered
func (h *Hub) remove(c Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; !ok {
		return false
	}
	delete(h.conns, c)
	return true
}
