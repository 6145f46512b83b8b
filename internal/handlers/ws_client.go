package handlers

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"logogrid/internal/logos"
)

const wsWriteWait = 5 * time.Second

// WSClient is one live display. Its selection is only read and replaced
// from the connection's read loop.
type WSClient struct {
	ID        string
	conn      *websocket.Conn
	queue     chan []byte
	selection logos.Selection
	closeOnce sync.Once
}

func NewWSClient(conn *websocket.Conn, sel logos.Selection) *WSClient {
	return &WSClient{
		ID:        newSessionID(),
		conn:      conn,
		queue:     make(chan []byte, 32),
		selection: sel,
	}
}

func (c *WSClient) Selection() logos.Selection {
	return c.selection
}

// Replace installs a new selection wholesale.
func (c *WSClient) Replace(sel logos.Selection) {
	c.selection = sel
}

// Push queues a typed message. It reports false when the queue is full and
// the message was dropped.
func (c *WSClient) Push(msgType string, data interface{}) bool {
	select {
	case c.queue <- mustJSON(WSMessage{Type: msgType, Data: data}):
		return true
	default:
		return false
	}
}

func (c *WSClient) WritePump() {
	for msg := range c.queue {
		_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Close stops the write pump. Safe to call more than once.
func (c *WSClient) Close() {
	c.closeOnce.Do(func() { close(c.queue) })
}
