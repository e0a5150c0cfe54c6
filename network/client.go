package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// client wraps a websocket connection behind the room.Conn interface.
// Send is called from the room loop and the ping loop, so writes are
// serialized with a mutex.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *client) Close() error {
	return c.conn.Close()
}
