// Package realtime is the in-process presence registry behind the realtime
// gateway. It tracks open websocket connections in two pools, a session pool
// keyed by recipient and kind and a device pool keyed by recipient, and
// emits events to them. Presence is transient: nothing here survives a
// process restart.
package realtime

import (
	"sync"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one registered websocket connection. The handle is the opaque
// token the registry hands back on Register; Unregister by handle is O(1)
// regardless of pool sizes.
type Client struct {
	handle      string
	pool        string
	key         string
	recipientID uuid.UUID
	kind        entity.RecipientKind
	deviceID    string

	conn *websocket.Conn
	send chan []byte

	writeTimeout time.Duration

	// mu serializes enqueue against Close so a frame is never sent on the
	// closed channel while a disconnect races a delivery.
	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, pool, key string, recipientID uuid.UUID, kind entity.RecipientKind, deviceID string, sendBuffer int, writeTimeout time.Duration) *Client {
	return &Client{
		handle:       uuid.NewString(),
		pool:         pool,
		key:          key,
		recipientID:  recipientID,
		kind:         kind,
		deviceID:     deviceID,
		conn:         conn,
		send:         make(chan []byte, sendBuffer),
		writeTimeout: writeTimeout,
	}
}

// Handle returns the opaque registration token.
func (c *Client) Handle() string {
	return c.handle
}

// Close shuts the send channel and the underlying connection. Idempotent,
// and safe against concurrent enqueue calls.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// WritePump drains the send channel onto the wire. It runs in its own
// goroutine per connection and exits when the channel is closed or a write
// fails.
func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// enqueue hands a frame to the client without blocking. A closed client
// rejects the frame; a full send buffer means the consumer stopped draining,
// and the caller decides what to do with the client.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}
