package broadcast

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
)

// Conn is the part of a viewer connection the broadcaster writes to.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one registered viewer.
type Client struct {
	// Unique viewer ID, only used in logs.
	ID string

	conn Conn
	// Serialized events waiting to be written, closed on Unregister.
	send chan []byte
	// Closed once the write pump has returned and the connection is closed.
	done chan struct{}
}

func newClient(conn Conn) *Client {
	return &Client{
		ID:   xid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// Done is closed after the client's connection has been closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// writePump is the only writer of c.conn. A failed write ends it and unregisters the client,
// other viewers are unaffected.
func (c *Client) writePump(s *service) {
	defer close(c.done)
	defer c.conn.Close()

	var tick <-chan time.Time
	if s.pingInterval > 0 {
		ticker := time.NewTicker(s.pingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if !ok {
				// Unregistered, say goodbye
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if wrerr := c.conn.WriteMessage(websocket.TextMessage, payload); wrerr != nil {
				s.logger.Info().Err(wrerr).Str("viewer", c.ID).Msg("Write to viewer failed")
				s.Unregister(context.Background(), c)
				return
			}

		case <-tick:
			c.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if wrerr := c.conn.WriteMessage(websocket.PingMessage, nil); wrerr != nil {
				s.logger.Info().Err(wrerr).Str("viewer", c.ID).Msg("Ping to viewer failed")
				s.Unregister(context.Background(), c)
				return
			}
		}
	}
}
