package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendQueueSize  = 64
)

// Client is one live websocket connection bound to an authenticated
// user. A user may hold several clients at once (multiple tabs).
type Client struct {
	id     string
	userID int64
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once

	// rooms is owned by the hub and mutated only under its lock.
	rooms map[string]struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userID int64) *Client {
	return &Client{
		id:     uuid.NewString(),
		userID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
		rooms:  make(map[string]struct{}),
	}
}

// enqueue hands a message to the write pump without ever blocking the
// caller. A client whose queue is full gets disconnected; the durable
// notification store covers what it missed.
func (c *Client) enqueue(message []byte) {
	select {
	case c.send <- message:
	case <-c.done:
	default:
		c.hub.logger.Warn("dropping slow realtime client",
			slog.String("client_id", c.id),
			slog.Int64("user_id", c.userID))
		c.close()
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

// readPump consumes inbound frames until the connection drops. Clients
// may only join and leave order rooms; everything else flows server to
// client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("realtime read failed", slog.String("error", err.Error()))
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		switch msg.Action {
		case ActionJoinOrder:
			c.hub.join(c, roomName(msg.OrderID))
		case ActionLeaveOrder:
			c.hub.leave(c, roomName(msg.OrderID))
		}
	}
}

// writePump flushes queued messages and keeps the connection alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}
