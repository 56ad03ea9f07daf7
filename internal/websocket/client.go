package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Frame is the JSON envelope written to the socket.
type Frame struct {
	Type  string      `json:"type"` // "history" | "message" | "error"
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Client is one websocket connection attached to a chat session.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	sessionId uuid.UUID

	// Called for every text frame the visitor sends.
	onText func(text string) error

	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionId uuid.UUID, onText func(text string) error) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		sessionId: sessionId,
		onText:    onText,
		send:      make(chan []byte, sendBuffer),
	}
}

// Enqueue queues a frame for writing. It reports false when the client is
// gone or too slow to keep up.
func (c *Client) Enqueue(frame Frame) bool {
	data, err := json.Marshal(frame)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Serve registers the client and pumps until the connection drops.
func (c *Client) Serve() {
	c.hub.register <- c
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("CHAT_WS", "Unexpected close", map[string]interface{}{
					"chat_session_id": c.sessionId,
					"error":           err.Error(),
				})
			}
			return
		}
		if msgType != websocket.TextMessage || c.onText == nil {
			continue
		}
		if err := c.onText(string(data)); err != nil {
			c.Enqueue(Frame{Type: "error", Error: err.Error()})
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per chat message; clients parse each frame as a single JSON value.
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
