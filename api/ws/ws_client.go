package ws

import (
	"context"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Large enough for inline
	// file-share payloads and canvas snapshots.
	maxMessageSize = 1024 * 1024

	// Rate limiting: 50 messages per second with a burst of 100. Brush
	// strokes arrive as a stream of small segments, so the ceiling is
	// deliberately generous.
	messagesPerSecond = 50
	burstLimit        = 100
)

type MessageHandler func(client *Client, messageBytes []byte)

// DisconnectHandler runs exactly once when the connection's read loop ends.
type DisconnectHandler func(connID string)

func NewClient(hub *Hub, conn *websocket.Conn, connID string, handler MessageHandler, onDisconnect DisconnectHandler) *Client {
	return &Client{
		hub:          hub,
		conn:         conn,
		ID:           connID,
		handler:      handler,
		onDisconnect: onDisconnect,
		Send:         make(chan []byte, 256),
		limiter:      rate.NewLimiter(rate.Limit(messagesPerSecond), burstLimit),
	}
}

// Client is a middleman between one websocket connection and the hub. ID is
// the connection's opaque identity for its whole lifetime.
type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	ID           string
	handler      MessageHandler
	onDisconnect DisconnectHandler
	Send         chan []byte // Buffered channel of outbound messages.
	limiter      *rate.Limiter
}

func (c *Client) ReadPump() {
	defer func() {
		c.onDisconnect(c.ID)
		c.hub.CloseCh <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WS close error: %v", err)
			}
			break
		}

		if !c.limiter.Allow() {
			log.Printf("Closing connection %s: message rate limit exceeded", c.ID)
			break
		}

		c.handler(c, messageBytes)
	}
}

func (c *Client) WritePump(shutdownCtx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WS send error: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-shutdownCtx.Done():
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down"),
			)
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
