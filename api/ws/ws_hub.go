package ws

import (
	"log"
)

type directed struct {
	connIDs []string
	message []byte
}

// Hub owns the connection-id to client map. All registration and dispatch
// runs through Run's single goroutine, so each recipient receives a sender's
// events in the order the sender produced them.
type Hub struct {
	OpenCh  chan *Client
	CloseCh chan *Client
	sendCh  chan directed
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		OpenCh:  make(chan *Client, 256),
		CloseCh: make(chan *Client, 256),
		sendCh:  make(chan directed, 1024),
		clients: make(map[string]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.OpenCh:
			h.clients[client.ID] = client

		case client := <-h.CloseCh:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}

		case d := <-h.sendCh:
			if d.message == nil {
				continue
			}
			for _, connID := range d.connIDs {
				client, ok := h.clients[connID]
				if !ok {
					// Recipient disconnected while the event was in flight.
					continue
				}
				select {
				case client.Send <- d.message:
				default:
					log.Printf("Dropping client %s: send buffer full", connID)
					delete(h.clients, connID)
					close(client.Send)
				}
			}
		}
	}
}

// Send queues a unicast message for one connection.
func (h *Hub) Send(connID string, message []byte) {
	h.sendCh <- directed{connIDs: []string{connID}, message: message}
}

// SendAll queues one message for a resolved recipient set.
func (h *Hub) SendAll(connIDs []string, message []byte) {
	h.sendCh <- directed{connIDs: connIDs, message: message}
}
