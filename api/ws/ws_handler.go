package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"
	"github.com/zlnvch/deltaroom/models"
	"github.com/zlnvch/deltaroom/service"
)

type Handler struct {
	Service *service.Service
	Hub     *Hub
}

func NewHandler(svc *service.Service, hub *Hub) *Handler {
	return &Handler{
		Service: svc,
		Hub:     hub,
	}
}

func (h *Handler) NewWsUpgrader(allowedOrigin string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}
}

// ServeWS handles websocket requests from the peer.
func (h *Handler) ServeWS(wsUpgrader websocket.Upgrader, w http.ResponseWriter, r *http.Request, shutdownCtx context.Context) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade ws connection: %v", err)
		return
	}

	connID, err := uuid.NewV4()
	if err != nil {
		log.Printf("Failed to generate connection id: %v", err)
		conn.Close()
		return
	}

	client := NewClient(h.Hub, conn, connID.String(), h.HandleWsMessage, h.Service.Disconnect)

	h.Hub.OpenCh <- client

	go client.ReadPump()
	go client.WritePump(shutdownCtx)

	log.Printf("Connection %s opened", client.ID)
}

// Websocket message envelope
type message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type joinRoomMessage struct {
	Room string `json:"room"`
}

type setUsernameMessage struct {
	Username string `json:"username"`
}

func (h *Handler) HandleWsMessage(client *Client, messageBytes []byte) {
	var msg message
	if err := json.Unmarshal(messageBytes, &msg); err != nil {
		log.Printf("Invalid JSON from %s: %v", client.ID, err)
		return
	}

	switch msg.Type {
	case service.EventCreateRoom:
		h.Service.CreateRoom(client.ID)

	case service.EventJoinRoom:
		var join joinRoomMessage
		if err := json.Unmarshal(msg.Data, &join); err != nil {
			log.Printf("Invalid join-room data: %v", err)
			return
		}
		h.Service.JoinRoom(client.ID, join.Room)

	case service.EventSetUsername:
		var set setUsernameMessage
		if err := json.Unmarshal(msg.Data, &set); err != nil {
			log.Printf("Invalid set-username data: %v", err)
			return
		}
		h.Service.SetUsername(client.ID, set.Username)

	case service.EventChatMessage:
		var chat models.ChatMessage
		if err := json.Unmarshal(msg.Data, &chat); err != nil {
			log.Printf("Invalid chat-message data: %v", err)
			return
		}
		h.Service.Chat(client.ID, chat)

	case service.EventTyping, service.EventStopTyping:
		var notice models.TypingNotice
		if err := json.Unmarshal(msg.Data, &notice); err != nil {
			log.Printf("Invalid %s data: %v", msg.Type, err)
			return
		}
		h.Service.Typing(client.ID, msg.Type, notice)

	case service.EventDraw:
		var op models.DrawOp
		if err := json.Unmarshal(msg.Data, &op); err != nil {
			log.Printf("Invalid draw data: %v", err)
			return
		}
		h.Service.Draw(client.ID, op)

	case service.EventClear:
		var notice models.ClearNotice
		if err := json.Unmarshal(msg.Data, &notice); err != nil {
			log.Printf("Invalid clear data: %v", err)
			return
		}
		h.Service.Clear(client.ID, notice)

	case service.EventUndo, service.EventRedo:
		var snap models.CanvasSnapshot
		if err := json.Unmarshal(msg.Data, &snap); err != nil {
			log.Printf("Invalid %s data: %v", msg.Type, err)
			return
		}
		h.Service.Step(client.ID, msg.Type, snap)

	case service.EventFileShare:
		var share models.FileShare
		if err := json.Unmarshal(msg.Data, &share); err != nil {
			log.Printf("Invalid file-share data: %v", err)
			return
		}
		h.Service.ShareFile(client.ID, share)

	default:
		log.Printf("Unknown message type: %v", msg.Type)
	}
}
