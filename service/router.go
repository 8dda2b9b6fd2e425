package service

import (
	"encoding/json"
	"log"
)

// Inbound and outbound event names.
const (
	EventCreateRoom  = "create-room"
	EventJoinRoom    = "join-room"
	EventSetUsername = "set-username"
	EventChatMessage = "chat-message"
	EventTyping      = "typing"
	EventStopTyping  = "stop-typing"
	EventDraw        = "draw"
	EventClear       = "clear"
	EventUndo        = "undo"
	EventRedo        = "redo"
	EventFileShare   = "file-share"

	EventRoomCreated = "room-created"
	EventJoinedRoom  = "joined-room"
	EventRoomMembers = "room-members"
	EventCanvasState = "canvas-state"
	EventFileShared  = "file-shared"
	EventUserJoined  = "user-joined"
	EventUserLeft    = "user-left"
	EventError       = "error"
)

// envelope is the wire format for every event in both directions.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// fanout selects the recipient set for a broadcast event class.
type fanout int

const (
	// fanoutOthers sends to every room member except the sender.
	fanoutOthers fanout = iota
	// fanoutRoom sends to every room member, sender included.
	fanoutRoom
)

// eventFanout is the recipient-resolution table. Only chat echoes back to
// the sender; everything else goes to the sender's peers. Unicast replies
// (acks, resync, errors) do not route through this table.
var eventFanout = map[string]fanout{
	EventChatMessage: fanoutRoom,
	EventTyping:      fanoutOthers,
	EventStopTyping:  fanoutOthers,
	EventDraw:        fanoutOthers,
	EventClear:       fanoutOthers,
	EventUndo:        fanoutOthers,
	EventRedo:        fanoutOthers,
	EventFileShared:  fanoutOthers,
	EventUserJoined:  fanoutOthers,
	EventUserLeft:    fanoutOthers,
}

// broadcast resolves the recipient set for an event from senderID in the
// given room and dispatches one encoded copy to each recipient.
func (s *Service) broadcast(event string, code string, senderID string, data any) {
	policy, ok := eventFanout[event]
	if !ok {
		log.Printf("No fanout policy for event %q, dropping", event)
		return
	}

	members := s.Store.Members(code)
	recipients := make([]string, 0, len(members))
	for _, id := range members {
		if policy == fanoutOthers && id == senderID {
			continue
		}
		recipients = append(recipients, id)
	}
	if len(recipients) == 0 {
		return
	}

	s.Hub.SendAll(recipients, encode(event, data))
}

// unicast sends a single event to one connection.
func (s *Service) unicast(connID string, event string, data any) {
	s.Hub.Send(connID, encode(event, data))
}

func encode(event string, data any) []byte {
	message, err := json.Marshal(envelope{Type: event, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return nil
	}
	return message
}

// isMember reports whether connID is currently tracked in the room. Events
// from non-members are dropped; valid traffic is unaffected.
func (s *Service) isMember(code string, connID string) bool {
	for _, id := range s.Store.Members(code) {
		if id == connID {
			return true
		}
	}
	return false
}
