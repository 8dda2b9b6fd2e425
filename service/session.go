package service

import (
	"errors"
	"log"
	"time"

	"github.com/zlnvch/deltaroom/models"
	"github.com/zlnvch/deltaroom/store"
)

type roomPayload struct {
	Room string `json:"room"`
}

// CreateRoom registers a fresh room with the connection as sole member. The
// creator gets the ack; the presence broadcast goes to an empty room and is
// a no-op.
func (s *Service) CreateRoom(connID string) {
	code := s.Store.CreateRoom()
	if _, err := s.Store.JoinRoom(code, connID); err != nil {
		log.Printf("Failed to join freshly created room %s: %v", code, err)
		return
	}

	s.unicast(connID, EventRoomCreated, roomPayload{Room: code})
	s.broadcast(EventUserJoined, code, connID, models.Presence{
		UserID:   connID,
		Username: s.Username(connID),
	})
	log.Printf("Room %s created by %s", code, connID)
}

// JoinRoom adds the connection to an existing room. The joiner gets the ack,
// the pre-join member list, and the canonical canvas snapshot if the canvas
// has ever been drawn on; pre-existing members get the presence event. On an
// unknown code only an error event goes back and nothing changes.
func (s *Service) JoinRoom(connID string, code string) {
	existing, err := s.Store.JoinRoom(code, connID)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			s.unicast(connID, EventError, "Room not found")
			return
		}
		log.Printf("Join room %s failed: %v", code, err)
		return
	}

	s.unicast(connID, EventJoinedRoom, roomPayload{Room: code})

	members := make([]models.Member, 0, len(existing))
	for _, id := range existing {
		members = append(members, models.Member{UserID: id, Username: s.Username(id)})
	}
	s.unicast(connID, EventRoomMembers, members)

	if image, ok := s.Store.CurrentSnapshot(code); ok {
		s.unicast(connID, EventCanvasState, models.CanvasSnapshot{Room: code, Image: image})
	}

	s.broadcast(EventUserJoined, code, connID, models.Presence{
		UserID:   connID,
		Username: s.Username(connID),
	})
	log.Printf("User %s joined room %s", connID, code)
}

// Disconnect removes the connection from its room, if any, and tells the
// remaining members. Terminal: no further events for this connection id.
func (s *Service) Disconnect(connID string) {
	username := s.Username(connID)
	s.forgetUsername(connID)

	code, ok := s.Store.LeaveRoom(connID)
	if !ok {
		return
	}

	s.broadcast(EventUserLeft, code, connID, models.Presence{
		UserID:   connID,
		Username: username,
	})
	log.Printf("User %s left room %s", connID, code)
}

// Chat fans a chat line out to the whole room, sender included, with the
// resolved display name and sender connection id attached.
func (s *Service) Chat(connID string, msg models.ChatMessage) {
	if !s.isMember(msg.Room, connID) {
		log.Printf("Dropping chat-message from non-member %s for room %s", connID, msg.Room)
		return
	}

	code := msg.Room
	msg.Room = ""
	msg.User = s.Username(connID)
	msg.UserID = connID
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	s.broadcast(EventChatMessage, code, connID, msg)
}

// Typing relays a typing or stop-typing indicator to the sender's peers.
// There is no server-side inactivity timer; clients send stop-typing
// themselves.
func (s *Service) Typing(connID string, event string, notice models.TypingNotice) {
	if !s.isMember(notice.Room, connID) {
		log.Printf("Dropping %s from non-member %s for room %s", event, connID, notice.Room)
		return
	}

	code := notice.Room
	notice.Room = ""
	notice.User = s.Username(connID)
	s.broadcast(event, code, connID, notice)
}

// Draw fans a draw gesture out to the sender's peers. Peers replay the raw
// operation locally for low latency. When the gesture carries a committed
// snapshot it is recorded so late joiners resync to it.
func (s *Service) Draw(connID string, op models.DrawOp) {
	if !s.isMember(op.Room, connID) {
		log.Printf("Dropping draw from non-member %s for room %s", connID, op.Room)
		return
	}

	code := op.Room
	op.Room = ""
	op.Username = s.Username(connID)
	if op.Image != "" {
		s.Store.RecordSnapshot(code, op.Image)
	}
	s.broadcast(EventDraw, code, connID, op)
}

// Clear blanks the room's canvas, resets its history to the blank baseline,
// and tells the sender's peers.
func (s *Service) Clear(connID string, notice models.ClearNotice) {
	if !s.isMember(notice.Room, connID) {
		log.Printf("Dropping clear from non-member %s for room %s", connID, notice.Room)
		return
	}

	code := notice.Room
	notice.Room = ""
	notice.Username = s.Username(connID)
	s.Store.Clear(code)
	s.broadcast(EventClear, code, connID, notice)
}

// Step handles undo and redo. A snapshot announced by the client becomes the
// new canonical state as-is: concurrent undo/redo between two peers is
// last-write-wins, not merged. Without a client snapshot the server steps
// its own history and announces the result; if there is nothing to step to,
// the whole operation is a no-op.
func (s *Service) Step(connID string, event string, snap models.CanvasSnapshot) {
	if !s.isMember(snap.Room, connID) {
		log.Printf("Dropping %s from non-member %s for room %s", event, connID, snap.Room)
		return
	}

	code := snap.Room
	if snap.Image == "" {
		var ok bool
		if event == EventRedo {
			snap.Image, ok = s.Store.Redo(code)
		} else {
			snap.Image, ok = s.Store.Undo(code)
		}
		if !ok {
			return
		}
	}

	s.Store.SetCanonical(code, snap.Image)
	snap.Room = ""
	snap.Username = s.Username(connID)
	s.broadcast(event, code, connID, snap)
}

// ShareFile relays an inline file to the sender's peers with the resolved
// display name attached.
func (s *Service) ShareFile(connID string, share models.FileShare) {
	if !s.isMember(share.Room, connID) {
		log.Printf("Dropping file-share from non-member %s for room %s", connID, share.Room)
		return
	}

	code := share.Room
	share.Room = ""
	share.User = s.Username(connID)
	if share.Timestamp == "" {
		share.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	s.broadcast(EventFileShared, code, connID, share)
}
