package service

import (
	"sync"

	"github.com/zlnvch/deltaroom/store"
)

// Broadcaster delivers encoded events to live connections. Delivery to a
// connection that has already gone away is silently dropped by the transport.
type Broadcaster interface {
	Send(connID string, message []byte)
	SendAll(connIDs []string, message []byte)
}

// Service is the session lifecycle controller: it owns display names, drives
// room create/join/disconnect sequences against the store, and routes every
// event class to its recipient set.
type Service struct {
	Store store.RoomStore
	Hub   Broadcaster

	mu    sync.Mutex
	names map[string]string
}

func NewService(roomStore store.RoomStore, hub Broadcaster) *Service {
	return &Service{
		Store: roomStore,
		Hub:   hub,
		names: make(map[string]string),
	}
}

// SetUsername stores the connection's display name. Re-settable at any time,
// including while in a room.
func (s *Service) SetUsername(connID string, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[connID] = name
}

// Username resolves a connection's display name, defaulting to the
// connection id when no name was ever set.
func (s *Service) Username(connID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name, ok := s.names[connID]; ok && name != "" {
		return name
	}
	return connID
}

func (s *Service) forgetUsername(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.names, connID)
}
