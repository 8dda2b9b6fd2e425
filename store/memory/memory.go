package memory

import (
	"crypto/rand"
	"sync"

	"github.com/zlnvch/deltaroom/store"
)

const (
	codeLength   = 10
	codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type canvas struct {
	canonical    string
	hasCanonical bool
	history      []string
	cursor       int
}

type room struct {
	members []string
	canvas  canvas
}

// RoomStore is the in-memory store implementation. A single mutex guards the
// room map so that every mutation runs to completion before the next one,
// which is the serialization the engine's correctness depends on.
type RoomStore struct {
	mu         sync.Mutex
	rooms      map[string]*room
	historyCap int
}

// NewRoomStore creates an empty store. historyCap bounds each room's undo
// history; the oldest snapshot is dropped once the cap is exceeded. A cap of
// zero or less means unbounded.
func NewRoomStore(historyCap int) *RoomStore {
	return &RoomStore{
		rooms:      make(map[string]*room),
		historyCap: historyCap,
	}
}

func (s *RoomStore) CreateRoom() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := newCode()
	for _, taken := s.rooms[code]; taken; _, taken = s.rooms[code] {
		code = newCode()
	}

	s.rooms[code] = &room{canvas: canvas{cursor: -1}}
	return code
}

func (s *RoomStore) JoinRoom(code string, connID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok {
		return nil, store.ErrRoomNotFound
	}

	existing := make([]string, len(r.members))
	copy(existing, r.members)
	r.members = append(r.members, connID)
	return existing, nil
}

func (s *RoomStore) LeaveRoom(connID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, r := range s.rooms {
		for i, id := range r.members {
			if id == connID {
				r.members = append(r.members[:i], r.members[i+1:]...)
				return code, true
			}
		}
	}
	return "", false
}

func (s *RoomStore) Members(code string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok {
		return nil
	}
	members := make([]string, len(r.members))
	copy(members, r.members)
	return members
}

func (s *RoomStore) Rooms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]string, 0, len(s.rooms))
	for code := range s.rooms {
		codes = append(codes, code)
	}
	return codes
}

func (s *RoomStore) DeleteRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *RoomStore) RecordSnapshot(code string, image string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok {
		return
	}

	c := &r.canvas
	c.history = append(c.history[:c.cursor+1], image)
	if s.historyCap > 0 && len(c.history) > s.historyCap {
		c.history = c.history[1:]
	}
	c.cursor = len(c.history) - 1
	c.canonical = image
	c.hasCanonical = true
}

func (s *RoomStore) Undo(code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok || r.canvas.cursor <= 0 {
		return "", false
	}
	r.canvas.cursor--
	return r.canvas.history[r.canvas.cursor], true
}

func (s *RoomStore) Redo(code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok || r.canvas.cursor >= len(r.canvas.history)-1 {
		return "", false
	}
	r.canvas.cursor++
	return r.canvas.history[r.canvas.cursor], true
}

func (s *RoomStore) Clear(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok {
		return
	}
	// Blank baseline entry so undo after a clear has a floor to land on.
	r.canvas = canvas{
		history:      []string{""},
		cursor:       0,
		hasCanonical: true,
	}
}

func (s *RoomStore) CurrentSnapshot(code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok || !r.canvas.hasCanonical {
		return "", false
	}
	return r.canvas.canonical, true
}

func (s *RoomStore) SetCanonical(code string, image string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[code]
	if !ok {
		return
	}
	r.canvas.canonical = image
	r.canvas.hasCanonical = true
}

func newCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
