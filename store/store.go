package store

import "errors"

// RoomStore tracks live rooms, their ordered membership, and each room's
// canvas state. All state is process-local and in-memory: losing it on
// restart is intended, rooms are ephemeral.
type RoomStore interface {
	// CreateRoom generates a fresh room code, guaranteed distinct from every
	// code currently tracked, and registers an empty room with a blank canvas.
	CreateRoom() string

	// JoinRoom appends connID to the room's member list and returns the
	// members present before the join, in join order. A connection rejoining
	// is appended again; the store does not deduplicate.
	// Returns ErrRoomNotFound if the code is not tracked.
	JoinRoom(code string, connID string) ([]string, error)

	// LeaveRoom removes the first occurrence of connID from the first room
	// that contains it and reports that room's code. A connection belongs to
	// at most one room; if that is ever violated only one membership is
	// dropped. Returns "" and false when connID is in no room.
	LeaveRoom(connID string) (string, bool)

	// Members returns the room's member connection ids in join order, nil if
	// the room is unknown.
	Members(code string) []string

	// Rooms returns the codes of all tracked rooms.
	Rooms() []string

	// DeleteRoom drops a room and its canvas state. Used only by the
	// optional empty-room reaper; the engine itself never deletes rooms.
	DeleteRoom(code string)

	// RecordSnapshot pushes a committed snapshot onto the room's history,
	// discarding any undone-but-not-redone entries above the cursor, and
	// makes it the canonical state.
	RecordSnapshot(code string, image string)

	// Undo steps the history cursor back and returns the snapshot there.
	// Returns false when there is nothing to undo.
	Undo(code string) (string, bool)

	// Redo steps the history cursor forward and returns the snapshot there.
	// Returns false when there is nothing to redo.
	Redo(code string) (string, bool)

	// Clear resets the canvas to blank and the history to a single blank
	// baseline entry.
	Clear(code string)

	// CurrentSnapshot returns the canonical state for late-joiner resync;
	// false when the canvas was never drawn on.
	CurrentSnapshot(code string) (string, bool)

	// SetCanonical overwrites the canonical state without touching history.
	// History is local per editor; canonical is what new joiners see.
	SetCanonical(code string, image string)
}

var ErrRoomNotFound = errors.New("room not found")
