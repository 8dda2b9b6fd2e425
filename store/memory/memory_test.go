package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zlnvch/deltaroom/store"
	"github.com/zlnvch/deltaroom/store/memory"
)

func TestCreateRoom_CodesAreUnique(t *testing.T) {
	s := memory.NewRoomStore(0)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		code := s.CreateRoom()
		assert.Len(t, code, 10)
		assert.False(t, seen[code], "duplicate room code %s", code)
		seen[code] = true
	}
	assert.Len(t, s.Rooms(), 500)
}

func TestJoinRoom_UnknownCode(t *testing.T) {
	s := memory.NewRoomStore(0)

	members, err := s.JoinRoom("nope", "conn-a")
	assert.ErrorIs(t, err, store.ErrRoomNotFound)
	assert.Nil(t, members)
	assert.Empty(t, s.Members("nope"))
}

func TestJoinRoom_ReturnsPreJoinMembers(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	members, err := s.JoinRoom(code, "conn-a")
	assert.NoError(t, err)
	assert.Empty(t, members)

	members, err = s.JoinRoom(code, "conn-b")
	assert.NoError(t, err)
	assert.Equal(t, []string{"conn-a"}, members)

	assert.Equal(t, []string{"conn-a", "conn-b"}, s.Members(code))
}

func TestJoinRoom_DuplicatesAllowed(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.JoinRoom(code, "conn-a")
	s.JoinRoom(code, "conn-a")

	assert.Equal(t, []string{"conn-a", "conn-a"}, s.Members(code))
}

func TestLeaveRoom_FirstOccurrenceOnly(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.JoinRoom(code, "conn-a")
	s.JoinRoom(code, "conn-b")
	s.JoinRoom(code, "conn-a")

	left, ok := s.LeaveRoom("conn-a")
	assert.True(t, ok)
	assert.Equal(t, code, left)
	assert.Equal(t, []string{"conn-b", "conn-a"}, s.Members(code))
}

func TestLeaveRoom_UnknownConnection(t *testing.T) {
	s := memory.NewRoomStore(0)
	s.CreateRoom()

	left, ok := s.LeaveRoom("ghost")
	assert.False(t, ok)
	assert.Empty(t, left)
}

func TestLeaveRoom_RoomSurvivesEmpty(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()
	s.JoinRoom(code, "conn-a")

	s.LeaveRoom("conn-a")

	assert.Empty(t, s.Members(code))
	assert.Contains(t, s.Rooms(), code)
}

func TestRecordSnapshot_ThenUndo(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")

	_, ok := s.Undo(code)
	assert.False(t, ok, "first snapshot has nothing below it")

	s.RecordSnapshot(code, "s2")

	image, ok := s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s1", image)
}

func TestUndoThenRedo_Idempotent(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")
	s.RecordSnapshot(code, "s2")

	image, ok := s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s1", image)

	image, ok = s.Redo(code)
	assert.True(t, ok)
	assert.Equal(t, "s2", image)

	_, ok = s.Redo(code)
	assert.False(t, ok)
}

func TestRecordSnapshot_AfterUndoDiscardsRedoBranch(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")
	s.RecordSnapshot(code, "s2")

	image, ok := s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s1", image)

	s.RecordSnapshot(code, "s3")

	_, ok = s.Redo(code)
	assert.False(t, ok, "redo into the discarded branch must be impossible")

	image, ok = s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s1", image)
}

func TestClear_LeavesBlankBaseline(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")
	s.RecordSnapshot(code, "s2")
	s.Clear(code)

	image, ok := s.CurrentSnapshot(code)
	assert.True(t, ok)
	assert.Empty(t, image)

	_, ok = s.Undo(code)
	assert.False(t, ok, "baseline is the only entry")
	_, ok = s.Redo(code)
	assert.False(t, ok)

	s.RecordSnapshot(code, "s3")
	image, ok = s.Undo(code)
	assert.True(t, ok)
	assert.Empty(t, image, "undo after clear lands on the blank baseline")
}

func TestCurrentSnapshot_NeverDrawnOn(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	_, ok := s.CurrentSnapshot(code)
	assert.False(t, ok)
}

func TestSetCanonical_DoesNotTouchHistory(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")
	s.SetCanonical(code, "peer-announced")

	image, ok := s.CurrentSnapshot(code)
	assert.True(t, ok)
	assert.Equal(t, "peer-announced", image)

	_, ok = s.Undo(code)
	assert.False(t, ok, "canonical overwrite must not grow history")
}

func TestHistoryCap_DropsOldestSnapshot(t *testing.T) {
	s := memory.NewRoomStore(3)
	code := s.CreateRoom()

	s.RecordSnapshot(code, "s1")
	s.RecordSnapshot(code, "s2")
	s.RecordSnapshot(code, "s3")
	s.RecordSnapshot(code, "s4")

	image, ok := s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s3", image)

	image, ok = s.Undo(code)
	assert.True(t, ok)
	assert.Equal(t, "s2", image)

	_, ok = s.Undo(code)
	assert.False(t, ok, "s1 was evicted by the cap")
}

func TestDeleteRoom(t *testing.T) {
	s := memory.NewRoomStore(0)
	code := s.CreateRoom()
	s.RecordSnapshot(code, "s1")

	s.DeleteRoom(code)

	assert.NotContains(t, s.Rooms(), code)
	_, ok := s.CurrentSnapshot(code)
	assert.False(t, ok)
	_, err := s.JoinRoom(code, "conn-a")
	assert.ErrorIs(t, err, store.ErrRoomNotFound)
}
