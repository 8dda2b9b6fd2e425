package worker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zlnvch/deltaroom/store/memory"
	"github.com/zlnvch/deltaroom/worker"
)

func TestSweep_DeletesRoomsEmptyForTwoSweeps(t *testing.T) {
	roomStore := memory.NewRoomStore(0)
	emptyRoom := roomStore.CreateRoom()
	liveRoom := roomStore.CreateRoom()
	roomStore.JoinRoom(liveRoom, "conn-a")

	reaper := worker.NewReaper(roomStore, time.Minute)

	reaper.Sweep()
	assert.Contains(t, roomStore.Rooms(), emptyRoom, "one sweep only marks")

	reaper.Sweep()
	assert.NotContains(t, roomStore.Rooms(), emptyRoom)
	assert.Contains(t, roomStore.Rooms(), liveRoom)
}

func TestSweep_RejoinedRoomIsSpared(t *testing.T) {
	roomStore := memory.NewRoomStore(0)
	code := roomStore.CreateRoom()

	reaper := worker.NewReaper(roomStore, time.Minute)

	reaper.Sweep()
	roomStore.JoinRoom(code, "conn-a")
	reaper.Sweep()

	assert.Contains(t, roomStore.Rooms(), code)
}

func TestSweep_RoomEmptiedAgainNeedsTwoFreshSweeps(t *testing.T) {
	roomStore := memory.NewRoomStore(0)
	code := roomStore.CreateRoom()
	roomStore.JoinRoom(code, "conn-a")

	reaper := worker.NewReaper(roomStore, time.Minute)

	reaper.Sweep()
	roomStore.LeaveRoom("conn-a")
	reaper.Sweep()
	assert.Contains(t, roomStore.Rooms(), code)

	reaper.Sweep()
	assert.NotContains(t, roomStore.Rooms(), code)
}
