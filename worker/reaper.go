package worker

import (
	"context"
	"log"
	"time"

	"github.com/zlnvch/deltaroom/store"
)

// Reaper deletes rooms that stay empty across two consecutive sweeps. The
// engine itself never deletes rooms; running the reaper is an opt-in trade
// of the reference behavior for bounded memory on long-lived processes.
type Reaper struct {
	roomStore store.RoomStore
	interval  time.Duration
	pending   map[string]struct{}
}

func NewReaper(roomStore store.RoomStore, interval time.Duration) *Reaper {
	return &Reaper{
		roomStore: roomStore,
		interval:  interval,
		pending:   make(map[string]struct{}),
	}
}

func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// Sweep marks rooms that are currently empty and deletes the ones already
// marked on the previous sweep. A room that regains a member loses its mark.
func (r *Reaper) Sweep() {
	empty := make(map[string]struct{})
	for _, code := range r.roomStore.Rooms() {
		if len(r.roomStore.Members(code)) == 0 {
			empty[code] = struct{}{}
		}
	}

	for code := range r.pending {
		if _, stillEmpty := empty[code]; stillEmpty {
			r.roomStore.DeleteRoom(code)
			delete(empty, code)
			log.Printf("Reaped empty room %s", code)
		}
	}
	r.pending = empty
}
