package game

import (
	"context"
	"sort"
	"sync"
	"time"
)

type Hub struct {
	Rooms  map[string]*Room
	Params Params
	Mu     sync.Mutex
}

func NewHub(p Params) *Hub {
	return &Hub{Rooms: map[string]*Room{}, Params: SanitizeParams(p)}
}

// GetRoom returns the room with id, creating it with the hub's params.
func (h *Hub) GetRoom(id string) *Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return h.getRoomLocked(id, h.Params)
}

func (h *Hub) getRoomLocked(id string, p Params) *Room {
	r, ok := h.Rooms[id]
	if !ok {
		r = NewRoom(id, p)
		h.Rooms[id] = r
	}
	return r
}

// AcquireRoom finds or creates room id and attaches a client to it in one step so
// that a cleanup pass cannot drop it in between. A new room uses p; an existing
// room keeps its params, and a quit room is replaced by a fresh one. ok is false
// when the room is full.
func (h *Hub) AcquireRoom(id string, p Params) (r *Room, ok bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	if old, found := h.Rooms[id]; found && old.Stopped() {
		delete(h.Rooms, id)
	}
	r = h.getRoomLocked(id, p)
	return r, r.Attach()
}

func (h *Hub) LookupRoom(id string) (*Room, bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	r, ok := h.Rooms[id]
	return r, ok
}

func (h *Hub) RoomIDs() []string {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	ids := make([]string, 0, len(h.Rooms))
	for id := range h.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (h *Hub) rooms() []*Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	out := make([]*Room, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		out = append(out, r)
	}
	return out
}

// TickAll advances every room by one nominal tick.
func (h *Hub) TickAll() {
	h.StepAll(TickMs)
}

// StepAll advances every room by dtMs of simulation time.
func (h *Hub) StepAll(dtMs int64) {
	for _, r := range h.rooms() {
		r.Step(dtMs)
	}
}

// Run steps all rooms at SimHz until ctx is done. Each step covers the wall time
// since the previous one, so dropped or late ticks do not slow the match clock.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / SimHz)
	defer ticker.Stop()
	h.run(ctx, time.Now(), ticker.C)
}

func (h *Hub) run(ctx context.Context, start time.Time, ticks <-chan time.Time) {
	pacer := NewPacer(start)
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticks:
			if dt := pacer.Elapsed(now); dt > 0 {
				h.StepAll(dt)
			}
		}
	}
}

// CleanupEmptyRooms drops rooms that were quit or have no attached client and
// returns how many were removed.
func (h *Hub) CleanupEmptyRooms() int {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	removed := 0
	for id, r := range h.Rooms {
		r.Mu.Lock()
		idle := r.stopped || r.attached == 0
		r.Mu.Unlock()
		if idle {
			delete(h.Rooms, id)
			removed++
		}
	}
	return removed
}
