package game

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

type CommandKind uint8

const (
	CmdLaunch CommandKind = iota + 1
	CmdRepair
	CmdQuit
)

// Command is a discrete player input, applied at the start of the next tick.
type Command struct {
	Kind CommandKind
	At   Vec2
}

// MatchStats counts what happened in a room since it was created.
type MatchStats struct {
	Launches         int
	AttackersSpawned int
	Intercepts       int
	Detonations      int
	BuildingsLost    int
	Repairs          int
}

// Room is one running match. All simulation state is owned here and mutated
// only by the tick, under Mu.
type Room struct {
	ID      string
	Params  Params
	Clock   Clock
	Width   float64
	Height  float64
	GroundY float64

	Cities         []*City
	Silos          []*Silo
	Spawner        *Spawner
	PlayerMissiles *Store[Missile]
	AttackMissiles *Store[Missile]
	Explosions     *Store[Explosion]

	Mu sync.Mutex

	ids      IDSource
	rng      *rand.Rand
	pending  []Command
	stopped  bool
	attached int
	stats    MatchStats
}

// NewRoom lays out the default playfield: three cities and two silos.
func NewRoom(id string, p Params) *Room {
	p = SanitizeParams(p)
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newRoom(id, p, rand.New(rand.NewSource(seed)))
}

func newRoom(id string, p Params, rng *rand.Rand) *Room {
	r := &Room{
		ID:             id,
		Params:         p,
		Width:          WorldW,
		Height:         WorldH,
		GroundY:        GroundY,
		Spawner:        NewSpawner(WorldW, WorldH, GroundY),
		PlayerMissiles: NewStore[Missile](),
		AttackMissiles: NewStore[Missile](),
		Explosions:     NewStore[Explosion](),
		rng:            rng,
	}
	cw := r.Width / 8
	cityAnchors := []float64{32, r.Width/2 - cw/2 - 32, r.Width - cw - 64}
	for i, x := range cityAnchors {
		r.Cities = append(r.Cities, NewCity(i, Vec2{X: x, Y: r.GroundY}, cw, rng))
	}
	siloAnchors := []float64{cw + 96, r.Width/2 - cw/2 + cw + 64}
	for _, x := range siloAnchors {
		r.Silos = append(r.Silos, NewSilo(Vec2{X: x, Y: r.GroundY}, SiloWidth, p.MaxAmmo))
	}
	return r
}

// Enqueue queues a command for the next tick.
func (r *Room) Enqueue(cmd Command) {
	r.Mu.Lock()
	r.pending = append(r.pending, cmd)
	r.Mu.Unlock()
}

// Tick advances the match by one nominal tick of TickMs. Live drivers use Step
// with the measured elapsed time.
func (r *Room) Tick() {
	r.Step(TickMs)
}

// Step advances the match by dtMs of simulation time.
func (r *Room) Step(dtMs int64) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.stepLocked(dtMs)
}

func (r *Room) stepLocked(dtMs int64) {
	if r.stopped {
		return
	}
	r.Clock.Advance(dtMs)

	cmds := r.pending
	r.pending = nil
	for _, cmd := range cmds {
		r.applyLocked(cmd)
	}
	if r.stopped {
		return
	}

	spawnAttackers(r)
	updateMissiles(r)
	resolveCollisions(r)
	updateExplosions(r)
	updateSilos(r)
	updateCities(r)
}

func (r *Room) applyLocked(cmd Command) {
	switch cmd.Kind {
	case CmdLaunch:
		r.LaunchAtLocked(cmd.At)
	case CmdRepair:
		r.RepairCityAtLocked(cmd.At)
	case CmdQuit:
		r.stopped = true
	}
}

// LaunchAtLocked fires a player missile at target from the silo with ammo whose
// launch point is nearest; the earlier silo wins a tie. It returns 0 when no silo
// has ammo.
func (r *Room) LaunchAtLocked(target Vec2) EntityID {
	best := math.Inf(1)
	idx := -1
	for i, s := range r.Silos {
		if s.Ammo <= 0 {
			continue
		}
		if d := s.LaunchPoint.Dist(target); d < best {
			best = d
			idx = i
		}
	}
	if idx < 0 {
		return 0
	}
	s := r.Silos[idx]
	if !s.Launch(r.Clock.Now()) {
		return 0
	}
	id := r.ids.NewEntity()
	r.PlayerMissiles.Add(id, NewMissile(id, OwnerPlayer, idx, s.LaunchPoint, target, r.Params.MissileRadius))
	r.stats.Launches++
	return id
}

// RepairCityAtLocked starts repairing the destroyed city whose area contains p.
func (r *Room) RepairCityAtLocked(p Vec2) bool {
	for _, c := range r.Cities {
		if c.Rect.Contains(p) && c.Destroyed && !c.Repairing {
			return c.Repair(r.Clock.Now())
		}
	}
	return false
}

func (r *Room) Stopped() bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.stopped
}

// Attach claims the room for a commanding client. It fails once RoomMaxPlayers
// clients are attached.
func (r *Room) Attach() bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.attached >= RoomMaxPlayers {
		return false
	}
	r.attached++
	return true
}

func (r *Room) Detach() {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.attached > 0 {
		r.attached--
	}
}

func (r *Room) AttachedLocked() int { return r.attached }
