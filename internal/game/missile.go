package game

import "math/rand"

// Owner tags which collection a missile belongs to.
type Owner uint8

const (
	OwnerPlayer Owner = iota + 1
	OwnerAttacker
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerAttacker:
		return "attacker"
	default:
		return "unknown"
	}
}

type MissileState uint8

const (
	MissileFlying MissileState = iota
	MissileDetonating
	MissileRemoved
)

// NoSilo marks a missile created by the spawner.
const NoSilo = -1

type Missile struct {
	ID     EntityID
	Owner  Owner
	Silo   int
	Origin Vec2
	Target Vec2
	Pos    Vec2
	Radius float64
	State  MissileState

	path *LineStepper
}

func NewMissile(id EntityID, owner Owner, silo int, from, to Vec2, radius float64) *Missile {
	start := from.Round()
	return &Missile{
		ID:     id,
		Owner:  owner,
		Silo:   silo,
		Origin: from,
		Target: to,
		Pos:    start.Vec2(),
		Radius: radius,
		State:  MissileFlying,
		path:   NewLineStepper(start, to.Round()),
	}
}

func (m *Missile) IsPlayer() bool { return m.Owner == OwnerPlayer }

// Advance moves the missile up to steps points along its path. It returns true
// once the path is exhausted and the missile is ready to detonate.
func (m *Missile) Advance(steps int) bool {
	if m.State != MissileFlying {
		return m.State == MissileDetonating
	}
	for i := 0; i < steps; i++ {
		if m.path.Done() {
			m.State = MissileDetonating
			return true
		}
		m.Pos = m.path.Next().Vec2()
	}
	return false
}

// Intercept marks a flying missile as hit. It then detonates like one that
// reached its target.
func (m *Missile) Intercept() bool {
	if m.State != MissileFlying {
		return false
	}
	m.State = MissileDetonating
	return true
}

// InRange reports whether other is within (radius + threshold) * 2 of m.
func (m *Missile) InRange(other *Missile, threshold float64) bool {
	if other == nil || other == m || other.ID == m.ID {
		return false
	}
	return m.Pos.Dist(other.Pos) <= (m.Radius+threshold)*2
}

// Detonate turns the missile into an explosion at its current position. A missile
// detonates once; later calls return nil.
func (m *Missile) Detonate(id EntityID, p Params, rng *rand.Rand) *Explosion {
	if m.State == MissileRemoved {
		return nil
	}
	m.State = MissileRemoved
	return NewExplosion(id, m.Pos, p.DetonationRadius, p.ExplosionSpeed, m.IsPlayer(), rng)
}
