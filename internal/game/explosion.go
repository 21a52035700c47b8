package game

import "math/rand"

type Explosion struct {
	ID             EntityID
	Pos            Vec2
	Radius         float64
	MaxRadius      float64
	Speed          float64
	Growing        bool
	CausedByPlayer bool
}

// NewExplosion starts an explosion with a small random radius in
// [ExplosionMinStart, ExplosionMaxStart).
func NewExplosion(id EntityID, pos Vec2, maxRadius, speed float64, causedByPlayer bool, rng *rand.Rand) *Explosion {
	start := float64(ExplosionMinStart + rng.Intn(ExplosionMaxStart-ExplosionMinStart))
	if start > maxRadius {
		start = maxRadius
	}
	return &Explosion{
		ID:             id,
		Pos:            pos,
		Radius:         start,
		MaxRadius:      maxRadius,
		Speed:          speed,
		Growing:        true,
		CausedByPlayer: causedByPlayer,
	}
}

// Update grows the radius up to MaxRadius, then shrinks it. It returns false once
// the radius has dropped below zero and the explosion is spent.
func (e *Explosion) Update() bool {
	if e.Growing {
		e.Radius += e.Speed
		if e.Radius >= e.MaxRadius {
			e.Radius = e.MaxRadius
			e.Growing = false
		}
		return true
	}
	e.Radius -= e.Speed
	return e.Radius >= 0
}

// InRange is the intercept check against a live missile.
func (e *Explosion) InRange(p Vec2) bool {
	return e.Pos.Dist(p) <= e.Radius*2
}

// InMaxRange is the area-of-effect check used for city damage.
func (e *Explosion) InMaxRange(p Vec2) bool {
	return e.Pos.Dist(p) <= e.MaxRadius*2
}
