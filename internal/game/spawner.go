package game

import (
	"math"
	"math/rand"
)

// Spawner throttles attacker launches and aims them at the nearest standing city.
type Spawner struct {
	LastSpawn int64
	Width     float64
	Altitude  float64 // start y, above the top edge of the playfield
	Ground    float64 // target y
}

func NewSpawner(width, height, groundY float64) *Spawner {
	return &Spawner{
		Width:    width,
		Altitude: groundY - height,
		Ground:   groundY,
	}
}

// Ready reports whether another attacker may be launched now.
func (s *Spawner) Ready(now int64, live int, p Params) bool {
	return now-s.LastSpawn >= p.SpawnIntervalMs && live < p.MaxAttackers
}

// Spawn picks a start and target for a new attacker and stamps the spawn time.
// ok is false when the interval or concurrency cap forbids a launch.
func (s *Spawner) Spawn(now int64, live int, cities []*City, p Params, rng *rand.Rand) (start, target Vec2, ok bool) {
	if !s.Ready(now, live, p) {
		return Vec2{}, Vec2{}, false
	}
	start = Vec2{X: float64(rng.Intn(int(s.Width) + 1)), Y: s.Altitude}
	target = Vec2{Y: s.Ground}
	if city := NearestStandingCity(cities, start); city != nil {
		target.X = city.Center.X
	} else {
		target.X = float64(rng.Intn(int(s.Width) + 1))
	}
	s.LastSpawn = now
	return start, target, true
}

// NearestStandingCity returns the undestroyed city whose centre is closest to p,
// or nil when every city is destroyed.
func NearestStandingCity(cities []*City, p Vec2) *City {
	best := math.Inf(1)
	var nearest *City
	for _, c := range cities {
		if c.Destroyed {
			continue
		}
		if d := c.Center.Dist(p); d < best {
			best = d
			nearest = c
		}
	}
	return nearest
}
