package game

import (
	"math/rand"
	"testing"
)

func TestExplosionStartRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		e := NewExplosion(1, Vec2{}, DetonationRadius, ExplosionSpeed, false, rng)
		if e.Radius < ExplosionMinStart || e.Radius >= ExplosionMaxStart {
			t.Fatalf("start radius %.1f outside [%d,%d)", e.Radius, ExplosionMinStart, ExplosionMaxStart)
		}
		if e.Radius != float64(int(e.Radius)) {
			t.Fatalf("start radius %.2f is not an integer", e.Radius)
		}
	}
}

// TestExplosionLifecycle verifies the radius stays in [0, max] while alive and the
// explosion reports spent exactly once.
func TestExplosionLifecycle(t *testing.T) {
	e := NewExplosion(1, Vec2{X: 10, Y: 10}, 80, 0.5, true, rand.New(rand.NewSource(3)))
	peaked := false
	for ticks := 0; ticks < 1000; ticks++ {
		alive := e.Update()
		if !alive {
			if !peaked {
				t.Fatal("explosion ended before reaching max radius")
			}
			if e.Radius >= 0 {
				t.Fatalf("explosion ended with radius %.2f", e.Radius)
			}
			return
		}
		if e.Radius < 0 || e.Radius > e.MaxRadius {
			t.Fatalf("radius %.2f outside [0, %.0f] while alive", e.Radius, e.MaxRadius)
		}
		if e.Radius == e.MaxRadius {
			peaked = true
			if e.Growing {
				t.Fatal("expected explosion to stop growing at max radius")
			}
		}
	}
	t.Fatal("explosion never ended")
}

func TestExplosionRanges(t *testing.T) {
	e := &Explosion{Pos: Vec2{X: 0, Y: 0}, Radius: 10, MaxRadius: 80}
	if !e.InRange(Vec2{X: 20, Y: 0}) {
		t.Error("expected point at 2*radius to be in range")
	}
	if e.InRange(Vec2{X: 20.5, Y: 0}) {
		t.Error("expected point beyond 2*radius to be out of range")
	}
	if !e.InMaxRange(Vec2{X: 0, Y: 160}) {
		t.Error("expected point at 2*maxRadius to be in area of effect")
	}
	if e.InMaxRange(Vec2{X: 0, Y: 161}) {
		t.Error("expected point beyond 2*maxRadius to be outside area of effect")
	}
}

func TestMissileDetonatesOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := NewMissile(1, OwnerPlayer, 0, Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 2}, MissileRadius)
	for i := 0; i < 3; i++ {
		if m.Advance(1) {
			t.Fatalf("missile arrived early on tick %d", i)
		}
	}
	if m.Pos != (Vec2{X: 0, Y: 2}) {
		t.Fatalf("expected missile at target, got %v", m.Pos)
	}
	m.Advance(1)
	if !m.Advance(1) {
		t.Fatal("expected missile to report arrival")
	}
	e := m.Detonate(2, DefaultParams(), rng)
	if e == nil || !e.CausedByPlayer || e.MaxRadius != DetonationRadius || e.Pos != m.Pos {
		t.Fatalf("unexpected explosion %+v", e)
	}
	if m.Detonate(3, DefaultParams(), rng) != nil {
		t.Fatal("expected second detonation to be a no-op")
	}
}

func TestMissileInterceptPassesThroughDetonating(t *testing.T) {
	m := NewMissile(1, OwnerAttacker, NoSilo, Vec2{X: 100, Y: 0}, Vec2{X: 100, Y: 600}, MissileRadius)
	if !m.Intercept() {
		t.Fatal("expected flying missile to accept an intercept")
	}
	if m.State != MissileDetonating {
		t.Fatalf("expected Detonating, got %v", m.State)
	}
	if m.Intercept() {
		t.Fatal("a missile is intercepted once")
	}
	if !m.Advance(1) {
		t.Fatal("an intercepted missile should report ready to detonate")
	}
	if e := m.Detonate(2, DefaultParams(), rand.New(rand.NewSource(1))); e == nil || m.State != MissileRemoved {
		t.Fatal("expected detonation to remove the missile")
	}
}

func TestMissileInRangeExcludesSelf(t *testing.T) {
	m := NewMissile(1, OwnerPlayer, 0, Vec2{}, Vec2{X: 5}, MissileRadius)
	if m.InRange(m, InterceptThreshold) {
		t.Fatal("missile must not intercept itself")
	}
	other := NewMissile(2, OwnerAttacker, NoSilo, Vec2{X: 10}, Vec2{X: 50}, MissileRadius)
	if !m.InRange(other, InterceptThreshold) {
		t.Fatal("expected missiles 10 apart to be in range")
	}
	other.Pos = Vec2{X: 10.5}
	if m.InRange(other, InterceptThreshold) {
		t.Fatal("expected missiles 10.5 apart to be out of range")
	}
}
