package game

import "testing"

func TestSiloLaunchAndReload(t *testing.T) {
	s := NewSilo(Vec2{X: 256, Y: GroundY}, SiloWidth, SiloMaxAmmo)
	if s.Ammo != 6 {
		t.Fatalf("expected full silo, got %d", s.Ammo)
	}
	if !s.Launch(1000) {
		t.Fatal("expected launch to succeed")
	}
	if s.Ammo != 5 || s.LastLaunch != 1000 {
		t.Fatalf("expected ammo 5 stamped at 1000, got %d at %d", s.Ammo, s.LastLaunch)
	}
	if s.Reload(2499, SiloReloadMs) {
		t.Fatal("reloaded before cooldown elapsed")
	}
	if !s.Reload(2500, SiloReloadMs) || s.Ammo != 6 {
		t.Fatalf("expected reload to 6 after 1500ms, got %d", s.Ammo)
	}
	if s.Reload(5000, SiloReloadMs) || s.Ammo != 6 {
		t.Fatalf("ammo exceeded max: %d", s.Ammo)
	}
}

func TestSiloReloadsOneRoundPerCall(t *testing.T) {
	s := NewSilo(Vec2{}, SiloWidth, SiloMaxAmmo)
	for i := 0; i < 3; i++ {
		s.Launch(100)
	}
	s.Reload(1600, SiloReloadMs)
	if s.Ammo != 4 {
		t.Fatalf("expected a single round back, got ammo %d", s.Ammo)
	}
}

func TestSiloEmptyLaunchIsNoop(t *testing.T) {
	s := NewSilo(Vec2{}, SiloWidth, 2)
	s.Launch(10)
	s.Launch(20)
	if s.Launch(30) {
		t.Fatal("expected empty silo to refuse launch")
	}
	if s.Ammo != 0 || s.LastLaunch != 20 {
		t.Fatalf("empty launch changed state: ammo %d last %d", s.Ammo, s.LastLaunch)
	}
}

func TestSiloGeometry(t *testing.T) {
	s := NewSilo(Vec2{X: 100, Y: 600}, 128, SiloMaxAmmo)
	if s.LaunchPoint != (Vec2{X: 164, Y: 568}) {
		t.Fatalf("unexpected launch point %v", s.LaunchPoint)
	}
	mound := s.Mound()
	if mound[0] != (Vec2{X: 100, Y: 600}) || mound[3] != (Vec2{X: 132, Y: 568}) {
		t.Fatalf("unexpected mound %v", mound)
	}
	if got := len(s.AmmoPellets()); got != SiloMaxAmmo {
		t.Fatalf("expected %d pellets, got %d", SiloMaxAmmo, got)
	}
	s.Launch(0)
	if got := len(s.AmmoPellets()); got != SiloMaxAmmo-1 {
		t.Fatalf("expected pellets to track ammo, got %d", got)
	}
}
