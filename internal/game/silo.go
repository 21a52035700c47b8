package game

// Silo is a player launch site with a reloading ammo pool. Pos is the bottom-left
// corner of its mound on the ground line.
type Silo struct {
	Pos         Vec2
	Width       float64
	Ammo        int
	MaxAmmo     int
	LaunchPoint Vec2
	LastLaunch  int64
}

func NewSilo(pos Vec2, width float64, maxAmmo int) *Silo {
	return &Silo{
		Pos:         pos,
		Width:       width,
		Ammo:        maxAmmo,
		MaxAmmo:     maxAmmo,
		LaunchPoint: Vec2{X: pos.X + width/2, Y: pos.Y - width/4},
	}
}

// Launch spends one round. It is a no-op returning false when the silo is empty.
func (s *Silo) Launch(now int64) bool {
	if s.Ammo <= 0 {
		return false
	}
	s.Ammo--
	s.LastLaunch = now
	return true
}

// Reload restores one round per call once reloadMs has passed since the last launch.
func (s *Silo) Reload(now, reloadMs int64) bool {
	if now-s.LastLaunch >= reloadMs && s.Ammo < s.MaxAmmo {
		s.Ammo++
		return true
	}
	return false
}

func (s *Silo) moundHeight() float64 { return s.Width / 4 }

// Mound returns the trapezoid the silo sits in, ground edge first.
func (s *Silo) Mound() [4]Vec2 {
	x, y, w, h := s.Pos.X, s.Pos.Y, s.Width, s.moundHeight()
	return [4]Vec2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w - w/4, Y: y - h},
		{X: x + w/4, Y: y - h},
	}
}

func (s *Silo) Shaft() Rect {
	h := s.moundHeight()
	return Rect{X: s.Pos.X + h, Y: s.Pos.Y - h - 4, W: s.Width - 2*h, H: h + 4}
}

// AmmoPellets returns the centre of each remaining round's indicator.
func (s *Silo) AmmoPellets() []Vec2 {
	h := s.moundHeight()
	r := SiloAmmoRadius
	out := make([]Vec2, s.Ammo)
	for i := range out {
		out[i] = Vec2{
			X: s.Pos.X + h + (r*2+r/2)*float64(i) + r*1.5,
			Y: s.Pos.Y + h/2,
		}
	}
	return out
}
