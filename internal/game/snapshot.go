package game

// Snapshot is a read-only copy of a room's state between ticks. Nothing in it
// aliases live simulation state.
type Snapshot struct {
	RoomID     string
	Now        int64
	Width      float64
	Height     float64
	Ground     Rect
	GameOver   bool
	Stopped    bool
	Missiles   []MissileView
	Explosions []ExplosionView
	Silos      []SiloView
	Cities     []CityView
	Stats      MatchStats
}

type MissileView struct {
	ID     EntityID
	Pos    Vec2
	Radius float64
	Origin Vec2
	Target Vec2
	Player bool
}

type ExplosionView struct {
	ID     EntityID
	Pos    Vec2
	Radius float64
	Player bool
}

type SiloView struct {
	Pos         Vec2
	Width       float64
	Ammo        int
	MaxAmmo     int
	LaunchPoint Vec2
	Mound       [4]Vec2
	Shaft       Rect
	Pellets     []Vec2
}

type BuildingView struct {
	Rect      Rect
	Color     uint8
	Destroyed bool
	Rubble    Rect
}

type CityView struct {
	ID             int
	Rect           Rect
	Center         Vec2
	Buildings      []BuildingView
	Destroyed      bool
	Repairing      bool
	RepairProgress int64
	RepairBar      Rect
}

func (r *Room) Snapshot() Snapshot {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.SnapshotLocked()
}

func (r *Room) SnapshotLocked() Snapshot {
	s := Snapshot{
		RoomID:     r.ID,
		Now:        r.Clock.Now(),
		Width:      r.Width,
		Height:     r.Height,
		Ground:     Rect{X: 0, Y: r.GroundY, W: r.Width, H: r.Height - r.GroundY},
		GameOver:   allDestroyed(r.Cities),
		Stopped:    r.stopped,
		Missiles:   make([]MissileView, 0, r.PlayerMissiles.Len()+r.AttackMissiles.Len()),
		Explosions: make([]ExplosionView, 0, r.Explosions.Len()),
		Silos:      make([]SiloView, 0, len(r.Silos)),
		Cities:     make([]CityView, 0, len(r.Cities)),
		Stats:      r.stats,
	}
	for _, store := range []*Store[Missile]{r.PlayerMissiles, r.AttackMissiles} {
		store.Each(func(id EntityID, m *Missile) {
			s.Missiles = append(s.Missiles, MissileView{
				ID:     id,
				Pos:    m.Pos,
				Radius: m.Radius,
				Origin: m.Origin,
				Target: m.Target,
				Player: m.IsPlayer(),
			})
		})
	}
	r.Explosions.Each(func(id EntityID, e *Explosion) {
		s.Explosions = append(s.Explosions, ExplosionView{
			ID:     id,
			Pos:    e.Pos,
			Radius: e.Radius,
			Player: e.CausedByPlayer,
		})
	})
	for _, silo := range r.Silos {
		s.Silos = append(s.Silos, SiloView{
			Pos:         silo.Pos,
			Width:       silo.Width,
			Ammo:        silo.Ammo,
			MaxAmmo:     silo.MaxAmmo,
			LaunchPoint: silo.LaunchPoint,
			Mound:       silo.Mound(),
			Shaft:       silo.Shaft(),
			Pellets:     silo.AmmoPellets(),
		})
	}
	for _, c := range r.Cities {
		cv := CityView{
			ID:             c.ID,
			Rect:           c.Rect,
			Center:         c.Center,
			Buildings:      make([]BuildingView, len(c.Buildings)),
			Destroyed:      c.Destroyed,
			Repairing:      c.Repairing,
			RepairProgress: c.RepairProgress,
			RepairBar:      c.RepairBar,
		}
		for i, b := range c.Buildings {
			cv.Buildings[i] = BuildingView{Rect: b.Rect, Color: b.Color, Destroyed: b.Destroyed, Rubble: b.Rubble}
		}
		s.Cities = append(s.Cities, cv)
	}
	return s
}

// PlayerMissileCount and AttackerCount are convenience views for callers that
// only need collection sizes.
func (s Snapshot) PlayerMissileCount() int {
	n := 0
	for _, m := range s.Missiles {
		if m.Player {
			n++
		}
	}
	return n
}

func (s Snapshot) AttackerCount() int {
	return len(s.Missiles) - s.PlayerMissileCount()
}
