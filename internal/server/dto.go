package server

import (
	. "MissileCommand/internal/game"
)

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rectDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type missileDTO struct {
	ID     int64    `json:"id"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"r"`
	Origin pointDTO `json:"origin"`
	Target pointDTO `json:"target"`
	Player bool     `json:"player"`
}

type explosionDTO struct {
	ID     int64   `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Player bool    `json:"player"`
}

type siloDTO struct {
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Width   float64    `json:"w"`
	Ammo    int        `json:"ammo"`
	MaxAmmo int        `json:"max_ammo"`
	Launch  pointDTO   `json:"launch"`
	Mound   []pointDTO `json:"mound"`
	Shaft   rectDTO    `json:"shaft"`
	Pellets []pointDTO `json:"pellets"`
}

type buildingDTO struct {
	Rect      rectDTO `json:"rect"`
	Color     uint8   `json:"color"`
	Destroyed bool    `json:"destroyed"`
	Rubble    rectDTO `json:"rubble"`
}

type cityDTO struct {
	ID             int           `json:"id"`
	Rect           rectDTO       `json:"rect"`
	Center         pointDTO      `json:"center"`
	Buildings      []buildingDTO `json:"buildings"`
	Destroyed      bool          `json:"destroyed"`
	Repairing      bool          `json:"repairing"`
	RepairProgress int64         `json:"repair_progress"`
	RepairBar      rectDTO       `json:"repair_bar"`
}

type statsDTO struct {
	Launches         int `json:"launches"`
	AttackersSpawned int `json:"attackers_spawned"`
	Intercepts       int `json:"intercepts"`
	Detonations      int `json:"detonations"`
	BuildingsLost    int `json:"buildings_lost"`
	Repairs          int `json:"repairs"`
}

type snapshotDTO struct {
	Type       string         `json:"type"`
	Room       string         `json:"room"`
	Now        int64          `json:"now"`
	W          float64        `json:"w"`
	H          float64        `json:"h"`
	Ground     rectDTO        `json:"ground"`
	GameOver   bool           `json:"game_over"`
	Stopped    bool           `json:"stopped"`
	Missiles   []missileDTO   `json:"missiles"`
	Explosions []explosionDTO `json:"explosions"`
	Silos      []siloDTO      `json:"silos"`
	Cities     []cityDTO      `json:"cities"`
	Stats      statsDTO       `json:"stats"`
}

type welcomeDTO struct {
	Type     string  `json:"type"`
	Room     string  `json:"room"`
	Player   string  `json:"player"`
	Encoding string  `json:"enc"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
}

type errorDTO struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type roomSummaryDTO struct {
	ID        string `json:"id"`
	Now       int64  `json:"now"`
	Attackers int    `json:"attackers"`
	Missiles  int    `json:"missiles"`
	GameOver  bool   `json:"game_over"`
}

func point(v Vec2) pointDTO { return pointDTO{X: v.X, Y: v.Y} }

func rect(r Rect) rectDTO { return rectDTO{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func points(vs []Vec2) []pointDTO {
	out := make([]pointDTO, len(vs))
	for i, v := range vs {
		out[i] = point(v)
	}
	return out
}

func snapshotToDTO(s Snapshot) snapshotDTO {
	dto := snapshotDTO{
		Type:       "state",
		Room:       s.RoomID,
		Now:        s.Now,
		W:          s.Width,
		H:          s.Height,
		Ground:     rect(s.Ground),
		GameOver:   s.GameOver,
		Stopped:    s.Stopped,
		Missiles:   make([]missileDTO, 0, len(s.Missiles)),
		Explosions: make([]explosionDTO, 0, len(s.Explosions)),
		Silos:      make([]siloDTO, 0, len(s.Silos)),
		Cities:     make([]cityDTO, 0, len(s.Cities)),
		Stats: statsDTO{
			Launches:         s.Stats.Launches,
			AttackersSpawned: s.Stats.AttackersSpawned,
			Intercepts:       s.Stats.Intercepts,
			Detonations:      s.Stats.Detonations,
			BuildingsLost:    s.Stats.BuildingsLost,
			Repairs:          s.Stats.Repairs,
		},
	}
	for _, m := range s.Missiles {
		dto.Missiles = append(dto.Missiles, missileDTO{
			ID:     int64(m.ID),
			X:      m.Pos.X,
			Y:      m.Pos.Y,
			Radius: m.Radius,
			Origin: point(m.Origin),
			Target: point(m.Target),
			Player: m.Player,
		})
	}
	for _, e := range s.Explosions {
		dto.Explosions = append(dto.Explosions, explosionDTO{
			ID:     int64(e.ID),
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			Radius: e.Radius,
			Player: e.Player,
		})
	}
	for _, silo := range s.Silos {
		dto.Silos = append(dto.Silos, siloDTO{
			X:       silo.Pos.X,
			Y:       silo.Pos.Y,
			Width:   silo.Width,
			Ammo:    silo.Ammo,
			MaxAmmo: silo.MaxAmmo,
			Launch:  point(silo.LaunchPoint),
			Mound:   points(silo.Mound[:]),
			Shaft:   rect(silo.Shaft),
			Pellets: points(silo.Pellets),
		})
	}
	for _, c := range s.Cities {
		cd := cityDTO{
			ID:             c.ID,
			Rect:           rect(c.Rect),
			Center:         point(c.Center),
			Buildings:      make([]buildingDTO, len(c.Buildings)),
			Destroyed:      c.Destroyed,
			Repairing:      c.Repairing,
			RepairProgress: c.RepairProgress,
			RepairBar:      rect(c.RepairBar),
		}
		for i, b := range c.Buildings {
			cd.Buildings[i] = buildingDTO{
				Rect:      rect(b.Rect),
				Color:     b.Color,
				Destroyed: b.Destroyed,
				Rubble:    rect(b.Rubble),
			}
		}
		dto.Cities = append(dto.Cities, cd)
	}
	return dto
}

func roomSummary(s Snapshot) roomSummaryDTO {
	return roomSummaryDTO{
		ID:        s.RoomID,
		Now:       s.Now,
		Attackers: s.AttackerCount(),
		Missiles:  s.PlayerMissileCount(),
		GameOver:  s.GameOver,
	}
}
