package game

import "math/rand"

type Building struct {
	Rect      Rect
	Color     uint8 // grey level
	Destroyed bool
	Rubble    Rect
}

// City is a row of buildings standing on the ground line at Pos.
type City struct {
	ID             int
	Pos            Vec2
	Width          float64
	Rect           Rect
	Center         Vec2
	Buildings      []Building
	Destroyed      bool
	Repairing      bool
	RepairStart    int64
	RepairProgress int64
	RepairBar      Rect
}

func NewCity(id int, pos Vec2, width float64, rng *rand.Rand) *City {
	half := float64(int(width / 2))
	span := width + CityBuildingBuffer*CityBuildingCount
	c := &City{
		ID:        id,
		Pos:       pos,
		Width:     width,
		Rect:      Rect{X: pos.X, Y: pos.Y - half, W: span, H: half},
		Center:    Vec2{X: pos.X + width/2, Y: pos.Y - float64(int(half)/2)},
		Buildings: make([]Building, CityBuildingCount),
		RepairBar: Rect{X: pos.X, Y: pos.Y - half - RepairBarOffset, H: RepairBarHeight},
	}
	bw := width / CityBuildingCount
	lo, hi := int(width/6), int(width/2)
	for i := range c.Buildings {
		bh := float64(lo)
		if hi > lo {
			bh = float64(lo + rng.Intn(hi-lo))
		}
		x := pos.X + CityBuildingBuffer*float64(i) + bw*float64(i)
		c.Buildings[i] = Building{
			Rect:  Rect{X: x, Y: pos.Y - bh, W: bw, H: bh},
			Color: uint8(BuildingColorMin + rng.Intn(BuildingColorMax-BuildingColorMin)),
		}
	}
	return c
}

// Damage destroys one randomly chosen standing building, leaving rubble a quarter
// of its height. The city is destroyed when its last building falls.
func (c *City) Damage(rng *rand.Rand) bool {
	if c.Destroyed {
		return false
	}
	standing := make([]int, 0, len(c.Buildings))
	for i, b := range c.Buildings {
		if !b.Destroyed {
			standing = append(standing, i)
		}
	}
	if len(standing) == 0 {
		c.Destroyed = true
		return false
	}
	b := &c.Buildings[standing[rng.Intn(len(standing))]]
	b.Destroyed = true
	rh := float64(int(b.Rect.H / 4))
	b.Rubble = Rect{X: b.Rect.X, Y: b.Rect.Y + b.Rect.H - rh, W: b.Rect.W, H: rh}
	if len(standing) == 1 {
		c.Destroyed = true
	}
	return true
}

// Repair starts the repair window. Only a destroyed city that is not already
// repairing can be repaired.
func (c *City) Repair(now int64) bool {
	if !c.Destroyed || c.Repairing {
		return false
	}
	c.Repairing = true
	c.RepairStart = now
	c.RepairProgress = 0
	c.RepairBar.W = 0
	return true
}

// Update advances an active repair and reports whether it finished this call.
func (c *City) Update(now, repairMs int64) bool {
	if !c.Repairing {
		return false
	}
	c.RepairProgress = now - c.RepairStart
	c.RepairBar.W = Bind(float64(c.RepairProgress), 0, float64(repairMs), 0, c.Rect.W, true)
	if c.RepairProgress < repairMs {
		return false
	}
	c.Repairing = false
	c.Destroyed = false
	c.RepairBar.W = 0
	for i := range c.Buildings {
		c.Buildings[i].Destroyed = false
		c.Buildings[i].Rubble = Rect{}
	}
	return true
}

// Standing counts buildings that are not destroyed.
func (c *City) Standing() int {
	n := 0
	for _, b := range c.Buildings {
		if !b.Destroyed {
			n++
		}
	}
	return n
}
