package game

// Params holds the tunable rules of a match.
type Params struct {
	MaxAmmo            int     // Silo ammo capacity (6)
	ReloadMs           int64   // Cooldown after a launch before a silo regains ammo
	SpawnIntervalMs    int64   // Minimum time between attacker spawns
	MaxAttackers       int     // Cap on concurrently live attacker missiles
	RepairMs           int64   // Repair window for a destroyed city
	MissileRadius      float64 // Hit radius of every missile
	InterceptThreshold float64 // Added to missile radius for missile/missile intercepts
	DetonationRadius   float64 // Max radius of the explosion a detonation spawns
	ExplosionSpeed     float64 // Radius change per tick
	StepsPerTick       int     // Line steps a missile takes each tick
	Seed               int64   // RNG seed; 0 picks one from the wall clock
}

// DefaultParams returns the canonical rule set.
func DefaultParams() Params {
	return Params{
		MaxAmmo:            SiloMaxAmmo,
		ReloadMs:           SiloReloadMs,
		SpawnIntervalMs:    SpawnIntervalMs,
		MaxAttackers:       MaxAttackers,
		RepairMs:           CityRepairMs,
		MissileRadius:      MissileRadius,
		InterceptThreshold: InterceptThreshold,
		DetonationRadius:   DetonationRadius,
		ExplosionSpeed:     ExplosionSpeed,
		StepsPerTick:       1,
	}
}

// SanitizeParams replaces out-of-range values with their defaults.
func SanitizeParams(p Params) Params {
	d := DefaultParams()
	if p.MaxAmmo <= 0 {
		p.MaxAmmo = d.MaxAmmo
	}
	if p.ReloadMs < 0 {
		p.ReloadMs = d.ReloadMs
	}
	if p.SpawnIntervalMs < 0 {
		p.SpawnIntervalMs = d.SpawnIntervalMs
	}
	if p.MaxAttackers < 0 {
		p.MaxAttackers = d.MaxAttackers
	}
	if p.RepairMs <= 0 {
		p.RepairMs = d.RepairMs
	}
	if p.MissileRadius <= 0 {
		p.MissileRadius = d.MissileRadius
	}
	if p.MissileRadius+p.InterceptThreshold < 0 {
		p.InterceptThreshold = -p.MissileRadius
	}
	if p.DetonationRadius <= 0 {
		p.DetonationRadius = d.DetonationRadius
	}
	if p.ExplosionSpeed <= 0 {
		p.ExplosionSpeed = d.ExplosionSpeed
	}
	if p.StepsPerTick <= 0 {
		p.StepsPerTick = d.StepsPerTick
	}
	return p
}
