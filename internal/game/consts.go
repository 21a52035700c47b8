package game

const (
	SimHz          = 60 // simulation ticks per second
	UpdateRateHz   = 30 // per-client WS snapshot pushes
	TickMs         = int64(1000 / SimHz)
	RoomMaxPlayers = 1
	WorldW         = 1280.0
	WorldH         = 720.0
	GroundHeight   = 32.0
	GroundY        = WorldH - GroundHeight

	MissileRadius      = 10.0
	InterceptThreshold = -5.0
	DetonationRadius   = 80.0
	ExplosionSpeed     = 0.5
	ExplosionMinStart  = 1
	ExplosionMaxStart  = 10 // exclusive
	SiloMaxAmmo        = 6
	SiloReloadMs       = 1500
	SiloWidth          = 128.0
	SiloAmmoRadius     = 4.0
	SpawnIntervalMs    = 1500
	MaxAttackers       = 5
	CityRepairMs       = 4000
	CityBuildingCount  = 6
	CityBuildingBuffer = 6.0
	BuildingColorMin   = 15
	BuildingColorMax   = 63 // exclusive
	RubbleColor        = 79
	RepairBarHeight    = 16.0
	RepairBarOffset    = 32.0
)
