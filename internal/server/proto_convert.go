package server

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the binary state frame. Nested messages are length-delimited.
//
//	State     1 room  2 now  3 w  4 h  5 game_over  6 missile*  7 explosion*
//	          8 silo*  9 city*  10 stats  11 ground  12 stopped
//	Missile   1 id  2 x  3 y  4 r  5 origin  6 target  7 player
//	Explosion 1 id  2 x  3 y  4 r  5 player
//	Silo      1 x  2 y  3 w  4 ammo  5 max_ammo  6 launch  7 mound*  8 shaft  9 pellet*
//	City      1 id  2 rect  3 center  4 building*  5 destroyed  6 repairing
//	          7 repair_progress  8 repair_bar
//	Building  1 rect  2 color  3 destroyed  4 rubble
//	Stats     1 launches  2 spawned  3 intercepts  4 detonations  5 lost  6 repairs
//	Point     1 x  2 y
//	Rect      1 x  2 y  3 w  4 h
const (
	stateRoom protowire.Number = iota + 1
	stateNow
	stateW
	stateH
	stateGameOver
	stateMissile
	stateExplosion
	stateSilo
	stateCity
	stateStats
	stateGround
	stateStopped
)

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func pointToProto(p pointDTO) []byte {
	var b []byte
	b = appendDouble(b, 1, p.X)
	b = appendDouble(b, 2, p.Y)
	return b
}

func rectToProto(r rectDTO) []byte {
	var b []byte
	b = appendDouble(b, 1, r.X)
	b = appendDouble(b, 2, r.Y)
	b = appendDouble(b, 3, r.W)
	b = appendDouble(b, 4, r.H)
	return b
}

func missileToProto(m missileDTO) []byte {
	var b []byte
	b = appendInt(b, 1, m.ID)
	b = appendDouble(b, 2, m.X)
	b = appendDouble(b, 3, m.Y)
	b = appendDouble(b, 4, m.Radius)
	b = appendMessage(b, 5, pointToProto(m.Origin))
	b = appendMessage(b, 6, pointToProto(m.Target))
	b = appendBool(b, 7, m.Player)
	return b
}

func explosionToProto(e explosionDTO) []byte {
	var b []byte
	b = appendInt(b, 1, e.ID)
	b = appendDouble(b, 2, e.X)
	b = appendDouble(b, 3, e.Y)
	b = appendDouble(b, 4, e.Radius)
	b = appendBool(b, 5, e.Player)
	return b
}

func siloToProto(s siloDTO) []byte {
	var b []byte
	b = appendDouble(b, 1, s.X)
	b = appendDouble(b, 2, s.Y)
	b = appendDouble(b, 3, s.Width)
	b = appendInt(b, 4, int64(s.Ammo))
	b = appendInt(b, 5, int64(s.MaxAmmo))
	b = appendMessage(b, 6, pointToProto(s.Launch))
	for _, p := range s.Mound {
		b = appendMessage(b, 7, pointToProto(p))
	}
	b = appendMessage(b, 8, rectToProto(s.Shaft))
	for _, p := range s.Pellets {
		b = appendMessage(b, 9, pointToProto(p))
	}
	return b
}

func buildingToProto(bd buildingDTO) []byte {
	var b []byte
	b = appendMessage(b, 1, rectToProto(bd.Rect))
	b = appendInt(b, 2, int64(bd.Color))
	b = appendBool(b, 3, bd.Destroyed)
	b = appendMessage(b, 4, rectToProto(bd.Rubble))
	return b
}

func cityToProto(c cityDTO) []byte {
	var b []byte
	b = appendInt(b, 1, int64(c.ID))
	b = appendMessage(b, 2, rectToProto(c.Rect))
	b = appendMessage(b, 3, pointToProto(c.Center))
	for _, bd := range c.Buildings {
		b = appendMessage(b, 4, buildingToProto(bd))
	}
	b = appendBool(b, 5, c.Destroyed)
	b = appendBool(b, 6, c.Repairing)
	b = appendInt(b, 7, c.RepairProgress)
	b = appendMessage(b, 8, rectToProto(c.RepairBar))
	return b
}

func statsToProto(s statsDTO) []byte {
	var b []byte
	b = appendInt(b, 1, int64(s.Launches))
	b = appendInt(b, 2, int64(s.AttackersSpawned))
	b = appendInt(b, 3, int64(s.Intercepts))
	b = appendInt(b, 4, int64(s.Detonations))
	b = appendInt(b, 5, int64(s.BuildingsLost))
	b = appendInt(b, 6, int64(s.Repairs))
	return b
}

// stateToProto encodes a state frame in protobuf wire format.
func stateToProto(s snapshotDTO) []byte {
	var b []byte
	b = appendString(b, stateRoom, s.Room)
	b = appendInt(b, stateNow, s.Now)
	b = appendDouble(b, stateW, s.W)
	b = appendDouble(b, stateH, s.H)
	b = appendBool(b, stateGameOver, s.GameOver)
	for _, m := range s.Missiles {
		b = appendMessage(b, stateMissile, missileToProto(m))
	}
	for _, e := range s.Explosions {
		b = appendMessage(b, stateExplosion, explosionToProto(e))
	}
	for _, silo := range s.Silos {
		b = appendMessage(b, stateSilo, siloToProto(silo))
	}
	for _, c := range s.Cities {
		b = appendMessage(b, stateCity, cityToProto(c))
	}
	b = appendMessage(b, stateStats, statsToProto(s.Stats))
	b = appendMessage(b, stateGround, rectToProto(s.Ground))
	b = appendBool(b, stateStopped, s.Stopped)
	return b
}
