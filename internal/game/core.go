package game

import (
	"math"
	"time"
)

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dist(b Vec2) float64  { return a.Sub(b).Len() }

// Round snaps a to the nearest grid point.
func (a Vec2) Round() GridPoint {
	return GridPoint{X: int(math.Round(a.X)), Y: int(math.Round(a.Y))}
}

// GridPoint is an integer playfield coordinate.
type GridPoint struct{ X, Y int }

func (p GridPoint) Vec2() Vec2          { return Vec2{X: float64(p.X), Y: float64(p.Y)} }
func (p GridPoint) Eq(q GridPoint) bool { return p.X == q.X && p.Y == q.Y }

// Rect is an axis-aligned area anchored at its top-left corner.
type Rect struct{ X, Y, W, H float64 }

// Contains reports whether p lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bind maps value from [start1, stop1] onto [start2, stop2]. With withinBounds the
// result is clamped to the target range.
func Bind(value, start1, stop1, start2, stop2 float64, withinBounds bool) float64 {
	if stop1 == start1 {
		return start2
	}
	v := (value-start1)/(stop1-start1)*(stop2-start2) + start2
	if !withinBounds {
		return v
	}
	if start2 < stop2 {
		return Clamp(v, start2, stop2)
	}
	return Clamp(v, stop2, start2)
}

// Clock is the simulation time in milliseconds. It never runs backwards.
type Clock struct {
	now int64
}

func (c *Clock) Now() int64 { return c.now }

func (c *Clock) Advance(ms int64) int64 {
	if ms > 0 {
		c.now += ms
	}
	return c.now
}

// Pacer turns wall time between ticks into whole simulation milliseconds. The
// sub-millisecond remainder carries into the next call.
type Pacer struct {
	last  time.Time
	carry time.Duration
}

func NewPacer(start time.Time) *Pacer {
	return &Pacer{last: start}
}

// Elapsed returns the milliseconds since the previous call, or since start.
func (p *Pacer) Elapsed(now time.Time) int64 {
	d := now.Sub(p.last) + p.carry
	p.last = now
	if d < 0 {
		p.carry = 0
		return 0
	}
	ms := d.Milliseconds()
	p.carry = d - time.Duration(ms)*time.Millisecond
	return ms
}
