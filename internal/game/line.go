package game

// LineStepper walks the integer grid line between two points one cell at a time
// using Bresenham's error accumulation. Both axes may advance in the same step.
type LineStepper struct {
	cur, target GridPoint
	dx, dy      int
	sx, sy      int
	err         int
	started     bool
	done        bool
}

func NewLineStepper(from, to GridPoint) *LineStepper {
	s := &LineStepper{
		cur:    from,
		target: to,
		dx:     abs(to.X - from.X),
		dy:     abs(to.Y - from.Y),
		sx:     -1,
		sy:     -1,
	}
	if from.X < to.X {
		s.sx = 1
	}
	if from.Y < to.Y {
		s.sy = 1
	}
	s.err = s.dx - s.dy
	return s
}

// Next returns the next point on the line. The first call returns the start point.
// Once the target has been returned the stepper is terminal and keeps returning it.
func (s *LineStepper) Next() GridPoint {
	if !s.started {
		s.started = true
		return s.cur
	}
	if s.cur.Eq(s.target) {
		s.done = true
		return s.target
	}
	e2 := 2 * s.err
	if e2 > -s.dy {
		s.err -= s.dy
		s.cur.X += s.sx
	}
	if e2 < s.dx {
		s.err += s.dx
		s.cur.Y += s.sy
	}
	return s.cur
}

func (s *LineStepper) Current() GridPoint { return s.cur }
func (s *LineStepper) Target() GridPoint  { return s.target }
func (s *LineStepper) Done() bool         { return s.done }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
