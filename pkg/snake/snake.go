// Package snake implements the snake body: an ordered polyline of grid
// points that advances head-first, sheds length from the tail, and dies
// on self-collision.
package snake

import (
	"math"

	"github.com/wesen/pambu/pkg/geom"
)

// Outcome reports what a tick of movement did to the game session.
type Outcome int

const (
	Continue Outcome = iota
	Collided
)

// Snake is the body polyline. points[0] is the head; consecutive points
// define the axis-aligned body segments. The sequence always holds at
// least two points — a tail segment that shrinks to zero length is
// pruned.
//
// Points are stored as pointers so that segment views built over them
// (see geom.LineSegment) mutate the body in place, even across a head
// prepend.
type Snake struct {
	points    []*geom.Point
	direction geom.Direction
}

// New places a snake on a playfield of the given size: a horizontal
// body at mid-height spanning roughly 40%–59% of the width, heading
// east.
func New(height, width int) *Snake {
	return &Snake{
		points:    startPoints(height, width),
		direction: geom.East,
	}
}

// startPoints computes the initial body for a playfield size. Kept as a
// pure function of the dimensions so placement is testable without a
// terminal.
func startPoints(height, width int) []*geom.Point {
	row := int(math.Floor(0.49 * float64(height)))
	return []*geom.Point{
		{Y: row, X: int(math.Floor(0.59 * float64(width)))},
		{Y: row, X: int(math.Floor(0.40 * float64(width)))},
	}
}

// Direction returns the current travel direction.
func (s *Snake) Direction() geom.Direction { return s.direction }

// Head returns the head point.
func (s *Snake) Head() geom.Point { return *s.points[0] }

// Points returns a copy of the body points, head first.
func (s *Snake) Points() []geom.Point {
	pts := make([]geom.Point, len(s.points))
	for i, p := range s.points {
		pts[i] = *p
	}
	return pts
}

// Length returns the total body length, the sum of all segment lengths.
// Constant across straight moves; a turn lengthens the body by one unit
// until the tail shrink catches up.
func (s *Snake) Length() float64 {
	var total float64
	for i := 0; i < len(s.points)-1; i++ {
		total += geom.NewLineSegment(s.points[i], s.points[i+1]).Length()
	}
	return total
}

// Move advances the snake one tick.
//
// A requested direction of None, the current direction, or its direct
// opposite extends the head segment in place — reversing into yourself
// is treated as continuing straight. A perpendicular request prepends a
// duplicated, stepped copy of the head as a new length-1 corner
// segment.
//
// Collision is checked after the head moves but before the tail
// shrinks, so running into the segment the tail is about to vacate
// still counts. On Collided the body is left as it was at the moment of
// impact.
func (s *Snake) Move(requested geom.Direction) Outcome {
	first := geom.NewLineSegment(s.points[0], s.points[1])
	last := geom.NewLineSegment(s.points[len(s.points)-2], s.points[len(s.points)-1])

	if requested == geom.None || requested == s.direction || requested.IsOpposite(s.direction) {
		first.Increment()
	} else {
		head := *s.points[0]
		head.Move(requested)
		s.points = append([]*geom.Point{&head}, s.points...)
		s.direction = requested
	}

	if s.DetectCollision() == Collided {
		return Collided
	}

	last.Decrement()
	if last.Length() == 0 {
		s.points = s.points[:len(s.points)-1]
	}
	return Continue
}

// DetectCollision tests the head point against every body segment
// except the head segment itself.
func (s *Snake) DetectCollision() Outcome {
	head := *s.points[0]
	for i := 1; i < len(s.points)-1; i++ {
		seg := geom.NewLineSegment(s.points[i], s.points[i+1])
		if seg.LiesOn(head) {
			return Collided
		}
	}
	return Continue
}

// Draw renders the body onto the surface: each segment head-to-tail,
// then the corner glyph joining it to its predecessor. Joins are
// written after both adjoining segments so the plain line cells never
// overwrite a corner.
func (s *Snake) Draw(surface geom.Surface) {
	var prev *geom.LineSegment
	for i := 0; i < len(s.points)-1; i++ {
		curr := geom.NewLineSegment(s.points[i], s.points[i+1])
		curr.Draw(surface)
		curr.Join(prev, surface)
		prev = curr
	}
}
