package geom

import "math"

// Point is a grid coordinate. The origin is the top-left corner of the
// playfield and Y grows downward. Points carry no bounds knowledge —
// keeping them inside the playfield is the caller's job.
type Point struct {
	Y, X int
}

// DistanceFrom returns the Euclidean distance to other.
func (p Point) DistanceFrom(other Point) float64 {
	return math.Hypot(float64(other.Y-p.Y), float64(other.X-p.X))
}

// SameY reports whether both points share a row.
func (p Point) SameY(other Point) bool { return p.Y == other.Y }

// SameX reports whether both points share a column.
func (p Point) SameX(other Point) bool { return p.X == other.X }

// The relative-position predicates are non-strict: a point is both left
// of and right of a point in its own column, and both above and below a
// point in its own row. The segment join logic depends on this.

// LeftOf reports whether p is at or left of other's column.
func (p Point) LeftOf(other Point) bool { return p.X <= other.X }

// RightOf reports whether p is at or right of other's column.
func (p Point) RightOf(other Point) bool { return p.X >= other.X }

// Above reports whether p is at or above other's row.
func (p Point) Above(other Point) bool { return p.Y <= other.Y }

// Below reports whether p is at or below other's row.
func (p Point) Below(other Point) bool { return p.Y >= other.Y }

// Move steps the point one grid unit in the given direction. None is a
// no-op.
func (p *Point) Move(d Direction) {
	switch d {
	case North:
		p.Y--
	case South:
		p.Y++
	case East:
		p.X++
	case West:
		p.X--
	}
}
