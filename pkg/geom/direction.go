// Package geom holds the grid geometry the snake is built from: integer
// points on a top-left-origin grid, the four compass directions, and
// axis-aligned line segments with their drawing and join logic.
package geom

// Direction is one of the four compass directions the snake can travel.
// The zero value None means "no input this tick".
type Direction int

const (
	None Direction = iota
	North
	East
	South
	West
)

// String returns the direction name for status display.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "none"
}

// Opposite returns the direction pointing the other way. None is its
// own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return None
}

// IsOpposite reports whether other points directly back at d. Only the
// north/south and east/west pairs qualify; None is never opposite to
// anything.
func (d Direction) IsOpposite(other Direction) bool {
	return d != None && d.Opposite() == other
}
