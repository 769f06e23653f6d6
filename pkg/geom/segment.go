package geom

import "math"

// LineSegment is an axis-aligned segment between two consecutive body
// points. The endpoints are views into the snake's point sequence, so
// Increment and Decrement write straight back into the body.
//
// Segments built by the snake are strictly horizontal or strictly
// vertical; a zero-length segment (head == tail) counts as both.
type LineSegment struct {
	Head *Point
	Tail *Point
}

// NewLineSegment wraps two body points as a segment view.
func NewLineSegment(head, tail *Point) *LineSegment {
	return &LineSegment{Head: head, Tail: tail}
}

// Length returns the Euclidean distance between the endpoints. For an
// axis-aligned segment this is the integer span along the varying axis.
func (s *LineSegment) Length() float64 {
	return s.Head.DistanceFrom(*s.Tail)
}

// IsHorizontal reports whether both endpoints share a row.
func (s *LineSegment) IsHorizontal() bool { return s.Head.SameY(*s.Tail) }

// IsVertical reports whether both endpoints share a column.
func (s *LineSegment) IsVertical() bool { return s.Head.SameX(*s.Tail) }

// Increment lengthens the segment by one unit from the head end, moving
// the head one step further away from the tail along the segment's
// axis.
func (s *LineSegment) Increment() {
	if s.IsHorizontal() {
		if s.Head.X < s.Tail.X {
			s.Head.Move(West)
		} else {
			s.Head.Move(East)
		}
	} else if s.IsVertical() {
		if s.Head.Y < s.Tail.Y {
			s.Head.Move(North)
		} else {
			s.Head.Move(South)
		}
	}
}

// Decrement shortens the segment by one unit from the tail end, moving
// the tail one step toward the head. A zero-length segment is already
// at minimum and stays put.
func (s *LineSegment) Decrement() {
	if *s.Head == *s.Tail {
		return
	}
	if s.IsHorizontal() {
		if s.Head.X < s.Tail.X {
			s.Tail.Move(West)
		} else {
			s.Tail.Move(East)
		}
	} else if s.IsVertical() {
		if s.Head.Y < s.Tail.Y {
			s.Tail.Move(North)
		} else {
			s.Tail.Move(South)
		}
	}
}

// Draw renders the segment onto the surface: floor(Length()) cells of
// the default line glyph starting at the min corner of the bounding
// box. The remaining endpoint cell is covered by the join glyph.
func (s *LineSegment) Draw(surface Surface) {
	length := int(math.Floor(s.Length()))
	start := Point{Y: min(s.Head.Y, s.Tail.Y), X: min(s.Head.X, s.Tail.X)}

	if s.IsVertical() {
		surface.VLine(start, length)
	} else if s.IsHorizontal() {
		surface.HLine(start, length)
	}
}

// LiesOn reports whether point falls on the segment: an exact match on
// the fixed axis and within the endpoint extent on the varying axis.
// Only meaningful for axis-aligned segments; anything else reports
// false.
func (s *LineSegment) LiesOn(point Point) bool {
	if s.IsHorizontal() {
		return point.Y == s.Head.Y &&
			point.X >= min(s.Head.X, s.Tail.X) &&
			point.X <= max(s.Head.X, s.Tail.X)
	}
	if s.IsVertical() {
		return point.X == s.Head.X &&
			point.Y >= min(s.Head.Y, s.Tail.Y) &&
			point.Y <= max(s.Head.Y, s.Tail.Y)
	}
	return false
}

// IntersectionPoint returns the endpoint shared with other, if any.
// This is endpoint adjacency, not general segment intersection: inputs
// are assumed to come from a connected polyline. Head matches are
// checked before tail matches.
func (s *LineSegment) IntersectionPoint(other *LineSegment) (Point, bool) {
	if *s.Head == *other.Head || *s.Head == *other.Tail {
		return *s.Head, true
	}
	if *s.Tail == *other.Head || *s.Tail == *other.Tail {
		return *s.Tail, true
	}
	return Point{}, false
}

// Join writes the corner glyph where a horizontal and a vertical
// segment meet. No-op when other is nil, when the two segments share an
// orientation, when they have no common endpoint, or when no corner
// quadrant matches.
func (s *LineSegment) Join(other *LineSegment, surface Surface) {
	var hline, vline *LineSegment

	if s.IsVertical() {
		vline = s
	} else if s.IsHorizontal() {
		hline = s
	}

	if other != nil {
		if other.IsVertical() {
			vline = other
		} else if other.IsHorizontal() {
			hline = other
		}
	}

	if hline == nil || vline == nil {
		return
	}
	if *hline.Head == *vline.Head && *hline.Tail == *vline.Tail {
		return
	}

	ipoint, ok := hline.IntersectionPoint(vline)
	if !ok {
		return
	}
	if glyph, ok := cornerGlyph(ipoint, hline, vline); ok {
		surface.PutRune(ipoint, glyph)
	}
}

// cornerGlyph picks the corner character for an intersection point by
// its position relative to the two segments' endpoints. The predicates
// are non-strict, so a degenerate segment can satisfy opposing
// branches; evaluation order decides the tie (left before right, above
// before below).
func cornerGlyph(ipoint Point, hline, vline *LineSegment) (rune, bool) {
	if ipoint.LeftOf(*hline.Head) && ipoint.LeftOf(*hline.Tail) {
		if ipoint.Above(*vline.Head) && ipoint.Above(*vline.Tail) {
			return UpperLeftCorner, true
		} else if ipoint.Below(*vline.Head) && ipoint.Below(*vline.Tail) {
			return LowerLeftCorner, true
		}
	} else if ipoint.RightOf(*hline.Head) && ipoint.RightOf(*hline.Tail) {
		if ipoint.Above(*vline.Head) && ipoint.Above(*vline.Tail) {
			return UpperRightCorner, true
		} else if ipoint.Below(*vline.Head) && ipoint.Below(*vline.Tail) {
			return LowerRightCorner, true
		}
	}
	return 0, false
}
