package geom

import (
	"math"
	"testing"
)

func TestPointMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{North, Point{Y: 4, X: 10}},
		{South, Point{Y: 6, X: 10}},
		{East, Point{Y: 5, X: 11}},
		{West, Point{Y: 5, X: 9}},
		{None, Point{Y: 5, X: 10}},
	}
	for _, tc := range tests {
		p := Point{Y: 5, X: 10}
		p.Move(tc.dir)
		if p != tc.want {
			t.Errorf("Move(%v): expected %+v, got %+v", tc.dir, tc.want, p)
		}
	}
}

func TestDistanceFrom(t *testing.T) {
	a := Point{Y: 0, X: 0}
	b := Point{Y: 3, X: 4}
	if d := a.DistanceFrom(b); d != 5 {
		t.Errorf("DistanceFrom: expected 5, got %v", d)
	}
	if d := b.DistanceFrom(a); d != 5 {
		t.Errorf("DistanceFrom is not symmetric: got %v", d)
	}
	if d := a.DistanceFrom(a); d != 0 {
		t.Errorf("DistanceFrom self: expected 0, got %v", d)
	}

	// Axis-aligned distance equals the integer span
	c := Point{Y: 7, X: 2}
	e := Point{Y: 7, X: 9}
	if d := c.DistanceFrom(e); d != 7 {
		t.Errorf("horizontal span: expected 7, got %v", d)
	}
}

func TestDistanceFromDiagonal(t *testing.T) {
	a := Point{Y: 1, X: 1}
	b := Point{Y: 2, X: 2}
	if d := a.DistanceFrom(b); math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal: expected sqrt(2), got %v", d)
	}
}

func TestSameAxis(t *testing.T) {
	a := Point{Y: 3, X: 7}
	if !a.SameY(Point{Y: 3, X: 20}) {
		t.Error("SameY: expected true for equal rows")
	}
	if a.SameY(Point{Y: 4, X: 7}) {
		t.Error("SameY: expected false for different rows")
	}
	if !a.SameX(Point{Y: 11, X: 7}) {
		t.Error("SameX: expected true for equal columns")
	}
	if a.SameX(Point{Y: 3, X: 8}) {
		t.Error("SameX: expected false for different columns")
	}
}

// The predicates are non-strict: a tie counts as both sides.
func TestRelativePredicates(t *testing.T) {
	center := Point{Y: 5, X: 5}
	tests := []struct {
		name                      string
		other                     Point
		left, right, above, below bool
	}{
		{"east of center", Point{Y: 5, X: 9}, true, false, true, true},
		{"west of center", Point{Y: 5, X: 1}, false, true, true, true},
		{"north of center", Point{Y: 1, X: 5}, true, true, false, true},
		{"south of center", Point{Y: 9, X: 5}, true, true, true, false},
		{"same point", Point{Y: 5, X: 5}, true, true, true, true},
	}
	for _, tc := range tests {
		if got := center.LeftOf(tc.other); got != tc.left {
			t.Errorf("%s: LeftOf = %v, want %v", tc.name, got, tc.left)
		}
		if got := center.RightOf(tc.other); got != tc.right {
			t.Errorf("%s: RightOf = %v, want %v", tc.name, got, tc.right)
		}
		if got := center.Above(tc.other); got != tc.above {
			t.Errorf("%s: Above = %v, want %v", tc.name, got, tc.above)
		}
		if got := center.Below(tc.other); got != tc.below {
			t.Errorf("%s: Below = %v, want %v", tc.name, got, tc.below)
		}
	}
}
