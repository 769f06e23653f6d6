package geom

import "testing"

func TestOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
		{None, None},
	}
	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.want {
			t.Errorf("Opposite(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestIsOpposite(t *testing.T) {
	tests := []struct {
		a, b Direction
		want bool
	}{
		{North, South, true},
		{South, North, true},
		{East, West, true},
		{West, East, true},
		{North, North, false},
		{North, East, false},
		{North, West, false},
		{East, South, false},
		{None, None, false},
		{None, North, false},
		{North, None, false},
	}
	for _, tc := range tests {
		if got := tc.a.IsOpposite(tc.b); got != tc.want {
			t.Errorf("%v.IsOpposite(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{North, "north"},
		{East, "east"},
		{South, "south"},
		{West, "west"},
		{None, "none"},
	}
	for _, tc := range tests {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", int(tc.d), got, tc.want)
		}
	}
}
