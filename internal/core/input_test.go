package core

import "testing"

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		dir      Direction
		turns    int
		expected Direction
	}{
		{DirUp, 1, DirRight},
		{DirRight, 1, DirDown},
		{DirLeft, 1, DirUp},
		{DirUp, -1, DirLeft},
		{DirDown, -3, DirLeft},
		{DirDown, 4, DirDown},
		{DirNone, 1, DirNone},
	}

	for _, tc := range tests {
		if got := tc.dir.Rotate(tc.turns); got != tc.expected {
			t.Errorf("%v.Rotate(%d) = %v, expected %v", tc.dir, tc.turns, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		odx, ody := d.Opposite().Delta()
		if dx != -odx || dy != -ody {
			t.Errorf("Delta of %v and its opposite should cancel", d)
		}
		if dx*dx+dy*dy != 1 {
			t.Errorf("Delta of %v should be a unit step, got (%v, %v)", d, dx, dy)
		}
	}
	if dx, dy := DirNone.Delta(); dx != 0 || dy != 0 {
		t.Error("DirNone should have zero delta")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}
