package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "shared horizontal edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero-size rect on edge",
			a:        NewRect(50, 0, 0, 0),
			b:        NewRect(50, 0, 20, 800),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersectsSymmetric(t *testing.T) {
	coords := []float64{-10, 0, 5, 9.9, 10, 20}
	sizes := []float64{0, 1, 10, 25}
	for _, ax := range coords {
		for _, by := range coords {
			for _, w := range sizes {
				a := NewRect(ax, 0, w, 10)
				b := NewRect(0, by, 10, w)
				if a.Intersects(b) != b.Intersects(a) {
					t.Errorf("Intersects not symmetric for %+v and %+v", a, b)
				}
			}
		}
	}
}

func TestRectContainsRect(t *testing.T) {
	bounds := NewRect(20, 20, 760, 460)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"inside", NewRect(40, 40, 30, 30), true},
		{"touching top-left", NewRect(20, 20, 30, 30), true},
		{"touching bottom-right", NewRect(750, 450, 30, 30), true},
		{"past left edge", NewRect(19, 40, 30, 30), false},
		{"past bottom edge", NewRect(40, 451, 30, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bounds.ContainsRect(tc.r); got != tc.expected {
				t.Errorf("ContainsRect(%+v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectInflateTranslate(t *testing.T) {
	r := NewRect(10, 10, 20, 20).Inflate(5)
	if r != NewRect(5, 5, 30, 30) {
		t.Errorf("Inflate(5) = %+v, expected {5 5 30 30}", r)
	}

	moved := r.Translate(10, -5)
	if moved.X != 15 || moved.Y != 0 {
		t.Errorf("Translate(10, -5) = %+v, expected X=15 Y=0", moved)
	}
	if r.X != 5 {
		t.Error("Translate should not modify the receiver")
	}
}

func TestDistance(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(30, 40, 10, 10)
	if d := Distance(a, b); d != 50 {
		t.Errorf("Distance() = %v, expected 50", d)
	}
}
