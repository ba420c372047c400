package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges do not intersect",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsMargin(t *testing.T) {
	a := NewBox(0, 0, 40, 40)

	tests := []struct {
		name     string
		b        Box
		margin   float64
		expected bool
	}{
		// Centers 100 apart on X, half-extent sum 40.
		{"far apart, no margin", NewBox(100, 0, 40, 40), 0, false},
		{"far apart, margin 50", NewBox(100, 0, 40, 40), 50, false},
		{"margin exactly fills gap", NewBox(100, 0, 40, 40), 60, false},
		{"margin just over gap", NewBox(100, 0, 40, 40), 61, true},
		// Close on X, far on Y: both axes must be close.
		{"close on X only", NewBox(10, 200, 40, 40), 50, false},
		{"touching edges, zero margin", NewBox(40, 0, 40, 40), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(a, tc.b, tc.margin); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, a, tc.margin); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampFDegenerateRange(t *testing.T) {
	if got := ClampF(50, 20, 10); got != 20 {
		t.Errorf("ClampF with hi < lo = %v, expected lo (20)", got)
	}
	if got := ClampF(15, 10, 20); got != 15 {
		t.Errorf("ClampF(15, 10, 20) = %v, expected 15", got)
	}
}
