package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "chick over egg",
			a:        NewRect(100, 460, 50, 40),
			b:        NewRect(120, 455, 30, 45),
			expected: true,
		},
		{
			name:     "egg ahead of chick",
			a:        NewRect(100, 460, 50, 40),
			b:        NewRect(151, 455, 30, 45),
			expected: false,
		},
		{
			name:     "chick above egg",
			a:        NewRect(100, 300, 50, 40),
			b:        NewRect(110, 455, 30, 45),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewRect(100, 460, 50, 40),
			b:        NewRect(150, 455, 30, 45),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRect(100, 415, 50, 40),
			b:        NewRect(110, 455, 30, 45),
			expected: false,
		},
		{
			name:     "one unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(800, 455, 30, 45).Translate(-7, 0)
	if r.X != 793 || r.Y != 455 || r.W != 30 || r.H != 45 {
		t.Errorf("Translate() = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
