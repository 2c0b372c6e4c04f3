package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, -4, 90, 52)

	if b.Left() != -35 {
		t.Errorf("Left() = %f, expected -35", b.Left())
	}
	if b.Right() != 55 {
		t.Errorf("Right() = %f, expected 55", b.Right())
	}
	if b.Bottom() != -30 {
		t.Errorf("Bottom() = %f, expected -30", b.Bottom())
	}
	if b.Top() != 22 {
		t.Errorf("Top() = %f, expected 22", b.Top())
	}
}

func TestBoxOverlapsX(t *testing.T) {
	player := NewBox(0, 0, 90, 52)

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"centered", NewBox(0, 100, 100, 10), true},
		{"partially right", NewBox(90, 0, 100, 10), true},
		{"touching right edge", NewBox(95, 0, 100, 10), true},
		{"fully right", NewBox(96, 0, 100, 10), false},
		{"touching left edge", NewBox(-95, 0, 100, 10), true},
		{"fully left", NewBox(-96, 0, 100, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.OverlapsX(tc.other); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.other.OverlapsX(player); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF32(t *testing.T) {
	tests := []struct {
		val, min, max, expected float32
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF32(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF32(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
