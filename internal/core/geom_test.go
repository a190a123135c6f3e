package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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

func TestViewportProject(t *testing.T) {
	// 80 columns over 800 world units: 10 units per column, 20 per row
	v := NewViewport(80, 24, 800)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"centre", 0, 0, 40, 12, true},
		{"right", 100, 0, 50, 12, true},
		{"up is smaller row", 0, 100, 40, 7, true},
		{"down is larger row", 0, -100, 40, 17, true},
		{"off right", 500, 0, 90, 12, false},
		{"off top", 0, 300, 40, -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := v.Project(tc.x, tc.y)
			if col != tc.col || row != tc.row || ok != tc.ok {
				t.Errorf("Project(%v, %v) = (%d, %d, %v), expected (%d, %d, %v)",
					tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
			}
		})
	}
}

func TestViewportFollowsCenter(t *testing.T) {
	v := NewViewport(80, 24, 800)
	v.CenterX, v.CenterY = 1000, -500

	col, row, ok := v.Project(1000, -500)
	if !ok || col != 40 || row != 12 {
		t.Errorf("Centre should project to the middle, got (%d, %d, %v)", col, row, ok)
	}
}

func TestViewportCellsFor(t *testing.T) {
	v := NewViewport(80, 24, 800)

	if got := v.CellsFor(45); got != 5 {
		t.Errorf("CellsFor(45) = %d, expected 5", got)
	}
	if got := v.CellsFor(1); got != 1 {
		t.Errorf("CellsFor(1) = %d, expected 1", got)
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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
