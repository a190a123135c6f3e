package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wrapped float64
		crossed bool
	}{
		{"inside", 100, 100, false},
		{"at limit", 300, 300, false},
		{"past positive", 301, -300, true},
		{"past negative", -301, 300, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, crossed := WrapAxis(tc.v, 300)
			if got != tc.wrapped || crossed != tc.crossed {
				t.Errorf("WrapAxis(%v, 300) = (%v, %v), expected (%v, %v)", tc.v, got, crossed, tc.wrapped, tc.crossed)
			}
		})
	}
}

func TestWrapPointOneAxis(t *testing.T) {
	limits := mgl64.Vec2{3840, 2160}

	got, cx, cy := WrapPoint(mgl64.Vec2{3841, 123.5}, limits)
	if !cx || cy {
		t.Errorf("crossed = (%v, %v), expected (true, false)", cx, cy)
	}
	if got.X() != -3840 {
		t.Errorf("x = %v, expected -3840", got.X())
	}
	if got.Y() != 123.5 {
		t.Errorf("y = %v, expected 123.5 unchanged", got.Y())
	}

	got, cx, cy = WrapPoint(mgl64.Vec2{-7, -2161}, limits)
	if cx || !cy || got.X() != -7 || got.Y() != 2160 {
		t.Errorf("WrapPoint y-crossing = %v (%v, %v), expected (-7, 2160)", got, cx, cy)
	}
}

func TestShiftAxis(t *testing.T) {
	tests := []struct {
		v, expected float64
	}{
		{0, 0},
		{2560, 2560},
		{2561, 2561 - 7680},
		{-3000, -3000 + 7680},
	}

	for _, tc := range tests {
		if got := ShiftAxis(tc.v, 2560, 7680); got != tc.expected {
			t.Errorf("ShiftAxis(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}

func TestReferenceWrap(t *testing.T) {
	window := mgl64.Vec2{1280, 720}

	t.Run("no crossing leaves everything", func(t *testing.T) {
		free := []mgl64.Vec2{{3000, 0}}
		got := ReferenceWrap(window, mgl64.Vec2{100, 100}, free)
		if got != (mgl64.Vec2{100, 100}) || free[0] != (mgl64.Vec2{3000, 0}) {
			t.Errorf("unexpected change: ref=%v free=%v", got, free)
		}
	})

	t.Run("x crossing shifts far bodies on x only", func(t *testing.T) {
		free := []mgl64.Vec2{
			{-3000, 2000}, // beyond -2W on x, beyond 2H on y
			{1000, 0},     // inside the band
			{2600, -1500}, // beyond +2W on x, beyond -2H on y
		}
		got := ReferenceWrap(window, mgl64.Vec2{3841, 50}, free)

		if got != (mgl64.Vec2{-3840, 50}) {
			t.Errorf("reference = %v, expected (-3840, 50)", got)
		}
		expected := []mgl64.Vec2{
			{-3000 + 7680, 2000},
			{1000, 0},
			{2600 - 7680, -1500},
		}
		for i := range free {
			if free[i] != expected[i] {
				t.Errorf("free[%d] = %v, expected %v", i, free[i], expected[i])
			}
		}
	})

	t.Run("y crossing shifts on y only", func(t *testing.T) {
		free := []mgl64.Vec2{{-3000, 1500}}
		got := ReferenceWrap(window, mgl64.Vec2{0, -2161}, free)
		if got != (mgl64.Vec2{0, 2160}) {
			t.Errorf("reference = %v, expected (0, 2160)", got)
		}
		if free[0] != (mgl64.Vec2{-3000, 1500 - 4320}) {
			t.Errorf("free = %v, expected (-3000, %v)", free[0], 1500-4320)
		}
	})
}

func TestIndependentWrap(t *testing.T) {
	window := mgl64.Vec2{1280, 720}

	if got := IndependentWrap(window, mgl64.Vec2{5121, 10}); got != (mgl64.Vec2{-5120, 10}) {
		t.Errorf("IndependentWrap = %v, expected (-5120, 10)", got)
	}
	if got := IndependentWrap(window, mgl64.Vec2{5000, 10}); got != (mgl64.Vec2{5000, 10}) {
		t.Errorf("IndependentWrap inside = %v, expected unchanged", got)
	}
}
