package sim

import "github.com/go-gl/mathgl/mgl64"

// WrapAxis moves v to the opposite extreme when it leaves [-limit, limit].
// crossed reports whether it did.
func WrapAxis(v, limit float64) (wrapped float64, crossed bool) {
	switch {
	case v > limit:
		return -limit, true
	case v < -limit:
		return limit, true
	default:
		return v, false
	}
}

// WrapPoint wraps each axis of p independently against limits.
func WrapPoint(p, limits mgl64.Vec2) (wrapped mgl64.Vec2, crossedX, crossedY bool) {
	x, cx := WrapAxis(p.X(), limits.X())
	y, cy := WrapAxis(p.Y(), limits.Y())
	return mgl64.Vec2{x, y}, cx, cy
}

// ShiftAxis moves v by span toward the centre when it lies beyond ±band.
func ShiftAxis(v, band, span float64) float64 {
	switch {
	case v > band:
		return v - span
	case v < -band:
		return v + span
	default:
		return v
	}
}

// ReferenceWrap wraps the reference body (the vessel) at ±3 windows. On an
// axis it crosses, every free body beyond ±2 windows on that axis is shifted
// by 6 windows so the field keeps surrounding the reference. free is
// updated in place.
func ReferenceWrap(window, reference mgl64.Vec2, free []mgl64.Vec2) mgl64.Vec2 {
	wrapped, cx, cy := WrapPoint(reference, window.Mul(3))
	if !cx && !cy {
		return reference
	}
	for i, p := range free {
		x, y := p.X(), p.Y()
		if cx {
			x = ShiftAxis(x, window.X()*2, window.X()*6)
		}
		if cy {
			y = ShiftAxis(y, window.Y()*2, window.Y()*6)
		}
		free[i] = mgl64.Vec2{x, y}
	}
	return wrapped
}

// IndependentWrap wraps any body at ±4 windows.
func IndependentWrap(window, p mgl64.Vec2) mgl64.Vec2 {
	wrapped, _, _ := WrapPoint(p, window.Mul(4))
	return wrapped
}
