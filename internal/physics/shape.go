package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind selects the collider geometry of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is a collider centred on the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // Circle radius
	HalfW  float64 // Box half extents in local space
	HalfH  float64
}

// Circle returns a circular collider.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns a box collider of the given full width and height.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: w / 2, HalfH: h / 2}
}

// BoundingRadius returns the radius of the smallest circle containing the
// shape at any rotation.
func (s Shape) BoundingRadius() float64 {
	if s.Kind == ShapeCircle {
		return s.Radius
	}
	return math.Hypot(s.HalfW, s.HalfH)
}

// Area returns the collider area, used for mass.
func (s Shape) Area() float64 {
	if s.Kind == ShapeCircle {
		return math.Pi * s.Radius * s.Radius
	}
	return 4 * s.HalfW * s.HalfH
}

// overlaps runs the narrow phase between two placed shapes.
func overlaps(a Shape, pa mgl64.Vec2, ra float64, b Shape, pb mgl64.Vec2, rb float64) bool {
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		sum := a.Radius + b.Radius
		return pb.Sub(pa).LenSqr() < sum*sum
	case a.Kind == ShapeCircle && b.Kind == ShapeBox:
		return circleBox(pa, a.Radius, b, pb, rb)
	case a.Kind == ShapeBox && b.Kind == ShapeCircle:
		return circleBox(pb, b.Radius, a, pa, ra)
	default:
		return boxBox(a, pa, ra, b, pb, rb)
	}
}

// circleBox tests a circle against an oriented box by moving the circle
// centre into the box frame and clamping.
func circleBox(c mgl64.Vec2, r float64, box Shape, p mgl64.Vec2, rot float64) bool {
	local := mgl64.Rotate2D(-rot).Mul2x1(c.Sub(p))
	closest := mgl64.Vec2{
		clamp(local.X(), -box.HalfW, box.HalfW),
		clamp(local.Y(), -box.HalfH, box.HalfH),
	}
	return local.Sub(closest).LenSqr() < r*r
}

// boxBox is a separating axis test for two oriented boxes.
func boxBox(a Shape, pa mgl64.Vec2, ra float64, b Shape, pb mgl64.Vec2, rb float64) bool {
	ma := mgl64.Rotate2D(ra)
	mb := mgl64.Rotate2D(rb)
	axes := [4]mgl64.Vec2{
		ma.Col(0), ma.Col(1),
		mb.Col(0), mb.Col(1),
	}
	d := pb.Sub(pa)

	for _, axis := range axes {
		projA := a.HalfW*math.Abs(ma.Col(0).Dot(axis)) + a.HalfH*math.Abs(ma.Col(1).Dot(axis))
		projB := b.HalfW*math.Abs(mb.Col(0).Dot(axis)) + b.HalfH*math.Abs(mb.Col(1).Dot(axis))
		if math.Abs(d.Dot(axis)) >= projA+projB {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
