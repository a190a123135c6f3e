package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// AsteroidSize is the size class of an asteroid.
type AsteroidSize int

const (
	Tiny AsteroidSize = iota
	Small
	Medium
	Big
)

// asteroidSizes lists every variant in draw order.
var asteroidSizes = [...]AsteroidSize{Tiny, Small, Medium, Big}

// String returns a human-readable size name.
func (s AsteroidSize) String() string {
	switch s {
	case Tiny:
		return "tiny"
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

// Radius is the placement and split radius.
func (s AsteroidSize) Radius() float64 {
	switch s {
	case Tiny:
		return 18
	case Small:
		return 27
	case Medium:
		return 42
	case Big:
		return 90
	default:
		return 0
	}
}

// Footprint is the rendered width of the sprite.
func (s AsteroidSize) Footprint() float64 {
	switch s {
	case Tiny:
		return 27
	case Small:
		return 42
	case Medium:
		return 64
	case Big:
		return 147
	default:
		return 0
	}
}

// ColliderRadius is the physics circle radius.
func (s AsteroidSize) ColliderRadius() float64 {
	return s.Radius() * 0.75
}

// Sprite returns the sprite identifier for the size.
func (s AsteroidSize) Sprite() string {
	switch s {
	case Tiny:
		return "sprites/meteorbrown_tiny1.png"
	case Small:
		return "sprites/meteorbrown_small1.png"
	case Medium:
		return "sprites/meteorbrown_med1.png"
	case Big:
		return "sprites/meteorbrown_big1.png"
	default:
		return ""
	}
}

// ExplosionScale is the visual scale of the explosion when destroyed.
func (s AsteroidSize) ExplosionScale() float64 {
	switch s {
	case Tiny:
		return 0.1
	case Small:
		return 0.2
	case Medium:
		return 0.3
	case Big:
		return 0.5
	default:
		return 0
	}
}

// Splits reports whether destroying the asteroid yields fragments.
func (s AsteroidSize) Splits() bool {
	return s == Medium || s == Big
}

// Next returns the fragment size. Only meaningful when Splits is true.
func (s AsteroidSize) Next() AsteroidSize {
	switch s {
	case Medium:
		return Tiny
	case Big:
		return Small
	default:
		return s
	}
}

// Asteroid is a drifting rock. Position, Rotation and velocities mirror the
// physics body after every step.
type Asteroid struct {
	Position        mgl64.Vec2
	Velocity        mgl64.Vec2
	Rotation        float64
	AngularVelocity float64
	Size            AsteroidSize
	Body            physics.BodyID
}
