package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// ErrFieldTooDense is returned by SpawnField when some asteroids could not
// be placed within the attempt budget. The partial field is still returned.
var ErrFieldTooDense = errors.New("sim: asteroid field too dense")

const defaultPlacementAttempts = 1000

// FieldParams controls SpawnField.
type FieldParams struct {
	Count           int
	Window          mgl64.Vec2 // Reference window extent
	Extent          float64    // Placement range in windows (±)
	KeepOut         float64    // Minimum distance from the origin
	MaxSpeed        float64    // Per-axis velocity bound
	MaxAngularSpeed float64
	SpeedMultiplier float64 // Difficulty scaling of linear velocity
	MaxAttempts     int     // Placement attempts per asteroid
}

// SplitParams controls Split.
type SplitParams struct {
	SpeedMin        float64
	SpeedRange      float64
	MaxAngularSpeed float64
}

func fieldParams(cfg config.AsteroidsConfig, count int, speedMultiplier float64) FieldParams {
	return FieldParams{
		Count:           count,
		Window:          mgl64.Vec2{cfg.World.WindowWidth, cfg.World.WindowHeight},
		Extent:          cfg.Field.SpawnExtent,
		KeepOut:         cfg.Field.KeepOut,
		MaxSpeed:        cfg.Field.MaxSpeed,
		MaxAngularSpeed: cfg.Field.MaxAngularSpeed,
		SpeedMultiplier: speedMultiplier,
		MaxAttempts:     cfg.Field.MaxPlacementAttempts,
	}
}

func splitParams(cfg config.AsteroidsConfig) SplitParams {
	return SplitParams{
		SpeedMin:        cfg.Field.SplitSpeedMin,
		SpeedRange:      cfg.Field.SplitSpeedRange,
		MaxAngularSpeed: cfg.Field.MaxAngularSpeed,
	}
}

// SpawnField generates a field of asteroids. Sizes are drawn uniformly,
// positions are resampled until they clear the keep-out zone around the
// origin and the separation from every asteroid already placed.
func SpawnField(rng *rand.Rand, p FieldParams) ([]Asteroid, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = defaultPlacementAttempts
	}
	mult := p.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}

	field := make([]Asteroid, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		size := asteroidSizes[rng.Intn(len(asteroidSizes))]

		pos, ok := placeAsteroid(rng, p, attempts, size, field)
		if !ok {
			continue
		}

		vel := mgl64.Vec2{
			uniform(rng, -p.MaxSpeed, p.MaxSpeed),
			uniform(rng, -p.MaxSpeed, p.MaxSpeed),
		}
		field = append(field, Asteroid{
			Position:        pos,
			Velocity:        vel.Mul(mult),
			AngularVelocity: uniform(rng, -p.MaxAngularSpeed, p.MaxAngularSpeed),
			Size:            size,
		})
	}

	if len(field) < p.Count {
		return field, fmt.Errorf("%w: placed %d of %d", ErrFieldTooDense, len(field), p.Count)
	}
	return field, nil
}

func placeAsteroid(rng *rand.Rand, p FieldParams, attempts int, size AsteroidSize, placed []Asteroid) (mgl64.Vec2, bool) {
	bound := p.Window.Mul(p.Extent)
	for range attempts {
		pos := mgl64.Vec2{
			uniform(rng, -bound.X(), bound.X()),
			uniform(rng, -bound.Y(), bound.Y()),
		}
		if clearOf(pos, size, placed, p.KeepOut) {
			return pos, true
		}
	}
	return mgl64.Vec2{}, false
}

// clearOf reports whether an asteroid of size may sit at pos.
func clearOf(pos mgl64.Vec2, size AsteroidSize, placed []Asteroid, keepOut float64) bool {
	if pos.Len() < keepOut {
		return false
	}
	for _, a := range placed {
		minDist := (a.Size.Radius() + size.Radius()) * math.Sqrt2
		if pos.Sub(a.Position).Len() < minDist {
			return false
		}
	}
	return true
}

// Split returns the fragments of a destroyed asteroid: two of the next size
// down for Medium and Big, none otherwise. Fragments are offset along the
// impactor's direction and fly apart perpendicular to it.
func Split(rng *rand.Rand, original Asteroid, at, impactorVelocity mgl64.Vec2, p SplitParams) []Asteroid {
	if !original.Size.Splits() {
		return nil
	}
	next := original.Size.Next()

	d := mgl64.Vec2{0, 1}
	if impactorVelocity.LenSqr() > 1e-12 {
		d = impactorVelocity.Normalize()
	}
	perp := mgl64.Vec2{-d.Y(), d.X()}
	offset := d.Mul(next.Radius())

	speedA := p.SpeedMin + rng.Float64()*p.SpeedRange
	speedB := p.SpeedMin + rng.Float64()*p.SpeedRange
	angular := uniform(rng, -p.MaxAngularSpeed, p.MaxAngularSpeed)

	return []Asteroid{
		{
			Position:        at.Add(offset),
			Velocity:        perp.Mul(speedA),
			Rotation:        original.Rotation,
			AngularVelocity: angular,
			Size:            next,
		},
		{
			Position:        at.Sub(offset),
			Velocity:        perp.Mul(-speedB),
			Rotation:        original.Rotation,
			AngularVelocity: angular,
			Size:            next,
		},
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
