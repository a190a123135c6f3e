package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/arena"
)

// Star is one point of the starfield, relative to a background tile centre.
type Star struct {
	Offset     mgl64.Vec2
	Brightness uint8 // 100..254
}

// spawnBackground scatters the stars of one tile two windows wide.
func (s *Simulation) spawnBackground() {
	w, h := s.cfg.World.WindowWidth, s.cfg.World.WindowHeight
	s.stars = make([]Star, s.cfg.Background.Stars)
	for i := range s.stars {
		s.stars[i] = Star{
			Offset:     mgl64.Vec2{uniform(s.rng, -w, w), uniform(s.rng, -h, h)},
			Brightness: uint8(100 + s.rng.Intn(155)), //#nosec G115 -- bounded
		}
	}
}

// Stars returns the starfield tile, or nil outside a round.
func (s *Simulation) Stars() []Star {
	return s.stars
}

// BackgroundTiles returns the centres the starfield tile is drawn at: the
// odd multiples -3..3 of the window on both axes, plus the origin.
func BackgroundTiles(window mgl64.Vec2) []mgl64.Vec2 {
	tiles := make([]mgl64.Vec2, 0, 17)
	for x := -3; x <= 3; x += 2 {
		for y := -3; y <= 3; y += 2 {
			tiles = append(tiles, mgl64.Vec2{window.X() * float64(x), window.Y() * float64(y)})
		}
	}
	return append(tiles, mgl64.Vec2{})
}

// PoseKind identifies what a Pose draws.
type PoseKind int

const (
	PoseAsteroid PoseKind = iota
	PoseLaser
	PoseVessel
	PoseExplosion
)

// Pose is everything a renderer needs to draw one entity.
type Pose struct {
	Kind     PoseKind
	Position mgl64.Vec2
	Rotation float64
	Sprite   string
	Scale    float64
	Frame    int // Explosion atlas frame
	Visible  bool
	Extent   float64 // Approximate drawn radius in world units
}

// Poses returns render poses in draw order: asteroids, lasers, vessel,
// explosions.
func (s *Simulation) Poses() []Pose {
	poses := make([]Pose, 0, s.asteroids.Len()+s.lasers.Len()+s.explosions.Len()+1)

	s.asteroids.Each(func(_ arena.Handle, a *Asteroid) bool {
		poses = append(poses, Pose{
			Kind:     PoseAsteroid,
			Position: a.Position,
			Rotation: a.Rotation,
			Sprite:   a.Size.Sprite(),
			Scale:    1,
			Visible:  true,
			Extent:   a.Size.Footprint() / 2,
		})
		return true
	})
	s.lasers.Each(func(_ arena.Handle, l *Laser) bool {
		poses = append(poses, Pose{
			Kind:     PoseLaser,
			Position: l.Position,
			Rotation: l.Rotation,
			Sprite:   LaserSprite,
			Scale:    1,
			Visible:  true,
			Extent:   s.cfg.Laser.Length / 2,
		})
		return true
	})
	if v := s.vessel; v != nil {
		poses = append(poses, Pose{
			Kind:     PoseVessel,
			Position: v.Position,
			Rotation: v.Rotation,
			Sprite:   VesselSprite,
			Scale:    0.5,
			Visible:  v.Visible,
			Extent:   s.cfg.Vessel.ColliderRadius * 2,
		})
	}
	s.explosions.Each(func(_ arena.Handle, e *Explosion) bool {
		poses = append(poses, Pose{
			Kind:     PoseExplosion,
			Position: e.Position,
			Sprite:   ExplosionSprite,
			Scale:    e.Scale,
			Frame:    e.Frame,
			Visible:  true,
			Extent:   explosionExtent * e.Scale,
		})
		return true
	})
	return poses
}

// explosionExtent is the radius of an explosion frame at scale 1.
const explosionExtent = 128

// Overlay returns the text shown over the playfield, or "" when none.
func (s *Simulation) Overlay() string {
	return s.overlay
}

// HUD is the heads-up display state.
type HUD struct {
	Player    string
	Lives     int
	Score     int
	Elapsed   float64 // Seconds since the round started
	Asteroids int
	Wave      int
}

// HUD returns the heads-up display state.
func (s *Simulation) HUD() HUD {
	hud := HUD{
		Player:    s.playerName,
		Score:     s.score,
		Elapsed:   s.roundTime,
		Asteroids: s.asteroids.Len(),
		Wave:      s.wave,
	}
	if s.vessel != nil {
		hud.Lives = s.vessel.Lives
	}
	return hud
}
