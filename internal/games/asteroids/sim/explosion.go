package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/arena"
)

// ExplosionSprite is the 9-frame explosion atlas.
const ExplosionSprite = "sprites/explosion.png"

// playerExplosionScale matches the ship's sprite scale.
const playerExplosionScale = 0.5

// ExplosionKind tells what happens when an explosion ends.
type ExplosionKind int

const (
	PlayerExplosion ExplosionKind = iota
	AsteroidExplosion
)

// String returns a human-readable kind.
func (k ExplosionKind) String() string {
	if k == PlayerExplosion {
		return "player"
	}
	return "asteroid"
}

// Explosion is a short animation. An asteroid explosion carries what is
// needed to split the destroyed asteroid once it finishes.
type Explosion struct {
	Kind     ExplosionKind
	Position mgl64.Vec2
	Frame    int
	Timer    Timer
	Scale    float64

	// AsteroidExplosion payload
	Asteroid       Asteroid
	ImpactVelocity mgl64.Vec2

	born uint64
}

// Advance moves the animation on by dt. It returns true once the frame
// index passes the last frame; the index then wraps to zero.
func (e *Explosion) Advance(dt float64, frames int) bool {
	n := e.Timer.Tick(dt)
	for range n {
		e.Frame++
		if e.Frame >= frames {
			e.Frame = 0
			return true
		}
	}
	return false
}

func (s *Simulation) spawnExplosion(e Explosion) arena.Handle {
	e.Timer = NewTimer(s.cfg.Explosion.FrameDuration, true)
	e.born = s.tick
	return s.explosions.Insert(e)
}

// stepExplosions advances every explosion created before this tick and
// queues the follow-up effect of each one that finished.
func (s *Simulation) stepExplosions() {
	var done []arena.Handle
	s.explosions.Each(func(h arena.Handle, e *Explosion) bool {
		if e.Kind == PlayerExplosion && s.vessel != nil {
			if body, ok := s.world.Body(s.vessel.Body); ok {
				e.Position = body.Position
			}
		}
		if e.born == s.tick {
			return true
		}
		if e.Advance(s.dt, s.cfg.Explosion.Frames) {
			done = append(done, h)
		}
		return true
	})

	for _, h := range done {
		e, ok := s.explosions.Remove(h)
		if !ok {
			continue
		}
		s.finishExplosion(e)
	}
}

func (s *Simulation) finishExplosion(e Explosion) {
	switch e.Kind {
	case PlayerExplosion:
		if s.vessel != nil && s.vessel.Lives > 0 {
			s.effects.Push(Effect{Kind: EffectRespawn})
		} else {
			s.effects.Push(Effect{Kind: EffectGameOver})
		}
	case AsteroidExplosion:
		if e.Asteroid.Size.Splits() {
			s.effects.Push(Effect{
				Kind:     EffectSplit,
				Asteroid: e.Asteroid,
				At:       e.Position,
				Impact:   e.ImpactVelocity,
			})
		}
	}
}
