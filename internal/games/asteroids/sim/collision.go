package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/arena"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// EntityKind tags a physics body with the arena that owns it.
type EntityKind int

const (
	KindVessel EntityKind = iota
	KindAsteroid
	KindLaser
)

// String returns a human-readable kind.
func (k EntityKind) String() string {
	switch k {
	case KindVessel:
		return "vessel"
	case KindAsteroid:
		return "asteroid"
	case KindLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// EntityRef is stored as physics user data. The vessel is a singleton and
// uses the zero handle.
type EntityRef struct {
	Kind   EntityKind
	Handle arena.Handle
}

// resolveCollisions applies the outcome of every started collision. An
// entity consumed by one event is ignored by the rest of the tick, so a
// pair reported twice produces a single outcome.
func (s *Simulation) resolveCollisions(events []physics.CollisionEvent) {
	consumed := make(map[EntityRef]bool)

	for _, ev := range events {
		if ev.Kind == physics.CollisionStopped {
			s.log.Debug("collision stopped", "a", ev.A, "b", ev.B)
			continue
		}

		a, okA := s.lookup(ev.A)
		b, okB := s.lookup(ev.B)
		if !okA || !okB || consumed[a] || consumed[b] {
			continue
		}
		s.log.Debug("collision started", "a", a.Kind, "b", b.Kind)

		// Vessel hit by anything
		if b.Kind == KindVessel {
			a, b = b, a
		}
		if a.Kind == KindVessel {
			if !s.vessel.Visible {
				continue
			}
			s.destroyVessel()
			consumed[a] = true
			if b.Kind == KindLaser {
				s.despawnLaser(b.Handle)
				consumed[b] = true
			}
			continue
		}

		// Laser hits asteroid
		if a.Kind == KindAsteroid && b.Kind == KindLaser {
			a, b = b, a
		}
		if a.Kind == KindLaser && b.Kind == KindAsteroid {
			s.destroyAsteroid(b.Handle, a.Handle)
			consumed[a] = true
			consumed[b] = true
		}
		// Asteroid-asteroid and laser-laser contacts need nothing beyond
		// the physics response.
	}
}

// lookup resolves a body id to a live entity.
func (s *Simulation) lookup(id physics.BodyID) (EntityRef, bool) {
	body, ok := s.world.Body(id)
	if !ok {
		return EntityRef{}, false
	}
	ref, ok := body.UserData.(EntityRef)
	if !ok {
		return EntityRef{}, false
	}
	switch ref.Kind {
	case KindVessel:
		return ref, s.vessel != nil && s.vessel.Body == id
	case KindAsteroid:
		return ref, s.asteroids.Contains(ref.Handle)
	case KindLaser:
		return ref, s.lasers.Contains(ref.Handle)
	default:
		return ref, false
	}
}

// destroyVessel hides the vessel and starts the player explosion.
func (s *Simulation) destroyVessel() {
	v := s.vessel
	body, ok := s.world.Body(v.Body)
	if !ok {
		return
	}
	v.Visible = false
	s.world.SetEnabled(v.Body, false)
	s.spawnExplosion(Explosion{
		Kind:     PlayerExplosion,
		Position: body.Position,
		Scale:    playerExplosionScale,
	})
	s.log.Debug("vessel destroyed", "lives", v.Lives)
}

// destroyAsteroid removes an asteroid hit by a laser and starts its explosion.
func (s *Simulation) destroyAsteroid(asteroid, laser arena.Handle) {
	a, ok := s.asteroids.Get(asteroid)
	if !ok {
		return
	}
	l, ok := s.lasers.Get(laser)
	if !ok {
		return
	}
	if body, ok := s.world.Body(a.Body); ok {
		s.syncAsteroid(a, body)
	}
	impact := l.Velocity
	if body, ok := s.world.Body(l.Body); ok {
		impact = body.Velocity
	}

	s.spawnExplosion(Explosion{
		Kind:           AsteroidExplosion,
		Position:       a.Position,
		Scale:          a.Size.ExplosionScale(),
		Asteroid:       *a,
		ImpactVelocity: impact,
	})
	s.score += s.cfg.Scoring.PointsFor(int(a.Size))

	s.despawnAsteroid(asteroid)
	s.despawnLaser(laser)
}
