package sim

import "github.com/go-gl/mathgl/mgl64"

// EffectKind identifies a deferred world change.
type EffectKind int

const (
	EffectRespawn  EffectKind = iota // Decrement a life and bring the vessel back
	EffectGameOver                   // Lives exhausted
	EffectSplit                      // Spawn fragments of a destroyed asteroid
)

// String returns a human-readable effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectRespawn:
		return "respawn"
	case EffectGameOver:
		return "game_over"
	case EffectSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Effect is queued by one stage and applied when the queue is drained.
type Effect struct {
	Kind     EffectKind
	Asteroid Asteroid   // EffectSplit: the destroyed asteroid
	At       mgl64.Vec2 // EffectSplit: explosion position
	Impact   mgl64.Vec2 // EffectSplit: impactor velocity
}

// EffectQueue is a FIFO of effects.
type EffectQueue struct {
	items []Effect
}

// Push appends an effect.
func (q *EffectQueue) Push(e Effect) {
	q.items = append(q.items, e)
}

// Len returns the number of queued effects.
func (q *EffectQueue) Len() int {
	return len(q.items)
}

// Drain returns all queued effects in order and empties the queue.
func (q *EffectQueue) Drain() []Effect {
	items := q.items
	q.items = nil
	return items
}

// applyEffects drains the queue.
func (s *Simulation) applyEffects() {
	for _, e := range s.effects.Drain() {
		switch e.Kind {
		case EffectRespawn:
			if s.vessel == nil {
				continue
			}
			s.vessel.Lives--
			s.respawnVessel()
			s.log.Debug("vessel respawned", "lives", s.vessel.Lives)
		case EffectGameOver:
			s.log.Info("lives exhausted", "score", s.score)
			s.flow.Request(StateGameOver)
		case EffectSplit:
			frags := Split(s.rng, e.Asteroid, e.At, e.Impact, splitParams(s.cfg))
			for _, a := range frags {
				s.spawnAsteroid(a)
			}
		}
	}
}
