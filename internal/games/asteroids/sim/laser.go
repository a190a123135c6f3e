package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/arena"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// LaserSprite is the sprite identifier of a laser bolt.
const LaserSprite = "sprites/laser.png"

// Laser is a projectile. It expires after its TTL or on its first hit.
type Laser struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Rotation float64
	TTL      Timer
	Body     physics.BodyID
	born     uint64 // Tick of creation; not aged until the next tick
}

func (s *Simulation) spawnLaser(pos, vel mgl64.Vec2, rotation float64) arena.Handle {
	cfg := s.cfg.Laser
	h := s.lasers.Insert(Laser{
		Position: pos,
		Velocity: vel,
		Rotation: rotation,
		TTL:      NewTimer(cfg.TTL, false),
		born:     s.tick,
	})
	l, _ := s.lasers.Get(h)
	l.Body = s.world.CreateBody(physics.BodyDef{
		Position: pos,
		Rotation: rotation,
		Velocity: vel,
		Shape:    physics.Box(cfg.Width, cfg.Length),
		Sensor:   true,
		UserData: EntityRef{Kind: KindLaser, Handle: h},
	})
	return h
}

func (s *Simulation) despawnLaser(h arena.Handle) {
	l, ok := s.lasers.Remove(h)
	if !ok {
		return
	}
	s.world.RemoveBody(l.Body)
}

// stepLasers ages every laser and removes the expired ones.
func (s *Simulation) stepLasers() {
	var expired []arena.Handle
	s.lasers.Each(func(h arena.Handle, l *Laser) bool {
		if l.born == s.tick {
			return true
		}
		l.TTL.Tick(s.dt)
		if l.TTL.Finished() {
			expired = append(expired, h)
		}
		return true
	})
	for _, h := range expired {
		s.despawnLaser(h)
	}
}
