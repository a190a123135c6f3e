package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// VesselSprite is the sprite identifier of the player's ship.
const VesselSprite = "sprites/player.png"

// Vessel is the player's ship. It is hidden, never removed, while its
// explosion plays.
type Vessel struct {
	Name     string
	Lives    int
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Rotation float64
	Visible  bool
	Cooldown Timer // Fire cooldown; finished means ready to fire
	Body     physics.BodyID

	// fireLatched is set when the round starts and cleared once Fire is
	// released, so the key that started the round does not shoot.
	fireLatched bool
}

// Heading returns the unit vector the nose points along. Rotation zero
// points up and positive rotation turns counter-clockwise.
func Heading(rotation float64) mgl64.Vec2 {
	return mgl64.Vec2{-math.Sin(rotation), math.Cos(rotation)}
}

// Steer returns this tick's rotation change. Each held rotate action and
// each gamepad stick past the deadzone contributes one step.
func Steer(in core.InputFrame, step, deadzone float64) float64 {
	n := 0
	if in.IsHeld(core.ActionRotateLeft) {
		n++
	}
	if in.IsHeld(core.ActionRotateRight) {
		n--
	}
	for _, x := range in.StickX {
		switch {
		case x < -deadzone:
			n++
		case x > deadzone:
			n--
		}
	}
	return float64(n) * step
}

// Muzzles returns the two laser spawn points, offset symmetrically along
// the ship's local x axis.
func Muzzles(pos mgl64.Vec2, rotation, offset float64) [2]mgl64.Vec2 {
	r := mgl64.Rotate2D(rotation)
	return [2]mgl64.Vec2{
		pos.Add(r.Mul2x1(mgl64.Vec2{offset, 0})),
		pos.Add(r.Mul2x1(mgl64.Vec2{-offset, 0})),
	}
}

func (s *Simulation) spawnVessel() {
	cfg := s.cfg.Vessel
	v := &Vessel{
		Name:        s.playerName,
		Lives:       cfg.Lives,
		Visible:     true,
		Cooldown:    NewTimer(cfg.FireCooldown, false),
		fireLatched: true,
	}
	v.Cooldown.Finish()
	v.Body = s.world.CreateBody(physics.BodyDef{
		Shape:    physics.Circle(cfg.ColliderRadius),
		UserData: EntityRef{Kind: KindVessel},
	})
	s.vessel = v
}

func (s *Simulation) despawnVessel() {
	if s.vessel == nil {
		return
	}
	s.world.RemoveBody(s.vessel.Body)
	s.vessel = nil
}

// stepVessel turns input into rotation, thrust and laser fire.
func (s *Simulation) stepVessel(in core.InputFrame) {
	v := s.vessel
	if v == nil || !v.Visible {
		return
	}
	body, ok := s.world.Body(v.Body)
	if !ok {
		return
	}
	cfg := s.cfg.Vessel

	if delta := Steer(in, cfg.RotationStep, cfg.StickDeadzone); delta != 0 {
		s.world.SetRotation(v.Body, body.Rotation+delta)
	}
	v.Rotation = body.Rotation
	heading := Heading(v.Rotation)

	if in.IsHeld(core.ActionThrust) {
		s.world.ApplyImpulse(v.Body, heading.Mul(cfg.ThrustImpulse))
	}

	fire := in.IsHeld(core.ActionFire)
	if !fire {
		v.fireLatched = false
	}

	v.Cooldown.Tick(s.dt)
	if fire && !v.fireLatched && v.Cooldown.Finished() {
		vel := body.Velocity.Add(heading.Mul(s.cfg.Laser.Speed))
		for _, m := range Muzzles(body.Position, v.Rotation, cfg.MuzzleOffset) {
			s.spawnLaser(m, vel, v.Rotation)
		}
		v.Cooldown.Reset()
	}
}

// respawnVessel brings the hidden vessel back at the origin.
func (s *Simulation) respawnVessel() {
	v := s.vessel
	if v == nil {
		return
	}
	s.world.SetPosition(v.Body, mgl64.Vec2{})
	s.world.SetRotation(v.Body, 0)
	s.world.SetVelocity(v.Body, mgl64.Vec2{}, 0)
	s.world.SetEnabled(v.Body, true)
	v.Position = mgl64.Vec2{}
	v.Velocity = mgl64.Vec2{}
	v.Rotation = 0
	v.Visible = true
	v.Cooldown.Finish()
}
