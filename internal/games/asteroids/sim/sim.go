// Package sim is the asteroids simulation: a fixed-step, single-threaded
// world of drifting asteroids, one player vessel, lasers and explosions,
// driven by a Menu/InGame/Paused/GameOver flow.
//
// Each Step runs the same ordered stages: apply the pending flow
// transition, handle flow input, then (in game only) vessel control,
// laser aging, physics, collision resolution, explosions, queued effects,
// world wrap and the round timer. Entities live in typed generational
// arenas; the physics world only refers back to them.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/arena"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Options configures a Simulation.
type Options struct {
	Config     config.AsteroidsConfig
	Seed       int64
	PlayerName string
	TickRate   int         // Ticks per second; 0 means 60
	Logger     *log.Logger // nil discards logs
}

// Simulation owns every entity of the game.
type Simulation struct {
	cfg        config.AsteroidsConfig
	dt         float64
	rng        *rand.Rand
	log        *log.Logger
	difficulty *config.DifficultyManager
	playerName string

	world      *physics.World
	asteroids  *arena.Arena[Asteroid]
	lasers     *arena.Arena[Laser]
	explosions *arena.Arena[Explosion]
	vessel     *Vessel
	stars      []Star
	effects    EffectQueue

	flow     Flow
	overlay  string
	score    int
	wave     int
	gameOver bool
	exit     bool

	tick       uint64
	roundTicks int
	roundTime  float64
}

// New creates a simulation in the menu state.
func New(opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	name := opts.PlayerName
	if name == "" {
		name = core.DefaultConfig().PlayerName
	}

	cfg := opts.Config
	s := &Simulation{
		cfg:        cfg,
		dt:         rt.TickSeconds(),
		rng:        rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- game randomness, not security
		log:        logger.WithPrefix("sim"),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		playerName: name,
		world: physics.NewWorld(physics.Config{
			CellSize: float64(cfg.World.CellSize),
			PeriodX:  cfg.World.WindowWidth * 16,
			PeriodY:  cfg.World.WindowHeight * 16,
		}),
		asteroids:  arena.New[Asteroid](cfg.Field.Count),
		lasers:     arena.New[Laser](32),
		explosions: arena.New[Explosion](16),
		flow:       NewFlow(),
		overlay:    MenuText,
	}
	return s
}

// Step advances the simulation by one fixed tick.
func (s *Simulation) Step(in core.InputFrame) {
	s.tick++

	if from, to, changed := s.flow.Apply(); changed {
		s.transition(from, to)
	}
	if s.flow.HandleInput(in) {
		s.exit = true
	}
	if s.flow.Current() != StateInGame {
		return
	}

	s.stepVessel(in)
	s.stepLasers()
	events := s.world.Step(s.dt)
	s.syncBodies()
	s.resolveCollisions(events)
	s.stepExplosions()
	s.applyEffects()
	s.nextWave()
	s.wrap()

	s.roundTicks++
	s.roundTime += s.dt
}

// setupRound spawns the field, the vessel and the starfield.
func (s *Simulation) setupRound() {
	s.score = 0
	s.gameOver = false
	s.wave = 1
	s.roundTicks = 0
	s.roundTime = 0
	s.effects.Drain()

	s.spawnField(mgl64.Vec2{})
	s.spawnVessel()
	s.spawnBackground()
	s.log.Info("round started", "asteroids", s.asteroids.Len(), "player", s.playerName)
}

// teardownRound removes every round-scoped entity.
func (s *Simulation) teardownRound() {
	for _, h := range s.asteroids.Handles() {
		s.despawnAsteroid(h)
	}
	for _, h := range s.lasers.Handles() {
		s.despawnLaser(h)
	}
	s.explosions.Clear()
	s.despawnVessel()
	s.stars = nil
	s.effects.Drain()
}

// spawnField fills the world with a new field centred on center.
func (s *Simulation) spawnField(center mgl64.Vec2) {
	count := s.difficulty.FieldCount(s.cfg.Field.Count, s.score, s.roundTicks)
	mult := s.difficulty.SpeedMultiplier(s.score, s.roundTicks)

	field, err := SpawnField(s.rng, fieldParams(s.cfg, count, mult))
	if err != nil {
		s.log.Warn("asteroid field incomplete", "err", err)
	}
	for _, a := range field {
		a.Position = a.Position.Add(center)
		s.spawnAsteroid(a)
	}
}

// nextWave starts a new field once every asteroid and pending fragment is gone.
func (s *Simulation) nextWave() {
	if s.cfg.Field.Count <= 0 || s.asteroids.Len() > 0 {
		return
	}
	pending := false
	s.explosions.Each(func(_ arena.Handle, e *Explosion) bool {
		if e.Kind == AsteroidExplosion && e.Asteroid.Size.Splits() {
			pending = true
			return false
		}
		return true
	})
	if pending {
		return
	}

	center := mgl64.Vec2{}
	if s.vessel != nil {
		center = s.vessel.Position
	}
	s.wave++
	s.spawnField(center)
	s.log.Info("wave cleared", "wave", s.wave, "score", s.score)
}

func (s *Simulation) spawnAsteroid(a Asteroid) arena.Handle {
	h := s.asteroids.Insert(a)
	stored, _ := s.asteroids.Get(h)
	stored.Body = s.world.CreateBody(physics.BodyDef{
		Position:        a.Position,
		Rotation:        a.Rotation,
		Velocity:        a.Velocity,
		AngularVelocity: a.AngularVelocity,
		Shape:           physics.Circle(a.Size.ColliderRadius()),
		UserData:        EntityRef{Kind: KindAsteroid, Handle: h},
	})
	return h
}

func (s *Simulation) despawnAsteroid(h arena.Handle) {
	a, ok := s.asteroids.Remove(h)
	if !ok {
		return
	}
	s.world.RemoveBody(a.Body)
}

func (s *Simulation) syncAsteroid(a *Asteroid, b *physics.Body) {
	a.Position = b.Position
	a.Velocity = b.Velocity
	a.Rotation = b.Rotation
	a.AngularVelocity = b.AngularVelocity
}

// syncBodies copies physics state into the entity mirrors.
func (s *Simulation) syncBodies() {
	s.asteroids.Each(func(_ arena.Handle, a *Asteroid) bool {
		if b, ok := s.world.Body(a.Body); ok {
			s.syncAsteroid(a, b)
		}
		return true
	})
	s.lasers.Each(func(_ arena.Handle, l *Laser) bool {
		if b, ok := s.world.Body(l.Body); ok {
			l.Position = b.Position
			l.Velocity = b.Velocity
		}
		return true
	})
	if v := s.vessel; v != nil {
		if b, ok := s.world.Body(v.Body); ok {
			v.Position = b.Position
			v.Velocity = b.Velocity
			v.Rotation = b.Rotation
		}
	}
}

func (s *Simulation) window() mgl64.Vec2 {
	return mgl64.Vec2{s.cfg.World.WindowWidth, s.cfg.World.WindowHeight}
}

// wrap keeps bodies inside the world according to the configured policy.
// Free bodies always wrap on their own at ±4 windows; under the reference
// policy the vessel additionally drags the field along when it wraps.
func (s *Simulation) wrap() {
	window := s.window()

	if s.cfg.Wrap.Policy == config.WrapIndependent {
		if s.vessel != nil {
			s.wrapBody(window, s.vessel.Body)
		}
	} else {
		s.wrapReference(window)
	}
	s.asteroids.Each(func(_ arena.Handle, a *Asteroid) bool { s.wrapBody(window, a.Body); return true })
	s.lasers.Each(func(_ arena.Handle, l *Laser) bool { s.wrapBody(window, l.Body); return true })
	s.syncBodies()
}

// wrapBody wraps one body at ±4 windows.
func (s *Simulation) wrapBody(window mgl64.Vec2, id physics.BodyID) {
	if b, ok := s.world.Body(id); ok {
		if p := IndependentWrap(window, b.Position); p != b.Position {
			s.world.SetPosition(id, p)
		}
	}
}

// wrapReference wraps the vessel at ±3 windows and shifts the far side of
// the field with it.
func (s *Simulation) wrapReference(window mgl64.Vec2) {
	if s.vessel == nil {
		return
	}
	vb, ok := s.world.Body(s.vessel.Body)
	if !ok {
		return
	}
	if _, cx, cy := WrapPoint(vb.Position, window.Mul(3)); !cx && !cy {
		return
	}

	// Collect every free position, shift them together, then write back.
	var ids []physics.BodyID
	var free []mgl64.Vec2
	s.asteroids.Each(func(_ arena.Handle, a *Asteroid) bool {
		if b, ok := s.world.Body(a.Body); ok {
			ids = append(ids, a.Body)
			free = append(free, b.Position)
		}
		return true
	})
	s.lasers.Each(func(_ arena.Handle, l *Laser) bool {
		if b, ok := s.world.Body(l.Body); ok {
			ids = append(ids, l.Body)
			free = append(free, b.Position)
		}
		return true
	})
	nBodies := len(free)
	var explosions []*Explosion
	s.explosions.Each(func(_ arena.Handle, e *Explosion) bool {
		explosions = append(explosions, e)
		free = append(free, e.Position)
		return true
	})

	wrapped := ReferenceWrap(window, vb.Position, free)
	s.world.SetPosition(s.vessel.Body, wrapped)
	for i, id := range ids {
		s.world.SetPosition(id, free[i])
	}
	for i, e := range explosions {
		e.Position = free[nBodies+i]
	}
	s.log.Debug("vessel wrapped", "to", wrapped)
}

// State returns the current flow state.
func (s *Simulation) State() State {
	return s.flow.Current()
}

// Score returns the points scored this round.
func (s *Simulation) Score() int {
	return s.score
}

// GameOver reports whether the last round ended with lives exhausted. It
// stays set until a new round starts.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// ExitRequested reports whether the player asked to leave from the menu.
func (s *Simulation) ExitRequested() bool {
	return s.exit
}

// Vessel returns the vessel, or nil outside a round.
func (s *Simulation) Vessel() *Vessel {
	return s.vessel
}

// AsteroidCount returns the number of live asteroids.
func (s *Simulation) AsteroidCount() int {
	return s.asteroids.Len()
}

// Tick returns the number of steps taken.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Window returns the reference window extent.
func (s *Simulation) Window() mgl64.Vec2 {
	return s.window()
}
