// Package physics is a small 2D rigid-body world for top-down arcade games.
// Bodies are dynamic with zero gravity, carry one circle or box collider, and
// are integrated with explicit Euler steps. Overlapping pairs are reported as
// collision start/stop events; non-sensor pairs also exchange an elastic
// impulse. The world never creates or destroys bodies on its own.
//
// Broad phase uses a resolv spatial hash. The hash is toroidal with a fixed
// period so bodies may roam anywhere; narrow phase always uses true positions.
package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BodyID identifies a body in a World. Zero is never issued.
type BodyID uint32

// BodyDef describes a body to create.
type BodyDef struct {
	Position        mgl64.Vec2
	Rotation        float64
	Velocity        mgl64.Vec2
	AngularVelocity float64
	Shape           Shape
	Density         float64 // Mass per unit area; 0 means 1
	Sensor          bool    // Reports collisions without a contact response
	UserData        any
}

// Body is the simulation state of one rigid body.
type Body struct {
	ID              BodyID
	Position        mgl64.Vec2
	Rotation        float64
	Velocity        mgl64.Vec2
	AngularVelocity float64
	Shape           Shape
	Mass            float64
	Sensor          bool
	Enabled         bool
	UserData        any

	impulse mgl64.Vec2
	obj     *resolv.Object
}

// EventKind distinguishes collision start from collision stop.
type EventKind int

const (
	CollisionStarted EventKind = iota
	CollisionStopped
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	if k == CollisionStarted {
		return "started"
	}
	return "stopped"
}

// CollisionEvent reports a change in contact between two bodies.
// A is always the lower id; consumers must not rely on which entity
// kind ends up in A or B.
type CollisionEvent struct {
	Kind EventKind
	A, B BodyID
}

// Config controls the broad phase.
type Config struct {
	CellSize float64 // Spatial hash cell size
	PeriodX  float64 // Hash period along x
	PeriodY  float64 // Hash period along y
}

// DefaultConfig returns a config sized for a 1280x720 window tiled 16 times.
func DefaultConfig() Config {
	return Config{
		CellSize: 128,
		PeriodX:  1280 * 16,
		PeriodY:  720 * 16,
	}
}

type pair struct {
	a, b BodyID
}

func makePair(x, y BodyID) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// World owns every body and the contact set between steps.
type World struct {
	cfg      Config
	space    *resolv.Space
	bodies   map[BodyID]*Body
	order    []BodyID // ascending, for deterministic iteration
	nextID   BodyID
	contacts map[pair]struct{}
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg = DefaultConfig()
	}
	cell := int(cfg.CellSize)
	return &World{
		cfg:      cfg,
		space:    resolv.NewSpace(int(cfg.PeriodX), int(cfg.PeriodY), cell, cell),
		bodies:   make(map[BodyID]*Body),
		contacts: make(map[pair]struct{}),
	}
}

// CreateBody adds a dynamic body and returns its id.
func (w *World) CreateBody(def BodyDef) BodyID {
	w.nextID++
	id := w.nextID

	density := def.Density
	if density <= 0 {
		density = 1
	}

	extent := def.Shape.BoundingRadius() * 2
	b := &Body{
		ID:              id,
		Position:        def.Position,
		Rotation:        def.Rotation,
		Velocity:        def.Velocity,
		AngularVelocity: def.AngularVelocity,
		Shape:           def.Shape,
		Mass:            math.Max(def.Shape.Area()*density, 1e-6),
		Sensor:          def.Sensor,
		Enabled:         true,
		UserData:        def.UserData,
		obj:             resolv.NewObject(0, 0, extent, extent),
	}
	b.obj.Data = id
	w.placeObject(b)
	w.space.Add(b.obj)

	w.bodies[id] = b
	w.order = append(w.order, id)
	return id
}

// RemoveBody deletes a body. Contacts involving it are dropped silently.
func (w *World) RemoveBody(id BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.Remove(b.obj)
	delete(w.bodies, id)

	i := sort.Search(len(w.order), func(i int) bool { return w.order[i] >= id })
	if i < len(w.order) && w.order[i] == id {
		w.order = append(w.order[:i], w.order[i+1:]...)
	}
	w.dropContacts(id)
}

// Body returns the body for id.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// SetEnabled turns a body's collider on or off. A disabled body still moves
// but takes no part in collisions.
func (w *World) SetEnabled(id BodyID, enabled bool) {
	b, ok := w.bodies[id]
	if !ok || b.Enabled == enabled {
		return
	}
	b.Enabled = enabled
	if !enabled {
		w.dropContacts(id)
	}
}

// ApplyImpulse queues an instantaneous impulse applied on the next Step.
func (w *World) ApplyImpulse(id BodyID, impulse mgl64.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.impulse = b.impulse.Add(impulse)
	}
}

// SetPosition teleports a body.
func (w *World) SetPosition(id BodyID, pos mgl64.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.Position = pos
		w.placeObject(b)
	}
}

// SetRotation sets a body's rotation in radians.
func (w *World) SetRotation(id BodyID, rot float64) {
	if b, ok := w.bodies[id]; ok {
		b.Rotation = rot
	}
}

// SetVelocity sets linear and angular velocity and discards pending impulses.
func (w *World) SetVelocity(id BodyID, linear mgl64.Vec2, angular float64) {
	if b, ok := w.bodies[id]; ok {
		b.Velocity = linear
		b.AngularVelocity = angular
		b.impulse = mgl64.Vec2{}
	}
}

// Step integrates all bodies by dt seconds and returns collision events in
// a deterministic order: started events then stopped events, each sorted
// by body ids.
func (w *World) Step(dt float64) []CollisionEvent {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.impulse != (mgl64.Vec2{}) {
			b.Velocity = b.Velocity.Add(b.impulse.Mul(1 / b.Mass))
			b.impulse = mgl64.Vec2{}
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.Rotation += b.AngularVelocity * dt
		w.placeObject(b)
	}

	current := w.detect()

	var started, stopped []CollisionEvent
	for p := range current {
		if _, ok := w.contacts[p]; !ok {
			started = append(started, CollisionEvent{Kind: CollisionStarted, A: p.a, B: p.b})
		}
	}
	for p := range w.contacts {
		if _, ok := current[p]; !ok {
			stopped = append(stopped, CollisionEvent{Kind: CollisionStopped, A: p.a, B: p.b})
		}
	}
	w.contacts = current

	sortEvents(started)
	sortEvents(stopped)
	return append(started, stopped...)
}

// detect runs broad and narrow phase and applies contact responses.
func (w *World) detect() map[pair]struct{} {
	current := make(map[pair]struct{})

	for _, id := range w.order {
		b := w.bodies[id]
		if !b.Enabled {
			continue
		}
		col := b.obj.Check(0, 0)
		if col == nil {
			continue
		}

		candidates := make([]BodyID, 0, len(col.Objects))
		for _, o := range col.Objects {
			if other, ok := o.Data.(BodyID); ok && other > id {
				candidates = append(candidates, other)
			}
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

		for i, otherID := range candidates {
			if i > 0 && candidates[i-1] == otherID {
				continue
			}
			other := w.bodies[otherID]
			if other == nil || !other.Enabled {
				continue
			}
			if !overlaps(b.Shape, b.Position, b.Rotation, other.Shape, other.Position, other.Rotation) {
				continue
			}
			current[makePair(id, otherID)] = struct{}{}
			if !b.Sensor && !other.Sensor {
				bounce(b, other)
			}
		}
	}
	return current
}

// bounce exchanges an elastic impulse along the line between centres and
// pushes the bodies apart by their overlap.
func bounce(a, b *Body) {
	delta := b.Position.Sub(a.Position)
	dist := delta.Len()
	if dist == 0 {
		return
	}
	n := delta.Mul(1 / dist)

	rel := a.Velocity.Sub(b.Velocity).Dot(n)
	if rel > 0 {
		j := 2 * rel / (a.Mass + b.Mass)
		a.Velocity = a.Velocity.Sub(n.Mul(j * b.Mass))
		b.Velocity = b.Velocity.Add(n.Mul(j * a.Mass))
	}

	overlap := a.Shape.BoundingRadius() + b.Shape.BoundingRadius() - dist
	if overlap > 0 {
		total := a.Mass + b.Mass
		a.Position = a.Position.Sub(n.Mul(overlap * b.Mass / total))
		b.Position = b.Position.Add(n.Mul(overlap * a.Mass / total))
	}
}

// placeObject moves the broad-phase object to the body's hashed position.
func (w *World) placeObject(b *Body) {
	half := b.obj.W / 2
	b.obj.X = wrapPeriod(b.Position.X()-half+w.cfg.PeriodX/2, w.cfg.PeriodX)
	b.obj.Y = wrapPeriod(b.Position.Y()-half+w.cfg.PeriodY/2, w.cfg.PeriodY)
	b.obj.Update()
}

func (w *World) dropContacts(id BodyID) {
	for p := range w.contacts {
		if p.a == id || p.b == id {
			delete(w.contacts, p)
		}
	}
}

func wrapPeriod(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}

func sortEvents(evs []CollisionEvent) {
	sort.Slice(evs, func(i, j int) bool {
		if evs[i].A != evs[j].A {
			return evs[i].A < evs[j].A
		}
		return evs[i].B < evs[j].B
	})
}
