package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/arena"
)

// Snapshot contains the observable simulation state for replay checks.
// Uses primitive types only; positions are fixed-point (1/1000 unit).
type Snapshot struct {
	Tick       uint64
	State      int
	Score      int
	Wave       int
	Lives      int
	Visible    bool
	RoundTicks int

	// Vessel: X, Y, VX, VY, Rotation
	VesselData []int64

	// Each asteroid is 5 ints: X, Y, VX, VY, Size
	AsteroidCount int
	AsteroidData  []int64

	// Each laser is 2 ints: X, Y
	LaserCount int
	LaserData  []int64

	// Each explosion is 4 ints: Kind, X, Y, Frame
	ExplosionCount int
	ExplosionData  []int64
}

func fixed(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		State:          int(s.flow.Current()),
		Score:          s.score,
		Wave:           s.wave,
		RoundTicks:     s.roundTicks,
		AsteroidCount:  s.asteroids.Len(),
		LaserCount:     s.lasers.Len(),
		ExplosionCount: s.explosions.Len(),
	}

	if v := s.vessel; v != nil {
		snap.Lives = v.Lives
		snap.Visible = v.Visible
		snap.VesselData = []int64{
			fixed(v.Position.X()), fixed(v.Position.Y()),
			fixed(v.Velocity.X()), fixed(v.Velocity.Y()),
			fixed(v.Rotation),
		}
	}

	s.asteroids.Each(func(_ arena.Handle, a *Asteroid) bool {
		snap.AsteroidData = append(snap.AsteroidData,
			fixed(a.Position.X()), fixed(a.Position.Y()),
			fixed(a.Velocity.X()), fixed(a.Velocity.Y()),
			int64(a.Size))
		return true
	})
	s.lasers.Each(func(_ arena.Handle, l *Laser) bool {
		snap.LaserData = append(snap.LaserData, fixed(l.Position.X()), fixed(l.Position.Y()))
		return true
	})
	s.explosions.Each(func(_ arena.Handle, e *Explosion) bool {
		snap.ExplosionData = append(snap.ExplosionData,
			int64(e.Kind), fixed(e.Position.X()), fixed(e.Position.Y()), int64(e.Frame))
		return true
	})
	return snap
}

// Hash returns a hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundTicks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaserCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionCount) //#nosec G115 -- hash computation
	if snap.Visible {
		h = h*31 + 1
	}

	for _, v := range snap.VesselData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.LaserData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ExplosionData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
