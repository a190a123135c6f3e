// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for the asteroids game.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Field      FieldConfig      `yaml:"field"`
	Vessel     VesselConfig     `yaml:"vessel"`
	Laser      LaserConfig      `yaml:"laser"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Wrap       WrapConfig       `yaml:"wrap"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the reference window. All world extents are
// multiples of it.
type WorldConfig struct {
	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
	CellSize     int     `yaml:"cell_size"` // Broad-phase cell size in world units
}

// FieldConfig defines how the asteroid field is generated and split.
type FieldConfig struct {
	Count                int     `yaml:"count"`
	KeepOut              float64 `yaml:"keep_out"`               // No asteroid closer than this to the origin
	SpawnExtent          float64 `yaml:"spawn_extent"`           // Placement range in windows (±)
	MaxSpeed             float64 `yaml:"max_speed"`              // Per-axis initial speed bound
	MaxAngularSpeed      float64 `yaml:"max_angular_speed"`      // Radians per second
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"` // Per asteroid
	SplitSpeedMin        float64 `yaml:"split_speed_min"`
	SplitSpeedRange      float64 `yaml:"split_speed_range"`
}

// VesselConfig defines the player's ship.
type VesselConfig struct {
	Lives          int     `yaml:"lives"`
	RotationStep   float64 `yaml:"rotation_step"` // Radians per tick
	StickDeadzone  float64 `yaml:"stick_deadzone"`
	ThrustImpulse  float64 `yaml:"thrust_impulse"`
	FireCooldown   float64 `yaml:"fire_cooldown"` // Seconds
	MuzzleOffset   float64 `yaml:"muzzle_offset"`
	ColliderRadius float64 `yaml:"collider_radius"`
}

// LaserConfig defines projectiles.
type LaserConfig struct {
	Speed  float64 `yaml:"speed"`
	TTL    float64 `yaml:"ttl"` // Seconds
	Width  float64 `yaml:"width"`
	Length float64 `yaml:"length"`
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"` // Seconds
}

// Wrap policies.
const (
	WrapReference   = "reference"
	WrapIndependent = "independent"
)

// WrapConfig selects how positions leave and re-enter the world.
type WrapConfig struct {
	Policy string `yaml:"policy"` // "reference" or "independent"
}

// ScoringConfig defines the points awarded per destroyed asteroid size.
type ScoringConfig struct {
	Tiny   int `yaml:"tiny"`
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Big    int `yaml:"big"`
}

// BackgroundConfig defines the starfield.
type BackgroundConfig struct {
	Stars int `yaml:"stars"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to asteroid speed at max difficulty
	CountIncrease   int     `yaml:"count_increase"`   // Extra asteroids at max difficulty
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid asteroids config")

// Validate rejects configurations the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.WindowWidth > 0 && c.World.WindowHeight > 0, "window size must be positive"},
		{c.World.CellSize > 0, "cell_size must be positive"},
		{c.Field.Count >= 0, "field count must not be negative"},
		{c.Field.SpawnExtent > 0, "spawn_extent must be positive"},
		{c.Field.MaxPlacementAttempts > 0, "max_placement_attempts must be positive"},
		{c.Vessel.Lives >= 0, "lives must not be negative"},
		{c.Vessel.FireCooldown > 0, "fire_cooldown must be positive"},
		{c.Laser.TTL > 0, "laser ttl must be positive"},
		{c.Explosion.Frames > 0, "explosion frames must be positive"},
		{c.Explosion.FrameDuration > 0, "explosion frame_duration must be positive"},
		{c.Wrap.Policy == WrapReference || c.Wrap.Policy == WrapIndependent, "unknown wrap policy"},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, ch.what)
		}
	}
	return nil
}

// PointsFor returns the score for destroying an asteroid of the given
// size index (0 = tiny .. 3 = big).
func (s ScoringConfig) PointsFor(size int) int {
	switch size {
	case 0:
		return s.Tiny
	case 1:
		return s.Small
	case 2:
		return s.Medium
	case 3:
		return s.Big
	default:
		return 0
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
