package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			WindowWidth:  1280,
			WindowHeight: 720,
			CellSize:     128,
		},
		Field: FieldConfig{
			Count:                200,
			KeepOut:              100,
			SpawnExtent:          3,
			MaxSpeed:             100,
			MaxAngularSpeed:      5,
			MaxPlacementAttempts: 1000,
			SplitSpeedMin:        150,
			SplitSpeedRange:      100,
		},
		Vessel: VesselConfig{
			Lives:          3,
			RotationStep:   math.Pi / 24,
			StickDeadzone:  0.6,
			ThrustImpulse:  10000,
			FireCooldown:   0.2,
			MuzzleOffset:   22,
			ColliderRadius: 14,
		},
		Laser: LaserConfig{
			Speed:  1000,
			TTL:    0.5,
			Width:  4,
			Length: 16,
		},
		Explosion: ExplosionConfig{
			Frames:        9,
			FrameDuration: 0.1,
		},
		Wrap: WrapConfig{
			Policy: WrapReference,
		},
		Scoring: ScoringConfig{
			Tiny:   150,
			Small:  100,
			Medium: 50,
			Big:    20,
		},
		Background: BackgroundConfig{
			Stars: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				CountIncrease:   60,
			},
		},
	}
}
