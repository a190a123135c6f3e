package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	def := DefaultAsteroidsConfig()

	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if math.Abs(cfg.Vessel.RotationStep-def.Vessel.RotationStep) > 1e-12 {
		t.Errorf("RotationStep = %v, expected %v", cfg.Vessel.RotationStep, def.Vessel.RotationStep)
	}
	if cfg.Laser != def.Laser || cfg.Explosion != def.Explosion || cfg.Scoring != def.Scoring {
		t.Error("embedded laser/explosion/scoring differ from hard-coded defaults")
	}
	if cfg.Wrap.Policy != WrapReference {
		t.Errorf("Wrap.Policy = %q, expected %q", cfg.Wrap.Policy, WrapReference)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	data := []byte("field:\n  count: 7\nwrap:\n  policy: independent\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() error = %v", err)
	}
	if cfg.Field.Count != 7 {
		t.Errorf("Field.Count = %d, expected 7", cfg.Field.Count)
	}
	if cfg.Wrap.Policy != WrapIndependent {
		t.Errorf("Wrap.Policy = %q, expected independent", cfg.Wrap.Policy)
	}
	// Untouched keys keep their defaults
	if cfg.Vessel.Lives != 3 {
		t.Errorf("Vessel.Lives = %d, expected 3", cfg.Vessel.Lives)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAsteroids(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("wrap:\n  policy: spiral\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAsteroids(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, expected ErrInvalidConfig", err)
	}
	if cfg.Wrap.Policy != WrapReference {
		t.Error("Invalid config should fall back to defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
		valid  bool
	}{
		{"defaults", func(*AsteroidsConfig) {}, true},
		{"zero window", func(c *AsteroidsConfig) { c.World.WindowWidth = 0 }, false},
		{"negative count", func(c *AsteroidsConfig) { c.Field.Count = -1 }, false},
		{"no attempts", func(c *AsteroidsConfig) { c.Field.MaxPlacementAttempts = 0 }, false},
		{"zero ttl", func(c *AsteroidsConfig) { c.Laser.TTL = 0 }, false},
		{"zero frames", func(c *AsteroidsConfig) { c.Explosion.Frames = 0 }, false},
		{"empty field", func(c *AsteroidsConfig) { c.Field.Count = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Vessel.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Vessel.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestPointsFor(t *testing.T) {
	s := DefaultAsteroidsConfig().Scoring
	expected := []int{150, 100, 50, 20}
	for size, pts := range expected {
		if got := s.PointsFor(size); got != pts {
			t.Errorf("PointsFor(%d) = %d, expected %d", size, got, pts)
		}
	}
	if s.PointsFor(9) != 0 {
		t.Error("Unknown size should score 0")
	}
}
