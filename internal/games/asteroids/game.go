// Package asteroids adapts the asteroids simulation to the arcade platform:
// it loads configuration, owns one sim.Simulation and draws it into a
// terminal screen buffer.
package asteroids

import (
	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "asteroids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation logs; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger handed to every new simulation.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game for asteroids.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	sim     *sim.Simulation
	zoom    float64 // Window widths visible across the screen
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{zoom: 1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset loads configuration and starts a fresh simulation in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.sim = sim.New(sim.Options{
		Config:     cfg,
		Seed:       runtime.Seed,
		PlayerName: runtime.PlayerName,
		TickRate:   runtime.TickRate,
		Logger:     logger,
	})
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	g.sim.Step(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	state := g.sim.State()
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: state == sim.StateGameOver,
		Paused:   state == sim.StatePaused,
		Exit:     g.sim.ExitRequested(),
	}
}

// Sim exposes the simulation to frontends that draw it themselves.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Zoom scales how much of the world the terminal view shows.
func (g *Game) Zoom(delta float64) {
	g.zoom = min(max(g.zoom+delta, 0.5), 4)
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
