// Package gui runs the asteroids simulation in a desktop window with
// ebiten. It reads real key and gamepad state and draws vector shapes.
package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Camera scale limits and the per-tick change while Z or X is held.
const (
	zoomStep = 0.1
	minZoom  = 0.1
	maxZoom  = 16
)

// Game adapts an asteroids game to ebiten.Game.
type Game struct {
	game       *asteroids.Game
	store      *storage.Store
	config     core.RuntimeConfig
	input      inputSource
	face       text.Face
	zoom       float64 // World units per pixel
	scoreSaved bool
}

// New creates the ebiten adapter. Reset must have been called on game.
func New(game *asteroids.Game, store *storage.Store, cfg core.RuntimeConfig) *Game {
	return &Game{
		game:   game,
		store:  store,
		config: cfg,
		input:  &ebitenInput{},
		face:   text.NewGoXFace(basicfont.Face7x13),
		zoom:   1,
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	g.zoom = min(max(g.zoom+zoomInput(g.input), minZoom), maxZoom)

	result := g.game.Step(readInput(g.input))
	state := result.State

	if state.GameOver {
		if !g.scoreSaved {
			g.saveScore(state.Score)
			g.scoreSaved = true
		}
	} else {
		g.scoreSaved = false
	}

	if state.Exit {
		return ebiten.Termination
	}
	return nil
}

// saveScore records the final score. Saving is best effort.
func (g *Game) saveScore(score int) {
	if g.store == nil || score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.game.ID(), g.config.PlayerName, score); err != nil {
		log.Warn("could not save score", "game", g.game.ID(), "error", err)
	}
}

// Layout keeps the logical screen at the window size in world units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	window := g.game.Sim().Window()
	return int(window.X()), int(window.Y())
}

// Run opens the window and blocks until the game exits or the window
// closes.
func Run(game *asteroids.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)

	window := game.Sim().Window()
	ebiten.SetWindowSize(int(window.X()), int(window.Y()))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(New(game, store, cfg))
}
