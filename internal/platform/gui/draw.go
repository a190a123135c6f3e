package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

var (
	background = color.RGBA{5, 5, 16, 255}
	palette    = map[core.Color]color.RGBA{
		core.ColorVessel:    {120, 230, 255, 255},
		core.ColorLaser:     {255, 70, 70, 255},
		core.ColorAsteroid:  {170, 110, 60, 255},
		core.ColorExplosion: {255, 160, 40, 255},
		core.ColorHUD:       {240, 240, 240, 255},
		core.ColorYellow:    {255, 230, 90, 255},
	}
)

// camera maps world coordinates (y up) to screen pixels (y down).
type camera struct {
	center mgl64.Vec2
	scale  float64 // World units per pixel
	w, h   float64
}

func (c camera) toScreen(p mgl64.Vec2) (float32, float32) {
	x := (p.X()-c.center.X())/c.scale + c.w/2
	y := -(p.Y()-c.center.Y())/c.scale + c.h/2
	return float32(x), float32(y)
}

// visible reports whether a circle of world radius r around p touches the
// screen.
func (c camera) visible(p mgl64.Vec2, r float64) bool {
	x, y := c.toScreen(p)
	pr := float32(r / c.scale)
	return x+pr >= 0 && x-pr <= float32(c.w) && y+pr >= 0 && y-pr <= float32(c.h)
}

// Draw renders the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	s := g.game.Sim()
	bounds := screen.Bounds()
	cam := camera{scale: g.zoom, w: float64(bounds.Dx()), h: float64(bounds.Dy())}
	if v := s.Vessel(); v != nil {
		cam.center = v.Position
	}

	drawStars(screen, cam, s)
	for _, p := range s.Poses() {
		if p.Visible && cam.visible(p.Position, p.Extent) {
			g.drawPose(screen, cam, p)
		}
	}
	g.drawHUD(screen, s)
	g.drawOverlay(screen, s)
}

func drawStars(screen *ebiten.Image, cam camera, s *sim.Simulation) {
	stars := s.Stars()
	if len(stars) == 0 {
		return
	}
	window := s.Window()
	tileR := math.Hypot(window.X(), window.Y())
	for _, tile := range sim.BackgroundTiles(window) {
		if !cam.visible(tile, tileR) {
			continue
		}
		for _, st := range stars {
			p := tile.Add(st.Offset)
			x, y := cam.toScreen(p)
			if x < 0 || y < 0 || x > float32(cam.w) || y > float32(cam.h) {
				continue
			}
			b := st.Brightness
			vector.DrawFilledRect(screen, x, y, 1.5, 1.5, color.RGBA{b, b, b, 255}, false)
		}
	}
}

func (g *Game) drawPose(screen *ebiten.Image, cam camera, p sim.Pose) {
	x, y := cam.toScreen(p.Position)
	r := float32(p.Extent / cam.scale)

	switch p.Kind {
	case sim.PoseAsteroid:
		vector.StrokeCircle(screen, x, y, r, 2, palette[core.ColorAsteroid], true)

	case sim.PoseLaser:
		h := sim.Heading(p.Rotation).Mul(p.Extent)
		x0, y0 := cam.toScreen(p.Position.Sub(h))
		x1, y1 := cam.toScreen(p.Position.Add(h))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, palette[core.ColorLaser], true)

	case sim.PoseVessel:
		drawVessel(screen, cam, p)

	case sim.PoseExplosion:
		frames := max(g.game.Config().Explosion.Frames, 1)
		progress := float32(p.Frame+1) / float32(frames)
		c := palette[core.ColorExplosion]
		c.A = uint8(255 * (1 - 0.8*progress))
		vector.StrokeCircle(screen, x, y, r*progress, 3, c, true)
		vector.DrawFilledCircle(screen, x, y, r*progress*0.4, c, true)
	}
}

// drawVessel draws the ship as a triangle pointing along its heading.
func drawVessel(screen *ebiten.Image, cam camera, p sim.Pose) {
	size := p.Extent
	rot := mgl64.Rotate2D(p.Rotation)
	local := [3]mgl64.Vec2{{0, size}, {-size * 0.6, -size * 0.7}, {size * 0.6, -size * 0.7}}

	var pts [3][2]float32
	for i, l := range local {
		pts[i][0], pts[i][1] = cam.toScreen(p.Position.Add(rot.Mul2x1(l)))
	}
	c := palette[core.ColorVessel]
	for i := range pts {
		a, b := pts[i], pts[(i+1)%3]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 2, c, true)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 18
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, s *sim.Simulation) {
	if s.State() == sim.StateMenu {
		return
	}
	hud := s.HUD()
	secs := int(hud.Elapsed)
	line := fmt.Sprintf("%s  Lives %d  Score %d  Wave %d  Rocks %d  %02d:%02d",
		hud.Player, hud.Lives, hud.Score, hud.Wave, hud.Asteroids, secs/60, secs%60)
	g.drawText(screen, line, 12, 10, palette[core.ColorHUD])
}

func (g *Game) drawOverlay(screen *ebiten.Image, s *sim.Simulation) {
	overlay := s.Overlay()
	if overlay == "" {
		return
	}
	if s.State() == sim.StateGameOver {
		overlay += fmt.Sprintf("\nScore: %d", s.Score())
	}

	bounds := screen.Bounds()
	lines := strings.Split(overlay, "\n")
	y := float64(bounds.Dy())/2 - float64(len(lines))*9
	for i, l := range lines {
		w, _ := text.Measure(l, g.face, 0)
		c := palette[core.ColorHUD]
		if i == 0 {
			c = palette[core.ColorYellow]
		}
		g.drawText(screen, l, (float64(bounds.Dx())-w)/2, y, c)
		y += 18
	}
}
