package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Minimum terminal size for a playable view.
const (
	minScreenW = 40
	minScreenH = 12
)

var asteroidGlyphs = map[string]rune{
	sim.Tiny.Sprite():   '.',
	sim.Small.Sprite():  'o',
	sim.Medium.Sprite(): 'O',
	sim.Big.Sprite():    '@',
}

// Vessel glyphs by heading octant, counter-clockwise from up.
var vesselGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Laser glyphs by orientation quadrant, counter-clockwise from vertical.
var laserGlyphs = [4]rune{'|', '\\', '-', '/'}

var explosionGlyphs = []rune("*✶✷✸✹✺❋+·")

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.sim == nil {
		return
	}

	vp := g.viewport(dst)
	g.renderStars(dst, vp)
	g.renderPoses(dst, vp)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport follows the vessel during a round and rests on the origin
// otherwise.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	window := g.sim.Window()
	vp := core.NewViewport(dst.Width(), dst.Height(), window.X()*g.zoom)
	center := g.cameraCenter()
	vp.CenterX, vp.CenterY = center.X(), center.Y()
	return vp
}

func (g *Game) renderStars(dst *core.Screen, vp core.Viewport) {
	stars := g.sim.Stars()
	if len(stars) == 0 {
		return
	}
	window := g.sim.Window()
	halfW := float64(vp.W) / 2 * vp.UnitsPerCol
	halfH := float64(vp.H) / 2 * vp.UnitsPerCol * vp.CellAspect

	for _, tile := range sim.BackgroundTiles(window) {
		// A tile spans one window on each side of its centre
		if math.Abs(tile.X()-vp.CenterX) > halfW+window.X() ||
			math.Abs(tile.Y()-vp.CenterY) > halfH+window.Y() {
			continue
		}
		for _, s := range stars {
			col, row, ok := vp.Project(tile.X()+s.Offset.X(), tile.Y()+s.Offset.Y())
			if !ok {
				continue
			}
			glyph := '.'
			if s.Brightness >= 200 {
				glyph = '+'
			}
			dst.SetColored(col, row, glyph, core.ColorStar)
		}
	}
}

func (g *Game) renderPoses(dst *core.Screen, vp core.Viewport) {
	frames := max(g.cfg.Explosion.Frames, 1)

	for _, p := range g.sim.Poses() {
		if !p.Visible {
			continue
		}
		col, row, ok := vp.Project(p.Position.X(), p.Position.Y())
		radius := p.Extent / vp.UnitsPerCol

		switch p.Kind {
		case sim.PoseAsteroid:
			glyph := asteroidGlyphs[p.Sprite]
			if radius >= 1 {
				// Discs can reach into view from an off-screen centre
				dst.DrawDisc(col, row, radius, vp.CellAspect, glyph, core.ColorAsteroid)
			} else if ok {
				dst.SetColored(col, row, glyph, core.ColorAsteroid)
			}
		case sim.PoseLaser:
			if ok {
				dst.SetColored(col, row, laserGlyph(p.Rotation), core.ColorLaser)
			}
		case sim.PoseVessel:
			if ok {
				dst.SetColored(col, row, vesselGlyph(p.Rotation), core.ColorVessel)
			}
		case sim.PoseExplosion:
			glyph := explosionGlyphs[core.Clamp(p.Frame, 0, len(explosionGlyphs)-1)]
			r := radius * float64(p.Frame+1) / float64(frames)
			if r >= 1 {
				dst.DrawDisc(col, row, r, vp.CellAspect, glyph, core.ColorExplosion)
			} else if ok {
				dst.SetColored(col, row, glyph, core.ColorExplosion)
			}
		}
	}
}

// octant maps a rotation onto one of n equal sectors, sector 0 centred on
// rotation zero.
func octant(rotation float64, n int) int {
	step := 2 * math.Pi / float64(n)
	i := int(math.Round(rotation/step)) % n
	if i < 0 {
		i += n
	}
	return i
}

func vesselGlyph(rotation float64) rune {
	return vesselGlyphs[octant(rotation, 8)]
}

// laserGlyph draws a line, so opposite headings share a glyph.
func laserGlyph(rotation float64) rune {
	return laserGlyphs[octant(rotation, 8)%4]
}

// renderHUD draws the pilot, lives, score and wave line.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.sim.State() == sim.StateMenu {
		return
	}
	hud := g.sim.HUD()

	left := fmt.Sprintf("%s  %s", hud.Player, strings.Repeat("♥", max(hud.Lives, 0)))
	dst.DrawTextColored(1, 0, left, core.ColorHUD)

	dst.DrawTextCenteredColored(0, fmt.Sprintf("Score: %d", hud.Score), core.ColorHUD)

	secs := int(hud.Elapsed)
	right := fmt.Sprintf("Wave %d  Rocks %d  %02d:%02d", hud.Wave, hud.Asteroids, secs/60, secs%60)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorHUD)
}

// renderOverlay draws the menu, pause or game over box.
func (g *Game) renderOverlay(dst *core.Screen) {
	text := g.sim.Overlay()
	if text == "" {
		return
	}
	title, subtitle, _ := strings.Cut(text, "\n")
	if g.sim.State() == sim.StateGameOver {
		subtitle = fmt.Sprintf("Score: %d  |  %s", g.sim.Score(), subtitle)
	}
	drawCenteredBox(dst, title, subtitle)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW, subtitleW := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}

// cameraCenter is the world point the terminal view is centred on.
func (g *Game) cameraCenter() mgl64.Vec2 {
	if v := g.sim.Vessel(); v != nil {
		return v.Position
	}
	return mgl64.Vec2{}
}
