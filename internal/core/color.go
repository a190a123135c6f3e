package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the asteroids renderers. Terminal frontends map these to
// ANSI codes; the GUI maps them to RGBA.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// Palette roles.
const (
	ColorVessel    = ColorBrightCyan
	ColorLaser     = ColorBrightRed
	ColorAsteroid  = ColorBrown
	ColorExplosion = ColorOrange
	ColorStar      = ColorGray
	ColorHUD       = ColorBrightWhite
)
