package core

// Color is a foreground color for a screen cell, mapped by the platform
// layer to ANSI colors.
type Color uint8

// Predefined colors for game elements.
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
)

// brickPalette maps the engine's ten brick color indices to screen colors.
var brickPalette = [10]Color{
	ColorBrightRed,
	ColorYellow,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightMagenta,
	ColorGreen,
	ColorBrightYellow,
}

// BrickColor returns the screen color for a brick color index.
// Indices wrap modulo the palette size.
func BrickColor(index int) Color {
	if index < 0 {
		index = -index
	}
	return brickPalette[index%len(brickPalette)]
}
