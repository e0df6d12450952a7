package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the lander. Xtarda is a green-phosphor game, so most
// entries are shades of green.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorDarkGreen
	ColorDimGreen
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
)
