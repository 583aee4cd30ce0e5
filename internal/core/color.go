package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Red and blue are the two player colors; the cyan pair
// distinguishes intact ice from broken ice.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorCyan
	ColorBrightCyan
	ColorYellow
	ColorGreen
	ColorWhite
	ColorGray
)
