package core

// Color tags a screen cell or visual effect with a foreground color.
// The platform layer maps these to ANSI colors; the simulation only
// attaches them to effect events.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
