package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the worms renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorGrass     // surface band
	ColorDarkGrass // shaded band under the grass
	ColorSoil      // default earth
	ColorDeepSoil  // lower strata
	ColorRock      // perlin-shaded patches
)
