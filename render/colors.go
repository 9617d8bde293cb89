package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)    // Black field
	RgbUIBar      = tcell.NewRGBColor(40, 40, 40) // Dark gray bar behind buttons

	RgbFriendlyMelee  = tcell.NewRGBColor(0, 255, 0) // Green
	RgbFriendlyRanged = tcell.NewRGBColor(0, 200, 0) // Darker green
	RgbEnemyMelee     = tcell.NewRGBColor(255, 0, 0) // Red
	RgbEnemyRanged    = tcell.NewRGBColor(200, 0, 0) // Darker red

	RgbSelected   = tcell.NewRGBColor(255, 255, 0) // Yellow selection highlight
	RgbHealthFull = tcell.NewRGBColor(0, 255, 0)
	RgbHealthLost = tcell.NewRGBColor(255, 0, 0)

	RgbButtonActive   = tcell.NewRGBColor(0, 0, 255)     // Blue
	RgbButtonInactive = tcell.NewRGBColor(255, 255, 255) // White
	RgbButtonYellow   = tcell.NewRGBColor(255, 255, 0)
	RgbButtonText     = tcell.NewRGBColor(0, 0, 0)
	RgbStatusText     = tcell.NewRGBColor(200, 200, 200)
)

// Glyphs
const (
	GlyphMelee      = '█'
	GlyphRanged     = '▓'
	GlyphProjectile = '•'
	GlyphHealth     = '▀'
)
