package parameter

// Terminal layout
const (
	// CellsPerBlockX is the number of terminal columns one block occupies (cells are ~2:1)
	CellsPerBlockX = 2

	// CellsPerBlockY is the number of terminal rows one block occupies
	CellsPerBlockY = 1

	// UIBarHeight is the number of rows below the playfield reserved for buttons and status
	UIBarHeight = 2

	// ButtonWidth is the width of each toggle button in cells
	ButtonWidth = 12

	// ButtonGap is the horizontal space between buttons
	ButtonGap = 1

	// HealthBarWidth is the number of cells used for a unit's health bar
	HealthBarWidth = 2
)
