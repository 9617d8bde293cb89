package parameter

// Playfield dimensions in pixels
// Unit positions are always multiples of BlockSize
const (
	// FieldWidth is the playfield width; X wraps modulo this value
	FieldWidth = 800.0

	// FieldHeight is the playfield height; Y wraps modulo this value
	FieldHeight = 600.0

	// BlockSize is the grid quantum and the side of the overlap box
	BlockSize = 20.0
)

// UnitBodyLength is the number of body segments a unit spawns with (no growth)
const UnitBodyLength = 1
