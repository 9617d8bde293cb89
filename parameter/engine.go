package parameter

// Game Loop Timing
const (
	// FrameRate is the number of frames (and simulation ticks) per second
	FrameRate = 60

	// TickSpeed is the global speed reference; a unit moves every TickSpeed/Speed ticks
	TickSpeed = 15.0
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
