package parameter

import "time"

// Window
const (
	// WindowWidth is the logical play-area width in units
	WindowWidth = 800

	// WindowHeight is the logical play-area height in units
	WindowHeight = 600

	WindowTitle = "Arkanoid"

	// FrameRateLimit caps presented frames per second
	FrameRateLimit = 60
)

// Game Loop Timing
const (
	// FtStep is the logic time advanced by one fixed step, in milliseconds
	FtStep = 1.0

	// FtSlice is the accumulated real time, in milliseconds, that buys one fixed step
	FtSlice = 1.0

	// MaxFrameTime clamps a single frame's elapsed time so a stalled frame cannot
	// queue an unbounded burst of fixed steps
	MaxFrameTime = 250 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held
	// Terminals report no key release, so auto-repeat keeps the key down
	KeyHoldWindow = 120 * time.Millisecond
)
