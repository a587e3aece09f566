package parameter

// Ball
const (
	BallRadius = 10.0

	// BallVelocity is the per-axis speed in units per millisecond of logic time
	BallVelocity = 0.8
)

// Paddle
const (
	PaddleWidth  = 60.0
	PaddleHeight = 20.0

	// PaddleVelocity is the horizontal speed in units per millisecond of logic time
	PaddleVelocity = 0.6

	// PaddleOffsetY is the distance between the paddle center and the bottom edge
	PaddleOffsetY = 50.0
)

// Bricks
const (
	BlockWidth  = 60.0
	BlockHeight = 20.0

	CountBlocksX = 11
	CountBlocksY = 4

	// BlockGap separates neighbouring bricks on both axes
	BlockGap = 3.0

	// BlockOffsetX shifts the whole wall right; BlockOffsetRows pushes it down by whole rows
	BlockOffsetX    = 22.0
	BlockOffsetRows = 2
)

// Audio
const (
	AudioVolume = 0.5
)
