package render

// Canvas accepts drawables for the current frame
type Canvas interface {
	Draw(d Drawable)
}

// KeyState answers whether a key is currently held
type KeyState interface {
	IsKeyPressed(k Key) bool
}

// Backend is the windowing, input and presentation boundary the game loop drives
type Backend interface {
	Canvas
	KeyState

	// Open creates the window with a logical play area of width x height units
	Open(width, height int, title string) error
	// SetFrameRateLimit caps Display to n frames per second, 0 disables the cap
	SetFrameRateLimit(n int)
	// PollEvent returns the next pending event without blocking
	PollEvent() (Event, bool)
	Clear(c RGB)
	// Display presents the frame, waiting out the remainder of the frame budget
	Display()
	SetTitle(title string)
	// Close releases the window; safe to call more than once
	Close()
}
