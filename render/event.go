package render

// Key is a backend-neutral key code
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyEscape
	KeyPause
	KeyQuit
	KeyRestart
)

// EventType enumerates the events a backend reports
type EventType int

const (
	EventNone EventType = iota
	EventClosed
	EventKeyPressed
	EventResized
)

// Event is a polled backend event; Key is set for EventKeyPressed
type Event struct {
	Type EventType
	Key  Key
}
