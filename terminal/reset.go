package terminal

import (
	"io"
	"os"
)

// Sequences that put a terminal back into cooked, visible-cursor, main-screen state
var resetSequences = [][]byte{
	[]byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l"), // mouse tracking off
	[]byte("\x1b[?25h"),   // cursor on
	[]byte("\x1b[?1049l"), // leave alternate screen
	[]byte("\x1b[0m"),     // attributes off
	[]byte("\x1b[?7h"),    // auto-wrap on
}

// EmergencyReset restores the terminal after a crash that skipped Screen.Close
// Best effort: write errors are ignored
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		_, _ = w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
}
