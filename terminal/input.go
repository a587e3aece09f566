package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arkanoid/render"
)

// translateKey maps a tcell key event to a game key
// Arrow keys and vi-style h/l steer; p pauses, r restarts, q and Escape quit
func translateKey(ev *tcell.EventKey) render.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return render.KeyLeft
	case tcell.KeyRight:
		return render.KeyRight
	case tcell.KeyEscape:
		return render.KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return render.KeyLeft
		case 'l', 'd':
			return render.KeyRight
		case 'p', 'P':
			return render.KeyPause
		case 'q', 'Q':
			return render.KeyQuit
		case 'r', 'R':
			return render.KeyRestart
		}
	}
	return render.KeyUnknown
}

// isInterrupt matches Ctrl+C in both its control-key and rune+modifier forms
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C') && ev.Modifiers()&tcell.ModCtrl != 0
}
