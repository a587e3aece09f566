package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/arkanoid/render"
	"github.com/lixenwraith/arkanoid/vmath"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func openSim(t *testing.T, opts ...Option) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	s, sim := NewSimulation(80, 24, opts...)
	require.NoError(t, s.Open(800, 600, "test"))
	t.Cleanup(s.Close)
	return s, sim
}

// waitEvent returns the next non-resize event; the simulation posts resizes on init
func waitEvent(t *testing.T, s *Screen) render.Event {
	t.Helper()
	var got render.Event
	require.Eventually(t, func() bool {
		for {
			ev, ok := s.PollEvent()
			if !ok {
				return false
			}
			if ev.Type != render.EventResized {
				got = ev
				return true
			}
		}
	}, time.Second, time.Millisecond)
	return got
}

func bgAt(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestOpenRejectsBadArea(t *testing.T) {
	s, _ := NewSimulation(80, 24)
	assert.Error(t, s.Open(0, 600, "x"))
}

func TestOpenTwiceFails(t *testing.T) {
	s, _ := openSim(t)
	assert.Error(t, s.Open(800, 600, "again"))
}

func TestSizeFollowsSimulation(t *testing.T) {
	s, _ := openSim(t)
	cols, rows := s.Size()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 24, rows)
}

func TestKeyEventsTranslated(t *testing.T) {
	s, sim := openSim(t)

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	assert.Equal(t, render.Event{Type: render.EventKeyPressed, Key: render.KeyLeft}, waitEvent(t, s))

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.Equal(t, render.KeyQuit, waitEvent(t, s).Key)

	sim.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	assert.Equal(t, render.KeyRestart, waitEvent(t, s).Key)

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	assert.Equal(t, render.EventClosed, waitEvent(t, s).Type)
}

func TestPollEventOnlyResizeWithoutInput(t *testing.T) {
	s, _ := openSim(t)

	for i := 0; i < 10; i++ {
		ev, ok := s.PollEvent()
		if !ok {
			break
		}
		assert.Equal(t, render.EventResized, ev.Type)
	}
}

func TestKeyHeldWithinHoldWindow(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	s, sim := openSim(t, WithClock(clk.now, clk.sleep), WithKeyHold(100*time.Millisecond))

	assert.False(t, s.IsKeyPressed(render.KeyRight))

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	waitEvent(t, s)
	assert.True(t, s.IsKeyPressed(render.KeyRight))

	clk.t = clk.t.Add(100 * time.Millisecond)
	assert.True(t, s.IsKeyPressed(render.KeyRight))

	clk.t = clk.t.Add(time.Millisecond)
	assert.False(t, s.IsKeyPressed(render.KeyRight))
}

func TestDrawScalesToCells(t *testing.T) {
	s, sim := openSim(t)
	s.Clear(render.RGBBlack)

	// 800x600 over 80x24: cells are 10 x 25 units
	s.Draw(render.Rect{Center: vmath.V(405, 312.5), HalfSize: vmath.V(30, 12.5), Color: render.RGBRed})
	s.Display()

	red := toColor(render.RGBRed)
	for x := 38; x <= 42; x++ {
		assert.Equal(t, red, bgAt(sim, x, 12), "cell %d,12", x)
	}
	assert.NotEqual(t, red, bgAt(sim, 36, 12))
	assert.NotEqual(t, red, bgAt(sim, 40, 13))
}

func TestDrawTinyShapeLightsCenterCell(t *testing.T) {
	s, sim := openSim(t)
	s.Clear(render.RGBBlack)

	s.Draw(render.Circle{Center: vmath.V(101, 101), Radius: 1, Color: render.RGBYellow})
	s.Display()

	assert.Equal(t, toColor(render.RGBYellow), bgAt(sim, 10, 4))
}

func TestDisplayHonoursFrameLimit(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	s, _ := openSim(t, WithClock(clk.now, clk.sleep))
	s.SetFrameRateLimit(50)

	clk.t = clk.t.Add(5 * time.Millisecond)
	s.Display()
	require.Len(t, clk.slept, 1)
	assert.Equal(t, 15*time.Millisecond, clk.slept[0])

	clk.t = clk.t.Add(30 * time.Millisecond)
	s.Display()
	assert.Len(t, clk.slept, 1, "late frame does not sleep")
}

func TestTitleDrawnOnTopRow(t *testing.T) {
	s, sim := openSim(t)
	s.SetTitle("FPS 60")
	s.Display()

	r, _, _, _ := sim.GetContent(0, 0)
	assert.Equal(t, 'F', r)
	assert.Equal(t, toColor(titleBackground), bgAt(sim, 0, 0))
}

func TestCloseIdempotent(t *testing.T) {
	s, _ := NewSimulation(10, 10)
	require.NoError(t, s.Open(100, 100, ""))
	s.Close()
	s.Close()
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	assert.Contains(t, buf.String(), "\x1b[?25h")
	assert.Contains(t, buf.String(), "\x1b[?1049l")
}
