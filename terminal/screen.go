package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/arkanoid/render"
	"github.com/lixenwraith/arkanoid/vmath"
)

// Screen implements render.Backend on a tcell screen
// The logical play area is scaled onto whatever cell grid the terminal provides
type Screen struct {
	screen tcell.Screen
	log    *zap.Logger
	now    func() time.Time
	sleep  func(time.Duration)

	afterInit func()

	width, height float32
	cols, rows    int
	title         string

	fpsLimit    int
	lastDisplay time.Time

	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
	opened    bool

	// held maps a key to its last press; terminals never report releases
	held map[render.Key]time.Time
	hold time.Duration
}

var _ render.Backend = (*Screen)(nil)

// Option configures a Screen
type Option func(*Screen)

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Screen) {
		if log != nil {
			s.log = log
		}
	}
}

// WithKeyHold sets how long a key press keeps the key reported as held
func WithKeyHold(d time.Duration) Option {
	return func(s *Screen) {
		s.hold = d
	}
}

// WithClock replaces the wall clock and sleeper, for tests
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(s *Screen) {
		s.now = now
		s.sleep = sleep
	}
}

// New creates a Screen on the controlling terminal
func New(opts ...Option) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return newScreen(ts, opts...), nil
}

// NewSimulation creates a Screen on a tcell simulation screen of cols x rows cells
func NewSimulation(cols, rows int, opts ...Option) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("")
	s := newScreen(sim, opts...)
	s.afterInit = func() { sim.SetSize(cols, rows) }
	return s, sim
}

func newScreen(ts tcell.Screen, opts ...Option) *Screen {
	s := &Screen{
		screen: ts,
		log:    zap.NewNop(),
		now:    time.Now,
		sleep:  time.Sleep,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		held:   make(map[render.Key]time.Time),
		hold:   120 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes the terminal and starts the event pump
func (s *Screen) Open(width, height int, title string) error {
	if s.opened {
		return errors.New("screen already open")
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid play area %dx%d", width, height)
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	if s.afterInit != nil {
		s.afterInit()
	}

	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()

	s.width, s.height = float32(width), float32(height)
	s.cols, s.rows = s.screen.Size()
	s.title = title
	s.lastDisplay = s.now()
	s.opened = true

	go s.pump()

	s.log.Debug("terminal opened",
		zap.Int("cols", s.cols),
		zap.Int("rows", s.rows),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

// pump forwards tcell events until the screen is finalized
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

func (s *Screen) SetFrameRateLimit(n int) {
	if n < 0 {
		n = 0
	}
	s.fpsLimit = n
}

// PollEvent returns the next translated event without blocking
func (s *Screen) PollEvent() (render.Event, bool) {
	for {
		select {
		case ev := <-s.events:
			if out, ok := s.translate(ev); ok {
				return out, true
			}
		default:
			return render.Event{}, false
		}
	}
}

func (s *Screen) translate(ev tcell.Event) (render.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(ev) {
			return render.Event{Type: render.EventClosed}, true
		}
		key := translateKey(ev)
		if key == render.KeyUnknown {
			return render.Event{}, false
		}
		s.held[key] = s.now()
		return render.Event{Type: render.EventKeyPressed, Key: key}, true

	case *tcell.EventResize:
		s.screen.Sync()
		s.cols, s.rows = s.screen.Size()
		return render.Event{Type: render.EventResized}, true
	}
	return render.Event{}, false
}

// IsKeyPressed reports a key as held while its last press is within the hold window
func (s *Screen) IsKeyPressed(k render.Key) bool {
	at, ok := s.held[k]
	return ok && s.now().Sub(at) <= s.hold
}

func (s *Screen) Clear(c render.RGB) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

// Draw fills every cell whose center lies inside d
// Shapes smaller than a cell still light the cell under their center
func (s *Screen) Draw(d render.Drawable) {
	if s.cols == 0 || s.rows == 0 {
		return
	}
	cellW := s.width / float32(s.cols)
	cellH := s.height / float32(s.rows)
	style := tcell.StyleDefault.Background(toColor(d.Fill()))

	min, max := d.Bounds()
	x0, y0 := s.cellAt(min, cellW, cellH)
	x1, y1 := s.cellAt(max, cellW, cellH)

	filled := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			center := vmath.V((float32(cx)+0.5)*cellW, (float32(cy)+0.5)*cellH)
			if d.Contains(center) {
				s.screen.SetContent(cx, cy, ' ', nil, style)
				filled = true
			}
		}
	}

	if !filled {
		mid := min.Add(max).Scale(0.5)
		cx, cy := s.cellAt(mid, cellW, cellH)
		s.screen.SetContent(cx, cy, ' ', nil, style)
	}
}

// cellAt maps a play-area point to the clamped cell containing it
func (s *Screen) cellAt(p vmath.Vec2, cellW, cellH float32) (int, int) {
	cx := clamp(int(p.X/cellW), 0, s.cols-1)
	cy := clamp(int(p.Y/cellH), 0, s.rows-1)
	return cx, cy
}

// Display draws the title line, shows the frame and waits out the frame budget
func (s *Screen) Display() {
	titleStyle := tcell.StyleDefault.Foreground(toColor(render.RGBWhite)).Background(toColor(titleBackground))
	col := 0
	for _, r := range s.title {
		if col >= s.cols {
			break
		}
		s.screen.SetContent(col, 0, r, nil, titleStyle)
		col++
	}

	s.screen.Show()

	if s.fpsLimit > 0 {
		budget := time.Second / time.Duration(s.fpsLimit)
		if spent := s.now().Sub(s.lastDisplay); spent < budget {
			s.sleep(budget - spent)
		}
	}
	s.lastDisplay = s.now()
}

func (s *Screen) SetTitle(title string) {
	s.title = title
}

// Close finalizes the terminal; safe from any point of the frame and on repeat calls
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		if s.opened {
			s.screen.Fini()
		}
	})
}

// Size returns the current cell grid
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

// titleBackground tints the title row so it reads apart from the play area
var titleBackground = render.RGBBlack.Blend(render.RGBCyan, 0.3)

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
