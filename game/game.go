package game

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/arkanoid/audio"
	"github.com/lixenwraith/arkanoid/config"
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/render"
	"github.com/lixenwraith/arkanoid/rules"
	"github.com/lixenwraith/arkanoid/status"
)

// Sounder plays game sound cues
type Sounder interface {
	Play(cue audio.Cue)
}

type nopSounder struct{}

func (nopSounder) Play(audio.Cue) {}

// Game owns the entity manager and drives the frame loop against a render backend
//
// Each frame runs input, then zero or more fixed logic steps bought by the previous
// frame's elapsed time, then one draw. A fixed step refreshes the manager first, so
// entities destroyed in the previous step are gone before physics and collisions run.
type Game struct {
	cfg     *config.Config
	backend render.Backend
	clock   Clock
	log     *zap.Logger
	sound   Sounder
	stats   *status.Registry

	manager  *engine.Manager
	resolver *rules.Resolver
	rule     rules.BounceRule

	running bool
	paused  bool
	cleared bool

	// Milliseconds
	lastFt       float32
	currentSlice float32

	closeOnce sync.Once

	statTicks  *atomic.Int64
	statFrames *atomic.Int64
	statBricks *atomic.Int64
	statPurged *atomic.Int64
	statFt     *status.AtomicFloat
	statFps    *status.AtomicFloat
}

// Option configures a Game
type Option func(*Game)

func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

func WithClock(c Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

func WithSound(s Sounder) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

func WithStatus(r *status.Registry) Option {
	return func(g *Game) {
		if r != nil {
			g.stats = r
		}
	}
}

// WithBounceRule overrides the brick bounce rule named in the config
func WithBounceRule(r rules.BounceRule) Option {
	return func(g *Game) {
		g.rule = r
	}
}

// New builds the game world; the backend is opened by Run
func New(cfg *config.Config, backend render.Backend, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &Game{
		cfg:     cfg,
		backend: backend,
		clock:   SystemClock{},
		log:     zap.NewNop(),
		sound:   nopSounder{},
		stats:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rule == nil {
		rule, err := rules.New(cfg.Rules.BrickBounce, cfg.Rules.Script, g.log)
		if err != nil {
			return nil, errors.Wrap(err, "brick bounce rule")
		}
		g.rule = rule
	}

	g.manager = engine.NewManager(engine.WithLogger(g.log))
	g.resolver = &rules.Resolver{
		Speed: cfg.Ball.Velocity,
		Rule:  g.rule,
		OnPaddleHit: func() {
			g.sound.Play(audio.CuePaddle)
		},
		OnBrickHit: func(brick *engine.Entity) {
			g.log.Debug("brick destroyed", zap.Uint64("entity", brick.ID()))
			g.sound.Play(audio.CueBrick)
		},
	}

	g.statTicks = g.stats.Ints.Get("engine.ticks")
	g.statFrames = g.stats.Ints.Get("engine.frames")
	g.statPurged = g.stats.Ints.Get("engine.purged")
	g.statBricks = g.stats.Ints.Get("game.bricks")
	g.statFt = g.stats.Floats.Get("frame.ft_ms")
	g.statFps = g.stats.Floats.Get("frame.fps")

	g.populate()
	g.statBricks.Store(int64(len(g.manager.GetEntitiesByGroup(GroupBrick))))

	return g, nil
}

// Run opens the backend and loops until the window closes or ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	w := g.cfg.Window
	if err := g.backend.Open(w.Width, w.Height, w.Title); err != nil {
		return errors.Wrap(err, "create window")
	}
	defer g.Close()

	g.backend.SetFrameRateLimit(w.FPSLimit)
	g.running = true

	g.log.Info("game started",
		zap.Int("bricks", int(g.statBricks.Load())),
		zap.String("bounce_rule", g.cfg.Rules.BrickBounce),
	)

	for g.running {
		select {
		case <-ctx.Done():
			g.log.Info("game cancelled", zap.Error(ctx.Err()))
			g.running = false
			continue
		default:
		}
		g.frame()
	}

	g.log.Info("game closed",
		zap.Int64("frames", g.statFrames.Load()),
		zap.Int64("ticks", g.statTicks.Load()),
	)
	return nil
}

// Close releases the backend and the bounce rule; safe to call more than once
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.running = false
		g.backend.Close()
		if c, ok := g.rule.(io.Closer); ok {
			if err := c.Close(); err != nil {
				g.log.Warn("close bounce rule", zap.Error(err))
			}
		}
	})
}

// frame runs one input/update/draw cycle and measures it for the next frame's update
func (g *Game) frame() {
	start := g.clock.Now()

	g.inputPhase()
	g.updatePhase()
	g.drawPhase()

	elapsed := g.clock.Now().Sub(start)
	if limit := g.cfg.Timing.MaxFrameTime; limit > 0 && elapsed > limit {
		elapsed = limit
	}
	g.lastFt = float32(elapsed) / float32(time.Millisecond)

	g.statFrames.Add(1)
	g.statFt.Set(float64(g.lastFt))
	if g.lastFt > 0 {
		g.statFps.Set(1000 / float64(g.lastFt))
	}
}

func (g *Game) inputPhase() {
	for {
		ev, ok := g.backend.PollEvent()
		if !ok {
			break
		}
		switch ev.Type {
		case render.EventClosed:
			g.running = false
		case render.EventKeyPressed:
			switch ev.Key {
			case render.KeyEscape, render.KeyQuit:
				g.running = false
			case render.KeyPause:
				g.paused = !g.paused
				g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
			case render.KeyRestart:
				g.restart()
			}
		}
	}

	if g.backend.IsKeyPressed(render.KeyEscape) {
		g.running = false
	}
}

// updatePhase spends the last frame time on fixed steps; leftover time carries over
func (g *Game) updatePhase() {
	if g.paused {
		return
	}

	ftSlice := g.cfg.Timing.FtSlice
	g.currentSlice += g.lastFt
	for ; g.currentSlice >= ftSlice; g.currentSlice -= ftSlice {
		g.step()
	}
}

// step advances the world by one fixed step
func (g *Game) step() {
	before := g.manager.Len()
	g.manager.Refresh()
	if purged := before - g.manager.Len(); purged > 0 {
		g.statPurged.Add(int64(purged))
	}

	g.manager.Update(g.cfg.Timing.FtStep)
	g.resolveCollisions()
	g.statTicks.Add(1)
}

// resolveCollisions runs the game rules over the group indices
// Indices may still hold bricks destroyed earlier in this step; those are skipped
func (g *Game) resolveCollisions() {
	balls := g.manager.GetEntitiesByGroup(GroupBall)

	for _, paddle := range g.manager.GetEntitiesByGroup(GroupPaddle) {
		for _, ball := range balls {
			g.resolver.ResolvePaddleBall(paddle, ball)
		}
	}

	alive := 0
	for _, brick := range g.manager.GetEntitiesByGroup(GroupBrick) {
		for _, ball := range balls {
			if !brick.IsAlive() {
				break
			}
			g.resolver.ResolveBrickBall(brick, ball)
		}
		if brick.IsAlive() {
			alive++
		}
	}
	g.statBricks.Store(int64(alive))

	if alive == 0 && !g.cleared && g.cfg.Bricks.Columns*g.cfg.Bricks.Rows > 0 {
		g.cleared = true
		g.log.Info("wall cleared", zap.Int64("ticks", g.statTicks.Load()))
	}
}

// restart discards every entity and rebuilds the level
func (g *Game) restart() {
	g.manager.Clear()
	g.populate()
	g.cleared = false
	g.currentSlice = 0
	g.statBricks.Store(int64(len(g.manager.GetEntitiesByGroup(GroupBrick))))
	g.log.Info("level restarted")
}

func (g *Game) drawPhase() {
	g.backend.Clear(render.RGBBlack)
	g.manager.Draw()
	g.backend.SetTitle(g.title())
	g.backend.Display()
}

func (g *Game) title() string {
	fps := 0.0
	if g.lastFt > 0 {
		fps = 1000 / float64(g.lastFt)
	}
	t := fmt.Sprintf("%s  FT: %.2f ms  FPS: %.0f  Bricks: %d", g.cfg.Window.Title, g.lastFt, fps, g.statBricks.Load())
	if g.paused {
		t += "  [paused]"
	}
	return t
}

// Manager exposes the entity manager
func (g *Game) Manager() *engine.Manager {
	return g.manager
}

// Status exposes the metrics registry
func (g *Game) Status() *status.Registry {
	return g.stats
}

// Paused reports whether fixed steps are suspended
func (g *Game) Paused() bool {
	return g.paused
}
