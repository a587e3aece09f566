package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/arkanoid/audio"
	"github.com/lixenwraith/arkanoid/config"
	"github.com/lixenwraith/arkanoid/game"
	"github.com/lixenwraith/arkanoid/status"
	"github.com/lixenwraith/arkanoid/terminal"
)

const (
	logDir      = "logs"
	logFileName = "arkanoid.log"
)

type options struct {
	configPath string
	debug      bool
	mute       bool
	cpuProfile string
}

func main() {
	// The terminal is in raw mode while the game runs; restore it before printing a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mARKANOID CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "arkanoid",
		Short:         "Brick breaker in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to "+filepath.Join(logDir, logFileName))
	flags.BoolVar(&opts.mute, "mute", false, "disable sound")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "write a CPU profile into `dir`")

	return cmd
}

func run(ctx context.Context, opts options) error {
	if opts.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.cpuProfile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
		if cfg.Logging.File == "" {
			cfg.Logging.File = filepath.Join(logDir, logFileName)
		}
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer func() { _ = log.Sync() }()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := status.NewRegistry()
	gameOpts := []game.Option{game.WithLogger(log), game.WithStatus(stats)}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume, log.Named("audio"))
		if err := player.Start(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer player.Close()
			gameOpts = append(gameOpts, game.WithSound(player))
		}
	}

	screen, err := terminal.New(
		terminal.WithLogger(log.Named("terminal")),
		terminal.WithKeyHold(cfg.Timing.KeyHold),
	)
	if err != nil {
		return errors.Wrap(err, "create terminal")
	}

	g, err := game.New(cfg, screen, gameOpts...)
	if err != nil {
		screen.Close()
		return err
	}

	if err := g.Run(ctx); err != nil {
		return err
	}

	log.Info("final metrics", zap.String("status", stats.String()))
	return nil
}

// newLogger builds the process logger. The terminal owns stdout, so logs only go to a file;
// with no file configured logging is disabled.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create log directory %s", dir)
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
