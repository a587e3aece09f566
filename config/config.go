package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	jlconfig "github.com/JeremyLoy/config"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arkanoid/parameter"
)

type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Ball    BallConfig    `toml:"ball" yaml:"ball"`
	Paddle  PaddleConfig  `toml:"paddle" yaml:"paddle"`
	Bricks  BricksConfig  `toml:"bricks" yaml:"bricks"`
	Timing  TimingConfig  `toml:"timing" yaml:"timing"`
	Rules   RulesConfig   `toml:"rules" yaml:"rules"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Width    int    `toml:"width" yaml:"width"`
	Height   int    `toml:"height" yaml:"height"`
	Title    string `toml:"title" yaml:"title"`
	FPSLimit int    `toml:"fps_limit" yaml:"fps_limit"` // 0 = uncapped
}

type BallConfig struct {
	Radius   float32 `toml:"radius" yaml:"radius"`
	Velocity float32 `toml:"velocity" yaml:"velocity"`
}

type PaddleConfig struct {
	Width    float32 `toml:"width" yaml:"width"`
	Height   float32 `toml:"height" yaml:"height"`
	Velocity float32 `toml:"velocity" yaml:"velocity"`
	OffsetY  float32 `toml:"offset_y" yaml:"offset_y"` // paddle center above the bottom edge
}

type BricksConfig struct {
	Columns    int     `toml:"columns" yaml:"columns"`
	Rows       int     `toml:"rows" yaml:"rows"`
	Width      float32 `toml:"width" yaml:"width"`
	Height     float32 `toml:"height" yaml:"height"`
	Gap        float32 `toml:"gap" yaml:"gap"`
	OffsetX    float32 `toml:"offset_x" yaml:"offset_x"`
	OffsetRows int     `toml:"offset_rows" yaml:"offset_rows"`
}

type TimingConfig struct {
	FtStep       float32       `toml:"ft_step" yaml:"ft_step"`   // logic ms per fixed step
	FtSlice      float32       `toml:"ft_slice" yaml:"ft_slice"` // real ms per fixed step
	MaxFrameTime time.Duration `toml:"max_frame_time" yaml:"max_frame_time"`
	KeyHold      time.Duration `toml:"key_hold" yaml:"key_hold"`
}

type RulesConfig struct {
	BrickBounce string `toml:"brick_bounce" yaml:"brick_bounce"` // "reflect", "legacy" or "script"
	Script      string `toml:"script" yaml:"script"`             // Lua file for "script"
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty disables logging; the terminal owns stdout
}

// envOverrides are read from the process environment after the file
type envOverrides struct {
	LogLevel     string `config:"ARKANOID_LOG_LEVEL"`
	LogFormat    string `config:"ARKANOID_LOG_FORMAT"`
	LogFile      string `config:"ARKANOID_LOG_FILE"`
	BounceRule   string `config:"ARKANOID_BOUNCE_RULE"`
	BounceScript string `config:"ARKANOID_BOUNCE_SCRIPT"`
	Mute         bool   `config:"ARKANOID_MUTE"`
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path yields defaults plus environment
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return errors.Errorf("unsupported config format %q", ext)
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := jlconfig.FromEnv().To(&env); err != nil {
		return err
	}

	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.LogFile != "" {
		c.Logging.File = env.LogFile
	}
	if env.BounceRule != "" {
		c.Rules.BrickBounce = env.BounceRule
	}
	if env.BounceScript != "" {
		c.Rules.Script = env.BounceScript
	}
	if env.Mute {
		c.Audio.Enabled = false
	}
	return nil
}

// Validate rejects configurations the game loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.FPSLimit < 0:
		return errors.Errorf("fps_limit %d must not be negative", c.Window.FPSLimit)
	case c.Timing.FtStep <= 0 || c.Timing.FtSlice <= 0:
		return errors.Errorf("ft_step %v and ft_slice %v must be positive", c.Timing.FtStep, c.Timing.FtSlice)
	case c.Ball.Radius <= 0 || c.Ball.Velocity <= 0:
		return errors.New("ball radius and velocity must be positive")
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Velocity <= 0:
		return errors.New("paddle size and velocity must be positive")
	case c.Bricks.Columns < 0 || c.Bricks.Rows < 0:
		return errors.Errorf("brick grid %dx%d must not be negative", c.Bricks.Columns, c.Bricks.Rows)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}

	switch strings.ToLower(c.Rules.BrickBounce) {
	case "", "reflect", "legacy":
	case "script":
		if c.Rules.Script == "" {
			return errors.New("rules.script is required when brick_bounce is \"script\"")
		}
	default:
		return errors.Errorf("unknown brick_bounce rule %q", c.Rules.BrickBounce)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return errors.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// Defaults returns the stock game configuration
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    parameter.WindowWidth,
			Height:   parameter.WindowHeight,
			Title:    parameter.WindowTitle,
			FPSLimit: parameter.FrameRateLimit,
		},
		Ball: BallConfig{
			Radius:   parameter.BallRadius,
			Velocity: parameter.BallVelocity,
		},
		Paddle: PaddleConfig{
			Width:    parameter.PaddleWidth,
			Height:   parameter.PaddleHeight,
			Velocity: parameter.PaddleVelocity,
			OffsetY:  parameter.PaddleOffsetY,
		},
		Bricks: BricksConfig{
			Columns:    parameter.CountBlocksX,
			Rows:       parameter.CountBlocksY,
			Width:      parameter.BlockWidth,
			Height:     parameter.BlockHeight,
			Gap:        parameter.BlockGap,
			OffsetX:    parameter.BlockOffsetX,
			OffsetRows: parameter.BlockOffsetRows,
		},
		Timing: TimingConfig{
			FtStep:       parameter.FtStep,
			FtSlice:      parameter.FtSlice,
			MaxFrameTime: parameter.MaxFrameTime,
			KeyHold:      parameter.KeyHoldWindow,
		},
		Rules: RulesConfig{
			BrickBounce: "reflect",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
