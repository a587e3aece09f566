package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.FPSLimit)
	assert.Equal(t, float32(0.8), cfg.Ball.Velocity)
	assert.Equal(t, 11, cfg.Bricks.Columns)
	assert.Equal(t, 4, cfg.Bricks.Rows)
	assert.Equal(t, "reflect", cfg.Rules.BrickBounce)
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "game.toml", `
[window]
fps_limit = 30

[bricks]
rows = 2

[timing]
max_frame_time = "100ms"

[rules]
brick_bounce = "legacy"

[logging]
level = "debug"
file = "game.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Window.FPSLimit)
	assert.Equal(t, 800, cfg.Window.Width, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Bricks.Rows)
	assert.Equal(t, 11, cfg.Bricks.Columns)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.MaxFrameTime)
	assert.Equal(t, "legacy", cfg.Rules.BrickBounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "game.log", cfg.Logging.File)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
ball:
  velocity: 1.2
paddle:
  width: 80
audio:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(1.2), cfg.Ball.Velocity)
	assert.Equal(t, float32(80), cfg.Paddle.Width)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, float32(10), cfg.Ball.Radius)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "game.ini", "x=1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", "[window\nwidth = "))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARKANOID_LOG_LEVEL", "warn")
	t.Setenv("ARKANOID_BOUNCE_RULE", "script")
	t.Setenv("ARKANOID_BOUNCE_SCRIPT", "bounce.lua")
	t.Setenv("ARKANOID_MUTE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "script", cfg.Rules.BrickBounce)
	assert.Equal(t, "bounce.lua", cfg.Rules.Script)
	assert.False(t, cfg.Audio.Enabled)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative fps", func(c *Config) { c.Window.FPSLimit = -1 }},
		{"zero slice", func(c *Config) { c.Timing.FtSlice = 0 }},
		{"zero ball speed", func(c *Config) { c.Ball.Velocity = 0 }},
		{"zero paddle width", func(c *Config) { c.Paddle.Width = 0 }},
		{"negative rows", func(c *Config) { c.Bricks.Rows = -1 }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"unknown rule", func(c *Config) { c.Rules.BrickBounce = "wobble" }},
		{"script without path", func(c *Config) { c.Rules.BrickBounce = "script" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
