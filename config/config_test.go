package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/components"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Arena.Width = 0 }, ErrInvalidArena},
		{"negative ball radius", func(c *Config) { c.Arena.BallRadius = -1 }, ErrInvalidArena},
		{"paddle taller than arena", func(c *Config) { c.Arena.PaddleHeight = c.Arena.Height }, ErrInvalidArena},
		{"ball taller than arena", func(c *Config) { c.Arena.BallRadius = c.Arena.Height / 2 }, ErrInvalidArena},
		{"paddle outside arena", func(c *Config) { c.Arena.PaddleOffset = c.Arena.PaddleWidth / 4 }, ErrInvalidArena},
		{"no room between paddles", func(c *Config) { c.Arena.Width = 150 }, ErrInvalidArena},
		{"zero paddle speed", func(c *Config) { c.Motion.PaddleSpeed = 0 }, ErrInvalidSpeed},
		{"negative ball speed", func(c *Config) { c.Motion.BallSpeed = -10 }, ErrInvalidSpeed},
		{"steep serve angle", func(c *Config) { c.Motion.ServeAngle = 85 }, ErrInvalidSpeed},
		{"empty binding", func(c *Config) { c.Input.Player1Up = "" }, ErrInvalidBinding},
		{"shared binding", func(c *Config) { c.Input.Player2Up = c.Input.Player1Up }, ErrInvalidBinding},
		{"serve shares paddle key", func(c *Config) { c.Input.Serve = c.Input.Player2Down }, ErrInvalidBinding},
		{"zero key hold", func(c *Config) { c.Input.KeyHold = 0 }, ErrInvalidTiming},
		{"zero frame interval", func(c *Config) { c.Loop.FrameInterval = 0 }, ErrInvalidTiming},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, ErrInvalidAudio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vi-pong.toml")
	content := `
[arena]
width = 800.0
height = 400.0
paddle_height = 100.0

[motion]
ball_speed = 250.0

[input]
player2_up = "i"
player2_down = "k"
key_hold = "200ms"

[loop]
frame_interval = "20ms"

[audio]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if cfg.Arena.Width != 800 || cfg.Arena.Height != 400 || cfg.Arena.PaddleHeight != 100 {
		t.Errorf("Arena overrides not applied: %+v", cfg.Arena)
	}
	if cfg.Arena.PaddleWidth != Defaults().Arena.PaddleWidth {
		t.Errorf("Expected paddle width to keep default, got %v", cfg.Arena.PaddleWidth)
	}
	if cfg.Motion.BallSpeed != 250 {
		t.Errorf("Expected ball speed 250, got %v", cfg.Motion.BallSpeed)
	}
	if cfg.Input.KeyHold != 200*time.Millisecond {
		t.Errorf("Expected key hold 200ms, got %v", cfg.Input.KeyHold)
	}
	if cfg.Loop.FrameInterval != 20*time.Millisecond {
		t.Errorf("Expected frame interval 20ms, got %v", cfg.Loop.FrameInterval)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}

	b := cfg.Input.Bindings(components.Player2)
	if b.Up != "i" || b.Down != "k" {
		t.Errorf("Expected Player2 bindings i/k, got %+v", b)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}

	badSyntax := filepath.Join(dir, "bad.toml")
	os.WriteFile(badSyntax, []byte("[arena\nwidth = "), 0644)
	if _, err := Load(badSyntax); err == nil {
		t.Error("Expected parse error")
	}

	tooSmall := filepath.Join(dir, "small.toml")
	os.WriteFile(tooSmall, []byte("[arena]\nheight = 100.0\n"), 0644)
	_, err := Load(tooSmall)
	if !errors.Is(err, ErrInvalidArena) {
		t.Errorf("Expected ErrInvalidArena, got %v", err)
	}
}

func TestArenaGeometry(t *testing.T) {
	a := Defaults().Arena

	if got := a.PaddleTravel(); got != 360-75 {
		t.Errorf("Expected paddle travel 285, got %v", got)
	}
	if got := a.PaddleX(components.Player1); got != -620 {
		t.Errorf("Expected Player1 paddle x -620, got %v", got)
	}
	if got := a.PaddleX(components.Player2); got != 620 {
		t.Errorf("Expected Player2 paddle x 620, got %v", got)
	}
	if got := a.InnerGap(); got != 1230 {
		t.Errorf("Expected inner gap 1230, got %v", got)
	}
}
