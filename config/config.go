package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
)

// Sentinel errors for startup validation
var (
	ErrInvalidArena   = errors.New("invalid arena geometry")
	ErrInvalidSpeed   = errors.New("invalid speed")
	ErrInvalidBinding = errors.New("invalid key binding")
	ErrInvalidTiming  = errors.New("invalid timing")
	ErrInvalidAudio   = errors.New("invalid audio setting")
)

// Config is fixed at startup and never reloaded
type Config struct {
	Arena  ArenaConfig  `toml:"arena"`
	Motion MotionConfig `toml:"motion"`
	Input  InputConfig  `toml:"input"`
	Loop   LoopConfig   `toml:"loop"`
	Audio  AudioConfig  `toml:"audio"`
}

// ArenaConfig holds playfield bounds and entity sizes in world units
type ArenaConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleOffset float64 `toml:"paddle_offset"` // side edge to paddle center
	BallRadius   float64 `toml:"ball_radius"`
	WallHalf     float64 `toml:"wall_half"` // half thickness of top/bottom walls
}

type MotionConfig struct {
	PaddleSpeed float64 `toml:"paddle_speed"` // units/second
	BallSpeed   float64 `toml:"ball_speed"`   // units/second
	ServeAngle  float64 `toml:"serve_angle"`  // max random vertical angle in degrees, 0 = flat serve
}

type InputConfig struct {
	Player1Up   string        `toml:"player1_up"`
	Player1Down string        `toml:"player1_down"`
	Player2Up   string        `toml:"player2_up"`
	Player2Down string        `toml:"player2_down"`
	Serve       string        `toml:"serve"`
	Quit        string        `toml:"quit"`
	Mute        string        `toml:"mute"`
	KeyHold     time.Duration `toml:"key_hold"`
}

type LoopConfig struct {
	FrameInterval time.Duration `toml:"frame_interval"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns a 1280x720 arena with terminal-friendly speeds
func Defaults() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:        constants.DefaultArenaWidth,
			Height:       constants.DefaultArenaHeight,
			PaddleWidth:  constants.DefaultPaddleWidth,
			PaddleHeight: constants.DefaultPaddleHeight,
			PaddleOffset: constants.DefaultPaddleOffset,
			BallRadius:   constants.DefaultBallRadius,
			WallHalf:     constants.DefaultWallHalf,
		},
		Motion: MotionConfig{
			PaddleSpeed: constants.DefaultPaddleSpeed,
			BallSpeed:   constants.DefaultBallSpeed,
			ServeAngle:  constants.DefaultServeAngle,
		},
		Input: InputConfig{
			Player1Up:   constants.DefaultPlayer1Up,
			Player1Down: constants.DefaultPlayer1Down,
			Player2Up:   constants.DefaultPlayer2Up,
			Player2Down: constants.DefaultPlayer2Down,
			Serve:       constants.DefaultServeKey,
			Quit:        constants.DefaultQuitKey,
			Mute:        constants.DefaultMuteKey,
			KeyHold:     constants.DefaultKeyHold,
		},
		Loop: LoopConfig{
			FrameInterval: constants.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
		},
	}
}

// Validate rejects configurations that admit no valid paddle/ball layout
func (c *Config) Validate() error {
	if err := c.Arena.validate(); err != nil {
		return err
	}
	if c.Motion.PaddleSpeed <= 0 {
		return fmt.Errorf("%w: paddle speed %.2f must be positive", ErrInvalidSpeed, c.Motion.PaddleSpeed)
	}
	if c.Motion.BallSpeed <= 0 {
		return fmt.Errorf("%w: ball speed %.2f must be positive", ErrInvalidSpeed, c.Motion.BallSpeed)
	}
	if c.Motion.ServeAngle < 0 || c.Motion.ServeAngle >= 80 {
		return fmt.Errorf("%w: serve angle %.1f outside [0, 80)", ErrInvalidSpeed, c.Motion.ServeAngle)
	}
	if err := c.Input.validate(); err != nil {
		return err
	}
	if c.Input.KeyHold <= 0 {
		return fmt.Errorf("%w: key hold %v must be positive", ErrInvalidTiming, c.Input.KeyHold)
	}
	if c.Loop.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval %v must be positive", ErrInvalidTiming, c.Loop.FrameInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0, 1]", ErrInvalidAudio, c.Audio.Volume)
	}
	return nil
}

func (a *ArenaConfig) validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"width", a.Width},
		{"height", a.Height},
		{"paddle width", a.PaddleWidth},
		{"paddle height", a.PaddleHeight},
		{"paddle offset", a.PaddleOffset},
		{"ball radius", a.BallRadius},
		{"wall half thickness", a.WallHalf},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s %.2f must be positive", ErrInvalidArena, d.name, d.value)
		}
	}

	if a.PaddleHeight >= a.Height {
		return fmt.Errorf("%w: paddle height %.1f does not fit arena height %.1f", ErrInvalidArena, a.PaddleHeight, a.Height)
	}
	if 2*a.BallRadius >= a.Height {
		return fmt.Errorf("%w: ball diameter %.1f does not fit arena height %.1f", ErrInvalidArena, 2*a.BallRadius, a.Height)
	}
	if a.PaddleOffset < a.PaddleWidth/2 {
		return fmt.Errorf("%w: paddle offset %.1f places paddle outside the arena", ErrInvalidArena, a.PaddleOffset)
	}
	// Both paddles plus two ball diameters of clearance between them
	if gap := a.InnerGap(); gap <= 4*a.BallRadius {
		return fmt.Errorf("%w: gap %.1f between paddles leaves no room for ball diameter %.1f", ErrInvalidArena, gap, 2*a.BallRadius)
	}
	return nil
}

func (in *InputConfig) validate() error {
	keys := []struct {
		name  string
		value string
	}{
		{"player1_up", in.Player1Up},
		{"player1_down", in.Player1Down},
		{"player2_up", in.Player2Up},
		{"player2_down", in.Player2Down},
		{"serve", in.Serve},
		{"quit", in.Quit},
		{"mute", in.Mute},
	}

	seen := make(map[string]string, len(keys))
	for _, k := range keys {
		if k.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidBinding, k.name)
		}
		if prev, dup := seen[k.value]; dup {
			return fmt.Errorf("%w: %q bound to both %s and %s", ErrInvalidBinding, k.value, prev, k.name)
		}
		seen[k.value] = k.name
	}
	return nil
}

// HalfWidth returns half the arena width, the x of the side edges
func (a ArenaConfig) HalfWidth() float64 { return a.Width / 2 }

// HalfHeight returns half the arena height, the y of the top/bottom edges
func (a ArenaConfig) HalfHeight() float64 { return a.Height / 2 }

// PaddleTravel returns the largest |y| a paddle center may reach with its full extent inside the arena
func (a ArenaConfig) PaddleTravel() float64 {
	return a.HalfHeight() - a.PaddleHeight/2
}

// PaddleX returns the fixed x of a player's paddle center; Player1 defends the left side
func (a ArenaConfig) PaddleX(p components.Player) float64 {
	x := a.HalfWidth() - a.PaddleOffset
	if p == components.Player1 {
		return -x
	}
	return x
}

// InnerGap returns the horizontal distance between the paddles' facing edges
func (a ArenaConfig) InnerGap() float64 {
	return a.Width - 2*a.PaddleOffset - a.PaddleWidth
}

// Bindings returns the paddle key binding of a player
func (in InputConfig) Bindings(p components.Player) components.KeyBinding {
	if p == components.Player1 {
		return components.KeyBinding{Up: in.Player1Up, Down: in.Player1Down}
	}
	return components.KeyBinding{Up: in.Player2Up, Down: in.Player2Down}
}
