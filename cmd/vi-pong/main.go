package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/systems"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file (built-in defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/vi-pong.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Int64("seed", 0, "Serve randomness seed (0 = time based)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewSource(*seedFlag))
	}

	ctx, err := engine.NewGameContext(cfg, engine.Options{Logger: logger, Rand: rng})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			ctx.Log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			_ = ctx.Log.Sync()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio is optional, the game runs silently without a device
	var player audio.Player
	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, ctx.Log)
		if err := sm.Initialize(); err != nil {
			ctx.Log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			sm.SetMuted(*muteFlag)
			player = sm
			sound = sm
		}
	}

	systems.Register(ctx, player)

	width, height := screen.Size()
	renderer := render.NewTerminalRenderer(screen, width, height)
	if sound != nil && sound.IsMuted() {
		renderer.SetStatus("muted")
	}

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ctx.Log.Info("session started", zap.Int64("seed", *seedFlag), zap.Bool("audio", player != nil))
	defer func() {
		view := ctx.Score.View()
		ctx.Log.Info("session stopped",
			zap.Int64("frames", ctx.Frame()),
			zap.Int("p1", view.Get(components.Player1)),
			zap.Int("p2", view.Get(components.Player2)),
			ctx.Metrics.Field(),
		)
	}()

	frameTicker := time.NewTicker(cfg.Loop.FrameInterval)
	defer frameTicker.Stop()
	last := time.Now()
	fps := ctx.Metrics.Gauges.Get(status.FPS)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()

			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					return nil
				}
				switch name := input.KeyName(ev); name {
				case cfg.Input.Quit:
					return nil
				case cfg.Input.Mute:
					if sound != nil {
						label := ""
						if sound.ToggleMute() {
							label = "muted"
						}
						renderer.SetStatus(label)
					}
				default:
					ctx.Keys.Press(name)
				}
			}

		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now
			if dt > 0 {
				fps.Set(float64(time.Second) / float64(dt))
			}
			if dt > constants.MaxFrameDelta {
				dt = constants.MaxFrameDelta
			}

			if err := ctx.Step(dt); err != nil {
				return fmt.Errorf("frame %d: %w", ctx.Frame(), err)
			}
			renderer.RenderFrame(ctx.Snapshot())
		}
	}
}

// loadConfig returns the defaults for an empty path
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}
