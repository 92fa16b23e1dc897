// Package app runs the main loop: it owns the window, drives the host event
// target and frame scheduler, and mounts the demo component.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hello-cubes/internal/config"
	"github.com/Faultbox/hello-cubes/internal/demo"
	"github.com/Faultbox/hello-cubes/internal/engine/host"
	"github.com/Faultbox/hello-cubes/internal/engine/input"
	"github.com/Faultbox/hello-cubes/internal/engine/renderer"
	"github.com/Faultbox/hello-cubes/internal/engine/scene"
	"github.com/Faultbox/hello-cubes/internal/engine/window"
	"github.com/Faultbox/hello-cubes/internal/logger"
)

// App is one running program instance.
type App struct {
	cfg     *config.Config
	watcher *config.Watcher

	window *window.Window
	input  *input.Input
	events *host.EventTarget
	frames *host.FrameScheduler
	cubes  *demo.HelloCubes

	running bool
}

// New opens the window and mounts the scene. configPath, if set, is watched
// for logging changes when the config enables it.
func New(cfg *config.Config, configPath string) (*App, error) {
	a := &App{
		cfg:    cfg,
		input:  input.New(),
		events: host.NewEventTarget(),
		frames: host.NewFrameScheduler(),
		cubes:  demo.New(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := a.cubes.Mount(a.env()); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("mounting scene: %w", err)
	}

	if cfg.Logging.Watch && configPath != "" {
		a.watcher, err = config.NewWatcher(configPath)
		if err != nil {
			// Hot reload is a convenience; run without it.
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	return a, nil
}

// env wires the component to this app's host objects and a GL renderer.
func (a *App) env() demo.Env {
	rcfg := renderer.Config{
		Ambient:    scene.ColorHex(a.cfg.Render.Ambient),
		PixelRatio: a.cfg.Render.PixelRatio,
	}
	return demo.Env{
		Canvas:     a.window,
		Background: scene.ColorHex(a.cfg.Render.ClearColor),
		Events:     a.events,
		Frames:     a.frames,
		NewRenderer: func(c host.Canvas) (demo.Renderer, error) {
			r, err := renderer.New(c, rcfg)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// Run loops until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	fpsTimer := start
	frames := 0

	logger.Info("starting main loop")

	for a.running {
		if a.input.Update() || a.input.KeyPressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
			break
		}
		now := time.Now()
		a.step(a.input.Resized(), float64(now.Sub(start).Microseconds())/1000)
		a.window.SwapBuffers()

		frames++
		if since := now.Sub(fpsTimer); since >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frames),
				zap.Duration("avg_frame", since/time.Duration(frames)),
			)
			frames = 0
			fpsTimer = now
		}
	}

	return nil
}

// step runs one frame's worth of host work: resize listeners, config
// reloads, then animation-frame callbacks. It returns how many callbacks ran.
func (a *App) step(resized bool, timeMs float64) int {
	if resized {
		a.events.Dispatch(host.EventResize)
	}
	a.applyConfigChanges()
	return a.frames.Tick(timeMs)
}

// applyConfigChanges picks up a reloaded config without blocking.
func (a *App) applyConfigChanges() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Changes():
		a.applyConfig(cfg)
	default:
	}
}

// applyConfig adopts the parts of cfg that can change while running.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg.Logging.Level != a.cfg.Logging.Level {
		logger.SetLevel(cfg.Logging.Level)
		logger.Info("log level changed", zap.String("level", cfg.Logging.Level))
	}
	a.cfg.Logging = cfg.Logging
}

// Close unmounts the scene and closes the window.
func (a *App) Close() {
	logger.Info("closing app")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	a.cubes.Unmount()
	if a.window != nil {
		a.window.Close()
	}
}
