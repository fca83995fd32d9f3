// Package app runs the interactive viewer: it owns the SDL window and drives
// a viewer.Session once per tick.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/internal/viewer"
)

// App is the running viewer.
type App struct {
	cfg      *config.Config
	name     string
	running  bool
	window   *window.Window
	session  *viewer.Session
	shots    *debug.ScreenshotCapture
	log      *zap.Logger
	lastFPS  int
	frameCap time.Duration
}

// New opens the window for mesh m loaded from path.
func New(cfg *config.Config, m *model.Mesh, path string) (*App, error) {
	a := &App{
		cfg:   cfg,
		name:  filepath.Base(path),
		shots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		log:   logger.Named("app"),
	}
	if cfg.Window.FPSLimit > 0 {
		a.frameCap = time.Second / time.Duration(cfg.Window.FPSLimit)
	}

	opts, err := viewer.OptionsFromConfig(cfg, len(m.Faces()))
	if err != nil {
		return nil, fmt.Errorf("viewer options: %w", err)
	}

	a.session, err = viewer.New(m, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      a.title(0),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Resizable:  cfg.Window.Resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// fullscreen and high-DPI windows may not get the requested size
	if w, h := a.window.GetSize(); w != cfg.Window.Width || h != cfg.Window.Height {
		a.session.Push(input.Resize(w, h))
	}

	return a, nil
}

// Run starts the main loop and returns when the user quits.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	a.log.Info("starting render loop", zap.Duration("frame_cap", a.frameCap))

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		window.Poll(a.session.Events())

		// 2. Update and render
		res := a.session.Frame(dt)
		if res.Quit {
			a.running = false
			break
		}

		// 3. Present
		if !res.Skipped {
			if err := a.window.Present(a.session.Image()); err != nil {
				return fmt.Errorf("present error: %w", err)
			}
		}

		if res.Screenshot {
			a.screenshot()
		}

		if res.FPS != a.lastFPS {
			a.lastFPS = res.FPS
			a.window.SetTitle(a.title(res.FPS))
			a.log.Debug("fps",
				zap.Int("fps", res.FPS),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("faces", res.Stats.Faces),
			)
		}

		// 4. Frame cap
		if a.frameCap > 0 {
			if rest := a.frameCap - time.Since(now); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close releases the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) screenshot() {
	path, err := a.shots.Capture(a.session.Image())
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	vp := a.session.Viewport()
	a.log.Info("screenshot saved",
		zap.String("path", path),
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
	)
}

func (a *App) title(fps int) string {
	if fps <= 0 {
		return fmt.Sprintf("%s - %s", a.cfg.Window.Title, a.name)
	}
	return fmt.Sprintf("%s - %s - %d FPS", a.cfg.Window.Title, a.name, fps)
}
