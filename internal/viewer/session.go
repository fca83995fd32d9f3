// Package viewer runs one interactive viewing session: it turns queued input
// events into camera changes and renders a frame into a CPU canvas. It has
// no platform dependencies; internal/app feeds it events and presents the
// canvas.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/raster"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// warnInterval is the minimum session time between repeated degenerate
// camera warnings, in seconds.
const warnInterval = 1.0

// Options configures a Session.
type Options struct {
	Width    int
	Height   int
	Camera   camera.Settings
	Mode     raster.Mode
	Rotating bool

	Background  raster.Background
	LineColor   color.RGBA
	Palette     []color.RGBA
	ShowFPS     bool
	TextColor   color.RGBA
	ShowBounds  bool
	BoundsColor color.RGBA

	Keymap Keymap
}

// DefaultOptions returns an 800x600 wireframe view over the checkered
// background.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 600,
		Camera: camera.DefaultSettings(),
		Mode:   raster.Wireframe,
		Background: raster.Background{
			Color: color.RGBA{R: 175, G: 175, B: 175, A: 0xff},
			Alt:   color.RGBA{R: 235, G: 235, B: 235, A: 0xff},
			Cell:  32,
		},
		LineColor:   color.RGBA{R: 50, G: 50, B: 50, A: 0xff},
		Palette:     FlatPalette(color.RGBA{R: 100, G: 255, B: 100, A: 0xff}),
		ShowFPS:     true,
		TextColor:   color.RGBA{A: 0xff},
		BoundsColor: color.RGBA{R: 220, G: 40, B: 40, A: 0xff},
		Keymap:      DefaultKeymap(),
	}
}

// FrameResult reports what one Frame call did.
type FrameResult struct {
	Stats raster.Stats
	Mode  raster.Mode
	FPS   int

	// Skipped is set when the camera could not project; Err holds the
	// *transform.DegenerateCameraError and the canvas keeps the last frame.
	Skipped bool
	Err     error

	Screenshot bool
	Quit       bool
}

// Session owns the mesh, the camera controller and the frame buffers.
type Session struct {
	opts   Options
	mesh   *model.Mesh
	box    *model.Mesh
	ctrl   *camera.Controller
	rast   *raster.Rasterizer
	canvas *raster.Canvas
	events *input.Queue
	fps    *debug.FPSCounter
	log    *zap.Logger

	viewport transform.Viewport
	pending  *transform.Viewport

	screen    []transform.ScreenVertex
	faces     []raster.Face
	boxScreen []transform.ScreenVertex
	boxFaces  []raster.Face

	quit       bool
	screenshot bool
	clock      float64
	lastWarn   float64
	warned     bool
}

// New creates a session viewing m.
func New(m *model.Mesh, opts Options) (*Session, error) {
	if m == nil {
		return nil, errors.New("viewer: nil mesh")
	}
	if err := opts.Camera.Validate(); err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	if opts.Keymap == nil {
		opts.Keymap = DefaultKeymap()
	}

	bounds := m.Bounds()
	s := &Session{
		opts:     opts,
		mesh:     m,
		box:      debug.BoundsMesh(bounds, 0),
		ctrl:     camera.NewController(opts.Camera, bounds.Center(), opts.Mode, opts.Rotating),
		rast:     raster.New(opts.Background, opts.LineColor),
		canvas:   raster.NewCanvas(opts.Width, opts.Height),
		events:   input.NewQueue(),
		fps:      debug.NewFPSCounter(1),
		log:      logger.Named("viewer"),
		viewport: transform.Viewport{Width: opts.Width, Height: opts.Height},
	}
	return s, nil
}

// Events returns the queue the platform layer pushes into.
func (s *Session) Events() *input.Queue {
	return s.events
}

// Push queues one event for the next frame.
func (s *Session) Push(e input.Event) {
	s.events.Push(e)
}

// Controller exposes the camera controller.
func (s *Session) Controller() *camera.Controller {
	return s.ctrl
}

// Image returns the rendered frame.
func (s *Session) Image() *image.RGBA {
	return s.canvas.Image()
}

// Viewport returns the size frames are rendered at.
func (s *Session) Viewport() transform.Viewport {
	return s.viewport
}

// Frame processes queued events and renders one frame. dt is the time in
// seconds since the previous frame.
func (s *Session) Frame(dt float64) FrameResult {
	s.screenshot = false
	s.events.Drain(s.handle)

	if s.pending != nil {
		s.viewport = *s.pending
		s.pending = nil
		// a minimized window reports an empty size; keep the last frame
		if s.viewport.Width > 0 && s.viewport.Height > 0 {
			s.canvas.Resize(s.viewport.Width, s.viewport.Height)
		}
		s.log.Debug("viewport resized",
			zap.Int("width", s.viewport.Width),
			zap.Int("height", s.viewport.Height),
		)
	}

	s.clock += dt
	s.ctrl.Advance(float32(dt))
	s.fps.Tick(dt)

	res := FrameResult{
		Mode:       s.ctrl.Mode(),
		FPS:        s.fps.FPS(),
		Screenshot: s.screenshot,
		Quit:       s.quit,
	}

	cam, rot := s.ctrl.State(), s.ctrl.Rotation()
	screen, err := transform.Project(s.mesh, cam, rot, s.viewport, s.screen)
	s.screen = screen
	if err != nil {
		s.warnDegenerate(err)
		res.Skipped = true
		res.Err = err
		return res
	}

	s.faces = transform.DrawList(s.mesh, s.screen, s.opts.Palette, s.faces)
	res.Stats = s.rast.Draw(res.Mode, s.faces, s.canvas)

	if s.opts.ShowBounds {
		s.boxScreen, err = transform.Project(s.box, cam, rot, s.viewport, s.boxScreen)
		if err != nil {
			s.warnDegenerate(err)
		} else {
			s.boxFaces = transform.DrawList(s.box, s.boxScreen, nil, s.boxFaces)
			raster.Outline(s.boxFaces, s.canvas, s.opts.BoundsColor)
		}
	}

	if s.opts.ShowFPS {
		debug.DrawFPS(s.canvas.Image(), res.FPS, s.opts.TextColor)
	}

	return res
}

func (s *Session) handle(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		s.quit = true

	case input.EventResize:
		s.pending = &transform.Viewport{Width: e.Width, Height: e.Height}

	case input.EventKeyDown:
		s.apply(s.opts.Keymap.Lookup(e.Key))

	case input.EventPointerDown:
		if b, ok := dragButton(e.Button); ok {
			s.ctrl.BeginDrag(b, math.Vec2{X: e.X, Y: e.Y})
		}

	case input.EventPointerMove:
		s.ctrl.ContinueDrag(math.Vec2{X: e.X, Y: e.Y})

	case input.EventPointerUp:
		if b, ok := dragButton(e.Button); ok {
			s.ctrl.EndDrag(b)
		}

	case input.EventScroll:
		s.ctrl.Scroll(e.Scroll)
	}
}

func (s *Session) apply(a Action) {
	switch a {
	case ActionToggleMode:
		s.ctrl.ToggleRenderMode()
		s.log.Debug("render mode", zap.Stringer("mode", s.ctrl.Mode()))
	case ActionToggleRotation:
		s.ctrl.ToggleRotation()
		s.log.Debug("rotation", zap.Bool("enabled", s.ctrl.Rotation().Enabled))
	case ActionResetCamera:
		s.ctrl.ResetCamera()
		s.log.Debug("camera reset")
	case ActionScreenshot:
		s.screenshot = true
	case ActionToggleBounds:
		s.opts.ShowBounds = !s.opts.ShowBounds
	case ActionToggleFPS:
		s.opts.ShowFPS = !s.opts.ShowFPS
	case ActionQuit:
		s.quit = true
	}
}

func (s *Session) warnDegenerate(err error) {
	if s.warned && s.clock-s.lastWarn < warnInterval {
		return
	}
	s.warned = true
	s.lastWarn = s.clock
	s.log.Warn("frame skipped", zap.Error(err))
}

func dragButton(b input.Button) (camera.Button, bool) {
	switch b {
	case input.ButtonLeft:
		return camera.ButtonLeft, true
	case input.ButtonRight:
		return camera.ButtonRight, true
	default:
		return 0, false
	}
}
