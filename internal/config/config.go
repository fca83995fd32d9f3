// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/raster"
)

// Face coloring schemes.
const (
	FaceColorsFlat   = "flat"
	FaceColorsRandom = "random"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Camera     CameraConfig      `yaml:"camera"`
	Rotation   RotationConfig    `yaml:"rotation"`
	Render     RenderConfig      `yaml:"render"`
	Overlay    OverlayConfig     `yaml:"overlay"`
	Keys       map[string]string `yaml:"keys,omitempty"` // key name -> action name overrides
	Screenshot ScreenshotConfig  `yaml:"screenshot"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 disables the frame cap
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	Distance        float32 `yaml:"distance"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
	FOV             float32 `yaml:"fov"`
	MaxPitch        float32 `yaml:"max_pitch"`
	DragSensitivity float32 `yaml:"drag_sensitivity"` // radians per pixel
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// RotationConfig holds the continuous spin settings.
type RotationConfig struct {
	Enabled bool    `yaml:"enabled"`
	Speed   float32 `yaml:"speed"` // radians per second
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	Mode          string `yaml:"mode"` // wireframe or solid
	Background    Color  `yaml:"background"`
	BackgroundAlt Color  `yaml:"background_alt"`
	CheckerSize   int    `yaml:"checker_size"` // 0 for a flat background
	LineColor     Color  `yaml:"line_color"`
	FillColor     Color  `yaml:"fill_color"`
	FaceColors    string `yaml:"face_colors"` // flat or random
	Seed          uint64 `yaml:"seed"`
}

// OverlayConfig holds on-screen diagnostics settings.
type OverlayConfig struct {
	ShowFPS     bool  `yaml:"show_fps"`
	TextColor   Color `yaml:"text_color"`
	ShowBounds  bool  `yaml:"show_bounds"`
	BoundsColor Color `yaml:"bounds_color"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "meshview",
			Width:     800,
			Height:    600,
			Resizable: true,
			FPSLimit:  60,
		},
		Camera: CameraConfig{
			Distance:        10,
			MinDistance:     0.5,
			MaxDistance:     1000,
			FOV:             60,
			MaxPitch:        89,
			DragSensitivity: 0.02,
			ZoomSensitivity: 0.1,
		},
		Rotation: RotationConfig{
			Enabled: false,
			Speed:   1.2,
		},
		Render: RenderConfig{
			Mode:          raster.Wireframe.String(),
			Background:    RGB(175, 175, 175),
			BackgroundAlt: RGB(235, 235, 235),
			CheckerSize:   32,
			LineColor:     RGB(50, 50, 50),
			FillColor:     RGB(100, 255, 100),
			FaceColors:    FaceColorsRandom,
			Seed:          1,
		},
		Overlay: OverlayConfig{
			ShowFPS:     true,
			TextColor:   RGB(0, 0, 0),
			ShowBounds:  false,
			BoundsColor: RGB(220, 40, 40),
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "meshview",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// CameraSettings converts the camera section into controller settings.
func (c *Config) CameraSettings() camera.Settings {
	return camera.Settings{
		Distance:        c.Camera.Distance,
		MinDistance:     c.Camera.MinDistance,
		MaxDistance:     c.Camera.MaxDistance,
		FOV:             c.Camera.FOV * math32.Pi / 180,
		MaxPitch:        c.Camera.MaxPitch * math32.Pi / 180,
		DragSensitivity: c.Camera.DragSensitivity,
		ZoomSensitivity: c.Camera.ZoomSensitivity,
		RotationSpeed:   c.Rotation.Speed,
	}
}

// RenderMode returns the configured initial render mode.
func (c *Config) RenderMode() raster.Mode {
	m, _ := raster.ParseMode(c.Render.Mode)
	return m
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Window.FPSLimit)
	}
	if err := c.CameraSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(c.Camera.Distance > 0) {
		return fmt.Errorf("%w: camera distance %v", ErrInvalid, c.Camera.Distance)
	}
	if _, ok := raster.ParseMode(c.Render.Mode); !ok {
		return fmt.Errorf("%w: render mode %q", ErrInvalid, c.Render.Mode)
	}
	if c.Render.CheckerSize < 0 {
		return fmt.Errorf("%w: checker_size %d", ErrInvalid, c.Render.CheckerSize)
	}
	switch c.Render.FaceColors {
	case FaceColorsFlat, FaceColorsRandom:
	default:
		return fmt.Errorf("%w: face_colors %q", ErrInvalid, c.Render.FaceColors)
	}
	return nil
}
