package viewer

import (
	"fmt"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/raster"
)

// OptionsFromConfig builds session options for a mesh with faces faces.
func OptionsFromConfig(cfg *config.Config, faces int) (Options, error) {
	keymap := DefaultKeymap()
	if err := keymap.Bind(cfg.Keys); err != nil {
		return Options{}, fmt.Errorf("keys: %w", err)
	}

	palette := FlatPalette(cfg.Render.FillColor.RGBA())
	if cfg.Render.FaceColors == config.FaceColorsRandom {
		palette = RandomPalette(faces, cfg.Render.Seed)
	}

	return Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Camera:   cfg.CameraSettings(),
		Mode:     cfg.RenderMode(),
		Rotating: cfg.Rotation.Enabled,
		Background: raster.Background{
			Color: cfg.Render.Background.RGBA(),
			Alt:   cfg.Render.BackgroundAlt.RGBA(),
			Cell:  cfg.Render.CheckerSize,
		},
		LineColor:   cfg.Render.LineColor.RGBA(),
		Palette:     palette,
		ShowFPS:     cfg.Overlay.ShowFPS,
		TextColor:   cfg.Overlay.TextColor.RGBA(),
		ShowBounds:  cfg.Overlay.ShowBounds,
		BoundsColor: cfg.Overlay.BoundsColor.RGBA(),
		Keymap:      keymap,
	}, nil
}
