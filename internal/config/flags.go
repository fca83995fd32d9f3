package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ErrNoMesh is returned by ParseFlags when the mesh path is missing.
var ErrNoMesh = errors.New("mesh path required")

// ErrConflictingModes is returned by ParseFlags when both -wireframe and
// -solid are set.
var ErrConflictingModes = errors.New("-wireframe and -solid are mutually exclusive")

// Flags holds the parsed command line.
type Flags struct {
	Config     string
	Debug      bool
	Fullscreen bool
	Width      int
	Height     int
	Wireframe  bool
	Solid      bool
	Rotate     bool
	DumpConfig string

	args []string
}

// NewFlagSet registers the viewer flags on a new flag set writing usage to out.
func NewFlagSet(name string, out io.Writer) (*flag.FlagSet, *Flags) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and the FPS overlay")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Wireframe, "wireframe", false, "Start in wireframe mode")
	fs.BoolVar(&f.Solid, "solid", false, "Start in solid mode")
	fs.BoolVar(&f.Rotate, "rotate", false, "Start with the mesh rotating")
	fs.StringVar(&f.DumpConfig, "dump-config", "", "Write the effective config to this path and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <mesh.obj>\n", name)
		fs.PrintDefaults()
	}
	return fs, f
}

// ParseFlags parses args (without the program name). The mesh path is only
// required when no config dump was requested.
func ParseFlags(name string, args []string, out io.Writer) (*Flags, error) {
	fs, f := NewFlagSet(name, out)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.args = fs.Args()
	if f.Wireframe && f.Solid {
		fmt.Fprintf(fs.Output(), "%v\n", ErrConflictingModes)
		fs.Usage()
		return nil, ErrConflictingModes
	}
	if f.MeshPath() == "" && f.DumpConfig == "" {
		fs.Usage()
		return nil, ErrNoMesh
	}
	return f, nil
}

// MeshPath returns the positional mesh argument.
func (f *Flags) MeshPath() string {
	if len(f.args) == 0 {
		return ""
	}
	return f.args[0]
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Overlay.ShowFPS = true
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Wireframe {
		cfg.Render.Mode = "wireframe"
	}
	if f.Solid {
		cfg.Render.Mode = "solid"
	}
	if f.Rotate {
		cfg.Rotation.Enabled = true
	}
}
