// Package raster draws projected mesh faces into a software pixel surface.
package raster

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/Faultbox/meshview/pkg/math"
)

// Mode selects how faces are drawn.
type Mode uint8

const (
	Wireframe Mode = iota
	Solid
)

// String returns the mode name as used in config files.
func (m Mode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Solid:
		return "solid"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Solid {
		return Wireframe
	}
	return Solid
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "wireframe":
		return Wireframe, true
	case "solid":
		return Solid, true
	default:
		return Wireframe, false
	}
}

// Face is one polygon resolved to screen space for this frame.
type Face struct {
	Points []math.Vec2
	Depth  float32 // representative camera-space depth, larger is farther
	Color  color.RGBA
}

// Background describes how the surface is cleared before each frame.
// A Cell of zero means a flat Color fill.
type Background struct {
	Color color.RGBA
	Alt   color.RGBA
	Cell  int
}

// Stats summarizes one Draw call.
type Stats struct {
	Faces     int
	Triangles int
	Lines     int
}

// Rasterizer draws a frame's face list with the painter's algorithm.
// It holds no per-frame state and never touches the mesh or camera.
type Rasterizer struct {
	Background Background
	LineColor  color.RGBA
}

// New creates a rasterizer.
func New(bg Background, line color.RGBA) *Rasterizer {
	return &Rasterizer{
		Background: bg,
		LineColor:  line,
	}
}

// Draw clears s and draws faces in the given mode. In Solid mode faces is
// reordered in place, farthest first.
func (r *Rasterizer) Draw(mode Mode, faces []Face, s Surface) Stats {
	r.clear(s)

	var st Stats
	switch mode {
	case Solid:
		SortByDepth(faces)
		for i := range faces {
			f := &faces[i]
			if len(f.Points) < 3 {
				continue
			}
			st.Faces++
			p0 := f.Points[0]
			for j := 1; j+1 < len(f.Points); j++ {
				s.FillTriangle(p0, f.Points[j], f.Points[j+1], f.Color)
				st.Triangles++
			}
		}
	default:
		st = Outline(faces, s, r.LineColor)
	}
	return st
}

// Outline draws the closed boundary of every face in col on top of whatever
// s already holds.
func Outline(faces []Face, s Surface, col color.RGBA) Stats {
	var st Stats
	for i := range faces {
		pts := faces[i].Points
		if len(pts) < 2 {
			continue
		}
		st.Faces++
		for j := range pts {
			s.DrawLine(pts[j], pts[(j+1)%len(pts)], col)
			st.Lines++
		}
	}
	return st
}

// SortByDepth orders faces farthest first. The sort is stable so faces at
// equal depth keep their mesh order and do not flicker between frames.
func SortByDepth(faces []Face) {
	slices.SortStableFunc(faces, func(a, b Face) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

func (r *Rasterizer) clear(s Surface) {
	bg := r.Background
	if bg.Cell > 0 {
		if cc, ok := s.(CheckerClearer); ok {
			cc.ClearChecker(bg.Color, bg.Alt, bg.Cell)
			return
		}
	}
	s.Clear(bg.Color)
}
