package raster

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// fillTriangle scans the clipped bounding box and tests each pixel center
// (x+0.5, y+0.5) against the three edge functions.
//
// Pixels exactly on an edge belong to the triangle only if that edge is a
// top edge or a left edge. Two triangles sharing an edge therefore never
// both claim a pixel on it, and never both skip one.
func fillTriangle(s Surface, w, h int, a, b, c math.Vec2, col color.RGBA) {
	area := edgeFn(a, b, c)
	if area == 0 {
		return
	}
	// Normalize to positive area so "inside" means all edge functions >= 0.
	if area < 0 {
		b, c = c, b
	}

	minX := clampInt(int(math32.Floor(min3(a.X, b.X, c.X))), 0, w-1)
	maxX := clampInt(int(math32.Ceil(max3(a.X, b.X, c.X))), 0, w-1)
	minY := clampInt(int(math32.Floor(min3(a.Y, b.Y, c.Y))), 0, h-1)
	maxY := clampInt(int(math32.Ceil(max3(a.Y, b.Y, c.Y))), 0, h-1)

	tlAB := isTopLeft(a, b)
	tlBC := isTopLeft(b, c)
	tlCA := isTopLeft(c, a)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			p := math.Vec2{X: float32(x) + 0.5, Y: py}
			if !covers(edgeFn(b, c, p), tlBC) || !covers(edgeFn(c, a, p), tlCA) || !covers(edgeFn(a, b, p), tlAB) {
				continue
			}
			s.SetPixel(x, y, col)
		}
	}
}

// edgeFn is twice the signed area of (a, b, p). With y growing downward it is
// positive when p lies to the right of a->b as seen on screen.
func edgeFn(a, b, p math.Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// isTopLeft reports whether edge a->b of a positive-area triangle is a top
// edge (horizontal, interior below) or a left edge.
func isTopLeft(a, b math.Vec2) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	return (dy == 0 && dx > 0) || dy < 0
}

func covers(e float32, topLeft bool) bool {
	return e > 0 || (e == 0 && topLeft)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
