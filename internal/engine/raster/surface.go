package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// Surface is the pixel target the rasterizer draws into.
// Implementations clip out-of-bounds coordinates.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	SetPixel(x, y int, c color.RGBA)
	DrawLine(a, b math.Vec2, c color.RGBA)
	FillTriangle(a, b, c math.Vec2, col color.RGBA)
}

// CheckerClearer is implemented by surfaces that can fill themselves with a
// two-color checker pattern faster than per-pixel Surface calls.
type CheckerClearer interface {
	ClearChecker(a, b color.RGBA, cell int)
}

// Canvas is a CPU-side RGBA surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given size. Sizes below 1 are raised to 1.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It stays valid until the next Resize.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Resize reallocates the canvas when the size changed.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if w, h := c.Size(); w == width && h == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
	// Copy-doubling fill.
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
}

// ClearChecker fills the canvas with alternating cell x cell squares,
// starting with b in the top-left corner.
func (c *Canvas) ClearChecker(a, b color.RGBA, cell int) {
	if cell < 1 {
		c.Clear(a)
		return
	}
	w, h := c.Size()
	for y := 0; y < h; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		for x := 0; x < w; x++ {
			col := a
			if (x/cell)%2 == (y/cell)%2 {
				col = b
			}
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = col.R, col.G, col.B, col.A
		}
	}
}

// SetPixel writes one pixel, ignoring coordinates outside the canvas.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
}

// DrawLine draws a one-pixel Bresenham line. The segment is clipped to the
// canvas first so endpoints far off screen cost nothing.
func (c *Canvas) DrawLine(a, b math.Vec2, col color.RGBA) {
	w, h := c.Size()
	drawLine(c, w, h, a, b, col)
}

// FillTriangle fills the triangle with a flat color using the top-left rule.
func (c *Canvas) FillTriangle(a, b, d math.Vec2, col color.RGBA) {
	w, h := c.Size()
	fillTriangle(c, w, h, a, b, d, col)
}

// pixelOf maps a clipped coordinate in [0, size] onto a pixel index.
func pixelOf(v float32, size int) int {
	p := int(math32.Floor(v))
	if p >= size {
		p = size - 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

func drawLine(s Surface, w, h int, a, b math.Vec2, col color.RGBA) {
	a, b, ok := clipLine(a, b, float32(w), float32(h))
	if !ok {
		return
	}
	bresenham(s, pixelOf(a.X, w), pixelOf(a.Y, h), pixelOf(b.X, w), pixelOf(b.Y, h), col)
}

func bresenham(s Surface, x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips segment ab to the rectangle [0, w] x [0, h] (Liang-Barsky).
func clipLine(a, b math.Vec2, w, h float32) (math.Vec2, math.Vec2, bool) {
	t0, t1 := float32(0), float32(1)
	d := b.Sub(a)

	clip := func(p, q float32) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-d.X, a.X) || !clip(d.X, w-a.X) || !clip(-d.Y, a.Y) || !clip(d.Y, h-a.Y) {
		return a, b, false
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
