package raster

import (
	"image/color"
	"testing"

	"github.com/Faultbox/meshview/pkg/math"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// countingSurface records how often each pixel was written.
type countingSurface struct {
	*Canvas
	hits map[[2]int]int
}

func newCountingSurface(w, h int) *countingSurface {
	return &countingSurface{Canvas: NewCanvas(w, h), hits: make(map[[2]int]int)}
}

func (c *countingSurface) SetPixel(x, y int, col color.RGBA) {
	c.hits[[2]int{x, y}]++
	c.Canvas.SetPixel(x, y, col)
}

func v(x, y float32) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

func TestModeToggle(t *testing.T) {
	for _, m := range []Mode{Wireframe, Solid} {
		if m.Toggle() == m {
			t.Errorf("%v.Toggle() should change the mode", m)
		}
		if m.Toggle().Toggle() != m {
			t.Errorf("toggling %v twice should restore it", m)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Wireframe, Solid} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("points"); ok {
		t.Error("expected unknown mode to fail")
	}
}

func TestFillTriangle_SharedEdgeCoveredOnce(t *testing.T) {
	s := newCountingSurface(16, 16)

	// Square [2,10) x [2,10) split along its diagonal.
	fillTriangle(s, 16, 16, v(2, 2), v(10, 2), v(10, 10), red)
	fillTriangle(s, 16, 16, v(2, 2), v(10, 10), v(2, 10), blue)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			n := s.hits[[2]int{x, y}]
			inside := x >= 2 && x < 10 && y >= 2 && y < 10
			if inside && n != 1 {
				t.Errorf("pixel (%d,%d) written %d times, want 1", x, y, n)
			}
			if !inside && n != 0 {
				t.Errorf("pixel (%d,%d) outside the square written %d times", x, y, n)
			}
		}
	}
}

func TestFillTriangle_WindingIndependent(t *testing.T) {
	cw := newCountingSurface(20, 20)
	ccw := newCountingSurface(20, 20)

	fillTriangle(cw, 20, 20, v(1, 1), v(15, 3), v(4, 17), red)
	fillTriangle(ccw, 20, 20, v(1, 1), v(4, 17), v(15, 3), red)

	if len(cw.hits) == 0 {
		t.Fatal("expected pixels to be drawn")
	}
	if len(cw.hits) != len(ccw.hits) {
		t.Fatalf("winding changed coverage: %d vs %d pixels", len(cw.hits), len(ccw.hits))
	}
	for p := range cw.hits {
		if ccw.hits[p] != 1 {
			t.Errorf("pixel %v missing for reversed winding", p)
		}
	}
}

func TestFillTriangle_Degenerate(t *testing.T) {
	s := newCountingSurface(10, 10)
	fillTriangle(s, 10, 10, v(1, 1), v(5, 5), v(9, 9), red)
	if len(s.hits) != 0 {
		t.Errorf("collinear triangle drew %d pixels", len(s.hits))
	}
}

func TestFillTriangle_ClippedToSurface(t *testing.T) {
	s := newCountingSurface(8, 8)
	fillTriangle(s, 8, 8, v(-100, -100), v(100, -100), v(0, 100), red)

	for p := range s.hits {
		if p[0] < 0 || p[1] < 0 || p[0] >= 8 || p[1] >= 8 {
			t.Errorf("pixel %v outside surface", p)
		}
	}
	if len(s.hits) == 0 {
		t.Error("expected visible part to be filled")
	}
}

func TestDrawLine_ClipsFarEndpoints(t *testing.T) {
	s := newCountingSurface(32, 32)
	drawLine(s, 32, 32, v(-1e6, 10.5), v(1e6, 10.5), white)

	if len(s.hits) != 32 {
		t.Errorf("expected a full row of 32 pixels, got %d", len(s.hits))
	}
	for p := range s.hits {
		if p[1] != 10 {
			t.Errorf("pixel %v off the line row", p)
		}
	}

	s = newCountingSurface(32, 32)
	drawLine(s, 32, 32, v(-50, -50), v(-10, -60), white)
	if len(s.hits) != 0 {
		t.Errorf("line fully outside drew %d pixels", len(s.hits))
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(5, 3)
	c.SetPixel(2, 1, red)
	c.Clear(black)

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := c.At(x, y); got != black {
				t.Fatalf("pixel (%d,%d) = %v after Clear, want %v", x, y, got, black)
			}
		}
	}
}

func TestCanvasClearChecker(t *testing.T) {
	c := NewCanvas(8, 8)
	c.ClearChecker(black, white, 4)

	if c.At(0, 0) != white || c.At(3, 3) != white {
		t.Error("top-left cell should use the second color")
	}
	if c.At(4, 0) != black || c.At(0, 4) != black {
		t.Error("neighboring cells should use the first color")
	}
	if c.At(7, 7) != white {
		t.Error("diagonal cell should match the top-left cell")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Resize(10, 6)
	if w, h := c.Size(); w != 10 || h != 6 {
		t.Errorf("expected 10x6, got %dx%d", w, h)
	}
	c.Resize(0, -3)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("expected sizes clamped to 1x1, got %dx%d", w, h)
	}
}

func TestDraw_ClearsPreviousFrame(t *testing.T) {
	c := NewCanvas(20, 20)
	r := New(Background{Color: black}, white)

	tri := []Face{{Points: []math.Vec2{v(2, 2), v(18, 2), v(2, 18)}, Color: red}}
	r.Draw(Solid, tri, c)
	if c.At(5, 5) != red {
		t.Fatal("expected triangle to be filled")
	}

	r.Draw(Solid, nil, c)
	if c.At(5, 5) != black {
		t.Error("expected previous frame to be cleared")
	}
}

func TestDraw_WireframeTouchesOnlyEdges(t *testing.T) {
	c := NewCanvas(100, 100)
	r := New(Background{Color: black}, white)

	faces := []Face{{Points: []math.Vec2{v(10, 10), v(90, 10), v(10, 90)}, Color: red}}
	st := r.Draw(Wireframe, faces, c)

	if st.Lines != 3 {
		t.Errorf("expected 3 lines, got %d", st.Lines)
	}
	if st.Triangles != 0 {
		t.Errorf("wireframe should fill nothing, filled %d triangles", st.Triangles)
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			col := c.At(x, y)
			if col == red {
				t.Fatalf("pixel (%d,%d) has the fill color in wireframe mode", x, y)
			}
			if col != white {
				continue
			}
			onEdge := x == 10 || y == 10 || absInt(x+y-100) <= 1
			if !onEdge {
				t.Errorf("pixel (%d,%d) drawn away from every edge", x, y)
			}
		}
	}
	if c.At(30, 30) != black {
		t.Error("interior pixel should stay background")
	}
	if c.At(50, 10) != white {
		t.Error("top edge pixel should be drawn")
	}
}

func TestDraw_PaintersOrder(t *testing.T) {
	near := Face{Points: []math.Vec2{v(0, 0), v(30, 0), v(30, 30), v(0, 30)}, Depth: 5, Color: red}
	far := Face{Points: []math.Vec2{v(10, 10), v(40, 10), v(40, 40), v(10, 40)}, Depth: 10, Color: blue}

	for _, order := range [][]Face{{near, far}, {far, near}} {
		c := NewCanvas(50, 50)
		r := New(Background{Color: black}, white)
		st := r.Draw(Solid, order, c)

		if st.Faces != 2 || st.Triangles != 4 {
			t.Errorf("expected 2 faces / 4 triangles, got %+v", st)
		}
		if c.At(20, 20) != red {
			t.Errorf("overlap should show the nearer face, got %v", c.At(20, 20))
		}
		if c.At(35, 35) != blue {
			t.Errorf("far-only region should show the far face, got %v", c.At(35, 35))
		}
	}
}

func TestSortByDepth_Stable(t *testing.T) {
	faces := []Face{
		{Depth: 1, Color: color.RGBA{R: 1}},
		{Depth: 3, Color: color.RGBA{R: 2}},
		{Depth: 1, Color: color.RGBA{R: 3}},
		{Depth: 3, Color: color.RGBA{R: 4}},
	}
	SortByDepth(faces)

	want := []uint8{2, 4, 1, 3}
	for i, f := range faces {
		if f.Color.R != want[i] {
			t.Errorf("position %d: got face %d, want %d", i, f.Color.R, want[i])
		}
	}
}
