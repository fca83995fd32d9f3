// Package transform projects mesh vertices into screen space and resolves
// faces into the draw list handed to the rasterizer.
package transform

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/engine/raster"
	"github.com/Faultbox/meshview/pkg/math"
)

// ErrDegenerateCamera is matched by every *DegenerateCameraError.
var ErrDegenerateCamera = errors.New("degenerate camera")

// DegenerateCameraError reports a camera or viewport that cannot produce a
// projection. The frame is skipped.
type DegenerateCameraError struct {
	Reason string
}

func (e *DegenerateCameraError) Error() string {
	return fmt.Sprintf("degenerate camera: %s", e.Reason)
}

func (e *DegenerateCameraError) Is(target error) bool {
	return target == ErrDegenerateCamera
}

// Viewport is the pixel size of the render target.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width over height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// ScreenVertex is a projected vertex. Depth is the distance along the view
// axis; a vertex at or behind the camera plane is not Visible and its X and
// Y are meaningless.
type ScreenVertex struct {
	X, Y    float32
	Depth   float32
	Visible bool
}

// Point returns the screen position.
func (v ScreenVertex) Point() math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}

func validate(cam camera.State, vp Viewport) error {
	switch {
	case !(cam.Distance > 0):
		return &DegenerateCameraError{Reason: fmt.Sprintf("distance %v", cam.Distance)}
	case !(cam.FOV > 0) || !(cam.FOV < math32.Pi):
		return &DegenerateCameraError{Reason: fmt.Sprintf("field of view %v", cam.FOV)}
	case vp.Width < 1 || vp.Height < 1:
		return &DegenerateCameraError{Reason: fmt.Sprintf("viewport %dx%d", vp.Width, vp.Height)}
	}
	return nil
}

// ModelMatrix returns the object spin about the mesh center, or identity
// when the rotation is stopped.
func ModelMatrix(bounds model.Bounds, rot camera.Rotation) math.Mat4 {
	if !rot.Enabled {
		return math.Identity()
	}
	return math.RotateAround(bounds.Center(), rot.Angle)
}

// Project transforms every mesh vertex into screen space. dst is reused when
// it has enough capacity. The result has one entry per vertex in mesh order.
func Project(m *model.Mesh, cam camera.State, rot camera.Rotation, vp Viewport, dst []ScreenVertex) ([]ScreenVertex, error) {
	if err := validate(cam, vp); err != nil {
		return dst[:0], err
	}

	verts := m.Vertices()
	if cap(dst) < len(verts) {
		dst = make([]ScreenVertex, len(verts))
	}
	dst = dst[:len(verts)]

	mv := cam.ViewMatrix().Mul(ModelMatrix(m.Bounds(), rot))
	f := 1 / math32.Tan(cam.FOV/2)
	aspect := vp.Aspect()
	w, h := float32(vp.Width), float32(vp.Height)

	for i, v := range verts {
		p := mv.TransformVec3(v)
		depth := -p.Z
		if !(depth > 0) {
			dst[i] = ScreenVertex{Depth: depth}
			continue
		}
		ndcX := p.X * f / (aspect * depth)
		ndcY := p.Y * f / depth
		dst[i] = ScreenVertex{
			X:       (ndcX + 1) / 2 * w,
			Y:       (1 - ndcY) / 2 * h,
			Depth:   depth,
			Visible: true,
		}
	}
	return dst, nil
}

// DrawList resolves the mesh faces against the projected vertices. Faces
// with any vertex behind the camera are dropped. colors is indexed by face;
// faces past its end use the first color. dst is reused.
func DrawList(m *model.Mesh, screen []ScreenVertex, colors []color.RGBA, dst []raster.Face) []raster.Face {
	dst = dst[:0]
	fallback := color.RGBA{A: 0xff}
	if len(colors) > 0 {
		fallback = colors[0]
	}

faces:
	for fi, face := range m.Faces() {
		pts := make([]math.Vec2, 0, face.Len())
		var depth float32
		for _, idx := range face.Indices {
			sv := screen[idx]
			if !sv.Visible {
				continue faces
			}
			pts = append(pts, sv.Point())
			depth += sv.Depth
		}

		c := fallback
		if fi < len(colors) {
			c = colors[fi]
		}
		dst = append(dst, raster.Face{
			Points: pts,
			Depth:  depth / float32(face.Len()),
			Color:  c,
		})
	}
	return dst
}
