package debug

import (
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/pkg/math"
)

// boxFaces are the six quads of a box whose corners are numbered by bit:
// bit 0 selects max X, bit 1 max Y, bit 2 max Z.
var boxFaces = [][]int{
	{0, 1, 3, 2}, // -Z
	{4, 6, 7, 5}, // +Z
	{0, 4, 5, 1}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 2, 6, 4}, // -X
	{1, 5, 7, 3}, // +X
}

// BoundsMesh builds a box mesh covering b expanded by padding on every side.
// Drawn in wireframe it outlines the mesh bounds. With zero padding its own
// bounds, and therefore its rotation pivot, match b.
func BoundsMesh(b model.Bounds, padding float32) *model.Mesh {
	lo := b.Min.Sub(math.Vec3{X: padding, Y: padding, Z: padding})
	hi := b.Max.Add(math.Vec3{X: padding, Y: padding, Z: padding})

	verts := make([]math.Vec3, 8)
	for i := range verts {
		v := lo
		if i&1 != 0 {
			v.X = hi.X
		}
		if i&2 != 0 {
			v.Y = hi.Y
		}
		if i&4 != 0 {
			v.Z = hi.Z
		}
		verts[i] = v
	}

	faces := make([]model.Face, len(boxFaces))
	for i, f := range boxFaces {
		faces[i] = model.Face{Indices: f}
	}

	// indices are constant and in range
	m, _ := model.New(verts, faces)
	return m
}
