package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshview/pkg/formats"
	"github.com/Faultbox/meshview/pkg/math"
)

// Mesh validation errors.
var (
	ErrFaceTooSmall    = errors.New("face has fewer than 3 vertices")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrLoad            = errors.New("loading mesh")
)

// IndexError reports a face that references a vertex that does not exist.
type IndexError struct {
	Face        int
	Index       int
	VertexCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d: vertex index %d out of range [0, %d)", e.Face, e.Index, e.VertexCount)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// LoadError is returned for every failure to turn a file into a Mesh: a
// missing file, malformed syntax or an out-of-range face index.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading mesh %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// Mesh is an immutable polygon mesh. Rotation and camera motion never touch
// it; every frame reads the same vertices through a transform.
type Mesh struct {
	vertices []math.Vec3
	faces    []Face
	bounds   Bounds
}

// New validates faces against vertices and builds a mesh. The slices are
// owned by the mesh afterwards.
func New(vertices []math.Vec3, faces []Face) (*Mesh, error) {
	for fi, f := range faces {
		if f.Len() < 3 {
			return nil, fmt.Errorf("face %d: %w", fi, ErrFaceTooSmall)
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(vertices) {
				return nil, &IndexError{Face: fi, Index: idx, VertexCount: len(vertices)}
			}
		}
	}

	m := &Mesh{
		vertices: vertices,
		faces:    faces,
	}
	m.bounds = computeBounds(vertices)
	return m, nil
}

// FromOBJ builds a mesh from parsed OBJ geometry.
func FromOBJ(obj *formats.OBJ) (*Mesh, error) {
	vertices := make([]math.Vec3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	faces := make([]Face, len(obj.Faces))
	for i, f := range obj.Faces {
		faces[i] = Face{Indices: f}
	}
	return New(vertices, faces)
}

// Load reads and validates an OBJ mesh in one step. Any failure is returned
// as a *LoadError.
func Load(path string) (*Mesh, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	m, err := FromOBJ(obj)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return m, nil
}

// Vertices returns the object-space positions. Callers must not modify them.
func (m *Mesh) Vertices() []math.Vec3 {
	return m.vertices
}

// Faces returns the polygons. Callers must not modify them.
func (m *Mesh) Faces() []Face {
	return m.faces
}

// Bounds returns the bounding box computed at construction.
func (m *Mesh) Bounds() Bounds {
	return m.bounds
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return len(m.vertices) == 0 || len(m.faces) == 0
}

// TriangleCount returns how many triangles a fan triangulation yields.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.faces {
		n += f.Len() - 2
	}
	return n
}

// Edges returns every undirected polygon edge once, in first-seen order.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.faces)*3)
	edges := make([]Edge, 0, len(m.faces)*3)
	for _, f := range m.faces {
		n := f.Len()
		for i := 0; i < n; i++ {
			e := newEdge(f.Indices[i], f.Indices[(i+1)%n])
			if e.A == e.B {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

func computeBounds(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}
