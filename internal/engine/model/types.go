// Package model holds the in-memory polygon mesh the viewer renders.
package model

import "github.com/Faultbox/meshview/pkg/math"

// Face is a planar polygon given as indices into the mesh vertex list.
// The index order is kept exactly as loaded so fan triangulation is stable
// from frame to frame.
type Face struct {
	Indices []int
}

// Len returns the number of corners.
func (f Face) Len() int {
	return len(f.Indices)
}

// Edge is an undirected vertex pair with A < B.
type Edge struct {
	A, B int
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the box diagonal.
func (b Bounds) Radius() float32 {
	return b.Size().Length() / 2
}
