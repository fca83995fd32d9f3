// Package formats provides parsers for mesh file formats.
package formats

// Note: Wavefront OBJ is implemented in obj.go
