// Package debug provides on-screen diagnostics for the viewer: the frame
// rate counter and its text overlay, the bounding box overlay and
// screenshots.
package debug
