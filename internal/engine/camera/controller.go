package camera

import (
	"github.com/Faultbox/meshview/internal/engine/raster"
	"github.com/Faultbox/meshview/pkg/math"
)

// Button identifies a pointer button that can drive a drag.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

type drag struct {
	active bool
	last   math.Vec2
}

// Controller is the only writer of the camera State, the Rotation and the
// render Mode. Each method is one input event applied to the current state.
type Controller struct {
	settings Settings
	initial  State
	state    State
	rotation Rotation
	mode     raster.Mode
	drags    [buttonCount]drag
}

// NewController captures the initial state for target. ResetCamera returns
// to exactly this state.
func NewController(settings Settings, target math.Vec3, mode raster.Mode, rotating bool) *Controller {
	initial := settings.InitialState(target)
	return &Controller{
		settings: settings,
		initial:  initial,
		state:    initial,
		rotation: Rotation{Enabled: rotating, Speed: settings.RotationSpeed},
		mode:     mode,
	}
}

// State returns the current camera state.
func (c *Controller) State() State {
	return c.state
}

// Rotation returns the current spin state.
func (c *Controller) Rotation() Rotation {
	return c.rotation
}

// Mode returns the current render mode.
func (c *Controller) Mode() raster.Mode {
	return c.mode
}

// Settings returns the settings the controller was created with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Dragging reports whether a drag with b is in progress.
func (c *Controller) Dragging(b Button) bool {
	return b < buttonCount && c.drags[b].active
}

// BeginDrag starts a drag with b at pos. Beginning an active drag again just
// moves its reference point.
func (c *Controller) BeginDrag(b Button, pos math.Vec2) {
	if b >= buttonCount {
		return
	}
	c.drags[b] = drag{active: true, last: pos}
}

// ContinueDrag applies the pointer movement since the previous event to every
// active drag. Left drags orbit (yaw and pitch), right drags roll. With no
// active drag it does nothing.
func (c *Controller) ContinueDrag(pos math.Vec2) {
	sens := c.settings.DragSensitivity
	if d := &c.drags[ButtonLeft]; d.active {
		delta := pos.Sub(d.last)
		d.last = pos
		c.state.Yaw += delta.X * sens
		c.state.Pitch = clamp(c.state.Pitch+delta.Y*sens, -c.settings.MaxPitch, c.settings.MaxPitch)
	}
	if d := &c.drags[ButtonRight]; d.active {
		delta := pos.Sub(d.last)
		d.last = pos
		c.state.Roll += delta.X * sens
	}
}

// EndDrag stops the drag with b.
func (c *Controller) EndDrag(b Button) {
	if b >= buttonCount {
		return
	}
	c.drags[b] = drag{}
}

// Scroll zooms by delta wheel units. Positive values move closer.
func (c *Controller) Scroll(delta float32) {
	d := c.state.Distance - delta*c.state.Distance*c.settings.ZoomSensitivity
	c.state.Distance = clamp(d, c.settings.MinDistance, c.settings.MaxDistance)
}

// ToggleRenderMode switches between wireframe and solid.
func (c *Controller) ToggleRenderMode() {
	c.mode = c.mode.Toggle()
}

// ToggleRotation starts or stops the object spin.
func (c *Controller) ToggleRotation() {
	c.rotation.Enabled = !c.rotation.Enabled
}

// ResetCamera restores the state captured at load time.
func (c *Controller) ResetCamera() {
	c.state = c.initial
}

// Advance moves the spin forward by dt seconds.
func (c *Controller) Advance(dt float32) {
	c.rotation.Advance(dt)
}
