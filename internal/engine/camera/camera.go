// Package camera provides the orbit camera and the controller that owns all
// interactive view state.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// Settings validation errors.
var (
	ErrDistanceBounds = errors.New("camera distance bounds invalid")
	ErrPitchLimit     = errors.New("camera pitch limit must be in (0, 90) degrees")
	ErrFOV            = errors.New("camera field of view must be in (0, 180) degrees")
)

// State is the orbit camera: it looks at Target from Distance away, oriented
// by yaw, pitch and roll (radians). FOV is the vertical field of view in radians.
type State struct {
	Target   math.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	Roll     float32
	FOV      float32
}

// Orientation returns the camera rotation Ry(yaw) * Rx(pitch) * Rz(roll).
func (s State) Orientation() math.Quat {
	return math.QuatFromYawPitchRoll(s.Yaw, s.Pitch, s.Roll)
}

// Position returns the eye position in world space. With zero angles the
// camera sits on +Z of the target looking down -Z.
func (s State) Position() math.Vec3 {
	return s.Target.Add(s.Orientation().Rotate(math.Vec3{Z: s.Distance}))
}

// ViewMatrix maps world space into camera space, where the camera looks
// down -Z and depth in front of it is -z.
func (s State) ViewMatrix() math.Mat4 {
	inv := s.Orientation().Conjugate().ToMat4()
	return math.Translate(0, 0, -s.Distance).Mul(inv).Mul(math.TranslateVec3(s.Target.Neg()))
}

// Settings holds the tunables for a controller. Angles are radians.
type Settings struct {
	Distance        float32
	MinDistance     float32
	MaxDistance     float32
	FOV             float32
	MaxPitch        float32
	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // fraction of distance per scroll unit
	RotationSpeed   float32 // radians per second
}

// DefaultSettings returns the stock orbit behavior.
func DefaultSettings() Settings {
	return Settings{
		Distance:        10,
		MinDistance:     0.5,
		MaxDistance:     1000,
		FOV:             math32.Pi / 3,
		MaxPitch:        math32.Pi/2 - 0.01,
		DragSensitivity: 0.02,
		ZoomSensitivity: 0.1,
		RotationSpeed:   1.2,
	}
}

// Validate checks that the settings can uphold the State invariants.
func (s Settings) Validate() error {
	if !(s.MinDistance > 0) || !(s.MaxDistance > s.MinDistance) {
		return fmt.Errorf("%w: min %v max %v", ErrDistanceBounds, s.MinDistance, s.MaxDistance)
	}
	if !(s.MaxPitch > 0) || !(s.MaxPitch < math32.Pi/2) {
		return fmt.Errorf("%w: got %v rad", ErrPitchLimit, s.MaxPitch)
	}
	if !(s.FOV > 0) || !(s.FOV < math32.Pi) {
		return fmt.Errorf("%w: got %v rad", ErrFOV, s.FOV)
	}
	return nil
}

// InitialState returns the state a freshly loaded mesh is viewed from.
// The distance is clamped into bounds.
func (s Settings) InitialState(target math.Vec3) State {
	return State{
		Target:   target,
		Distance: clamp(s.Distance, s.MinDistance, s.MaxDistance),
		FOV:      s.FOV,
	}
}

// Rotation is the continuous object-space spin around the vertical axis.
type Rotation struct {
	Enabled bool
	Angle   float32
	Speed   float32
}

// Advance adds Speed*dt seconds of spin when enabled. The angle is kept in
// [0, 2*pi).
func (r *Rotation) Advance(dt float32) {
	if !r.Enabled {
		return
	}
	r.Angle = math32.Mod(r.Angle+r.Speed*dt, 2*math32.Pi)
	if r.Angle < 0 {
		r.Angle += 2 * math32.Pi
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
