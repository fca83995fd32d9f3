package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatMatchesAxisMatrices(t *testing.T) {
	angle := float32(0.7)
	p := Vec3{1, 2, 3}

	tests := []struct {
		name string
		axis Vec3
		mat  Mat4
	}{
		{"x", AxisX, RotateX(angle)},
		{"y", AxisY, RotateY(angle)},
		{"z", AxisZ, RotateZ(angle)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromAxisAngle(tt.axis, angle).Rotate(p)
			want := tt.mat.TransformVec3(p)
			if !near(got, want) {
				t.Errorf("quat rotation = %v, matrix rotation = %v", got, want)
			}
		})
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	q := QuatFromYawPitchRoll(0.4, -0.3, 1.1)
	p := Vec3{-2, 0.5, 4}

	got := q.Conjugate().Rotate(q.Rotate(p))
	if !near(got, p) {
		t.Errorf("conjugate should undo rotation: got %v, want %v", got, p)
	}
}

func TestQuatFromYawPitchRollOrder(t *testing.T) {
	yaw, pitch, roll := float32(0.5), float32(0.25), float32(-0.8)
	p := Vec3{1, 1, 1}

	want := RotateY(yaw).Mul(RotateX(pitch)).Mul(RotateZ(roll)).TransformVec3(p)
	got := QuatFromYawPitchRoll(yaw, pitch, roll).Rotate(p)
	if !near(got, want) {
		t.Errorf("QuatFromYawPitchRoll = %v, want %v", got, want)
	}
}
