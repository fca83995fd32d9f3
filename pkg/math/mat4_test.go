package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3Translate(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 2, 3})
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection: got %v, want (1, 2, 3)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !near(got, Vec3{0, 0, -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateX90(t *testing.T) {
	got := RotateX(float32(math.Pi / 2)).TransformVec3(Vec3{0, 1, 0})
	if !near(got, Vec3{0, 0, 1}) {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", got)
	}
}

func TestRotateZ90(t *testing.T) {
	got := RotateZ(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})
	if !near(got, Vec3{0, 1, 0}) {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", got)
	}
}

func TestRotateAroundKeepsPivot(t *testing.T) {
	pivot := Vec3{3, -2, 7}
	m := RotateAround(pivot, 1.234)

	if got := m.TransformVec3(pivot); !near(got, pivot) {
		t.Errorf("pivot moved: got %v, want %v", got, pivot)
	}

	// A point one unit along +X from the pivot ends up one unit along -Z after 90 degrees.
	m = RotateAround(pivot, float32(math.Pi/2))
	got := m.TransformVec3(pivot.Add(Vec3{X: 1}))
	if !near(got, pivot.Add(Vec3{Z: -1})) {
		t.Errorf("RotateAround 90: got %v, want %v", got, pivot.Add(Vec3{Z: -1}))
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 0.001 && abs(a.Y-b.Y) < 0.001 && abs(a.Z-b.Z) < 0.001
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
