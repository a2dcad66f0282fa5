package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestMulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.7))
	if got := Identity().Mul(m); got != m {
		t.Errorf("I*M = %v, want %v", got, m)
	}
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M*I = %v, want %v", got, m)
	}
}

func TestMulAppliesRightFirst(t *testing.T) {
	// Scale then translate: (1,1,1) -> (0.5,0.5,0.5) -> (3.5,1.5,9.5)
	m := Translate(V3(3, 1, 9)).Mul(ScaleUniform(0.5))
	got := m.TransformPoint(V3(1, 1, 1))
	want := V3(3.5, 1.5, 9.5)
	if !vecNear(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestGetRowColumn(t *testing.T) {
	m := Translate(V3(4, 5, 6))
	if m.Get(0, 3) != 4 || m.Get(1, 3) != 5 || m.Get(2, 3) != 6 || m.Get(3, 3) != 1 {
		t.Errorf("translation column = %v %v %v %v", m.Get(0, 3), m.Get(1, 3), m.Get(2, 3), m.Get(3, 3))
	}
	if m.Translation() != V3(4, 5, 6) {
		t.Errorf("Translation() = %v", m.Translation())
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x quarter turn", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"y quarter turn", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"z quarter turn", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		{"zero angle", RotateX(0), V3(1, 2, 3), V3(1, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.TransformPoint(tc.in)
			if !vecNear(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCameraMatrix(t *testing.T) {
	cam := CameraMatrix(V3(1, -2, 3))
	got := cam.TransformPoint(V3(1, -2, 11))
	if !vecNear(got, V3(0, 0, 8)) {
		t.Errorf("camera space point = %v, want (0, 0, 8)", got)
	}
}

func TestTransformPointDropsW(t *testing.T) {
	m := Identity()
	m[3] = 5 // row 3 would change w, which must be ignored
	got := m.TransformPoint(V3(1, 2, 3))
	if !vecNear(got, V3(1, 2, 3)) {
		t.Errorf("TransformPoint = %v, want (1, 2, 3)", got)
	}
}

func TestTransposePlane(t *testing.T) {
	// A plane moved through M^T evaluates the same on local points as the
	// original plane does on transformed points.
	m := Translate(V3(0, 0, 8)).Mul(RotateY(0.3)).Mul(ScaleUniform(2))
	plane := V4(0, 0, 1, -9)
	local := m.Transpose().MulVec4(plane)

	p := V3(0.3, -0.4, 0.9)
	want := plane.Dot(V4FromV3(m.TransformPoint(p), 1))
	got := local.Dot(V4FromV3(p, 1))
	if math.Abs(got-want) > eps {
		t.Errorf("local plane distance = %v, want %v", got, want)
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name          string
		v             Vec3
		width, height int
		want          Vec2
	}{
		{"on axis maps to center", V3(0, 0, 5), 900, 600, V2(450, 300)},
		{"right and up", V3(1, 1, 2), 100, 100, V2(100, 0)},
		{"left and down", V3(-1, -1, 4), 200, 100, V2(50, 75)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(tc.v, tc.width, tc.height)
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("Project(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestVec3Helpers(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, 1, 0)
	if a.Min(b) != V3(1, 1, -2) {
		t.Errorf("Min = %v", a.Min(b))
	}
	if a.Max(b) != V3(3, 5, 0) {
		t.Errorf("Max = %v", a.Max(b))
	}
	if got := V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.25); !vecNear(got, V3(0.5, 1, 1.5)) {
		t.Errorf("Lerp = %v", got)
	}
	if d := V3(0, 3, 0).Distance(V3(4, 0, 0)); math.Abs(d-5) > eps {
		t.Errorf("Distance = %v, want 5", d)
	}
}
