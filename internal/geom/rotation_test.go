package geom

import (
	"math"
	"testing"
)

func TestRotationPreservesNorm(t *testing.T) {
	m := Identity()
	for i := 0; i < 1000; i++ {
		m = m.Mul(RotationX(0.01)).Mul(RotationY(0.02)).Mul(RotationZ(0.005))
		if i%120 == 0 {
			m = m.Orthonormalize()
		}
	}
	m = m.Orthonormalize()

	v := Vec3{1.5, -2.0, 0.75}
	got := m.Apply(v).Length()
	want := v.Length()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("norm drifted: got %.12f want %.12f", got, want)
	}
}

func TestOrthonormalizeRows(t *testing.T) {
	m := RotationX(0.3).Mul(RotationY(1.1))
	// Perturb to simulate accumulated drift.
	m[0] += 1e-4
	m[4] -= 1e-4
	m = m.Orthonormalize()

	for i := 0; i < 3; i++ {
		if l := m.row(i).Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("row %d length %.12f, want 1", i, l)
		}
		for j := i + 1; j < 3; j++ {
			if d := m.row(i).Dot(m.row(j)); math.Abs(d) > 1e-12 {
				t.Errorf("rows %d,%d not orthogonal: dot=%.2e", i, j, d)
			}
		}
	}
}

func TestAxisAngleMatchesMatrix(t *testing.T) {
	q := AxisAngle(Vec3{0, 0, 1}, 0.7)
	m := RotationZ(0.7)
	p := Vec3{1, 2, 3}

	qp, mp := q.Rotate(p), m.Apply(p)
	if qp.Sub(mp).Length() > 1e-12 {
		t.Errorf("quaternion and matrix disagree: %v vs %v", qp, mp)
	}
}

func TestAxisAngleZeroAxis(t *testing.T) {
	q := AxisAngle(Vec3{}, 1.2)
	p := Vec3{1, 2, 3}
	if got := q.Rotate(p); got != p {
		t.Errorf("zero axis should be identity, got %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec3{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}
