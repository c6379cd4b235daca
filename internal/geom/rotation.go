package geom

import "math"

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 [9]float64

func Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func RotationX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{1, 0, 0, 0, c, -s, 0, s, c}
}

func RotationY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{c, 0, s, 0, 1, 0, -s, 0, c}
}

func RotationZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*o[j] + m[i*3+1]*o[3+j] + m[i*3+2]*o[6+j]
		}
	}
	return r
}

func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) row(i int) Vec3 { return Vec3{m[i*3], m[i*3+1], m[i*3+2]} }
func (m *Mat3) setRow(i int, v Vec3) { m[i*3], m[i*3+1], m[i*3+2] = v.X, v.Y, v.Z }

// Orthonormalize re-projects the rows onto an orthonormal basis
// (Gram-Schmidt). Repeated incremental composition accumulates float
// error; calling this periodically keeps the matrix norm-preserving.
func (m Mat3) Orthonormalize() Mat3 {
	r0 := m.row(0).Normalize()
	r1 := m.row(1).Sub(r0.Scale(r0.Dot(m.row(1)))).Normalize()
	r2 := r0.Cross(r1)
	var out Mat3
	out.setRow(0, r0)
	out.setRow(1, r1)
	out.setRow(2, r2)
	return out
}

// Quat is a unit quaternion (w, x, y, z).
type Quat struct {
	W, X, Y, Z float64
}

// AxisAngle builds the quaternion rotating by angle around axis.
// A zero axis yields the identity rotation.
func AxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Normalize()
	if n == (Vec3{}) {
		return Quat{W: 1}
	}
	s := math.Sin(angle / 2)
	return Quat{math.Cos(angle / 2), n.X * s, n.Y * s, n.Z * s}
}

func (q Quat) mul(o Quat) Quat {
	return Quat{
		q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quat) conj() Quat { return Quat{q.W, -q.X, -q.Y, -q.Z} }

// Rotate applies the quaternion rotation q p q* to a point.
func (q Quat) Rotate(p Vec3) Vec3 {
	r := q.mul(Quat{0, p.X, p.Y, p.Z}).mul(q.conj())
	return Vec3{r.X, r.Y, r.Z}
}
