package mathutil

import "math"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// The camera uses it to orient its orthonormal frame.
type Mat3 [9]float64

// Mat3FromColumns builds the matrix whose columns are u, v and w,
// i.e. the transform from a local frame into world space.
func Mat3FromColumns(u, v, w Vec3) Mat3 {
	return Mat3{
		u[0], v[0], w[0],
		u[1], v[1], w[1],
		u[2], v[2], w[2],
	}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Column returns column c (0..2).
func (m Mat3) Column(c int) Vec3 {
	return Vec3{m[c], m[3+c], m[6+c]}
}

// RotX rotates around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{1, 0, 0, 0, c, -s, 0, s, c}
}

// RotY rotates around the Y axis. Angle in radians.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{c, 0, s, 0, 1, 0, -s, 0, c}
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
