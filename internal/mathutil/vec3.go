package mathutil

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when a zero-length vector would be normalized.
var ErrZeroLength = errors.New("mathutil: zero-length vector")

// Vec3 is a 3-component vector (value type, stack-allocated).
// It is used for points, directions and linear RGB colors alike.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div divides every component by s. s must be non-zero.
func (v Vec3) Div(s float64) Vec3 {
	return v.Scale(1 / s)
}

// Mul returns the component-wise product (color attenuation).
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Unit is the checked form of Normalize.
func (v Vec3) Unit() (Vec3, error) {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return Vec3{}, ErrZeroLength
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}, nil
}

// NearZero reports whether every component is within 1e-8 of zero.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v[0]) < s && math.Abs(v[1]) < s && math.Abs(v[2]) < s
}

// parallelTol bounds |a×b| / (|a||b|), the sine of the angle between two vectors.
const parallelTol = 1e-9

// Parallel reports whether a and b span no area relative to their own lengths.
// Zero vectors are parallel to everything.
func Parallel(a, b Vec3) bool {
	return a.Cross(b).Len() <= parallelTol*a.Len()*b.Len()
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Lerp returns (1-t)*a + t*b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Reflect mirrors v about the unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n (Snell's law).
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	perp := uv.Add(n.Scale(cosTheta)).Scale(etaiOverEtat)
	parallel := n.Scale(-math.Sqrt(math.Abs(1.0 - perp.LenSq())))
	return perp.Add(parallel)
}
