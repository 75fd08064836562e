package hittable

import (
	"math"

	"mc-raytracer/internal/mathutil"
)

// Sphere is a (possibly moving) sphere. The center travels linearly from
// Center at time 0 to Center+Motion at time 1.
type Sphere struct {
	Center   mathutil.Vec3
	Motion   mathutil.Vec3
	Radius   float64
	Material Material
}

func NewSphere(center mathutil.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func NewMovingSphere(center0, center1 mathutil.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center0, Motion: center1.Sub(center0), Radius: radius, Material: mat}
}

func (s *Sphere) centerAt(tm float64) mathutil.Vec3 {
	return s.Center.Add(s.Motion.Scale(tm))
}

func (s *Sphere) Hit(r mathutil.Ray, rayT mathutil.Interval, rec *HitRecord) bool {
	if !(s.Radius > 0) {
		return false
	}
	center := s.centerAt(r.Time)
	oc := center.Sub(r.Origin)
	a := r.Direction.LenSq()
	if a == 0 {
		return false
	}
	h := r.Direction.Dot(oc)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	// Nearest root inside the interval
	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = r.At(root)
	outward := rec.Point.Sub(center).Scale(1 / s.Radius)
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = SphereUV(outward)
	rec.Material = s.Material
	return true
}

func (s *Sphere) BoundingBox() AABB {
	rv := mathutil.Vec3{s.Radius, s.Radius, s.Radius}
	box := NewAABBFromPoints(s.Center.Sub(rv), s.Center.Add(rv))
	if s.Motion != (mathutil.Vec3{}) {
		end := s.centerAt(1)
		box = box.Union(NewAABBFromPoints(end.Sub(rv), end.Add(rv)))
	}
	return box
}

// SphereUV maps a point on the unit sphere to (u, v) in [0,1]:
// u is the angle around Y from X=-1, v the angle from Y=-1 to Y=+1.
func SphereUV(p mathutil.Vec3) (u, v float64) {
	theta := math.Acos(mathutil.NewInterval(-1, 1).Clamp(-p[1]))
	phi := math.Atan2(-p[2], p[0]) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
