package hittable

import (
	"math"

	"mc-raytracer/internal/mathutil"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a flat triangle; rays hit it from either side.
// (U, V) in the hit record are the barycentric weights of B and C.
type Triangle struct {
	tri          r3.Triangle
	edge1, edge2 r3.Vec
	area2        float64 // |edge1 × edge2|
	normal       mathutil.Vec3
	Material     Material
}

// NewTriangle builds triangle abc. Collinear vertices give a degenerate
// triangle that never hits.
func NewTriangle(a, b, c mathutil.Vec3, mat Material) *Triangle {
	t := &Triangle{
		tri:      r3.Triangle{toR3(a), toR3(b), toR3(c)},
		Material: mat,
	}
	t.edge1 = r3.Sub(t.tri[1], t.tri[0])
	t.edge2 = r3.Sub(t.tri[2], t.tri[0])
	if mathutil.Parallel(fromR3(t.edge1), fromR3(t.edge2)) {
		return t
	}
	n := r3.Cross(t.edge1, t.edge2)
	t.area2 = r3.Norm(n)
	t.normal = fromR3(r3.Scale(1/t.area2, n))
	return t
}

// Degenerate reports whether the vertices are collinear.
func (t *Triangle) Degenerate() bool { return t.area2 == 0 }

func toR3(v mathutil.Vec3) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func fromR3(v r3.Vec) mathutil.Vec3 {
	return mathutil.Vec3{v.X, v.Y, v.Z}
}

// Hit uses Möller–Trumbore. Zero-area triangles never hit.
func (t *Triangle) Hit(r mathutil.Ray, rayT mathutil.Interval, rec *HitRecord) bool {
	// Cosine of the grazing angle below which the ray counts as parallel.
	const grazing = 1e-12
	if t.Degenerate() {
		return false
	}

	dir := toR3(r.Direction)
	edge1, edge2 := t.edge1, t.edge2
	h := r3.Cross(dir, edge2)
	det := r3.Dot(edge1, h)
	if math.Abs(det) <= grazing*t.area2*r3.Norm(dir) {
		return false
	}

	inv := 1.0 / det
	s := r3.Sub(toR3(r.Origin), t.tri[0])
	u := inv * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return false
	}
	q := r3.Cross(s, edge1)
	v := inv * r3.Dot(dir, q)
	if v < 0 || u+v > 1 {
		return false
	}

	root := inv * r3.Dot(edge2, q)
	if !rayT.Surrounds(root) {
		return false
	}

	rec.T = root
	rec.Point = r.At(root)
	rec.SetFaceNormal(r, t.normal)
	rec.U, rec.V = u, v
	rec.Material = t.Material
	return true
}

func (t *Triangle) BoundingBox() AABB {
	return NewAABBFromPoints(fromR3(t.tri[0]), fromR3(t.tri[1]), fromR3(t.tri[2])).Pad(1e-4)
}
