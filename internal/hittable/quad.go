package hittable

import (
	"math"

	"mc-raytracer/internal/mathutil"
)

// Quad is the parallelogram Q + a*U + b*V for a, b in [0,1].
type Quad struct {
	Q, U, V  mathutil.Vec3
	Material Material

	normal mathutil.Vec3
	d      float64
	w      mathutil.Vec3
}

// NewQuad builds the parallelogram at q spanned by u and v. Parallel edges
// give a degenerate quad that never hits.
func NewQuad(q, u, v mathutil.Vec3, mat Material) *Quad {
	quad := &Quad{Q: q, U: u, V: v, Material: mat}
	if mathutil.Parallel(u, v) {
		return quad
	}
	n := u.Cross(v)
	quad.normal = n.Scale(1 / n.Len())
	quad.d = quad.normal.Dot(q)
	quad.w = n.Scale(1 / n.Dot(n))
	return quad
}

// Degenerate reports whether the edges are parallel.
func (q *Quad) Degenerate() bool { return q.normal == (mathutil.Vec3{}) }

func (q *Quad) Hit(r mathutil.Ray, rayT mathutil.Interval, rec *HitRecord) bool {
	if q.Degenerate() {
		return false
	}
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Surrounds(t) {
		return false
	}

	p := r.At(t)
	planar := p.Sub(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))
	unit := mathutil.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return false
	}

	rec.T = t
	rec.Point = p
	rec.U, rec.V = alpha, beta
	rec.Material = q.Material
	rec.SetFaceNormal(r, q.normal)
	return true
}

func (q *Quad) BoundingBox() AABB {
	return NewAABBFromPoints(q.Q, q.Q.Add(q.U), q.Q.Add(q.V), q.Q.Add(q.U).Add(q.V)).Pad(1e-4)
}
