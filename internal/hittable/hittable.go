// Package hittable defines the ray intersection contract and the primitives
// that satisfy it.
//
// Scenes are built once and then shared read-only by every render worker;
// nothing in this package mutates a primitive during a Hit call.
package hittable

import (
	"math/rand/v2"

	"mc-raytracer/internal/mathutil"
)

// Material decides how a ray leaving a surface is produced.
// ok=false means the ray was absorbed and the path ends (black).
type Material interface {
	Scatter(in mathutil.Ray, rec *HitRecord, rng *rand.Rand) (attenuation mathutil.Vec3, scattered mathutil.Ray, ok bool)
}

// Emitter is implemented by materials that add light at the hit point.
type Emitter interface {
	Emitted(u, v float64, p mathutil.Vec3) mathutil.Vec3
}

// HitRecord holds the result of a successful hit test.
type HitRecord struct {
	Point     mathutil.Vec3
	Normal    mathutil.Vec3 // unit length, always facing against the ray
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal derives FrontFace and orients Normal against the ray.
// outwardNormal must be unit length. Every primitive goes through here.
func (h *HitRecord) SetFaceNormal(r mathutil.Ray, outwardNormal mathutil.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can be tested against.
//
// Hit fills rec and returns true iff the ray meets the object at a t strictly
// inside rayT. On a miss rec is left unchanged.
type Hittable interface {
	Hit(r mathutil.Ray, rayT mathutil.Interval, rec *HitRecord) bool
	BoundingBox() AABB
}
