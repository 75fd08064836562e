package hittable

import (
	"math"

	"mc-raytracer/internal/mathutil"
)

// AABB is an axis-aligned bounding box stored as one interval per axis.
type AABB struct {
	X, Y, Z mathutil.Interval
}

// EmptyAABB contains nothing; it is the identity for Union.
var EmptyAABB = AABB{X: mathutil.EmptyInterval, Y: mathutil.EmptyInterval, Z: mathutil.EmptyInterval}

// NewAABBFromPoints bounds the given points.
func NewAABBFromPoints(points ...mathutil.Vec3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box.X = mathutil.Span(box.X, mathutil.NewInterval(p[0], p[0]))
		box.Y = mathutil.Span(box.Y, mathutil.NewInterval(p[1], p[1]))
		box.Z = mathutil.Span(box.Z, mathutil.NewInterval(p[2], p[2]))
	}
	return box
}

func (b AABB) Axis(n int) mathutil.Interval {
	switch n {
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	return b.X
}

// Union returns the smallest box enclosing both.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		X: mathutil.Span(b.X, o.X),
		Y: mathutil.Span(b.Y, o.Y),
		Z: mathutil.Span(b.Z, o.Z),
	}
}

// Pad widens any axis thinner than delta so flat primitives get a volume.
func (b AABB) Pad(delta float64) AABB {
	pad := func(i mathutil.Interval) mathutil.Interval {
		if i.Size() < delta {
			return i.Expand(delta)
		}
		return i
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Hit runs the slab test over rayT.
func (b AABB) Hit(r mathutil.Ray, rayT mathutil.Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		origin := r.Origin[axis]
		dir := r.Direction[axis]

		if math.Abs(dir) < 1e-12 {
			if origin < ax.Min || origin > ax.Max {
				return false
			}
			continue
		}

		inv := 1.0 / dir
		t0 := (ax.Min - origin) * inv
		t1 := (ax.Max - origin) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}
