package hittable

import "mc-raytracer/internal/mathutil"

// List is a brute-force collection: Hit scans every member and keeps the
// closest hit. It is mutated only while the scene is built.
type List struct {
	Objects []Hittable
	bbox    AABB
}

func NewList(objects ...Hittable) *List {
	l := &List{bbox: EmptyAABB}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

func (l *List) Add(object Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = EmptyAABB
	}
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

func (l *List) Clear() {
	l.Objects = nil
	l.bbox = EmptyAABB
}

func (l *List) Len() int {
	return len(l.Objects)
}

// Hit narrows the upper bound to each successful hit, so later members can
// only replace the record with a strictly closer one. Equal t keeps the
// earlier member.
func (l *List) Hit(r mathutil.Ray, rayT mathutil.Interval, rec *HitRecord) bool {
	var tmp HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(r, mathutil.NewInterval(rayT.Min, closestSoFar), &tmp) {
			hitAnything = true
			closestSoFar = tmp.T
			*rec = tmp
		}
	}

	return hitAnything
}

func (l *List) BoundingBox() AABB {
	if len(l.Objects) == 0 {
		return EmptyAABB
	}
	return l.bbox
}
