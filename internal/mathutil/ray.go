package mathutil

// Ray is a half-line Origin + t*Direction. Direction is not required to be unit length.
// Time is reserved for motion blur; it is zero unless the camera shutter is open.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func NewRayWithTime(origin, direction Vec3, tm float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: tm}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
