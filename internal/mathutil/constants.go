package mathutil

import "math"

// Infinity is the open upper bound used for primary ray intervals.
var Infinity = math.Inf(1)

var (
	// WorldUp is the default camera up vector (Y-up, right-handed).
	WorldUp = Vec3{0, 1, 0}

	// Forward is the default view direction: the camera looks down -Z.
	Forward = Vec3{0, 0, -1}
)

// ViewRotation returns Ry(yaw) @ Rx(pitch). Angles in degrees.
// Positive yaw turns the view to the left, positive pitch tilts it up.
func ViewRotation(yawDeg, pitchDeg float64) Mat3 {
	return Mat3Mul(RotY(Deg2Rad(yawDeg)), RotX(Deg2Rad(pitchDeg)))
}
