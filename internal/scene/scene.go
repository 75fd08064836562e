// Package scene builds worlds for the renderer, either from JSON scene
// files or from the named built-in scenes.
package scene

import (
	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/render"
)

// View holds the camera placement a scene asks for. Zero fields keep the
// camera defaults.
type View struct {
	LookFrom     mathutil.Vec3 `json:"look_from"`
	LookAt       mathutil.Vec3 `json:"look_at"`
	VUp          mathutil.Vec3 `json:"vup"`
	VFov         float64       `json:"vfov"`
	Yaw          float64       `json:"yaw"`
	Pitch        float64       `json:"pitch"`
	DefocusAngle float64       `json:"defocus_angle"`
	FocusDist    float64       `json:"focus_dist"`
	ShutterOpen  float64       `json:"shutter_open"`
	ShutterClose float64       `json:"shutter_close"`
}

// Apply copies the view onto the camera. Initialize must run afterwards.
func (v View) Apply(c *render.Camera) {
	c.LookFrom = v.LookFrom
	c.LookAt = v.LookAt
	c.VUp = v.VUp
	c.VFov = v.VFov
	c.Yaw = v.Yaw
	c.Pitch = v.Pitch
	c.DefocusAngle = v.DefocusAngle
	c.FocusDist = v.FocusDist
	c.ShutterOpen = v.ShutterOpen
	c.ShutterClose = v.ShutterClose
}

// Scene is a fully built world plus its preferred view.
type Scene struct {
	Name  string
	World *hittable.List
	View  View
}
