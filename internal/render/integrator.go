package render

import (
	"fmt"
	"math/rand/v2"

	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/material"
	"mc-raytracer/internal/mathutil"
)

// Mode selects the color integration function.
type Mode string

const (
	ModeDiffuse Mode = "diffuse"
	ModeNormals Mode = "normals"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "", ModeDiffuse:
		return ModeDiffuse, nil
	case ModeNormals:
		return m, nil
	}
	return "", fmt.Errorf("render: unknown mode %q", s)
}

var (
	white   = mathutil.Vec3{1, 1, 1}
	skyBlue = mathutil.Vec3{0.5, 0.7, 1.0}

	// Surfaces without a material scatter like the reference diffuse model.
	fallbackMaterial hittable.Material = material.NewHemisphere(nil)
)

// Background is the sky gradient seen by rays that miss everything.
// A zero direction counts as horizontal.
func Background(dir mathutil.Vec3) mathutil.Vec3 {
	unit := dir.Normalize()
	a := 0.5 * (unit[1] + 1.0)
	return mathutil.Lerp(white, skyBlue, a)
}

// RayColor estimates the radiance carried back along r. depth is the number
// of bounces left; at zero the path is terminated as black.
func RayColor(r mathutil.Ray, world hittable.Hittable, depth int, tMin float64, rng *rand.Rand) mathutil.Vec3 {
	if depth <= 0 {
		return mathutil.Vec3{}
	}

	var rec hittable.HitRecord
	if !world.Hit(r, mathutil.NewInterval(tMin, mathutil.Infinity), &rec) {
		return Background(r.Direction)
	}

	mat := rec.Material
	if mat == nil {
		mat = fallbackMaterial
	}

	var emitted mathutil.Vec3
	if e, ok := mat.(hittable.Emitter); ok {
		emitted = e.Emitted(rec.U, rec.V, rec.Point)
	}

	attenuation, scattered, ok := mat.Scatter(r, &rec, rng)
	if !ok {
		return emitted
	}
	return emitted.Add(attenuation.Mul(RayColor(scattered, world, depth-1, tMin, rng)))
}

// NormalColor shades the closest hit by its normal mapped into [0,1].
func NormalColor(r mathutil.Ray, world hittable.Hittable, tMin float64) mathutil.Vec3 {
	var rec hittable.HitRecord
	if !world.Hit(r, mathutil.NewInterval(tMin, mathutil.Infinity), &rec) {
		return Background(r.Direction)
	}
	return rec.Normal.Add(white).Scale(0.5)
}

func (c *Camera) sampleColor(r mathutil.Ray, world hittable.Hittable, rng *rand.Rand) mathutil.Vec3 {
	if c.Mode == ModeNormals {
		return NormalColor(r, world, c.TMin)
	}
	return RayColor(r, world, c.MaxDepth, c.TMin, rng)
}
