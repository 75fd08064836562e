// Package material implements the scatter models a surface can carry.
// Every material is immutable after construction.
package material

import (
	"math"
	"math/rand/v2"

	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/texture"
)

// DefaultHemisphereAlbedo is the flat 50% absorption of the reference diffuse model.
var DefaultHemisphereAlbedo = mathutil.Vec3{0.5, 0.5, 0.5}

// Hemisphere scatters uniformly over the hemisphere around the normal and
// attenuates by the texture sample.
type Hemisphere struct {
	Albedo texture.Texture
}

func NewHemisphere(tex texture.Texture) *Hemisphere {
	if tex == nil {
		tex = texture.NewSolidColor(DefaultHemisphereAlbedo)
	}
	return &Hemisphere{Albedo: tex}
}

func (m *Hemisphere) Scatter(in mathutil.Ray, rec *hittable.HitRecord, rng *rand.Rand) (mathutil.Vec3, mathutil.Ray, bool) {
	dir := mathutil.RandomOnHemisphere(rng, rec.Normal)
	scattered := mathutil.NewRayWithTime(rec.Point, dir, in.Time)
	return m.Albedo.Sample(rec.U, rec.V, rec.Point), scattered, true
}

// Lambertian scatters along normal + random unit vector (cosine weighted).
type Lambertian struct {
	Albedo texture.Texture
}

func NewLambertian(albedo mathutil.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

func NewTexturedLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Albedo: tex}
}

func (m *Lambertian) Scatter(in mathutil.Ray, rec *hittable.HitRecord, rng *rand.Rand) (mathutil.Vec3, mathutil.Ray, bool) {
	dir := rec.Normal.Add(mathutil.RandomUnitVector(rng))

	// Random vector opposite the normal
	if dir.NearZero() {
		dir = rec.Normal
	}

	scattered := mathutil.NewRayWithTime(rec.Point, dir, in.Time)
	return m.Albedo.Sample(rec.U, rec.V, rec.Point), scattered, true
}

// Metal reflects specularly; Fuzz in [0,1] perturbs the reflection.
type Metal struct {
	Albedo mathutil.Vec3
	Fuzz   float64
}

func NewMetal(albedo mathutil.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: mathutil.NewInterval(0, 1).Clamp(fuzz)}
}

func (m *Metal) Scatter(in mathutil.Ray, rec *hittable.HitRecord, rng *rand.Rand) (mathutil.Vec3, mathutil.Ray, bool) {
	reflected := mathutil.Reflect(in.Direction, rec.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(mathutil.RandomUnitVector(rng).Scale(m.Fuzz))
	}
	scattered := mathutil.NewRayWithTime(rec.Point, reflected, in.Time)

	// Fuzzed below the surface: absorbed
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return mathutil.Vec3{}, mathutil.Ray{}, false
	}
	return m.Albedo, scattered, true
}

// Dielectric is a clear refractive material such as glass.
type Dielectric struct {
	RefractionIndex float64
}

func NewDielectric(index float64) *Dielectric {
	return &Dielectric{RefractionIndex: index}
}

func (m *Dielectric) Scatter(in mathutil.Ray, rec *hittable.HitRecord, rng *rand.Rand) (mathutil.Vec3, mathutil.Ray, bool) {
	ri := m.RefractionIndex
	if rec.FrontFace {
		ri = 1.0 / ri
	}

	unit := in.Direction.Normalize()
	cosTheta := math.Min(unit.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir mathutil.Vec3
	if ri*sinTheta > 1.0 || Reflectance(cosTheta, ri) > rng.Float64() {
		dir = mathutil.Reflect(unit, rec.Normal)
	} else {
		dir = mathutil.Refract(unit, rec.Normal, ri)
	}

	return mathutil.Vec3{1, 1, 1}, mathutil.NewRayWithTime(rec.Point, dir, in.Time), true
}

// Reflectance is Schlick's approximation of Fresnel reflectance.
func Reflectance(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// DiffuseLight emits its texture color and never scatters.
type DiffuseLight struct {
	Emit texture.Texture
}

func NewDiffuseLight(c mathutil.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolidColor(c)}
}

func (m *DiffuseLight) Scatter(in mathutil.Ray, rec *hittable.HitRecord, rng *rand.Rand) (mathutil.Vec3, mathutil.Ray, bool) {
	return mathutil.Vec3{}, mathutil.Ray{}, false
}

func (m *DiffuseLight) Emitted(u, v float64, p mathutil.Vec3) mathutil.Vec3 {
	return m.Emit.Sample(u, v, p)
}

var (
	_ hittable.Material = (*Hemisphere)(nil)
	_ hittable.Material = (*Lambertian)(nil)
	_ hittable.Material = (*Metal)(nil)
	_ hittable.Material = (*Dielectric)(nil)
	_ hittable.Material = (*DiffuseLight)(nil)
	_ hittable.Emitter  = (*DiffuseLight)(nil)
)
