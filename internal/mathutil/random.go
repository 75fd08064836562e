package mathutil

import (
	"math"
	"math/rand/v2"
)

// All samplers take an explicit generator so each render worker can own one.

// SampleSquare returns a random offset in [-0.5, 0.5) x [-0.5, 0.5) x {0}.
func SampleSquare(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float64() - 0.5, rng.Float64() - 0.5, 0}
}

// RandomRange returns a uniform value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit sphere.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			RandomRange(rng, -1, 1),
			RandomRange(rng, -1, 1),
			RandomRange(rng, -1, 1),
		}
		if l := p.LenSq(); l > 1e-160 && l < 1 {
			return p
		}
	}
}

// RandomUnitVector is uniformly distributed on the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	p := RandomInUnitSphere(rng)
	return p.Scale(1 / math.Sqrt(p.LenSq()))
}

// RandomOnHemisphere returns a uniform unit vector in the hemisphere around normal.
func RandomOnHemisphere(rng *rand.Rand, normal Vec3) Vec3 {
	v := RandomUnitVector(rng)
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Neg()
}

// RandomInUnitDisk rejection-samples the unit disk in the z=0 plane.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{RandomRange(rng, -1, 1), RandomRange(rng, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}
