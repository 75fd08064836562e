package texture

import (
	"math"

	"mc-raytracer/internal/mathutil"

	perlin "github.com/aquilax/go-perlin"
)

// Default generator parameters: alpha/beta weight successive octaves, one
// octave per call since turbulence does its own summing.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 1
	turbDepth    = 7
)

// Noise is a marble-like procedural texture driven by Perlin turbulence.
type Noise struct {
	gen   *perlin.Perlin
	Scale float64
}

func NewNoise(scale float64, seed int64) *Noise {
	return &Noise{
		gen:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		Scale: scale,
	}
}

// Turbulence sums depth octaves of noise with halving weights.
func (n *Noise) Turbulence(p mathutil.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * n.gen.Noise3D(p[0], p[1], p[2])
		weight *= 0.5
		p = p.Scale(2)
	}
	return math.Abs(accum)
}

func (n *Noise) Sample(u, v float64, p mathutil.Vec3) mathutil.Vec3 {
	k := 0.5 * (1 + math.Sin(n.Scale*p[2]+10*n.Turbulence(p, turbDepth)))
	return mathutil.Vec3{k, k, k}
}
