package texture

import (
	"math"

	"mc-raytracer/internal/mathutil"
)

// Texture maps surface coordinates and a world-space point to a linear RGB color.
// Implementations are read-only after construction and safe for concurrent use.
type Texture interface {
	Sample(u, v float64, p mathutil.Vec3) mathutil.Vec3
}

// SolidColor returns the same color everywhere.
type SolidColor struct {
	Albedo mathutil.Vec3
}

func NewSolidColor(c mathutil.Vec3) *SolidColor {
	return &SolidColor{Albedo: c}
}

func NewSolidRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Albedo: mathutil.Vec3{r, g, b}}
}

func (s *SolidColor) Sample(u, v float64, p mathutil.Vec3) mathutil.Vec3 {
	return s.Albedo
}

// Checker is a 3D checkerboard in world space: cells of size Scale alternate
// between Even and Odd by the parity of floor(p/scale) summed over all axes.
type Checker struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1 / scale, Even: even, Odd: odd}
}

func NewCheckerColors(scale float64, c1, c2 mathutil.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(c1), NewSolidColor(c2))
}

func (c *Checker) Sample(u, v float64, p mathutil.Vec3) mathutil.Vec3 {
	x := int(math.Floor(c.invScale * p[0]))
	y := int(math.Floor(c.invScale * p[1]))
	z := int(math.Floor(c.invScale * p[2]))

	if (x+y+z)%2 == 0 {
		return c.Even.Sample(u, v, p)
	}
	return c.Odd.Sample(u, v, p)
}
