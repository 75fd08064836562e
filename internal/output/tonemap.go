// Package output turns a linear framebuffer into an encoded image file.
package output

import (
	"fmt"
	"image"
	"math"

	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/render"
)

// Tonemap selects the curve applied before gamma encoding.
type Tonemap string

const (
	TonemapNone Tonemap = "none"
	TonemapACES Tonemap = "aces"
)

func ParseTonemap(s string) (Tonemap, error) {
	switch t := Tonemap(s); t {
	case "", TonemapNone:
		return TonemapNone, nil
	case TonemapACES:
		return t, nil
	}
	return "", fmt.Errorf("output: unknown tonemap %q", s)
}

// Options controls the linear to 8-bit conversion.
type Options struct {
	Gamma   float64 // 0 or 1 keeps values linear
	Tonemap Tonemap
}

func DefaultOptions() Options {
	return Options{Gamma: 2.0, Tonemap: TonemapNone}
}

// intensity keeps 1.0 from wrapping when scaled by 256.
var intensity = mathutil.NewInterval(0.000, 0.999)

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// LinearToGamma encodes a linear channel. Non-positive and NaN inputs map to 0.
func LinearToGamma(x, gamma float64) float64 {
	if !(x > 0) {
		return 0
	}
	switch {
	case gamma <= 0 || gamma == 1:
		return x
	case gamma == 2:
		return math.Sqrt(x)
	}
	return math.Pow(x, 1/gamma)
}

func toByte(x float64) uint8 {
	return uint8(256 * intensity.Clamp(x))
}

// ToNRGBA converts the framebuffer into an opaque 8-bit image.
func ToNRGBA(fb *render.FrameBuffer, opts Options) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			o := img.PixOffset(i, j)
			for k := 0; k < 3; k++ {
				x := c[k]
				if opts.Tonemap == TonemapACES && x > 0 {
					x = ACESTonemap(x)
				}
				img.Pix[o+k] = toByte(LinearToGamma(x, opts.Gamma))
			}
			img.Pix[o+3] = 255
		}
	}
	return img
}
