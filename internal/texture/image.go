package texture

import (
	"image"

	"mc-raytracer/internal/mathutil"
)

// debugCyan marks surfaces whose image failed to load.
var debugCyan = mathutil.Vec3{0, 1, 1}

// Image samples a decoded bitmap with nearest-neighbour lookup.
// UVs are clamped to [0,1] and v is flipped: scene UVs have a bottom-left
// origin while image rows start at the top.
type Image struct {
	img *image.NRGBA
}

// NewImage wraps an already decoded bitmap. A nil bitmap samples as cyan.
func NewImage(img *image.NRGBA) *Image {
	return &Image{img: img}
}

func (t *Image) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Rect.Dx()
}

func (t *Image) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Rect.Dy()
}

func (t *Image) Sample(u, v float64, p mathutil.Vec3) mathutil.Vec3 {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return debugCyan
	}

	unit := mathutil.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v)

	i := clampIndex(int(u*float64(w)), w)
	j := clampIndex(int(v*float64(h)), h)

	off := j*t.img.Stride + i*4
	const scale = 1.0 / 255.0
	return mathutil.Vec3{
		float64(t.img.Pix[off]) * scale,
		float64(t.img.Pix[off+1]) * scale,
		float64(t.img.Pix[off+2]) * scale,
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
