package output

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/render"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		x, gamma, want float64
	}{
		{0.25, 2, 0.5},
		{0.25, 1, 0.25},
		{0.25, 0, 0.25},
		{0.125, 3, 0.5},
		{-1, 2, 0},
		{math.NaN(), 2, 0},
	}
	for _, tt := range tests {
		if got := LinearToGamma(tt.x, tt.gamma); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LinearToGamma(%v, %v) = %v, want %v", tt.x, tt.gamma, got, tt.want)
		}
	}
}

func TestACESTonemap(t *testing.T) {
	if got := ACESTonemap(0); got != 0 {
		t.Errorf("ACESTonemap(0) = %v", got)
	}
	prev := 0.0
	for x := 0.1; x < 20; x += 0.1 {
		y := ACESTonemap(x)
		if y <= prev {
			t.Fatalf("not increasing at %v", x)
		}
		prev = y
	}
	if prev > 1.04 {
		t.Errorf("ACESTonemap(20) = %v, should saturate near 1", prev)
	}
}

func TestParseTonemap(t *testing.T) {
	for in, want := range map[string]Tonemap{"": TonemapNone, "none": TonemapNone, "aces": TonemapACES} {
		if got, err := ParseTonemap(in); err != nil || got != want {
			t.Errorf("ParseTonemap(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseTonemap("reinhard"); err == nil {
		t.Error("expected error")
	}
}

func testFrame(t *testing.T) *render.FrameBuffer {
	t.Helper()
	fb, err := render.NewFrameBuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.Set(0, 0, mathutil.Vec3{0.25, 0, 1})
	fb.Set(1, 0, mathutil.Vec3{4, -1, math.NaN()})
	fb.Set(0, 1, mathutil.Vec3{1, 1, 1})
	return fb
}

func TestToNRGBA(t *testing.T) {
	img := ToNRGBA(testFrame(t), DefaultOptions())

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{128, 0, 255, 255}},
		{1, 0, color.NRGBA{255, 0, 0, 255}},
		{0, 1, color.NRGBA{255, 255, 255, 255}},
		{1, 1, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestToNRGBAACES(t *testing.T) {
	img := ToNRGBA(testFrame(t), Options{Gamma: 1, Tonemap: TonemapACES})
	// ACES(1) is about 0.80.
	if got := img.NRGBAAt(0, 1).R; got != uint8(256*ACESTonemap(1)) {
		t.Errorf("R = %d, want %d", got, uint8(256*ACESTonemap(1)))
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsample(t *testing.T) {
	c := color.NRGBA{40, 120, 200, 255}
	out := Downsample(solid(8, 6, c), 4, 3)
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 3 {
		t.Fatalf("size = %v", out.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := out.NRGBAAt(x, y)
			if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 || got.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want about %v", x, y, got, c)
			}
		}
	}

	small := solid(4, 3, c)
	if Downsample(small, 4, 3) != small {
		t.Error("same-size image should be returned as is")
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"out.webp":       FormatWebP,
		"dir/OUT.PNG":    FormatPNG,
		"a.jpg":          FormatJPEG,
		"renders/x.jpeg": FormatJPEG,
	}
	for path, want := range tests {
		if got, err := FormatFromPath(path); err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("out.gif"); err == nil {
		t.Error("expected error for .gif")
	}
}

func TestEncode(t *testing.T) {
	img := solid(6, 4, color.NRGBA{10, 20, 30, 255})

	t.Run("webp", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatWebP, 0); err != nil {
			t.Fatal(err)
		}
		b := buf.Bytes()
		if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
			t.Errorf("not a WebP container: % x", b[:min(len(b), 12)])
		}
	})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatPNG, 0); err != nil {
			t.Fatal(err)
		}
		dec, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if r, _, _, _ := dec.At(2, 2).RGBA(); r>>8 != 10 {
			t.Errorf("decoded R = %d, want 10", r>>8)
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatJPEG, 60); err != nil {
			t.Fatal(err)
		}
		dec, err := jpeg.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if dec.Bounds().Dx() != 6 {
			t.Errorf("decoded width = %d", dec.Bounds().Dx())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Encode(&bytes.Buffer{}, img, "tiff", 0); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "render.png")
	if err := Save(path, solid(3, 3, color.NRGBA{255, 0, 0, 255}), DefaultQuality); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("stat %s: %v", path, err)
	}

	if err := Save(filepath.Join(dir, "render.bmp"), solid(1, 1, color.NRGBA{}), 0); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
