package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// decoders selects the codec by extension. The TGA codec registers an empty
// magic prefix, so format sniffing through image.Decode is unreliable.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
}

// Load reads a PNG, JPEG, TGA or BMP file and returns an NRGBA bitmap.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension: %s", ext)
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// LoadImage is Load wrapped into a sampling texture.
func LoadImage(path string) (*Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewImage(img), nil
}

// toNRGBA converts any image to a zero-origin NRGBA bitmap.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
