package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output file format, chosen from the file extension.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

const DefaultQuality = 90

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("output: unsupported extension %q", filepath.Ext(path))
}

// Encode writes img in format f. Quality applies to JPEG only; WebP is lossless.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	switch f {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("output: webp encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("output: png encode: %w", err)
		}
	case FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("output: jpeg encode: %w", err)
		}
	default:
		return fmt.Errorf("output: unknown format %q", f)
	}
	return nil
}

// Save encodes img to path, creating parent directories as needed.
func Save(path string, img image.Image, quality int) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Encode(file, img, f, quality); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
