// Command texinspect loads image textures the way the renderer does and
// prints their size, channel ranges and a few UV samples.
package main

import (
	"flag"
	"fmt"
	"os"

	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/texture"
)

func main() {
	dir := flag.String("dir", "", "Resolve names through an index of this directory")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: texinspect [-dir textures] name-or-path...")
		os.Exit(2)
	}

	var idx *texture.Index
	if *dir != "" {
		idx = texture.BuildIndex(*dir)
		fmt.Printf("Index: %d textures under %s\n", idx.Len(), *dir)
	}

	errors := 0
	for _, name := range flag.Args() {
		if err := inspect(idx, name); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		os.Exit(1)
	}
}

func inspect(idx *texture.Index, name string) error {
	path := name
	if idx != nil {
		if p, ok := idx.ResolvePath(name); ok {
			path = p
		}
	}

	img, err := texture.Load(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fmt.Printf("%s: %dx%d\n", path, w, h)

	var minC, maxC [4]uint8
	var sum [4]float64
	minC = [4]uint8{255, 255, 255, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			for c := 0; c < 4; c++ {
				v := img.Pix[o+c]
				sum[c] += float64(v)
				minC[c] = min(minC[c], v)
				maxC[c] = max(maxC[c], v)
			}
		}
	}
	n := float64(w * h)
	for c, label := range []string{"R", "G", "B", "A"} {
		fmt.Printf("  %s: min=%d max=%d avg=%.1f\n", label, minC[c], maxC[c], sum[c]/n)
	}

	// UV samples, v up
	tex := texture.NewImage(img)
	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {0, 1}} {
		c := tex.Sample(uv[0], uv[1], mathutil.Vec3{})
		fmt.Printf("  uv(%.1f,%.1f) = (%.3f, %.3f, %.3f)\n", uv[0], uv[1], c[0], c[1], c[2])
	}
	return nil
}
