package render

import (
	"errors"
	"fmt"

	"mc-raytracer/internal/mathutil"

	"github.com/shirou/gopsutil/mem"
)

// ErrImageTooLarge is returned when the framebuffer would not fit in available memory.
var ErrImageTooLarge = errors.New("render: image too large for available memory")

const bytesPerPixel = 3 * 8

// FrameBuffer holds linear RGB as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []float64 // RGB interleaved, len = W*H*3, row-major from the top
}

// NewFrameBuffer allocates a black buffer after checking that it fits in memory.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("render: invalid framebuffer size %dx%d", w, h)
	}
	need := uint64(w) * uint64(h) * bytesPerPixel
	if need/bytesPerPixel/uint64(w) != uint64(h) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, w, h)
	}
	// Without memory stats only the overflow check applies.
	if vm, err := mem.VirtualMemory(); err == nil && need > vm.Available {
		return nil, fmt.Errorf("%w: %dx%d needs %d MiB, %d MiB available",
			ErrImageTooLarge, w, h, need>>20, vm.Available>>20)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]float64, w*h*3),
	}, nil
}

func (fb *FrameBuffer) Set(i, j int, c mathutil.Vec3) {
	o := (j*fb.Width + i) * 3
	fb.Pix[o] = c[0]
	fb.Pix[o+1] = c[1]
	fb.Pix[o+2] = c[2]
}

func (fb *FrameBuffer) At(i, j int) mathutil.Vec3 {
	o := (j*fb.Width + i) * 3
	return mathutil.Vec3{fb.Pix[o], fb.Pix[o+1], fb.Pix[o+2]}
}
