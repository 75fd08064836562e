package render

import (
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/mathutil"
)

// Stats summarizes one render.
type Stats struct {
	Pixels    int64
	Samples   int64
	Discarded int64 // samples dropped for NaN or Inf components
	Duration  time.Duration
}

// PixelSeed derives the 128-bit PCG state for pixel (i, j), so a pixel's
// samples do not depend on which worker renders it or when. The base seed
// and the pixel coordinates are hashed into separate halves: distinct
// (base, i, j) triples never share a stream.
func PixelSeed(base int64, i, j int) (hi, lo uint64) {
	return mix64(uint64(base)), mix64(uint64(uint32(j))<<32 | uint64(uint32(i)))
}

// mix64 is the splitmix64 finalizer, a bijection on uint64.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Render traces every pixel of the initialized camera against world.
// Rows are distributed over a worker pool; each worker owns its generator
// and writes only its own rows.
func (c *Camera) Render(world hittable.Hittable) (*FrameBuffer, Stats, error) {
	if !c.initialized {
		return nil, Stats{}, ErrNotInitialized
	}

	fb, err := NewFrameBuffer(c.ImageWidth, c.height)
	if err != nil {
		return nil, Stats{}, err
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := c.Logger
	if log == nil {
		log = Discard
	}

	total := c.height
	var rowsDone, discarded atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := rowsDone.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Printf("  [%d/%d] %.1f rows/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := rand.NewPCG(0, 0)
			rng := rand.New(src)
			for j := range rowChan {
				discarded.Add(c.renderRow(fb, j, world, src, rng))
				rowsDone.Add(1)
			}
		}()
	}

	for j := 0; j < total; j++ {
		rowChan <- j
	}
	close(rowChan)

	wg.Wait()
	close(done)

	pixels := int64(c.ImageWidth) * int64(c.height)
	return fb, Stats{
		Pixels:    pixels,
		Samples:   pixels * int64(c.SamplesPerPixel),
		Discarded: discarded.Load(),
		Duration:  time.Since(start),
	}, nil
}

// renderRow fills row j and returns the number of discarded samples.
// src is the source behind rng; it is reseeded for every pixel.
func (c *Camera) renderRow(fb *FrameBuffer, j int, world hittable.Hittable, src *rand.PCG, rng *rand.Rand) int64 {
	var dropped int64
	for i := 0; i < c.ImageWidth; i++ {
		src.Seed(PixelSeed(c.Seed, i, j))

		var sum mathutil.Vec3
		for s := 0; s < c.SamplesPerPixel; s++ {
			col := c.sampleColor(c.GetRay(i, j, rng), world, rng)
			// A NaN sample counts as black rather than poisoning the pixel.
			if !col.IsFinite() {
				dropped++
				continue
			}
			sum = sum.Add(col)
		}
		fb.Set(i, j, sum.Scale(c.pixelSamplesScale))
	}
	return dropped
}
