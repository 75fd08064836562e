package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mc-raytracer/internal/batch"
	"mc-raytracer/internal/config"
	"mc-raytracer/internal/render"
	"mc-raytracer/internal/scene"
	"mc-raytracer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", "Built-in scene name, or a comma-separated list")
	sceneFile := flag.String("scene-file", "", "JSON scene file (overrides -scene)")
	outPath := flag.String("output", "", "Output image, .webp/.png/.jpg (default: render.webp)")
	width := flag.Int("width", 0, "Image width in pixels (default: 400)")
	height := flag.Int("height", 0, "Image height in pixels (default: width / aspect ratio)")
	samples := flag.Int("spp", 0, "Samples per pixel (default: 10)")
	maxDepth := flag.Int("depth", 0, "Maximum bounces per path (default: 50)")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downsample (default: 1)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	mode := flag.String("mode", "", "Integrator: diffuse or normals")
	tonemap := flag.String("tonemap", "", "Tonemap: none or aces")
	seed := flag.Int64("seed", 0, "Random seed (default: 42)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	texDir := flag.String("textures", "", "Directory searched for image textures by name")
	manifest := flag.Bool("manifest", false, "Write manifest.json next to the outputs")
	list := flag.Bool("list", false, "List built-in scenes and exit")

	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	var scenes []string
	if strings.Contains(*sceneName, ",") {
		scenes = strings.Split(*sceneName, ",")
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:       *sceneName,
		SceneFile:   *sceneFile,
		Output:      *outPath,
		Width:       *width,
		Height:      *height,
		Samples:     *samples,
		MaxDepth:    *maxDepth,
		Supersample: *supersample,
		Quality:     *quality,
		Mode:        *mode,
		Tonemap:     *tonemap,
		Seed:        *seed,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build texture index
	var texIndex *texture.Index
	if *texDir != "" {
		texIndex = texture.BuildIndex(*texDir)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	}
	texCache := texture.NewCache(texIndex)

	jobs := batch.Jobs(cfg, scenes)

	fmt.Printf("Monte Carlo ray tracer -> %s\n", strings.TrimPrefix(filepath.Ext(cfg.Output), "."))
	fmt.Printf("Scenes: %d, Size: %dx%d (x%d), Samples: %d, Depth: %d, Workers: %d\n",
		len(jobs), cfg.Width, cfg.Height, cfg.Supersample, cfg.SamplesPerPixel, cfg.MaxDepth, cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Render:      cfg,
		TexResolver: texCache,
		Logger:      render.NewLogger(os.Stdout),
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var discarded int64
	for _, r := range results {
		discarded += r.Discarded
		if r.Success {
			success++
			fmt.Printf("  %s: %s\n", r.Scene, r.Output)
		} else {
			failed++
			fmt.Printf("  %s: FAILED %s\n", r.Scene, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))
	if n := texCache.Len(); n > 0 {
		fmt.Printf("Textures loaded: %d\n", n)
	}
	if discarded > 0 {
		fmt.Printf("Discarded samples (NaN/Inf): %d\n", discarded)
	}

	// Write manifest
	if *manifest {
		manifestPath := filepath.Join(filepath.Dir(cfg.Output), "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
