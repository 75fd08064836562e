package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"mc-raytracer/internal/output"
	"mc-raytracer/internal/render"
	"mc-raytracer/internal/scene"
)

// Config holds the scene selection and all render settings.
type Config struct {
	// Scene
	Scene     string `json:"scene"`      // built-in scene name
	SceneFile string `json:"scene_file"` // JSON scene, takes priority over Scene
	Output    string `json:"output"`

	// Image
	Width       int     `json:"width"`
	Height      int     `json:"height"` // 0 = derived from aspect_ratio
	AspectRatio float64 `json:"aspect_ratio"`
	Supersample int     `json:"supersample"`
	Quality     int     `json:"quality"`
	Gamma       float64 `json:"gamma"`
	Tonemap     string  `json:"tonemap"`

	// Sampling
	SamplesPerPixel int     `json:"samples_per_pixel"`
	MaxDepth        int     `json:"max_depth"`
	Mode            string  `json:"mode"`
	Seed            int64   `json:"seed"`
	TMin            float64 `json:"t_min"`
	Workers         int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Samples > 0 {
		c.SamplesPerPixel = flags.Samples
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Tonemap != "" {
		c.Tonemap = flags.Tonemap
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Scene == "" {
		c.Scene = scene.DefaultName
	}
	if c.Output == "" {
		c.Output = "render.webp"
	}
	if c.Width <= 0 {
		c.Width = render.DefaultImageWidth
	}
	if c.AspectRatio <= 0 {
		c.AspectRatio = render.DefaultAspectRatio
	}
	if c.Height <= 0 {
		c.Height = max(int(float64(c.Width)/c.AspectRatio), 1)
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = render.DefaultSamples
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = render.DefaultMaxDepth
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Quality <= 0 || c.Quality > 100 {
		c.Quality = output.DefaultQuality
	}
	if c.Gamma <= 0 {
		c.Gamma = 2.0
	}
	if c.Tonemap == "" {
		c.Tonemap = string(output.TonemapNone)
	}
	if c.Mode == "" {
		c.Mode = string(render.ModeDiffuse)
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.TMin <= 0 {
		c.TMin = render.DefaultTMin
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks the enumerated settings after Resolve.
func (c *Config) Validate() error {
	if _, err := render.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := output.ParseTonemap(c.Tonemap); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := output.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Camera builds an uninitialized camera at the render resolution, which is
// Supersample times the output size.
func (c *Config) Camera() (*render.Camera, error) {
	mode, err := render.ParseMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cam := render.NewCamera()
	cam.ImageWidth = c.Width * c.Supersample
	cam.ImageHeight = c.Height * c.Supersample
	cam.AspectRatio = c.AspectRatio
	cam.SamplesPerPixel = c.SamplesPerPixel
	cam.MaxDepth = c.MaxDepth
	cam.Mode = mode
	cam.Seed = c.Seed
	cam.TMin = c.TMin
	cam.Workers = c.Workers
	return cam, nil
}

// OutputOptions returns the tonemap and gamma settings for the output stage.
func (c *Config) OutputOptions() output.Options {
	tm, err := output.ParseTonemap(c.Tonemap)
	if err != nil {
		tm = output.TonemapNone
	}
	return output.Options{Gamma: c.Gamma, Tonemap: tm}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	SceneFile   string
	Output      string
	Width       int
	Height      int
	Samples     int
	MaxDepth    int
	Supersample int
	Quality     int
	Mode        string
	Tonemap     string
	Seed        int64
	Workers     int
}
