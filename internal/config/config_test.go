package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"mc-raytracer/internal/output"
	"mc-raytracer/internal/render"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	want := Config{
		Scene:           "default",
		Output:          "render.webp",
		Width:           400,
		Height:          225,
		AspectRatio:     16.0 / 9.0,
		Supersample:     1,
		Quality:         90,
		Gamma:           2,
		Tonemap:         "none",
		SamplesPerPixel: 10,
		MaxDepth:        50,
		Mode:            "diffuse",
		Seed:            42,
		TMin:            1e-3,
		Workers:         runtime.NumCPU(),
	}
	if c != want {
		t.Errorf("Resolve defaults:\n got %+v\nwant %+v", c, want)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	c := Config{Scene: "checker", Width: 800, Quality: 50, Workers: 2}
	c.Resolve(Flags{
		Scene:   "noise",
		Width:   100,
		Samples: 4,
		Mode:    "normals",
		Seed:    9,
	})

	if c.Scene != "noise" || c.Width != 100 || c.SamplesPerPixel != 4 || c.Mode != "normals" || c.Seed != 9 {
		t.Errorf("flags not applied: %+v", c)
	}
	// Untouched file values survive.
	if c.Quality != 50 || c.Workers != 2 {
		t.Errorf("file values lost: %+v", c)
	}
	if c.Height != 56 {
		t.Errorf("Height = %d, want 56", c.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "wireframe" }},
		{"tonemap", func(c *Config) { c.Tonemap = "filmic" }},
		{"output", func(c *Config) { c.Output = "out.tiff" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{})
			tt.mod(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"scene_file": "room.json", "width": 320, "height": 240, "supersample": 2, "tonemap": "aces", "t_min": 0.01}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.SceneFile != "room.json" || c.Width != 320 || c.Height != 240 || c.Supersample != 2 || c.TMin != 0.01 {
		t.Errorf("Load = %+v", c)
	}

	c.Resolve(Flags{})
	if c.Height != 240 {
		t.Errorf("explicit height overwritten: %d", c.Height)
	}
	if got := c.OutputOptions(); got.Tonemap != output.TonemapACES || got.Gamma != 2 {
		t.Errorf("OutputOptions = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCamera(t *testing.T) {
	c := Config{Width: 64, Height: 32, Supersample: 3, Mode: "normals"}
	c.Resolve(Flags{})
	cam, err := c.Camera()
	if err != nil {
		t.Fatal(err)
	}
	if cam.ImageWidth != 192 || cam.ImageHeight != 96 {
		t.Errorf("camera size = %dx%d, want 192x96", cam.ImageWidth, cam.ImageHeight)
	}
	if cam.Mode != render.ModeNormals || cam.Seed != 42 || cam.MaxDepth != 50 {
		t.Errorf("camera = %+v", cam)
	}
}
