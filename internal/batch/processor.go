package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mc-raytracer/internal/config"
	"mc-raytracer/internal/output"
	"mc-raytracer/internal/render"
	"mc-raytracer/internal/scene"
	"mc-raytracer/internal/texture"
)

// Job is one scene to render. SceneFile takes priority over Scene.
type Job struct {
	Scene     string
	SceneFile string
	Output    string
}

// Config holds all shared resources for a batch run.
type Config struct {
	Render      config.Config
	TexResolver texture.Resolver
	Logger      render.Logger
}

// Result holds the outcome of rendering one job.
type Result struct {
	Scene     string
	Output    string
	Width     int
	Height    int
	Samples   int
	Discarded int64
	Duration  time.Duration
	Success   bool
	Error     string
}

// Jobs expands a scene list into jobs. A single scene writes to the
// configured output; several scenes write <name><ext> next to it.
func Jobs(cfg config.Config, scenes []string) []Job {
	if cfg.SceneFile != "" {
		return []Job{{SceneFile: cfg.SceneFile, Output: cfg.Output}}
	}
	if len(scenes) == 0 {
		scenes = []string{cfg.Scene}
	}
	if len(scenes) == 1 {
		return []Job{{Scene: scenes[0], Output: cfg.Output}}
	}

	dir, ext := filepath.Dir(cfg.Output), filepath.Ext(cfg.Output)
	jobs := make([]Job, len(scenes))
	for i, name := range scenes {
		jobs[i] = Job{Scene: strings.TrimSpace(name), Output: filepath.Join(dir, strings.TrimSpace(name)+ext)}
	}
	return jobs
}

// Run renders the jobs one after another. Each render already uses every
// worker, so jobs are not run concurrently.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Logger == nil {
		cfg.Logger = render.Discard
	}
	if cfg.TexResolver == nil {
		cfg.TexResolver = texture.NewCache(nil)
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		cfg.Logger.Printf("[%d/%d] %s -> %s\n", i+1, len(jobs), job.name(), job.Output)
		results[i] = processJob(cfg, job)
		if r := results[i]; r.Success {
			cfg.Logger.Printf("  done in %.1fs\n", r.Duration.Seconds())
		} else {
			cfg.Logger.Printf("  failed: %s\n", r.Error)
		}
	}
	return results
}

func (j Job) name() string {
	if j.SceneFile != "" {
		return j.SceneFile
	}
	return j.Scene
}

func processJob(cfg Config, job Job) Result {
	rc := cfg.Render
	res := Result{
		Scene:   job.name(),
		Output:  job.Output,
		Width:   rc.Width,
		Height:  rc.Height,
		Samples: rc.SamplesPerPixel,
	}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	var sc *scene.Scene
	var err error
	if job.SceneFile != "" {
		sc, err = scene.Load(job.SceneFile, cfg.TexResolver)
	} else {
		sc, err = scene.Builtin(job.Scene)
	}
	if err != nil {
		return fail(err)
	}

	cam, err := rc.Camera()
	if err != nil {
		return fail(err)
	}
	sc.View.Apply(cam)
	cam.Logger = cfg.Logger
	if err := cam.Initialize(); err != nil {
		return fail(err)
	}

	fb, stats, err := cam.Render(sc.World)
	if err != nil {
		return fail(err)
	}
	res.Discarded = stats.Discarded
	res.Duration = stats.Duration

	img := output.ToNRGBA(fb, rc.OutputOptions())

	// Post-processing: supersample downsample
	if rc.Supersample > 1 {
		img = output.Downsample(img, rc.Width, rc.Height)
	}

	if err := output.Save(job.Output, img, rc.Quality); err != nil {
		return fail(fmt.Errorf("save %s: %w", job.Output, err))
	}

	res.Success = true
	return res
}
