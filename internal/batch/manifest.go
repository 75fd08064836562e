package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Scene     string  `json:"scene"`
	Image     string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Samples   int     `json:"samples_per_pixel"`
	Discarded int64   `json:"discarded_samples"`
	Seconds   float64 `json:"seconds"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes the results as JSON. Image paths are made relative
// to the manifest's directory when possible.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Scene:     r.Scene,
			Image:     img,
			Width:     r.Width,
			Height:    r.Height,
			Samples:   r.Samples,
			Discarded: r.Discarded,
			Seconds:   r.Duration.Seconds(),
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
