package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExts ranks the supported extensions; lower rank wins when two files
// share a stem (lossless formats over JPEG).
var imageExts = map[string]int{
	".png":  0,
	".tga":  1,
	".bmp":  2,
	".jpg":  3,
	".jpeg": 3,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks each directory (recursively) for supported image files.
// Missing directories are skipped.
func BuildIndex(dirs ...string) *Index {
	idx := &Index{entries: make(map[string]string)}

	for _, dir := range dirs {
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			rank, ok := imageExts[ext]
			if !ok {
				return nil
			}
			stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

			existing, exists := idx.entries[stem]
			if !exists || rank < imageExts[strings.ToLower(filepath.Ext(existing))] {
				idx.entries[stem] = path
			}
			return nil
		})
	}

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
