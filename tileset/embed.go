package tileset

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var TilesetsFS embed.FS

// Load returns the raw spec for name. A file under tilesets/ on disk wins
// over the embedded copy so specs can be edited while the viewer runs.
func Load(name string) ([]byte, error) {
	clean := cleanTilesetPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return TilesetsFS.ReadFile(clean)
}

// DiskPath is where the on-disk override for a spec lives.
func DiskPath(name string) string {
	return filepath.Join("tilesets", filepath.FromSlash(cleanTilesetPath(name)))
}

func cleanTilesetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "tilesets/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "tileset/"); ok {
		s = after
	}
	return s
}
