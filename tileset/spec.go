package tileset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTileSize = errors.New("tileset: tile size must be positive")
	ErrNoSheet         = errors.New("tileset: sheet is nil")
	ErrSheetTooSmall   = errors.New("tileset: sheet smaller than one tile")
	ErrDuplicateTile   = errors.New("tileset: duplicate tile id")
	ErrTileOutOfRange  = errors.New("tileset: tile id outside sheet")
	ErrInvalidDuration = errors.New("tileset: animated tile needs a positive duration")
)

// Spec describes a tileset sheet and the tiles in it that carry extra data.
// Cells without an entry still exist as plain, unnamed tiles.
type Spec struct {
	Name       string     `yaml:"name"`
	Image      string     `yaml:"image"`
	TileWidth  int        `yaml:"tile_width"`
	TileHeight int        `yaml:"tile_height"`
	Tiles      []TileSpec `yaml:"tiles"`
}

type TileSpec struct {
	ID         int            `yaml:"id"`
	Name       string         `yaml:"name"`
	Properties []PropertySpec `yaml:"properties"`
	// Frames lists the tile ids cycled through when animated. They are
	// resolved when a tile starts animating, not at load time.
	Frames   []int   `yaml:"frames"`
	Duration float64 `yaml:"duration"`
}

type PropertySpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ParseSpec decodes and validates a YAML tileset spec.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tileset: unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadSpec loads a spec by name, preferring the copy on disk.
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("tileset: load %s: %w", name, err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, name)
	}
	return spec, nil
}

// Validate checks the parts of a spec that do not depend on the sheet.
func (s *Spec) Validate() error {
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, s.TileWidth, s.TileHeight)
	}
	seen := make(map[int]struct{}, len(s.Tiles))
	for _, ts := range s.Tiles {
		if _, ok := seen[ts.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateTile, ts.ID)
		}
		seen[ts.ID] = struct{}{}
		if ts.ID < 0 {
			return fmt.Errorf("%w: %d", ErrTileOutOfRange, ts.ID)
		}
		if len(ts.Frames) > 0 && ts.Duration <= 0 {
			return fmt.Errorf("%w: tile %d", ErrInvalidDuration, ts.ID)
		}
	}
	return nil
}
