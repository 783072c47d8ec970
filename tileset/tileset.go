// Package tileset slices a sheet image into tile textures and exposes the
// per-tile definitions that map tiles are built from.
package tileset

import (
	"fmt"
	"image"
	"strings"

	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/tile"
)

// Sheet is the source image of a tileset. *ebiten.Image and the standard
// library image types satisfy it.
type Sheet interface {
	Bounds() image.Rectangle
	SubImage(r image.Rectangle) image.Image
}

// Tileset holds one TileData per cell of its sheet, numbered row-major from 0.
type Tileset struct {
	Name       string
	TileWidth  int
	TileHeight int

	cols  int
	rows  int
	tiles []*TileData
}

// New builds a tileset from spec, cutting one texture per cell out of sheet.
func New(spec *Spec, sheet Sheet) (*Tileset, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, ErrNoSheet
	}

	bounds := sheet.Bounds()
	cols := bounds.Dx() / spec.TileWidth
	rows := bounds.Dy() / spec.TileHeight
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: sheet %dx%d, tile %dx%d", ErrSheetTooSmall, bounds.Dx(), bounds.Dy(), spec.TileWidth, spec.TileHeight)
	}

	ts := &Tileset{
		Name:       spec.Name,
		TileWidth:  spec.TileWidth,
		TileHeight: spec.TileHeight,
		cols:       cols,
		rows:       rows,
		tiles:      make([]*TileData, cols*rows),
	}

	for i := range ts.tiles {
		col := i % cols
		row := i / cols
		sx := bounds.Min.X + col*spec.TileWidth
		sy := bounds.Min.Y + row*spec.TileHeight
		r := image.Rect(sx, sy, sx+spec.TileWidth, sy+spec.TileHeight)
		ts.tiles[i] = &TileData{
			id:          tile.FrameID(i),
			texture:     sheet.SubImage(r),
			description: fmt.Sprintf("Tile %d", i),
			tileset:     ts,
		}
	}

	for _, s := range spec.Tiles {
		if s.ID >= len(ts.tiles) {
			return nil, fmt.Errorf("%w: %d (sheet holds %d tiles)", ErrTileOutOfRange, s.ID, len(ts.tiles))
		}
		td := ts.tiles[s.ID]
		td.name = s.Name
		td.description = describe(s)
		td.duration = s.Duration
		td.frames = make([]tile.FrameID, len(s.Frames))
		for i, f := range s.Frames {
			td.frames[i] = tile.FrameID(f)
		}
	}

	return ts, nil
}

// Resolve returns the texture of tile id, or false when id is not a cell of
// the sheet.
func (ts *Tileset) Resolve(id tile.FrameID) (common.Texture, bool) {
	td, ok := ts.TileData(id)
	if !ok {
		return nil, false
	}
	return td.texture, true
}

func (ts *Tileset) TileData(id tile.FrameID) (*TileData, bool) {
	if ts == nil || id < 0 || int(id) >= len(ts.tiles) {
		return nil, false
	}
	return ts.tiles[id], true
}

func (ts *Tileset) Len() int { return len(ts.tiles) }

// Grid returns the number of columns and rows in the sheet.
func (ts *Tileset) Grid() (int, int) { return ts.cols, ts.rows }

func describe(s TileSpec) string {
	parts := make([]string, 0, len(s.Properties)+1)
	if s.Name != "" {
		parts = append(parts, s.Name)
	} else {
		parts = append(parts, fmt.Sprintf("Tile %d", s.ID))
	}
	for _, p := range s.Properties {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Value))
	}
	return strings.Join(parts, ", ")
}
