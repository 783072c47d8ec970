// Package tile implements a single renderable map tile bound to its tileset
// definition. A Tile can cycle through animation frames and show a debug
// highlight that fades out on its own.
package tile

import (
	"image/color"

	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/node"
	"golang.org/x/image/colornames"
)

const (
	AnimationKey = "TILE_ANIMATION"
	HighlightKey = "DEBUG_FADE"

	// HighlightDuration is how long, in seconds, the highlight takes to fade.
	HighlightDuration    = 2.5
	HighlightBlendFactor = 0.7
)

// HighlightColor is the overlay color of a highlighted tile.
var HighlightColor color.RGBA = colornames.Black

type Tile struct {
	*node.Sprite

	data  Data
	layer LayerRef

	highlight      bool
	pauseAnimation bool
}

// New creates a tile showing data's texture at its native size. The tile has
// no fill color and no actions until it is animated or highlighted.
func New(data Data) *Tile {
	if data == nil {
		panic("tile: nil tile data")
	}
	return &Tile{
		Sprite: node.NewSprite(data.Texture(), common.Transparent),
		data:   data,
	}
}

func (t *Tile) Data() Data { return t.data }

// UnmarshalBinary always panics. Tiles are built from tileset data and
// cannot be restored from an encoded form.
func (t *Tile) UnmarshalBinary([]byte) error {
	panic("tile: decoding a tile from an encoded form is not supported")
}

// GobDecode always panics, see UnmarshalBinary.
func (t *Tile) GobDecode(b []byte) error {
	return t.UnmarshalBinary(b)
}
