package tileset

import (
	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/tile"
)

// TileData is the definition of one tileset cell. It never changes after the
// tileset is built.
type TileData struct {
	id          tile.FrameID
	name        string
	texture     common.Texture
	frames      []tile.FrameID
	duration    float64
	description string
	tileset     *Tileset
}

func (d *TileData) ID() tile.FrameID { return d.id }

func (d *TileData) Name() string { return d.name }

func (d *TileData) Texture() common.Texture { return d.texture }

// Frames returns a copy of the animation frame ids.
func (d *TileData) Frames() []tile.FrameID {
	return append([]tile.FrameID(nil), d.frames...)
}

func (d *TileData) Duration() float64 { return d.duration }

func (d *TileData) IsAnimated() bool { return len(d.frames) > 0 }

func (d *TileData) Description() string { return d.description }

func (d *TileData) Tileset() tile.Tileset { return d.tileset }

var _ tile.Data = (*TileData)(nil)
