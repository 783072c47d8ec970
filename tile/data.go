package tile

import "github.com/milk9111/tilenode/common"

// FrameID identifies a tile within its tileset. Animation frames are listed
// as FrameIDs and resolved to textures through the tileset.
type FrameID int

// Tileset resolves frame ids to textures.
type Tileset interface {
	Resolve(id FrameID) (common.Texture, bool)
}

// Data is the immutable definition a Tile is built from. Implementations must
// not change any returned value while a Tile references them.
type Data interface {
	Texture() common.Texture
	Frames() []FrameID
	// Duration is the time each animation frame is held, in seconds.
	Duration() float64
	IsAnimated() bool
	// Description is a comma separated list: a base description followed by
	// "name: value" property entries.
	Description() string
	Tileset() Tileset
}
