package common

import (
	"image"
	"image/color"
)

const (
	// TileSize is the on-screen size of a single map cell in pixels.
	TileSize = 32

	// TPS is the fixed update rate of the game loop.
	TPS = 60
)

// Transparent is the fully transparent fill color.
var Transparent = color.RGBA{}

// Texture is a handle to drawable pixel data. *ebiten.Image satisfies it, as
// does any image.Image, which keeps nodes usable without a graphics context.
type Texture interface {
	Bounds() image.Rectangle
}

// TextureSize returns the native pixel size of tex, or zero for a nil handle.
func TextureSize(tex Texture) (int, int) {
	if tex == nil {
		return 0, 0
	}
	b := tex.Bounds()
	return b.Dx(), b.Dy()
}

// DeltaTime is the simulated time covered by one update tick, in seconds.
func DeltaTime() float64 {
	return 1.0 / TPS
}
