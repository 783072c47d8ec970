package common

import (
	"image/color"
	"math"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpColor interpolates each channel of a and b independently. t is clamped
// to [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(Lerp(float64(a), float64(b), t)))
}
