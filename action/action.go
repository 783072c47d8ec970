// Package action provides keyed, time driven effects for visual nodes. Actions
// are advanced by the owning game loop through Runner.Update; nothing here
// blocks or spawns goroutines.
package action

import (
	"image/color"
	"math"

	"github.com/milk9111/tilenode/common"
)

// Target is the node state an action is allowed to drive.
type Target interface {
	SetTexture(tex common.Texture)
	Color() color.RGBA
	SetColor(c color.RGBA)
	ColorBlendFactor() float64
	SetColorBlendFactor(f float64)
}

// Action is an immutable description of an effect over time. Start is called
// once when the action is installed, Apply every time its elapsed time moves.
type Action interface {
	// Duration in seconds. math.Inf(1) for actions that never finish.
	Duration() float64
	Start(t Target)
	Apply(t Target, elapsed float64)
}

// Animate swaps the target's texture through a sequence, holding each one for
// a fixed time.
type Animate struct {
	textures     []common.Texture
	timePerFrame float64
}

func NewAnimate(textures []common.Texture, timePerFrame float64) *Animate {
	copied := append([]common.Texture(nil), textures...)
	return &Animate{textures: copied, timePerFrame: timePerFrame}
}

// Textures returns a copy of the frame sequence.
func (a *Animate) Textures() []common.Texture {
	return append([]common.Texture(nil), a.textures...)
}

func (a *Animate) TimePerFrame() float64 { return a.timePerFrame }

func (a *Animate) Duration() float64 {
	return float64(len(a.textures)) * a.timePerFrame
}

func (a *Animate) Start(t Target) {}

func (a *Animate) Apply(t Target, elapsed float64) {
	if len(a.textures) == 0 {
		return
	}
	t.SetTexture(a.textures[a.frameAt(elapsed)])
}

// frameAt maps elapsed seconds to a frame index, clamped to the sequence.
func (a *Animate) frameAt(elapsed float64) int {
	if a.timePerFrame <= 0 {
		return len(a.textures) - 1
	}
	idx := int(math.Floor(elapsed / a.timePerFrame))
	if idx < 0 {
		return 0
	}
	if idx >= len(a.textures) {
		return len(a.textures) - 1
	}
	return idx
}

// Repeat plays an inner action over and over without end.
type Repeat struct {
	inner Action
}

func NewRepeat(inner Action) *Repeat {
	return &Repeat{inner: inner}
}

func (r *Repeat) Inner() Action { return r.inner }

func (r *Repeat) Duration() float64 { return math.Inf(1) }

func (r *Repeat) Start(t Target) { r.inner.Start(t) }

func (r *Repeat) Apply(t Target, elapsed float64) {
	d := r.inner.Duration()
	if d <= 0 || math.IsInf(d, 1) {
		r.inner.Apply(t, elapsed)
		return
	}
	r.inner.Apply(t, math.Mod(elapsed, d))
}

// Colorize blends the target's fill color and blend factor toward fixed
// values. The starting values are captured when the action starts, so a
// Colorize must not be installed on more than one runner at a time.
type Colorize struct {
	color    color.RGBA
	blend    float64
	duration float64

	fromColor color.RGBA
	fromBlend float64
}

func NewColorize(c color.RGBA, blend, duration float64) *Colorize {
	return &Colorize{color: c, blend: blend, duration: duration}
}

func (c *Colorize) TargetColor() color.RGBA { return c.color }

func (c *Colorize) TargetBlendFactor() float64 { return c.blend }

func (c *Colorize) Duration() float64 { return c.duration }

func (c *Colorize) Start(t Target) {
	c.fromColor = t.Color()
	c.fromBlend = t.ColorBlendFactor()
}

func (c *Colorize) Apply(t Target, elapsed float64) {
	p := 1.0
	if c.duration > 0 {
		p = common.Clamp01(elapsed / c.duration)
	}
	t.SetColor(common.LerpColor(c.fromColor, c.color, p))
	t.SetColorBlendFactor(common.Lerp(c.fromBlend, c.blend, p))
}
