package node

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/milk9111/tilenode/action"
	"github.com/milk9111/tilenode/common"
)

// Sprite is a textured node with a fill color that is blended over the
// texture by ColorBlendFactor, plus a set of keyed actions driving it.
type Sprite struct {
	texture common.Texture
	color   color.RGBA
	blend   float64
	width   int
	height  int

	actions *action.Runner
}

// NewSprite creates a sprite sized to tex's native size.
func NewSprite(tex common.Texture, c color.RGBA) *Sprite {
	w, h := common.TextureSize(tex)
	s := &Sprite{
		texture: tex,
		color:   c,
		width:   w,
		height:  h,
	}
	s.actions = action.NewRunner(s)
	return s
}

func (s *Sprite) Texture() common.Texture { return s.texture }

// SetTexture swaps the displayed texture. The node keeps its size.
func (s *Sprite) SetTexture(tex common.Texture) { s.texture = tex }

func (s *Sprite) Color() color.RGBA { return s.color }

func (s *Sprite) SetColor(c color.RGBA) { s.color = c }

func (s *Sprite) ColorBlendFactor() float64 { return s.blend }

func (s *Sprite) SetColorBlendFactor(f float64) { s.blend = common.Clamp01(f) }

func (s *Sprite) Size() (int, int) { return s.width, s.height }

// Run installs a under key, replacing any action already there.
func (s *Sprite) Run(key string, a action.Action, onComplete func()) *action.Handle {
	return s.actions.Run(key, a, onComplete)
}

func (s *Sprite) RemoveAction(key string) bool { return s.actions.Remove(key) }

func (s *Sprite) RemoveAllActions() { s.actions.RemoveAll() }

func (s *Sprite) Action(key string) (*action.Handle, bool) { return s.actions.Action(key) }

func (s *Sprite) HasActions() bool { return s.actions.Len() > 0 }

// Update advances the sprite's actions by dt seconds.
func (s *Sprite) Update(dt float64) {
	s.actions.Update(dt)
}

// Draw draws the current texture scaled to the node size. The fill color
// replaces the texture color in proportion to the blend factor; alpha comes
// from the texture. Textures that are not ebiten images are skipped.
func (s *Sprite) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if s == nil || screen == nil {
		return
	}
	img, ok := s.texture.(*ebiten.Image)
	if !ok || img == nil {
		return
	}

	var dop colorm.DrawImageOptions
	if op != nil {
		dop.GeoM = op.GeoM
	}
	tw, th := common.TextureSize(img)
	if tw > 0 && th > 0 && (tw != s.width || th != s.height) {
		var scale ebiten.GeoM
		scale.Scale(float64(s.width)/float64(tw), float64(s.height)/float64(th))
		scale.Concat(dop.GeoM)
		dop.GeoM = scale
	}
	dop.Filter = ebiten.FilterNearest

	colorm.DrawImage(screen, img, blendMatrix(s.color, s.blend), &dop)
}

func blendMatrix(c color.RGBA, blend float64) colorm.ColorM {
	var cm colorm.ColorM
	if blend <= 0 {
		return cm
	}
	keep := 1 - blend
	cm.Scale(keep, keep, keep, 1)
	cm.Translate(
		float64(c.R)/0xff*blend,
		float64(c.G)/0xff*blend,
		float64(c.B)/0xff*blend,
		0,
	)
	return cm
}
