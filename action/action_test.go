package action

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/tilenode/common"
)

type fakeTarget struct {
	tex   common.Texture
	color color.RGBA
	blend float64
}

func (f *fakeTarget) SetTexture(tex common.Texture) { f.tex = tex }
func (f *fakeTarget) Color() color.RGBA             { return f.color }
func (f *fakeTarget) SetColor(c color.RGBA)         { f.color = c }
func (f *fakeTarget) ColorBlendFactor() float64     { return f.blend }
func (f *fakeTarget) SetColorBlendFactor(b float64) { f.blend = b }

func newTextures(n int) []common.Texture {
	out := make([]common.Texture, n)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, i+1, i+1))
	}
	return out
}

func TestAnimateFrames(t *testing.T) {
	texs := newTextures(3)
	a := NewAnimate(texs, 0.2)

	if math.Abs(a.Duration()-0.6) > 1e-9 {
		t.Fatalf("expected duration 0.6, got %v", a.Duration())
	}

	cases := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{"start", 0, 0},
		{"mid_first", 0.1, 0},
		{"second", 0.25, 1},
		{"third", 0.5, 2},
		{"past_end_clamped", 5, 2},
		{"negative_clamped", -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tgt := &fakeTarget{}
			a.Apply(tgt, c.elapsed)
			if tgt.tex != texs[c.want] {
				t.Fatalf("expected frame %d at %v", c.want, c.elapsed)
			}
		})
	}
}

func TestAnimateCopiesTextures(t *testing.T) {
	texs := newTextures(2)
	a := NewAnimate(texs, 1)
	texs[0] = nil
	if a.Textures()[0] == nil {
		t.Fatalf("animate should not alias the caller's slice")
	}
}

func TestRepeatWrapsInner(t *testing.T) {
	texs := newTextures(2)
	r := NewRepeat(NewAnimate(texs, 0.5))
	if !math.IsInf(r.Duration(), 1) {
		t.Fatalf("repeat should never finish, got %v", r.Duration())
	}

	tgt := &fakeTarget{}
	r.Apply(tgt, 1.25)
	if tgt.tex != texs[0] {
		t.Fatalf("expected wrap to first frame")
	}
	r.Apply(tgt, 1.75)
	if tgt.tex != texs[1] {
		t.Fatalf("expected second frame after wrap")
	}
}

func TestColorizeLerpsFromStart(t *testing.T) {
	tgt := &fakeTarget{color: color.RGBA{A: 0xff}, blend: 0.8}
	c := NewColorize(color.RGBA{}, 0, 2)
	c.Start(tgt)

	c.Apply(tgt, 1)
	if math.Abs(tgt.blend-0.4) > 1e-9 {
		t.Fatalf("expected blend 0.4 halfway, got %v", tgt.blend)
	}
	if tgt.color.A != 0x80 {
		t.Fatalf("expected alpha 0x80 halfway, got %#x", tgt.color.A)
	}

	c.Apply(tgt, 2)
	if tgt.blend != 0 || tgt.color != (color.RGBA{}) {
		t.Fatalf("expected final values, got %v %v", tgt.color, tgt.blend)
	}
}
