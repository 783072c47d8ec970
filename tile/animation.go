package tile

import (
	"log"

	"github.com/milk9111/tilenode/action"
	"github.com/milk9111/tilenode/common"
)

// RunAnimation starts cycling the tile through its animation frames forever.
// It does nothing for tiles that are not animated. If any frame cannot be
// resolved the failure is logged and no animation is installed; callers can
// check AnimationAction to see whether one is running.
func (t *Tile) RunAnimation() {
	if !t.data.IsAnimated() {
		return
	}

	ts := t.data.Tileset()
	frames := t.data.Frames()
	textures := make([]common.Texture, 0, len(frames))
	for _, id := range frames {
		var tex common.Texture
		ok := false
		if ts != nil {
			tex, ok = ts.Resolve(id)
		}
		if !ok || tex == nil {
			log.Printf("tile: cannot access texture for frame id %d", id)
			return
		}
		textures = append(textures, tex)
	}

	h := t.Run(AnimationKey, action.NewRepeat(action.NewAnimate(textures, t.data.Duration())), nil)
	if t.pauseAnimation {
		h.SetSpeed(0)
	}
}

// AnimationAction returns the installed animation, if any.
func (t *Tile) AnimationAction() (*action.Handle, bool) {
	return t.Action(AnimationKey)
}

func (t *Tile) AnimationPaused() bool { return t.pauseAnimation }

// SetPauseAnimation freezes or resumes the running animation in place.
func (t *Tile) SetPauseAnimation(paused bool) {
	if t.pauseAnimation == paused {
		return
	}
	t.pauseAnimation = paused

	h, ok := t.AnimationAction()
	if !ok {
		return
	}
	if paused {
		h.SetSpeed(0)
	} else {
		h.SetSpeed(1)
	}
}
