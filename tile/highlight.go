package tile

import (
	"github.com/milk9111/tilenode/action"
	"github.com/milk9111/tilenode/common"
)

func (t *Tile) Highlight() bool { return t.highlight }

// SetHighlight shows or clears the debug overlay. Turning it on darkens the
// tile and fades the overlay out over HighlightDuration, after which the
// highlight switches itself off. Turning it off clears the overlay at once.
func (t *Tile) SetHighlight(on bool) {
	if t.highlight == on {
		return
	}
	t.highlight = on

	t.RemoveAction(HighlightKey)
	if !on {
		t.SetColor(common.Transparent)
		t.SetColorBlendFactor(0)
		return
	}

	t.SetColor(HighlightColor)
	t.SetColorBlendFactor(HighlightBlendFactor)
	fade := action.NewColorize(common.Transparent, 0, HighlightDuration)
	t.Run(HighlightKey, fade, func() { t.SetHighlight(false) })
}

func (t *Tile) ToggleHighlight() {
	t.SetHighlight(!t.highlight)
}
