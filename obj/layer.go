package obj

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/tile"
)

type cell struct {
	col int
	row int
}

// Layer places tiles on a grid of common.TileSize cells.
type Layer struct {
	ID   tile.LayerID
	Name string
	Map  *Map

	tiles map[cell]*tile.Tile
}

func newLayer(m *Map, id tile.LayerID, name string) *Layer {
	return &Layer{
		ID:    id,
		Name:  name,
		Map:   m,
		tiles: make(map[cell]*tile.Tile),
	}
}

// Place creates a tile from data at col, row, replacing any tile already
// there, and starts its animation.
func (ly *Layer) Place(data tile.Data, col, row int) *tile.Tile {
	t := tile.New(data)
	ly.Attach(t, col, row)
	return t
}

// Attach adds an existing tile at col, row and points it back at this layer.
func (ly *Layer) Attach(t *tile.Tile, col, row int) {
	ly.Remove(col, row)
	ly.tiles[cell{col, row}] = t
	t.SetLayer(ly.Map, ly.ID)
	t.RunAnimation()
}

// Remove takes the tile at col, row off the layer and stops its actions.
func (ly *Layer) Remove(col, row int) (*tile.Tile, bool) {
	c := cell{col, row}
	t, ok := ly.tiles[c]
	if !ok {
		return nil, false
	}
	delete(ly.tiles, c)
	t.RemoveAllActions()
	t.ClearLayer()
	return t, true
}

func (ly *Layer) At(col, row int) (*tile.Tile, bool) {
	t, ok := ly.tiles[cell{col, row}]
	return t, ok
}

func (ly *Layer) Len() int { return len(ly.tiles) }

// Tiles returns the layer's tiles in row-major order.
func (ly *Layer) Tiles() []*tile.Tile {
	cells := ly.cells()
	out := make([]*tile.Tile, 0, len(cells))
	for _, c := range cells {
		out = append(out, ly.tiles[c])
	}
	return out
}

// clear forgets every tile without touching their layer references; the map
// is about to drop this layer.
func (ly *Layer) clear() {
	for c, t := range ly.tiles {
		t.RemoveAllActions()
		delete(ly.tiles, c)
	}
}

func (ly *Layer) Update(dt float64) {
	for _, t := range ly.tiles {
		t.Update(dt)
	}
}

// Draw draws the layer's tiles, each scaled to one map cell.
func (ly *Layer) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	for _, c := range ly.cells() {
		t := ly.tiles[c]
		w, h := t.Size()
		if w <= 0 || h <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(common.TileSize)/float64(w), float64(common.TileSize)/float64(h))
		op.GeoM.Translate(float64(c.col*common.TileSize)-camX, float64(c.row*common.TileSize)-camY)
		op.GeoM.Scale(zoom, zoom)
		t.Draw(screen, op)
	}
}

// cells returns the occupied cells in row-major order.
func (ly *Layer) cells() []cell {
	cells := make([]cell, 0, len(ly.tiles))
	for c := range ly.tiles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].row != cells[j].row {
			return cells[i].row < cells[j].row
		}
		return cells[i].col < cells[j].col
	})
	return cells
}
