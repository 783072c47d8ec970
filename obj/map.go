package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/tile"
	"github.com/milk9111/tilenode/tileset"
)

// Map owns its layers. Tiles refer back to a layer only by id, resolved
// through the map, so a removed layer just stops resolving.
type Map struct {
	Tileset *tileset.Tileset

	layers map[tile.LayerID]*Layer
	order  []tile.LayerID
	nextID tile.LayerID
}

func NewMap(ts *tileset.Tileset) *Map {
	return &Map{
		Tileset: ts,
		layers:  make(map[tile.LayerID]*Layer),
	}
}

// AddLayer appends a layer drawn above every existing one. Layer ids are
// never reused within a map.
func (m *Map) AddLayer(name string) *Layer {
	m.nextID++
	ly := newLayer(m, m.nextID, name)
	m.layers[ly.ID] = ly
	m.order = append(m.order, ly.ID)
	return ly
}

func (m *Map) Layer(id tile.LayerID) (*Layer, bool) {
	ly, ok := m.layers[id]
	return ly, ok
}

// Layers returns the layers bottom to top.
func (m *Map) Layers() []*Layer {
	out := make([]*Layer, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.layers[id])
	}
	return out
}

// RemoveLayer drops a layer from the map. Tiles that were on it keep their
// reference but it no longer resolves to a name.
func (m *Map) RemoveLayer(id tile.LayerID) bool {
	ly, ok := m.layers[id]
	if !ok {
		return false
	}
	ly.clear()
	delete(m.layers, id)
	for i, lid := range m.order {
		if lid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// LayerName implements tile.LayerNames.
func (m *Map) LayerName(id tile.LayerID) (string, bool) {
	ly, ok := m.layers[id]
	if !ok || ly.Name == "" {
		return "", false
	}
	return ly.Name, true
}

// Update advances every tile by dt seconds.
func (m *Map) Update(dt float64) {
	for _, id := range m.order {
		m.layers[id].Update(dt)
	}
}

func (m *Map) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	for _, id := range m.order {
		m.layers[id].Draw(screen, camX, camY, zoom)
	}
}

// TileAt returns the topmost tile covering the world position x, y.
func (m *Map) TileAt(x, y float64) (*tile.Tile, bool) {
	if x < 0 || y < 0 {
		return nil, false
	}
	col := int(x) / common.TileSize
	row := int(y) / common.TileSize
	for i := len(m.order) - 1; i >= 0; i-- {
		if t, ok := m.layers[m.order[i]].At(col, row); ok {
			return t, true
		}
	}
	return nil, false
}

// Reload rebuilds every placed tile from ts, keeping positions and layers.
// Tiles whose id no longer exists in ts are dropped.
func (m *Map) Reload(ts *tileset.Tileset) {
	m.Tileset = ts
	for _, id := range m.order {
		ly := m.layers[id]
		for _, c := range ly.cells() {
			old, _ := ly.Remove(c.col, c.row)
			prev, ok := old.Data().(*tileset.TileData)
			if !ok {
				continue
			}
			if td, ok := ts.TileData(prev.ID()); ok {
				ly.Place(td, c.col, c.row)
			}
		}
	}
}
