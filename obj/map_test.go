package obj

import (
	"image"
	"testing"

	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/tile"
	"github.com/milk9111/tilenode/tileset"
)

func newTileset(t *testing.T) *tileset.Tileset {
	t.Helper()
	spec := &tileset.Spec{
		Name:       "test",
		TileWidth:  8,
		TileHeight: 8,
		Tiles: []tileset.TileSpec{
			{ID: 0, Name: "Grass", Properties: []tileset.PropertySpec{{Name: "walkable", Value: "true"}, {Name: "cost", Value: "1"}}},
			{ID: 1, Name: "Water", Frames: []int{1, 2}, Duration: 0.2},
		},
	}
	ts, err := tileset.New(spec, image.NewRGBA(image.Rect(0, 0, 24, 8)))
	if err != nil {
		t.Fatalf("tileset: %v", err)
	}
	return ts
}

func tileData(t *testing.T, ts *tileset.Tileset, id tile.FrameID) *tileset.TileData {
	t.Helper()
	td, ok := ts.TileData(id)
	if !ok {
		t.Fatalf("missing tile %d", id)
	}
	return td
}

func TestLayerNamesResolve(t *testing.T) {
	ts := newTileset(t)
	m := NewMap(ts)
	ground := m.AddLayer("Ground")
	grass := ground.Place(tileData(t, ts, 0), 0, 0)

	if got := grass.String(); got != `Grass, Layer: "Ground", walkable: true, cost: 1` {
		t.Fatalf("unexpected description %q", got)
	}

	if !m.RemoveLayer(ground.ID) {
		t.Fatalf("expected layer removal")
	}
	if _, ok := grass.LayerName(); ok {
		t.Fatalf("removed layer must not resolve")
	}
	if got := grass.String(); got != "Grass, walkable: true, cost: 1" {
		t.Fatalf("unexpected description after removal %q", got)
	}
	if m.RemoveLayer(ground.ID) {
		t.Fatalf("second removal should report false")
	}
}

func TestLayerIDsNotReused(t *testing.T) {
	m := NewMap(newTileset(t))
	a := m.AddLayer("a")
	m.RemoveLayer(a.ID)
	b := m.AddLayer("b")
	if a.ID == b.ID {
		t.Fatalf("layer id %d reused", a.ID)
	}
	if _, ok := m.LayerName(a.ID); ok {
		t.Fatalf("stale id must not resolve to the new layer")
	}
}

func TestUnnamedLayerDoesNotResolve(t *testing.T) {
	m := NewMap(newTileset(t))
	ly := m.AddLayer("")
	if _, ok := m.LayerName(ly.ID); ok {
		t.Fatalf("unnamed layer should not resolve")
	}
}

func TestPlaceStartsAnimation(t *testing.T) {
	ts := newTileset(t)
	m := NewMap(ts)
	ly := m.AddLayer("Ground")

	water := ly.Place(tileData(t, ts, 1), 1, 0)
	if _, ok := water.AnimationAction(); !ok {
		t.Fatalf("placed animated tile should animate")
	}

	m.Update(0.25)
	want, _ := ts.Resolve(2)
	if water.Texture() != want {
		t.Fatalf("expected second frame after map update")
	}

	removed, ok := ly.Remove(1, 0)
	if !ok || removed != water {
		t.Fatalf("expected to remove the water tile")
	}
	if water.HasActions() || water.Layer().Attached() {
		t.Fatalf("removed tile should be stopped and detached")
	}
}

func TestTileAtPicksTopmost(t *testing.T) {
	ts := newTileset(t)
	m := NewMap(ts)
	bottom := m.AddLayer("Ground").Place(tileData(t, ts, 0), 0, 0)
	top := m.AddLayer("Overlay").Place(tileData(t, ts, 2), 1, 0)

	cases := []struct {
		name string
		x, y float64
		want *tile.Tile
	}{
		{"bottom_only", 4, 4, bottom},
		{"top_only", common.TileSize + 1, 1, top},
		{"empty", 4, common.TileSize + 1, nil},
		{"negative", -1, 0, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := m.TileAt(c.x, c.y)
			if ok != (c.want != nil) || got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestReloadRebuildsTiles(t *testing.T) {
	ts := newTileset(t)
	m := NewMap(ts)
	ly := m.AddLayer("Ground")
	old := ly.Place(tileData(t, ts, 0), 2, 3)
	old.SetHighlight(true)

	next := newTileset(t)
	m.Reload(next)

	got, ok := ly.At(2, 3)
	if !ok || got == old {
		t.Fatalf("expected a rebuilt tile at 2,3")
	}
	if got.Data() != tileData(t, next, 0) {
		t.Fatalf("rebuilt tile should use the new tileset")
	}
	if name, ok := got.LayerName(); !ok || name != "Ground" {
		t.Fatalf("rebuilt tile should be attached to Ground, got %q", name)
	}
	if old.HasActions() {
		t.Fatalf("old tile should have its actions stopped")
	}
}
