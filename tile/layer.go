package tile

// LayerID names a layer within the map that owns it.
type LayerID uint32

// LayerNames resolves layer ids owned by a map. It reports false once the
// layer has been removed or when the layer has no name.
type LayerNames interface {
	LayerName(id LayerID) (string, bool)
}

// LayerRef is a non-owning reference to the layer a tile is attached to. It
// holds only the id and the owner's lookup; the layer itself lives in the
// map, and a removed layer simply stops resolving.
type LayerRef struct {
	names LayerNames
	id    LayerID
}

func (r LayerRef) ID() LayerID { return r.id }

// Attached reports whether the reference was ever set.
func (r LayerRef) Attached() bool { return r.names != nil }

func (r LayerRef) Name() (string, bool) {
	if r.names == nil {
		return "", false
	}
	return r.names.LayerName(r.id)
}

// SetLayer records the layer the tile was added to. Called by the owning
// layer, never by the tile itself.
func (t *Tile) SetLayer(names LayerNames, id LayerID) {
	t.layer = LayerRef{names: names, id: id}
}

func (t *Tile) ClearLayer() {
	t.layer = LayerRef{}
}

func (t *Tile) Layer() LayerRef { return t.layer }

// LayerName returns the name of the attached layer if it still resolves.
func (t *Tile) LayerName() (string, bool) {
	return t.layer.Name()
}
