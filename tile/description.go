package tile

import "strings"

// String formats the tile description with the owning layer's name inserted
// after the base description, e.g.
//
//	Grass, Layer: "Ground", walkable: true, cost: 1
func (t *Tile) String() string {
	parts := strings.Split(t.data.Description(), ",")

	var b strings.Builder
	b.WriteString(parts[0])
	if name, ok := t.LayerName(); ok {
		b.WriteString(`, Layer: "`)
		b.WriteString(name)
		b.WriteString(`"`)
	}
	for _, p := range parts[1:] {
		b.WriteString(", ")
		b.WriteString(strings.TrimSpace(p))
	}
	return b.String()
}

// GoString matches String so %#v prints the same diagnostic text.
func (t *Tile) GoString() string {
	return t.String()
}
