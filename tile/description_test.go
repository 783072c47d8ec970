package tile

import (
	"fmt"
	"testing"
)

func TestDescription(t *testing.T) {
	cases := []struct {
		name   string
		desc   string
		layers fakeLayers
		layer  LayerID
		attach bool
		want   string
	}{
		{
			name:   "with_layer",
			desc:   "Grass, walkable: true, cost: 1",
			layers: fakeLayers{1: "Ground"},
			layer:  1,
			attach: true,
			want:   `Grass, Layer: "Ground", walkable: true, cost: 1`,
		},
		{
			name: "no_layer",
			desc: "Grass, walkable: true, cost: 1",
			want: "Grass, walkable: true, cost: 1",
		},
		{
			name:   "layer_removed",
			desc:   "Grass, walkable: true",
			layers: fakeLayers{},
			layer:  7,
			attach: true,
			want:   "Grass, walkable: true",
		},
		{
			name:   "unnamed_layer",
			desc:   "Grass",
			layers: fakeLayers{2: ""},
			layer:  2,
			attach: true,
			want:   "Grass",
		},
		{
			name:   "base_only_with_layer",
			desc:   "Water",
			layers: fakeLayers{3: "Sea"},
			layer:  3,
			attach: true,
			want:   `Water, Layer: "Sea"`,
		},
		{
			name: "empty",
			desc: "",
			want: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tl := New(&fakeData{description: c.desc})
			if c.attach {
				tl.SetLayer(c.layers, c.layer)
			}
			if got := tl.String(); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
			if got := tl.GoString(); got != c.want {
				t.Fatalf("debug description differs: %q", got)
			}
			if got := fmt.Sprintf("%#v", tl); got != c.want {
				t.Fatalf("%%#v should use the debug description, got %q", got)
			}
		})
	}
}

func TestClearLayer(t *testing.T) {
	tl := New(&fakeData{description: "Grass, cost: 1"})
	tl.SetLayer(fakeLayers{1: "Ground"}, 1)
	if id := tl.Layer().ID(); id != 1 {
		t.Fatalf("expected layer id 1, got %d", id)
	}
	tl.ClearLayer()
	if got := tl.String(); got != "Grass, cost: 1" {
		t.Fatalf("expected detached description, got %q", got)
	}
}
