package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilenode/assets"
	"github.com/milk9111/tilenode/common"
	"github.com/milk9111/tilenode/obj"
	"github.com/milk9111/tilenode/tile"
	"github.com/milk9111/tilenode/tileset"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 960
	baseHeight = 540

	// tiles per row when laying out the whole tileset
	layoutColumns = 8
)

type Config struct {
	Tileset string
	Sheet   string
	Watch   bool
	Zoom    float64
}

type Game struct {
	cfg     Config
	world   *obj.Map
	sheet   *ebiten.Image
	watcher *tileset.Watcher

	ui   *ebitenui.UI
	info *widget.Text

	paused       bool
	hovered      *tile.Tile
	clipboardErr error
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}

	spec, err := tileset.LoadSpec(cfg.Tileset)
	if err != nil {
		return nil, err
	}
	if cfg.Sheet == "" {
		cfg.Sheet = spec.Image
	}
	sheet, err := assets.LoadImage(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", cfg.Sheet, err)
	}
	ts, err := tileset.New(spec, sheet)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		sheet: sheet,
		world: obj.NewMap(ts),
	}
	layoutTileset(g.world.AddLayer("Ground"), ts)
	g.ui, g.info = NewInfoUI()

	if err := clipboard.Init(); err != nil {
		g.clipboardErr = err
		log.Printf("tileview: clipboard unavailable: %v", err)
	}

	if cfg.Watch {
		w, err := tileset.NewWatcher("tilesets")
		if err != nil {
			log.Printf("tileview: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// layoutTileset places one tile per tileset id so every definition can be
// inspected.
func layoutTileset(ly *obj.Layer, ts *tileset.Tileset) {
	for i := 0; i < ts.Len(); i++ {
		td, ok := ts.TileData(tile.FrameID(i))
		if !ok {
			continue
		}
		ly.Place(td, i%layoutColumns, i/layoutColumns)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.drainWatcher()

	mx, my := ebiten.CursorPosition()
	g.hovered, _ = g.world.TileAt(float64(mx)/g.cfg.Zoom, float64(my)/g.cfg.Zoom)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.hovered != nil {
		g.hovered.ToggleHighlight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.eachTile(func(t *tile.Tile) { t.SetHighlight(true) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.eachTile(func(t *tile.Tile) { t.SetPauseAnimation(g.paused) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.hovered != nil {
		g.copyDescription(g.hovered)
	}

	g.world.Update(common.DeltaTime())

	label := "hover a tile"
	if g.hovered != nil {
		label = g.hovered.String()
	}
	g.info.Label = label
	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen, 0, 0, g.cfg.Zoom)
	g.ui.Draw(screen)

	status := "playing"
	if g.paused {
		status = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  animation: %s  [click] highlight  [H] all  [P] pause  [C] copy", ebiten.ActualFPS(), status))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) eachTile(fn func(t *tile.Tile)) {
	for _, ly := range g.world.Layers() {
		for _, t := range ly.Tiles() {
			fn(t)
		}
	}
}

func (g *Game) copyDescription(t *tile.Tile) {
	if g.clipboardErr != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%#v", t)))
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("tileview: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	spec, err := tileset.LoadSpec(g.cfg.Tileset)
	if err != nil {
		log.Printf("tileview: reload after change to %s: %v", name, err)
		return
	}
	ts, err := tileset.New(spec, g.sheet)
	if err != nil {
		log.Printf("tileview: rebuild tileset: %v", err)
		return
	}
	g.world.Reload(ts)
	for _, ly := range g.world.Layers() {
		for _, t := range ly.Tiles() {
			t.SetPauseAnimation(g.paused)
		}
	}
	log.Printf("tileview: reloaded %s", g.cfg.Tileset)
}
