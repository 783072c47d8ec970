package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilenode/common"
)

func main() {
	tilesetName := flag.String("tileset", "overworld.yaml", "tileset spec in tilesets/ (or embedded)")
	sheetPath := flag.String("sheet", "", "sheet image path (defaults to the spec's image)")
	watch := flag.Bool("watch", false, "reload the tileset when its spec changes on disk")
	zoom := flag.Float64("zoom", 2, "draw scale")
	flag.Parse()

	game, err := NewGame(Config{
		Tileset: *tilesetName,
		Sheet:   *sheetPath,
		Watch:   *watch,
		Zoom:    *zoom,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetTPS(common.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tileview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
