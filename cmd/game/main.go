package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/torvale/driftworld/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Driftworld")
	ebiten.SetWindowSize(700, 500)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.NewApp()); err != nil {
		log.Fatal(err)
	}
}
