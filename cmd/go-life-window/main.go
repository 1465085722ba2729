//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-life-window: ")

	config, err := utils.ParseConfig(os.Args[0], os.Args[1:], "config.json")
	if err != nil {
		log.Fatal(err)
	}

	sim, err := simulation.NewFromConfig(config)
	if err != nil {
		log.Fatal(err)
	}

	game := window.New(sim, config)
	w, h := game.Size()

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
