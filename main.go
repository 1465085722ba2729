package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/terminal"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-life: ")

	config, err := utils.ParseConfig(os.Args[0], os.Args[1:], configFile)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C and SIGTERM gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Plain {
		if err = runPlain(ctx, config, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err = runScreen(ctx, config); err != nil {
		log.Fatal(err)
	}
}

// runScreen sizes the grid to the terminal and hands over to the interactive front-end
func runScreen(ctx context.Context, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	config.Width, config.Height = terminal.Fit(screen, config.Width, config.Height)
	sim, err := simulation.NewFromConfig(config)
	if err != nil {
		return err
	}

	return terminal.New(screen, sim, config).Run(ctx)
}
