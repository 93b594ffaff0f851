//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/dialog"
	"lifegrid/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	term := dialog.NewTerminal(os.Stdin, os.Stdout)
	opts := app.SessionOptions(cfg)
	opts.Confirm = term
	opts.Files = term
	opts.Notifier = term
	opts.Logger = log.New(os.Stderr, "life: ", log.LstdFlags)

	sess := session.New(opts)
	if err := app.LoadStartupPattern(sess, cfg.Pattern); err != nil {
		log.Printf("startup pattern %q: %v", cfg.Pattern, err)
	}

	game := app.New(sess, cfg.Cell, cfg.Seed)
	w, h := app.ScreenSize(sess.Grid().Size(), cfg.Cell)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
