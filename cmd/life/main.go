package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/dialog"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"
)

func main() {
	generations := flag.Int("generations", 100, "number of generations to run")
	animate := flag.Bool("animate", false, "redraw the grid every generation at the configured tps")
	randomize := flag.Bool("random", false, "start from a randomized grid")

	cfg := config.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	term := dialog.NewTerminal(os.Stdin, os.Stderr)
	opts := app.SessionOptions(cfg)
	opts.Confirm = term
	opts.Notifier = term
	opts.Logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	sess := session.New(opts)

	if *randomize {
		sess.Dispatch(ui.ActionRandomize)
	}
	if err := app.LoadStartupPattern(sess, cfg.Pattern); err != nil {
		log.Fatalf("load %q: %v", cfg.Pattern, err)
	}

	screen := render.NewTerminal(os.Stdout)
	ticker := core.NewFixedStep(sess.Clock().TPS())

	sess.Dispatch(ui.ActionStart)
	for i := 0; i < *generations; i++ {
		if *animate {
			ticker.Wait()
			if err := screen.Clear(); err != nil {
				log.Fatal(err)
			}
			if err := screen.Display(sess.Grid()); err != nil {
				log.Fatal(err)
			}
		}
		sess.Frame()
	}

	if !*animate {
		if err := screen.Display(sess.Grid()); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("generation %d | population %d | %s\n", sess.Generation(), sess.Grid().Population(), sess.Boundary())
}
