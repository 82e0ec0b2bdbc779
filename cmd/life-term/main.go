package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"gol-paint/internal/app"
	"gol-paint/internal/core"
	"gol-paint/internal/render"
	"gol-paint/internal/sim"
	"gol-paint/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Params["divisor"] = "1"
	logPath := flag.String("log", "", "write lifecycle log to this file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.Sim()
	if err != nil {
		log.Fatal(err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatal(err)
	}

	// The terminal is the UI, so log lines go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life-term: ", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sched := core.NewFrameScheduler()
	loop, err := sim.New(simCfg, sched, render.NewRasterizer(term.NewSurface(screen), palette), sim.WithLogger(logger))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.NewRunner(screen, loop, sched).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
