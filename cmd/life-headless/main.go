package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"gol-paint/internal/app"
	"gol-paint/internal/core"
	"gol-paint/internal/render"
	"gol-paint/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Params["pattern"] = "random"
	steps := flag.Int("steps", 200, "generations to simulate")
	out := flag.String("out", "", "write the final grid as a PNG to this path")
	scale := flag.Int("scale", 4, "pixels per cell in the PNG")
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
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "life-headless: ", log.LstdFlags)
	}

	// Frames are never shown, so ticks are driven by Step rather than a clock.
	surface := render.NewRGBASurface(cfg.Width, cfg.Height)
	loop, err := sim.New(simCfg, core.NewFrameScheduler(), render.NewRasterizer(surface, palette), sim.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	loop.OnResize(cfg.Width, cfg.Height)
	loop.Stop()

	start := time.Now()
	for i := 0; i < *steps; i++ {
		loop.Step()
	}
	elapsed := time.Since(start)

	g := loop.Grid()
	s := loop.Stats()
	fmt.Printf("grid %dx%d, %d generations in %v (%.0f gen/s)\n",
		g.W, g.H, loop.Generation(), elapsed.Round(time.Microsecond), float64(*steps)/elapsed.Seconds())
	fmt.Printf("population last=%.0f mean=%.1f stddev=%.1f min=%.0f max=%.0f over %d samples\n",
		s.Last, s.Mean, s.StdDev, s.Min, s.Max, s.Samples)

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, render.Snapshot(g, palette, *scale)); err != nil {
		f.Close()
		log.Fatalf("encoding %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}
