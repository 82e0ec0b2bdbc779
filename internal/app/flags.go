package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"gol-paint/internal/render"
	"gol-paint/internal/sim"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width  int
	Height int

	Background string
	Foreground string
	Paint      string

	Verbose bool

	// Params are simulation key=value settings understood by sim.FromMap.
	Params ParamMap
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      1024,
		Height:     768,
		Background: "#1d2433",
		Foreground: "#ffcc66",
		Paint:      "#bae67e",
		Params:     ParamMap{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial surface height in pixels")
	fs.StringVar(&c.Background, "bg", c.Background, "background color")
	fs.StringVar(&c.Foreground, "fg", c.Foreground, "live cell color")
	fs.StringVar(&c.Paint, "paint", c.Paint, "freshly painted cell color")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log simulation lifecycle events")
	fs.Var(c.Params, "set", "simulation setting key=value (fps, divisor, preserve, paint_scale, hover, pattern, seed, density, history); repeatable")
}

// Sim returns the simulation configuration described by Params.
func (c *Config) Sim() (sim.Config, error) {
	cfg := sim.FromMap(c.Params)
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	bg, err := render.ParseHexColor(c.Background)
	if err != nil {
		return render.Palette{}, fmt.Errorf("bg: %w", err)
	}
	fg, err := render.ParseHexColor(c.Foreground)
	if err != nil {
		return render.Palette{}, fmt.Errorf("fg: %w", err)
	}
	paint, err := render.ParseHexColor(c.Paint)
	if err != nil {
		return render.Palette{}, fmt.Errorf("paint: %w", err)
	}
	return render.Palette{Background: bg, Foreground: fg, Paint: paint}, nil
}

// ParamMap collects repeated key=value flags.
type ParamMap map[string]string

// String implements flag.Value.
func (m ParamMap) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+m[k])
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (m ParamMap) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("setting %q: want key=value", v)
	}
	m[key] = strings.TrimSpace(value)
	return nil
}
