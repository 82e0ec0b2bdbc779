package sim

import (
	"fmt"
	"strconv"

	"gol-paint/internal/core"
	"gol-paint/internal/seed"
	"gol-paint/internal/stats"
)

// Config holds the tunables of a simulation loop.
type Config struct {
	// FPS is the number of generation ticks per second while running.
	FPS int
	// Divisor is the number of surface pixels per grid cell.
	Divisor int
	// PreserveOnResize keeps the overlapping cells when the surface changes
	// size after the first initialization.
	PreserveOnResize bool
	// PaintScale enlarges freshly painted cells for emphasis.
	PaintScale float64
	// HoverPaint treats every pointer move as part of a gesture, so cells are
	// painted without pressing a button.
	HoverPaint bool

	Pattern     string
	Seed        seed.Options
	HistorySize int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FPS:              15,
		Divisor:          core.DefaultDivisor,
		PreserveOnResize: true,
		PaintScale:       1,
		Pattern:          "empty",
		Seed:             seed.DefaultOptions(),
		HistorySize:      stats.DefaultCapacity,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["divisor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Divisor = parsed
		}
	}
	if v, ok := cfg["preserve"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.PreserveOnResize = parsed
		}
	}
	if v, ok := cfg["paint_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.PaintScale = parsed
		}
	}
	if v, ok := cfg["hover"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.HoverPaint = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Seed.Density = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.HistorySize = parsed
		}
	}
	return c
}

// Validate reports configuration errors that FromMap cannot repair.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Divisor <= 0 {
		return fmt.Errorf("divisor must be positive, got %d", c.Divisor)
	}
	if _, err := seed.Lookup(c.Pattern); err != nil {
		return err
	}
	return nil
}
