// Package seed fills a freshly allocated grid with its first generation.
package seed

import (
	"fmt"
	"sort"
	"strings"

	"gol-paint/internal/core"

	"github.com/aquilax/go-perlin"
)

// Options parameterize a seed pattern.
type Options struct {
	Seed int64
	// Density is the target fraction of live cells in [0, 1].
	Density float64
	// Frequency scales grid coordinates before sampling noise.
	Frequency float64
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Seed: 42, Density: 0.35, Frequency: 0.12}
}

// Func fills g according to opts.
type Func func(g *core.Grid, opts Options)

var patterns = map[string]Func{}

// Register adds a seed pattern under the provided name.
func Register(name string, f Func) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Func, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown seed pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty leaves every cell dead.
func Empty(g *core.Grid, _ Options) { g.Clear() }

// Random makes each cell live independently with probability opts.Density.
func Random(g *core.Grid, opts Options) {
	core.FillBinary(core.NewRNG(opts.Seed), g.Cells(), opts.Density)
}

// Perlin produces clustered blobs by thresholding 2-D Perlin noise. Higher
// densities lower the threshold.
func Perlin(g *core.Grid, opts Options) {
	freq := opts.Frequency
	if freq <= 0 {
		freq = DefaultOptions().Frequency
	}
	p := perlin.NewPerlin(2, 2, 3, opts.Seed)
	threshold := 0.5 - opts.Density
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells[g.Index(x, y)] = 0
			if p.Noise2D(float64(x)*freq, float64(y)*freq) > threshold {
				cells[g.Index(x, y)] = 1
			}
		}
	}
}

func init() {
	Register("empty", Empty)
	Register("random", Random)
	Register("perlin", Perlin)
}
