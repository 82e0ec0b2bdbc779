// Package sim drives a Game of Life grid: it schedules generation ticks,
// renders frames and applies pointer painting between ticks.
//
// A Loop is not safe for concurrent use. Frontends call every method from
// the goroutine that pumps the scheduler, which is what keeps ticks, resizes
// and pointer events from interleaving mid-operation.
package sim

import (
	"fmt"
	"io"
	"log"

	"gol-paint/internal/core"
	"gol-paint/internal/life"
	"gol-paint/internal/pointer"
	"gol-paint/internal/render"
	"gol-paint/internal/seed"
	"gol-paint/internal/stats"
)

// State is the scheduling state of a Loop.
type State int

const (
	// Stopped means no tick is scheduled.
	Stopped State = iota
	// Running means ticks fire at the configured rate.
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Loop owns the grid, its geometry and the tick schedule of one simulation.
type Loop struct {
	cfg    Config
	sched  core.Scheduler
	raster *render.Rasterizer
	seeder seed.Func
	logger *log.Logger

	grid   *core.Grid
	geom   core.Geometry
	state  State
	task   *core.Task
	trail  pointer.Trail
	path   []core.Point
	gen    uint64
	hist   *stats.History
	pixelW int
	pixelH int
}

// Option customizes a Loop.
type Option func(*Loop)

// WithLogger routes lifecycle messages to l.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// New constructs a stopped Loop. The grid is allocated by the first Resize.
func New(cfg Config, sched core.Scheduler, raster *render.Rasterizer, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim config: %w", err)
	}
	seeder, err := seed.Lookup(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		cfg:    cfg,
		sched:  sched,
		raster: raster,
		seeder: seeder,
		logger: log.New(io.Discard, "", 0),
		hist:   stats.NewHistory(cfg.HistorySize),
	}
	raster.SetPaintScale(cfg.PaintScale)
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// State reports whether ticks are scheduled.
func (l *Loop) State() State { return l.state }

// Grid returns the grid, or nil before the first Resize.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Geometry returns the current grid-to-surface mapping.
func (l *Loop) Geometry() core.Geometry { return l.geom }

// Generation counts ticks since the grid was first allocated.
func (l *Loop) Generation() uint64 { return l.gen }

// Config returns the active configuration.
func (l *Loop) Config() Config { return l.cfg }

// Stats summarizes recent population counts.
func (l *Loop) Stats() stats.Summary { return l.hist.Summary() }

// Start schedules periodic ticks and renders the current grid once so the
// first frame shows before the first tick. It does nothing while running or
// before the grid exists.
func (l *Loop) Start() {
	if l.state == Running {
		return
	}
	if l.grid == nil {
		l.logger.Printf("start ignored: no grid yet")
		return
	}
	l.raster.RenderFull(l.grid, l.geom)
	l.task = l.sched.Every(core.TPS(l.cfg.FPS), l.tick)
	l.state = Running
	l.logger.Printf("started at %d fps", l.cfg.FPS)
}

// Stop cancels the scheduled ticks. Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	l.task.Cancel()
	l.task = nil
	l.state = Stopped
	l.logger.Printf("stopped at generation %d", l.gen)
}

// Toggle starts a stopped loop and stops a running one.
func (l *Loop) Toggle() {
	if l.state == Running {
		l.Stop()
		return
	}
	l.Start()
}

// Step advances exactly one generation without touching the schedule.
func (l *Loop) Step() {
	if l.grid == nil {
		return
	}
	l.tick()
}

func (l *Loop) tick() {
	l.grid.Replace(life.NextGeneration(l.grid))
	l.gen++
	l.hist.Record(l.gen, l.grid.Population())
	l.raster.RenderFull(l.grid, l.geom)
}

// Resize adapts the simulation to a surface of pixelW*pixelH. It stops the
// loop, reallocates the grid (seeding it on first use, preserving the
// overlapping region afterwards when configured), drops the pointer trail and
// starts again.
func (l *Loop) Resize(pixelW, pixelH int) {
	l.Stop()

	l.pixelW, l.pixelH = pixelW, pixelH
	w, h := core.GridDims(pixelW, pixelH, l.cfg.Divisor)
	first := l.grid == nil
	if first {
		l.grid = core.NewGrid(w, h)
	} else {
		l.grid.Resize(w, h, l.cfg.PreserveOnResize)
	}
	l.geom = core.NewGeometry(pixelW, pixelH, l.grid.W, l.grid.H)
	l.raster.Resize(l.geom)
	if first {
		l.seeder(l.grid, l.cfg.Seed)
		l.logger.Printf("seeded %dx%d grid with %q pattern", l.grid.W, l.grid.H, l.cfg.Pattern)
	}
	l.trail.Reset()
	l.logger.Printf("resized to %dx%d px, grid %dx%d", l.geom.PixelW, l.geom.PixelH, l.grid.W, l.grid.H)

	l.Start()
}

// OnResize is the presentation layer's resize entry point.
func (l *Loop) OnResize(pixelW, pixelH int) { l.Resize(pixelW, pixelH) }

// OnPointerDown begins a paint gesture.
func (l *Loop) OnPointerDown() { l.trail.Begin() }

// OnPointerUp ends the current paint gesture.
func (l *Loop) OnPointerUp() { l.trail.End() }

// OnPointerMove paints every cell between the previous pointer sample and
// the cell under (px, py). Cells outside the grid are skipped. Moves outside
// a gesture are ignored unless hover painting is enabled.
func (l *Loop) OnPointerMove(px, py float64) {
	if l.grid == nil {
		return
	}
	if !l.trail.Active() {
		if !l.cfg.HoverPaint {
			return
		}
		l.trail.Begin()
	}
	cell := pointer.ToCell(px, py, l.geom)
	l.path = l.trail.Path(l.path[:0], cell, l.grid.W, l.grid.H)
	paint := l.raster.Palette().Paint
	for _, p := range l.path {
		if l.grid.SetAlive(p.X, p.Y) {
			l.raster.RenderCell(p.X, p.Y, l.geom, paint)
		}
	}
}

// Clear kills every cell and redraws.
func (l *Loop) Clear() {
	if l.grid == nil {
		return
	}
	l.grid.Clear()
	l.raster.RenderFull(l.grid, l.geom)
}

// Reseed refills the grid with the configured pattern using seedValue.
func (l *Loop) Reseed(seedValue int64) {
	if l.grid == nil {
		return
	}
	opts := l.cfg.Seed
	opts.Seed = seedValue
	l.seeder(l.grid, opts)
	l.gen = 0
	l.hist.Reset()
	l.raster.RenderFull(l.grid, l.geom)
	l.logger.Printf("reseeded with %q pattern, seed %d", l.cfg.Pattern, seedValue)
}

// SetFPS changes the tick rate, rescheduling a running loop.
func (l *Loop) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	l.cfg.FPS = fps
	if l.state != Running {
		return
	}
	l.task.Cancel()
	l.task = l.sched.Every(core.TPS(fps), l.tick)
}

// SetDivisor changes the pixels-per-cell divisor and re-derives the grid
// from the last known surface size.
func (l *Loop) SetDivisor(divisor int) {
	if divisor <= 0 {
		return
	}
	l.cfg.Divisor = divisor
	if l.grid == nil {
		return
	}
	wasRunning := l.state == Running
	l.Resize(l.pixelW, l.pixelH)
	if !wasRunning {
		l.Stop()
	}
}
