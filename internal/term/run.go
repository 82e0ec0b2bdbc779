package term

import (
	"context"
	"time"

	"gol-paint/internal/core"
	"gol-paint/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is how often the scheduler is pumped and the screen flushed.
const FrameInterval = time.Second / 60

// Runner feeds terminal events into a simulation loop.
type Runner struct {
	screen tcell.Screen
	loop   *sim.Loop
	sched  *core.FrameScheduler
	seed   int64
	down   bool
}

// NewRunner ties screen events to loop. sched must be the scheduler loop was
// built with.
func NewRunner(screen tcell.Screen, loop *sim.Loop, sched *core.FrameScheduler) *Runner {
	return &Runner{screen: screen, loop: loop, sched: sched, seed: loop.Config().Seed.Seed}
}

// Run processes events until the user quits or ctx is done. Events are read
// on a helper goroutine but every loop call happens on the caller's.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	w, h := r.screen.Size()
	r.loop.OnResize(w, h)
	r.screen.Show()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.Handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			r.sched.Advance(now)
			r.screen.Show()
		}
	}
}

// Handle applies a single event. It reports whether the user asked to quit.
func (r *Runner) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		r.loop.OnResize(w, h)
		r.screen.Sync()
	case *tcell.EventMouse:
		r.handleMouse(ev)
	}
	return false
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		r.loop.Toggle()
	case 'n':
		r.loop.Step()
	case 'c':
		r.loop.Clear()
	case 'r':
		r.loop.Reseed(r.seed)
	case 's':
		r.seed = time.Now().UnixNano()
		r.loop.Reseed(r.seed)
	}
	return false
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !r.down:
		r.down = true
		r.loop.OnPointerDown()
	case !pressed && r.down:
		r.down = false
		r.loop.OnPointerUp()
	}
	x, y := ev.Position()
	// Sample the middle of the character cell.
	r.loop.OnPointerMove(float64(x)+0.5, float64(y)+0.5)
}
