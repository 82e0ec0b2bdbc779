//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"gol-paint/internal/core"
	"gol-paint/internal/render"
	"gol-paint/internal/sim"
	"gol-paint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation loop to the ebiten.Game interface. All loop calls
// happen inside Update, so ticks, resizes and painting never overlap.
type Game struct {
	loop    *sim.Loop
	sched   *core.FrameScheduler
	surface *render.EbitenSurface
	hud     *ui.HUD

	seed int64

	layoutW, layoutH int
	appliedW         int
	appliedH         int

	mouseDown bool
	touchID   ebiten.TouchID
	touching  bool
	lastX     int
	lastY     int
}

// New constructs a Game from the parsed configuration.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	simCfg, err := cfg.Sim()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	sched := core.NewFrameScheduler()
	surface := render.NewEbitenSurface(cfg.Width, cfg.Height)
	loop, err := sim.New(simCfg, sched, render.NewRasterizer(surface, palette), sim.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return &Game{
		loop:    loop,
		sched:   sched,
		surface: surface,
		hud:     ui.NewHUD(loop),
		seed:    simCfg.Seed.Seed,
		lastX:   -1,
		lastY:   -1,
	}, nil
}

// Update handles input, applies pending resizes and pumps the tick scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.layoutW != g.appliedW || g.layoutH != g.appliedH {
		g.appliedW, g.appliedH = g.layoutW, g.layoutH
		g.loop.OnResize(g.appliedW, g.appliedH)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.loop.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Reseed(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.loop.Reseed(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	onHUD := g.hud.Update(g.appliedW)
	g.handleMouse(onHUD)
	g.handleTouch()

	g.sched.Advance(time.Now())
	return nil
}

func (g *Game) handleMouse(onHUD bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !onHUD {
		g.mouseDown = true
		g.loop.OnPointerDown()
		g.lastX, g.lastY = -1, -1
	}
	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.loop.OnPointerMove(float64(x), float64(y))
	}
	if g.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.mouseDown = false
		g.loop.OnPointerUp()
	}
}

func (g *Game) handleTouch() {
	if !g.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		x, y := ebiten.TouchPosition(ids[0])
		if g.hud.Press(x, y) {
			return
		}
		g.touchID = ids[0]
		g.touching = true
		g.loop.OnPointerDown()
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.loop.OnPointerUp()
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.loop.OnPointerMove(float64(x), float64(y))
}

// Draw blits the persistent simulation surface and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Blit(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size; the resize itself is applied in Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
