//go:build ebiten

package app

import (
	"log"

	"gosnake/internal/core"
	"gosnake/internal/game"
	"gosnake/internal/render"
	"gosnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  game.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, game.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, game.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, game.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, game.Right},
}

// Game adapts a snake State to the ebiten.Game interface. Each frame it
// handles input, then restart, then at most one tick; drawing only reads a
// snapshot.
type Game struct {
	state   *game.State
	step    *core.FixedStep
	grid    *core.ByteGrid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *log.Logger

	board core.Size
	unit  int
}

// New constructs a Game driving state at the configured tick interval.
func New(state *game.State, cfg *Config, logger *log.Logger) *Game {
	snap := state.Snapshot()
	grid := render.GridFor(snap)
	return &Game{
		state:   state,
		step:    core.NewFixedStep(cfg.Interval),
		grid:    grid,
		painter: render.NewGridPainter(grid.W, grid.H),
		hud:     ui.NewHUD(snap.Board.W),
		overlay: ui.NewOverlay(snap.Board),
		log:     logger,
		board:   snap.Board,
		unit:    snap.Unit,
	}
}

// Reset starts a new run and restarts the tick clock.
func (g *Game) Reset() {
	g.state.Reset()
	g.step.Reset()
}

// Update handles per-frame logic and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, binding := range directionKeys {
		for _, k := range binding.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.state.SetDirection(binding.dir)
			}
		}
	}

	if g.overlay.Update(g.state.Snapshot()) {
		g.log.Print("restart requested")
		g.Reset()
		return nil
	}

	if g.step.ShouldStep() {
		g.state.Tick()
	}
	return nil
}

// Draw renders the current game snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.state.Snapshot()
	screen.Fill(render.Background)
	if !snap.Over() {
		render.Rasterize(g.grid, snap)
		g.painter.Blit(screen, g.grid, g.unit)
		g.painter.DrawApple(screen, snap.Apple, g.unit)
	}
	g.hud.Draw(screen, snap)
	g.overlay.Draw(screen, snap)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.W, g.board.H
}
