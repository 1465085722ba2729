//go:build ebiten

package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/display"
	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	liveColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	deadColor = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	textColor = color.RGBA{R: 120, G: 220, B: 120, A: 255}
)

// Game adapts a simulation to the ebiten.Game interface
type Game struct {
	sim      *simulation.Simulation
	cfg      utils.Config
	cellSize int
	stats    *utils.Stats

	pixel   *ebiten.Image // created on the first Draw
	running bool
	lastGen time.Time
}

// New constructs a Game for the provided simulation
func New(sim *simulation.Simulation, cfg utils.Config) *Game {
	return &Game{sim: sim, cfg: cfg, cellSize: max(1, cfg.CellSize), stats: utils.NewStats()}
}

// Size returns the window size in pixels
func (g *Game) Size() (int, int) {
	return display.WindowSize(g.sim.GetWidth(), g.sim.GetHeight(), g.cellSize)
}

// Update handles input and advances the simulation on its interval
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.running {
		return g.edit()
	}

	if time.Since(g.lastGen) < g.cfg.GenerationInterval {
		return nil
	}
	frameStart := time.Now()
	g.sim.Evolve()
	g.stats.Update(g.sim.Generation(), g.sim.LiveCellCount(), frameStart.Sub(g.lastGen))
	g.lastGen = frameStart
	if g.cfg.MaxGenerations > 0 && g.sim.Generation() >= g.cfg.MaxGenerations {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) edit() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.running = true
		g.lastGen = time.Now()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.sim.Randomize(g.cfg.RandomRatio)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		x, y, ok := display.CellAt(px, py, g.cellSize, g.cellSize, g.sim.GetWidth(), g.sim.GetHeight())
		if ok {
			return g.sim.Toggle(x, y)
		}
	}
	return nil
}

// Draw renders the live cells over a dead background and a status overlay
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(deadColor)
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	size := float64(g.cellSize)
	for y := range g.sim.GetHeight() {
		for x := range g.sim.GetWidth() {
			if c, _ := g.sim.Cell(x, y); !c.IsLive() {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(size, size)
			op.GeoM.Translate(float64(x)*size, float64(y)*size)
			op.ColorScale.ScaleWithColor(liveColor)
			screen.DrawImage(g.pixel, op)
		}
	}

	text.Draw(screen, g.statusLine(), basicfont.Face7x13, 8, 16, textColor)
}

func (g *Game) statusLine() string {
	if !g.running {
		return fmt.Sprintf("EDIT  live %d  click toggle, r random, c clear, enter run", g.sim.LiveCellCount())
	}
	line := fmt.Sprintf("RUN  gen %d  live %d  %s  %.1f gen/sec  avg pop %.1f  %.1fs",
		g.sim.Generation(), g.sim.LiveCellCount(), g.sim.Status(),
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	if g.cfg.UseBoundedGrid {
		line += fmt.Sprintf("  box %d", g.sim.BoundingBoxSize())
	}
	return line
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
