// Package terminal draws a simulation on a tcell screen. The user edits the
// grid first, then Enter starts the run phase which evolves on a fixed interval.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/display"
	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

// Phase is the application state
type Phase int

const (
	PhaseEdit Phase = iota
	PhaseRun
)

func (p Phase) String() string {
	if p == PhaseRun {
		return "RUN"
	}
	return "EDIT"
}

const (
	// a cell is two columns wide so it looks square in most fonts
	cellColumns = 2
	cellRows    = 1
	statusRows  = 1
)

var (
	liveStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

const editHelp = "click/space toggle  arrows move  r random  c clear  enter run  q quit"

// App couples a simulation with a screen. Only the loop goroutine touches the simulation.
type App struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	cfg    utils.Config
	stats  *utils.Stats

	phase            Phase
	cursorX, cursorY int
	mouseDown        bool
	ticker           *time.Ticker
	lastFrame        time.Time
}

// New creates an App over an initialized screen
func New(screen tcell.Screen, sim *simulation.Simulation, cfg utils.Config) *App {
	return &App{
		screen:  screen,
		sim:     sim,
		cfg:     cfg,
		stats:   utils.NewStats(),
		cursorX: sim.GetWidth() / 2,
		cursorY: sim.GetHeight() / 2,
	}
}

// Fit shrinks the requested grid so it fits on the screen below the status line
func Fit(screen tcell.Screen, width, height int) (int, int) {
	cols, rows := screen.Size()
	return max(1, min(width, cols/cellColumns)), max(1, min(height, (rows-statusRows)/cellRows))
}

// Phase returns the current phase
func (a *App) Phase() Phase {
	return a.phase
}

// Run edits and then runs the simulation until ctx is done, the user quits or
// the configured generation limit is reached
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.stopTicker()

	events := make(chan tcell.Event)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a.screen.ChannelEvents(events, ctx.Done())
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		return a.loop(ctx, events)
	})

	return errors.Wrap(eg.Wait(), "[terminal.Run]")
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	a.draw()
	for {
		var tick <-chan time.Time
		if a.ticker != nil {
			tick = a.ticker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-tick:
			a.step()
			if a.cfg.MaxGenerations > 0 && a.sim.Generation() >= a.cfg.MaxGenerations {
				a.draw()
				return nil
			}
		}
		a.draw()
	}
}

// handle applies one input event. It reports whether the user asked to quit.
func (a *App) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return false, a.handleMouse(ev)
	}
	return false, nil
}

func (a *App) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true, nil
		}
	}
	if a.phase != PhaseEdit {
		return false, nil
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		a.start()
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return false, a.sim.Toggle(a.cursorX, a.cursorY)
		case 'r':
			return false, a.sim.Randomize(a.cfg.RandomRatio)
		case 'c':
			a.sim.Clear()
		}
	}
	return false, nil
}

// handleMouse toggles the clicked cell once per press
func (a *App) handleMouse(ev *tcell.EventMouse) error {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := a.mouseDown
	a.mouseDown = pressed
	if a.phase != PhaseEdit || !pressed || wasDown {
		return nil
	}

	px, py := ev.Position()
	x, y, ok := display.CellAt(px, py, cellColumns, cellRows, a.sim.GetWidth(), a.sim.GetHeight())
	if !ok {
		return nil
	}
	a.cursorX, a.cursorY = x, y
	return a.sim.Toggle(x, y)
}

func (a *App) moveCursor(dx, dy int) {
	a.cursorX = min(max(a.cursorX+dx, 0), a.sim.GetWidth()-1)
	a.cursorY = min(max(a.cursorY+dy, 0), a.sim.GetHeight()-1)
}

// start switches to the run phase
func (a *App) start() {
	a.phase = PhaseRun
	a.ticker = time.NewTicker(a.cfg.GenerationInterval)
	a.lastFrame = time.Now()
}

func (a *App) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
}

func (a *App) step() {
	frameStart := time.Now()
	a.sim.Evolve()
	a.stats.Update(a.sim.Generation(), a.sim.LiveCellCount(), frameStart.Sub(a.lastFrame))
	a.lastFrame = frameStart
}

func (a *App) draw() {
	a.screen.Clear()

	for y := range a.sim.GetHeight() {
		for x := range a.sim.GetWidth() {
			a.drawCell(x, y)
		}
	}

	a.drawText(0, a.sim.GetHeight()*cellRows, statusStyle, a.statusLine())
	a.screen.Show()
}

func (a *App) drawCell(x, y int) {
	style := deadStyle
	if c, _ := a.sim.Cell(x, y); c.IsLive() {
		style = liveStyle
	}

	left, right := ' ', ' '
	if a.phase == PhaseEdit && x == a.cursorX && y == a.cursorY {
		left, right = '[', ']'
		fg, _, _ := cursorStyle.Decompose()
		style = style.Foreground(fg)
	}
	a.screen.SetContent(x*cellColumns, y*cellRows, left, nil, style)
	a.screen.SetContent(x*cellColumns+1, y*cellRows, right, nil, style)
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) statusLine() string {
	line := fmt.Sprintf("%s | Gen: %d | Living: %d | Density: %.1f%% | %s",
		a.phase, a.sim.Generation(), a.sim.LiveCellCount(), a.sim.Density(), a.sim.Status())
	if a.cfg.UseBoundedGrid {
		line += fmt.Sprintf(" | Bounding box: %d cells", a.sim.BoundingBoxSize())
	}
	if a.phase == PhaseEdit {
		return line + " | " + editHelp
	}
	return line + fmt.Sprintf(" | %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		a.stats.GenerationsPerSecond, a.stats.AveragePopulation, a.stats.Runtime().Seconds())
}
