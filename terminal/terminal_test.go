package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

func newTestApp(t *testing.T, width, height int, cfg utils.Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	sim, err := simulation.New(width, height, simulation.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	return New(screen, sim, cfg), screen
}

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.GenerationInterval = time.Millisecond
	return cfg
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestFit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	w, h := Fit(screen, 150, 100)
	if w != 20 || h != 11 {
		t.Fatalf("Fit = %dx%d, want 20x11", w, h)
	}
	w, h = Fit(screen, 5, 4)
	if w != 5 || h != 4 {
		t.Fatalf("small grid changed to %dx%d", w, h)
	}
}

func TestMouseTogglesOncePerPress(t *testing.T) {
	app, _ := newTestApp(t, 5, 5, testConfig())

	press := tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone)
	if _, err := app.handle(press); err != nil {
		t.Fatal(err)
	}
	// dragging with the button held must not toggle again
	if _, err := app.handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if c, _ := app.sim.Cell(3, 2); !c.IsLive() {
		t.Fatal("column 7 should map to cell 3")
	}

	_, _ = app.handle(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	_, _ = app.handle(press)
	if c, _ := app.sim.Cell(3, 2); c.IsLive() {
		t.Fatal("second press should toggle the cell back")
	}

	// clicks on the status line are outside the grid
	_, _ = app.handle(tcell.NewEventMouse(0, 5, tcell.ButtonNone, tcell.ModNone))
	_, _ = app.handle(tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	if n := app.sim.LiveCellCount(); n != 0 {
		t.Fatalf("click outside the grid toggled %d cells", n)
	}
}

func TestKeyboardEditing(t *testing.T) {
	cfg := testConfig()
	cfg.RandomRatio = 1.0 / 16 // exactly one toggle on a 4x4 grid
	app, _ := newTestApp(t, 4, 4, cfg)

	for _, ev := range []*tcell.EventKey{
		key(tcell.KeyLeft, 0),
		key(tcell.KeyLeft, 0),
		key(tcell.KeyLeft, 0), // clamps at the edge
		key(tcell.KeyUp, 0),
		key(tcell.KeyRune, ' '),
	} {
		if quit, err := app.handle(ev); quit || err != nil {
			t.Fatalf("quit=%v err=%v", quit, err)
		}
	}
	if c, _ := app.sim.Cell(0, 1); !c.IsLive() {
		t.Fatalf("cursor toggle missed (0, 1):\n%s", app.sim)
	}

	_, _ = app.handle(key(tcell.KeyRune, 'c'))
	if app.sim.LiveCellCount() != 0 {
		t.Fatal("c did not clear the grid")
	}

	_, _ = app.handle(key(tcell.KeyRune, 'r'))
	if n := app.sim.LiveCellCount(); n != 1 {
		t.Fatalf("r left %d live cells, want 1", n)
	}
}

func TestEnterStartsRunAndLocksEditing(t *testing.T) {
	app, _ := newTestApp(t, 4, 4, testConfig())
	_, _ = app.handle(key(tcell.KeyEnter, 0))
	defer app.stopTicker()

	if app.Phase() != PhaseRun {
		t.Fatalf("phase = %v, want RUN", app.Phase())
	}
	_, _ = app.handle(key(tcell.KeyRune, ' '))
	_, _ = app.handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if app.sim.LiveCellCount() != 0 {
		t.Fatal("editing allowed while running")
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, 2, 2, testConfig())
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape, 0), key(tcell.KeyCtrlC, 0), key(tcell.KeyRune, 'q')} {
		if quit, _ := app.handle(ev); !quit {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
}

func TestDrawShowsCellsAndStatus(t *testing.T) {
	app, screen := newTestApp(t, 3, 2, testConfig())
	_ = app.sim.Toggle(1, 0)
	app.draw()

	cells, width, _ := screen.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	_, bg, _ := at(2, 0).Style.Decompose()
	if bg != tcell.ColorWhite {
		t.Fatalf("live cell background = %v", bg)
	}
	_, bg, _ = at(0, 0).Style.Decompose()
	if bg != tcell.ColorBlack {
		t.Fatalf("dead cell background = %v", bg)
	}

	// cursor starts at the center cell (1, 1)
	if r := at(2, 1).Runes; len(r) == 0 || r[0] != '[' {
		t.Fatalf("cursor not drawn, got %q", string(r))
	}

	var status strings.Builder
	for x := range width {
		if r := at(x, 2).Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.HasPrefix(status.String(), "EDIT | Gen: 0 | Living: 1") {
		t.Fatalf("status line = %q", status.String())
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxGenerations = 3
	app, screen := newTestApp(t, 5, 5, cfg)
	for x := 1; x <= 3; x++ {
		_ = app.sim.Toggle(x, 2)
	}
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.sim.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", app.sim.Generation())
	}
	// odd generation of a blinker is vertical
	for y := 1; y <= 3; y++ {
		if c, _ := app.sim.Cell(2, y); !c.IsLive() {
			t.Fatalf("blinker phase wrong:\n%s", app.sim)
		}
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	app, screen := newTestApp(t, 3, 3, testConfig())
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.Phase() != PhaseEdit {
		t.Fatal("quit during edit should not start the run")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, 3, 3, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestStatusLineShowsRunStats(t *testing.T) {
	cfg := testConfig()
	cfg.UseBoundedGrid = true
	app, _ := newTestApp(t, 5, 5, cfg)
	for x := 1; x <= 3; x++ {
		_ = app.sim.Toggle(x, 2)
	}

	edit := app.statusLine()
	if !strings.Contains(edit, "| Bounding box: 3 cells |") || !strings.HasSuffix(edit, editHelp) {
		t.Fatalf("edit status = %q", edit)
	}

	app.start()
	defer app.stopTicker()
	app.step()
	run := app.statusLine()
	if !strings.HasPrefix(run, "RUN | Gen: 1 | Living: 3") {
		t.Fatalf("run status = %q", run)
	}
	for _, want := range []string{"gen/sec", "| Avg Pop: 3.0 |", "| Runtime: "} {
		if !strings.Contains(run, want) {
			t.Errorf("run status %q lacks %q", run, want)
		}
	}
}
