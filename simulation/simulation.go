package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrInvalidRatio is returned for a negative or NaN randomization ratio
var ErrInvalidRatio = errors.New("invalid randomization ratio")

const defaultHistory = 5

const (
	StatusActive   = "Active"
	StatusStagnant = "Stagnant"
	StatusExtinct  = "Extinct"
)

// Evolve computes the next generation of grid. Every cell reads only from grid,
// which is left untouched; the result is a separate grid taken from pool when
// pool is non-nil.
func Evolve(grid *model.Grid, pool *model.GridPool) *model.Grid {
	width, height := grid.GetWidth(), grid.GetHeight()

	var next *model.Grid
	if pool != nil {
		next = pool.Get(width, height)
	} else {
		// dimensions come from an existing grid and are always valid
		next, _ = model.NewGrid(width, height)
	}

	for y := range height {
		for x := range width {
			current, _ := grid.Cell(x, y)
			neighbors, _ := grid.LiveNeighborCount(x, y)
			if state := rules.NextState(current, neighbors); state.IsLive() {
				_ = next.Set(x, y, state)
			}
		}
	}

	return next
}

// EvolveBounded computes the same generation as Evolve but only visits the
// bounding box of the live cells plus a one cell margin. Cells further out
// have no live neighbors and stay dead.
func EvolveBounded(grid *model.Grid, pool *model.GridPool) *model.Grid {
	width, height := grid.GetWidth(), grid.GetHeight()

	var next *model.Grid
	if pool != nil {
		next = pool.Get(width, height)
	} else {
		next, _ = model.NewGrid(width, height)
	}

	active, ok := grid.ActiveBounds()
	if !ok {
		return next
	}

	region := active.Expand(1, width, height)
	for y := region.MinY; y <= region.MaxY; y++ {
		for x := region.MinX; x <= region.MaxX; x++ {
			current, _ := grid.Cell(x, y)
			neighbors, _ := grid.LiveNeighborCount(x, y)
			if state := rules.NextState(current, neighbors); state.IsLive() {
				_ = next.Set(x, y, state)
			}
		}
	}

	return next
}

// Randomize performs round(ratio*width*height) toggles at uniformly random
// coordinates, with replacement. Ratios above 1 are clamped to 1.
func Randomize(grid *model.Grid, ratio float64, rng *rand.Rand) error {
	if ratio < 0 || math.IsNaN(ratio) {
		return errors.Wrapf(ErrInvalidRatio, "[Randomize] ratio %v", ratio)
	}
	ratio = min(ratio, 1)

	width, height := grid.GetWidth(), grid.GetHeight()
	toggles := int(math.Round(ratio * float64(width*height)))
	for range toggles {
		if err := grid.Toggle(rng.IntN(width), rng.IntN(height)); err != nil {
			return errors.Wrap(err, "[Randomize]")
		}
	}
	return nil
}

// Simulation owns a grid and advances it one generation at a time
type Simulation struct {
	grid       *model.Grid
	pool       *model.GridPool
	rng        *rand.Rand
	bounded    bool
	generation int

	history    []string // hashes of recent generations for cycle detection
	historyLen int
}

// Option configures a Simulation
type Option func(*Simulation)

// WithPool recycles discarded generations through pool
func WithPool(pool *model.GridPool) Option {
	return func(s *Simulation) { s.pool = pool }
}

// WithSeed fixes the random source used by Randomize
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = utils.NewRNG(seed) }
}

// WithBounded restricts each generation to the active region of the grid
func WithBounded(bounded bool) Option {
	return func(s *Simulation) { s.bounded = bounded }
}

// WithHistory sets how many past generations are kept for stagnation checks
func WithHistory(n int) Option {
	return func(s *Simulation) { s.historyLen = max(n, 0) }
}

// New creates a simulation over an all-dead grid. It neither randomizes nor evolves.
func New(width, height int, opts ...Option) (*Simulation, error) {
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[simulation.New]")
	}

	s := &Simulation{grid: grid, historyLen: defaultHistory}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = utils.NewRNG(0)
	}
	return s, nil
}

// Snapshot returns a copy of the current generation. The simulation keeps
// sole ownership of its grid, so the copy stays valid across Evolve calls.
func (s *Simulation) Snapshot() *model.Grid {
	return s.grid.Clone()
}

// String renders the current generation as X/O text
func (s *Simulation) String() string {
	return s.grid.String()
}

// GetWidth returns the width of the grid
func (s *Simulation) GetWidth() int {
	return s.grid.GetWidth()
}

// GetHeight returns the height of the grid
func (s *Simulation) GetHeight() int {
	return s.grid.GetHeight()
}

// Generation returns the number of Evolve calls so far
func (s *Simulation) Generation() int {
	return s.generation
}

// Cell returns the state of a cell
func (s *Simulation) Cell(x, y int) (model.CellState, error) {
	return s.grid.Cell(x, y)
}

// Toggle flips a cell
func (s *Simulation) Toggle(x, y int) error {
	return s.grid.Toggle(x, y)
}

// Clear kills every cell and forgets the recorded history
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.history = nil
}

// Stamp writes a pattern centered on the grid
func (s *Simulation) Stamp(p model.Pattern) error {
	if len(p) == 0 {
		return nil
	}
	x := (s.grid.GetWidth() - len(p[0])) / 2
	y := (s.grid.GetHeight() - len(p)) / 2
	return s.StampAt(p, x, y)
}

// StampAt writes a pattern with its top-left corner at (x, y). A pattern that
// does not fit leaves the grid unchanged.
func (s *Simulation) StampAt(p model.Pattern, x, y int) error {
	if len(p) == 0 {
		return nil
	}
	return errors.Wrap(s.grid.Stamp(p, x, y), "[Stamp]")
}

// Randomize toggles round(ratio*width*height) random cells
func (s *Simulation) Randomize(ratio float64) error {
	return Randomize(s.grid, ratio, s.rng)
}

// Evolve advances one generation: the next grid is fully built before it replaces the current one
func (s *Simulation) Evolve() {
	s.recordHistory()

	evolve := Evolve
	if s.bounded {
		evolve = EvolveBounded
	}
	next := evolve(s.grid, s.pool)
	old := s.grid
	s.grid = next
	s.generation++

	model.GridToPool(old, s.pool)
}

// LiveCellCount returns the number of live cells in the current generation
func (s *Simulation) LiveCellCount() int {
	return s.grid.CountLivingCells()
}

// BoundingBoxSize returns the number of cells in the bounding box of the live cells
func (s *Simulation) BoundingBoxSize() int {
	return s.grid.BoundingBoxSize()
}

// Density returns the live cell percentage
func (s *Simulation) Density() float64 {
	return float64(s.LiveCellCount()) / float64(s.GetWidth()*s.GetHeight()) * 100
}

func (s *Simulation) recordHistory() {
	if s.historyLen == 0 {
		return
	}
	s.history = append(s.history, s.grid.Hash())

	if len(s.history) > s.historyLen {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three, which covers still lifes and oscillators up to period 3
func (s *Simulation) IsStagnant() bool {
	if len(s.history) == 0 {
		return false
	}

	current := s.grid.Hash()
	for i := len(s.history) - 1; i >= max(0, len(s.history)-3); i-- {
		if s.history[i] == current {
			return true
		}
	}
	return false
}

// Status summarizes the current generation for display
func (s *Simulation) Status() string {
	switch {
	case s.LiveCellCount() == 0:
		return StatusExtinct
	case s.IsStagnant():
		return StatusStagnant
	}
	return StatusActive
}
