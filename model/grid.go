package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Grid represents the game board. Edges are bounded, nothing wraps.
type Grid struct {
	width  int
	height int
	cells  [][]CellState
}

// NewGrid creates a fully dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	// each row gets its own backing array
	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) outside %dx%d", op, x, y, g.width, g.height)
	}
	return nil
}

// Cell returns the state of a cell
func (g *Grid) Cell(x, y int) (CellState, error) {
	if err := g.checkBounds("Cell", x, y); err != nil {
		return Dead, err
	}
	return g.cells[y][x], nil
}

// Set sets the state of a cell
func (g *Grid) Set(x, y int, state CellState) error {
	if err := g.checkBounds("Set", x, y); err != nil {
		return err
	}
	g.cells[y][x] = state
	return nil
}

// Toggle flips a cell between dead and live
func (g *Grid) Toggle(x, y int) error {
	if err := g.checkBounds("Toggle", x, y); err != nil {
		return err
	}
	g.cells[y][x] = g.cells[y][x].Flip()
	return nil
}

// Neighbors returns the states of the cells around (x, y), clipped to the grid.
// Cells past an edge are omitted rather than counted as dead.
func (g *Grid) Neighbors(x, y int) ([]CellState, error) {
	if err := g.checkBounds("Neighbors", x, y); err != nil {
		return nil, err
	}

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	neighbors := make([]CellState, 0, 8)
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			neighbors = append(neighbors, g.cells[ny][nx])
		}
	}
	return neighbors, nil
}

// LiveNeighborCount counts living neighbors of (x, y)
func (g *Grid) LiveNeighborCount(x, y int) (int, error) {
	if err := g.checkBounds("LiveNeighborCount", x, y); err != nil {
		return 0, err
	}
	return g.liveNeighbors(x, y), nil
}

// liveNeighbors walks the clipped window without allocating. Callers check bounds.
func (g *Grid) liveNeighbors(x, y int) (count int) {
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx].IsLive() {
				count++
			}
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].IsLive() {
				count++
			}
		}
	}
	return
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Dead
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = byte(g.cells[y][x])
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid as rows of space separated X (dead) and O (live), top row first
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * g.width * 2)
	for y := range g.height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range g.width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.cells[y][x].String())
		}
	}
	return b.String()
}

// ParseGrid builds a grid from the text produced by String.
// Blank lines and surrounding whitespace are ignored.
func ParseGrid(text string) (*Grid, error) {
	var rows [][]CellState
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]CellState, len(fields))
		for x, f := range fields {
			state, ok := stateFromSymbol(f)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidCell, "[ParseGrid] line %d column %d: %q", i+1, x+1, f)
			}
			row[x] = state
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrInvalidDimensions,
				"[ParseGrid] line %d has %d cells, want %d", i+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[ParseGrid] no rows")
	}

	return &Grid{
		width:  len(rows[0]),
		height: len(rows),
		cells:  rows,
	}, nil
}
