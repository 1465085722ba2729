package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given size. Dimensions must be positive.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put clears a grid and hands it back to the pool
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

// reset resizes the grid, reusing rows of matching width
func (g *Grid) reset(width, height int) {
	if len(g.cells) != height {
		g.cells = make([][]CellState, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]CellState, width)
			continue
		}
		for j := range g.cells[i] {
			g.cells[i][j] = Dead
		}
	}
	g.width = width
	g.height = height
}
