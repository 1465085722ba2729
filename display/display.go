// Package display maps between screen coordinates and grid cells for the front-ends.
package display

const windowSpan = 1000

// CellAt translates a pointer position into grid coordinates by integer
// division with the cell size. ok is false when the position misses the grid.
func CellAt(px, py, cellW, cellH, gridW, gridH int) (x, y int, ok bool) {
	if px < 0 || py < 0 || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	x, y = px/cellW, py/cellH
	if x >= gridW || y >= gridH {
		return 0, 0, false
	}
	return x, y, true
}

// WindowSize returns the pixel size of a canvas showing the whole grid
func WindowSize(gridW, gridH, cellSize int) (w, h int) {
	return gridW * cellSize, gridH * cellSize
}

// DefaultDimensions derives a 3:2 grid width and a cell size inverse to the height
func DefaultDimensions(height int) (width, cellSize int) {
	if height <= 0 {
		return 0, 0
	}
	return (height * 3) / 2, max(1, windowSpan/height)
}
