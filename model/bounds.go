package model

// Bounds is the inclusive bounding box of the live cells of a grid
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Size returns the number of cells inside the box
func (b Bounds) Size() int {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Expand grows the box by margin on every side, clipped to a width x height grid
func (b Bounds) Expand(margin, width, height int) Bounds {
	return Bounds{
		MinX: max(0, b.MinX-margin),
		MinY: max(0, b.MinY-margin),
		MaxX: min(width-1, b.MaxX+margin),
		MaxY: min(height-1, b.MaxY+margin),
	}
}

// ActiveBounds calculates the bounding box of living cells.
// ok is false when the grid has none.
func (g *Grid) ActiveBounds() (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].IsLive() {
				continue
			}
			if !ok {
				b = Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return b, ok
}

// BoundingBoxSize returns the size of the active region
func (g *Grid) BoundingBoxSize() int {
	b, ok := g.ActiveBounds()
	if !ok {
		return 0
	}
	return b.Size()
}
