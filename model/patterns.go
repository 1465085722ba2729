package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a small block of cells stamped onto a grid, rows first
type Pattern [][]CellState

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		{Dead, Live, Dead},
		{Dead, Dead, Live},
		{Live, Live, Live},
	}
	// Blinker is a horizontal period 2 oscillator
	Blinker = Pattern{
		{Live, Live, Live},
	}
)

// PatternByName resolves a pattern name. An empty name or "none" yields a nil pattern.
func PatternByName(name string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "glider":
		return Glider, nil
	case "blinker":
		return Blinker, nil
	}
	return nil, errors.Errorf("[PatternByName] unknown pattern %q", name)
}

// Stamp writes the pattern with its top-left corner at (startX, startY).
// Dead pattern cells overwrite. Nothing is written if any part falls outside the grid.
func (g *Grid) Stamp(p Pattern, startX, startY int) error {
	for y, row := range p {
		for x := range row {
			if err := g.checkBounds("Stamp", startX+x, startY+y); err != nil {
				return err
			}
		}
	}

	for y, row := range p {
		for x, cell := range row {
			g.cells[startY+y][startX+x] = cell
		}
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) error {
	return g.Stamp(Glider, startX, startY)
}

// AddBlinker adds a blinker oscillator pattern
func (g *Grid) AddBlinker(startX, startY int) error {
	return g.Stamp(Blinker, startX, startY)
}
