package rules

import "github.com/sheikhrachel/go-life/model"

/*
NextState applies Conway's Game of Life rules (B3/S23) to a single cell.

Three live neighbors always yield a live cell, two keep the current state,
any other count yields a dead cell.
*/
func NextState(current model.CellState, liveNeighbors int) model.CellState {
	switch liveNeighbors {
	case 3:
		return model.Live
	case 2:
		return current
	default:
		return model.Dead
	}
}
