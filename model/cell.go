package model

// CellState is the state of a single grid position
type CellState uint8

const (
	Dead CellState = iota
	Live
)

const (
	deadSymbol = "X"
	liveSymbol = "O"
)

// Flip returns the opposite state
func (c CellState) Flip() CellState {
	if c == Live {
		return Dead
	}
	return Live
}

// IsLive reports whether the cell is alive
func (c CellState) IsLive() bool {
	return c == Live
}

// String renders the cell using the text grid convention
func (c CellState) String() string {
	if c == Live {
		return liveSymbol
	}
	return deadSymbol
}

// stateFromSymbol is the inverse of String
func stateFromSymbol(s string) (CellState, bool) {
	switch s {
	case deadSymbol:
		return Dead, true
	case liveSymbol:
		return Live, true
	}
	return Dead, false
}
