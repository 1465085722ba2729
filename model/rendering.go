package model

import (
	"fmt"
	"io"
)

const clearScreen = "\033[H\033[2J"

// TerminalRenderer writes grids using the plain X/O text form
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid followed by a newline
func (r *TerminalRenderer) Display(g *Grid) error {
	_, err := fmt.Fprintln(r.Out, g.String())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearScreen)
	return err
}
