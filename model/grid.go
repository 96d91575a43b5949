package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/rules"
)

// Grid is one generation of the board. Rows and columns 0 and height-1 /
// width-1 form a border that is always dead.
type Grid struct {
	height int
	width  int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(height, width int) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewGrid] dimensions %dx%d", height, width)
	}
	return newGrid(height, width), nil
}

func newGrid(height, width int) *Grid {
	cells := make([][]bool, height)
	buf := make([]bool, height*width)
	for i := range cells {
		cells[i] = buf[i*width : (i+1)*width : (i+1)*width]
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// GetHeight returns the height of the grid, border included
func (g *Grid) GetHeight() int {
	return g.height
}

// GetWidth returns the width of the grid, border included
func (g *Grid) GetWidth() int {
	return g.width
}

// IsInterior reports whether (row, col) is a non-border cell of a height x width grid
func IsInterior(height, width, row, col int) bool {
	return row >= 1 && row <= height-2 && col >= 1 && col <= width-2
}

// IsInterior reports whether (row, col) is a non-border cell of g
func (g *Grid) IsInterior(row, col int) bool {
	return IsInterior(g.height, g.width, row, col)
}

// Get returns the state of a cell, false for anything outside the grid
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row][col]
}

// SetAlive marks an interior cell alive
func (g *Grid) SetAlive(row, col int) error {
	if !g.IsInterior(row, col) {
		return outOfBounds("SetAlive", g, row, col)
	}
	g.cells[row][col] = true
	return nil
}

// SetDead marks an interior cell dead
func (g *Grid) SetDead(row, col int) error {
	if !g.IsInterior(row, col) {
		return outOfBounds("SetDead", g, row, col)
	}
	g.cells[row][col] = false
	return nil
}

// Toggle flips the state of an interior cell
func (g *Grid) Toggle(row, col int) error {
	if !g.IsInterior(row, col) {
		return outOfBounds("Toggle", g, row, col)
	}
	g.cells[row][col] = !g.cells[row][col]
	return nil
}

// CountNeighbors counts the living cells in the 3x3 block around an interior
// cell. The caller guarantees (row, col) is interior, so every neighbor exists.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}
	return count
}

// NeighborsAt is CountNeighbors with the bounds check done for the caller
func (g *Grid) NeighborsAt(row, col int) (int, error) {
	if !g.IsInterior(row, col) {
		return 0, outOfBounds("NeighborsAt", g, row, col)
	}
	return g.CountNeighbors(row, col), nil
}

// Evolve returns the next generation. g is only read; the border of the
// result is left dead.
func (g *Grid) Evolve() *Grid {
	next := newGrid(g.height, g.width)
	for row := 1; row < g.height-1; row++ {
		for col := 1; col < g.width-1; col++ {
			next.cells[row][col] = rules.ApplyConwayRules(g.CountNeighbors(row, col), g.cells[row][col])
		}
	}
	return next
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.height, g.width)
	for row := range g.cells {
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
