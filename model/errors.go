package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned for border cells and coordinates outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInvalidArgument is returned for malformed grid dimensions or seeding density
	ErrInvalidArgument = errors.New("invalid argument")
)

func outOfBounds(op string, g *Grid, row, col int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) on %dx%d grid", op, row, col, g.height, g.width)
}
