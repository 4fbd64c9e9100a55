package palgrid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("palgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("palgrid: all rows must have the same length")
	// ErrOutOfRange indicates a requested cell lies outside the grid.
	ErrOutOfRange = errors.New("palgrid: cell index out of range")
	// ErrUnknownDirection indicates a Direction outside the four families.
	ErrUnknownDirection = errors.New("palgrid: unknown direction")
	// ErrNilGrid indicates a nil *Grid was passed to a finder.
	ErrNilGrid = errors.New("palgrid: grid is nil")
)
