package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownGlyph indicates an unsupported character in a layout.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrMissingStart indicates a layout without an 'S' marker.
	ErrMissingStart = errors.New("grid: layout has no start marker")
	// ErrMissingGoal indicates a layout without a 'G' marker.
	ErrMissingGoal = errors.New("grid: layout has no goal marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'G' marker.
	ErrDuplicateMarker = errors.New("grid: layout has more than one start or goal marker")
	// ErrOutOfBounds indicates a cell that lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)
