package gridworld

import "errors"

var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrUnknownCell indicates a layout character with no meaning, or a
	// terminal letter with no configured reward.
	ErrUnknownCell = errors.New("gridworld: unknown cell")
	// ErrBadStart indicates a layout without exactly one 'S'.
	ErrBadStart = errors.New("gridworld: layout needs exactly one start cell")
	// ErrBadConfig indicates noise or discount outside [0, 1].
	ErrBadConfig = errors.New("gridworld: invalid config")
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("gridworld: unknown preset")
)
