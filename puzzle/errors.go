package puzzle

import "errors"

// ErrInvalidBoard indicates the input matrix failed validation: wrong
// dimensions, a ragged row, a value outside [0, n²), a repeated value, or
// a missing/duplicated blank.
var ErrInvalidBoard = errors.New("puzzle: invalid board")

// ErrDimension indicates n falls outside the supported [2, 127] range.
var ErrDimension = errors.New("puzzle: board dimension must be in [2, 127]")
