package percolation

import "errors"

// ErrInvalidSize indicates a grid size n <= 0 was requested.
var ErrInvalidSize = errors.New("percolation: grid size must be positive")

// ErrOutOfRange indicates a 1-based (row, col) pair outside [1, n].
var ErrOutOfRange = errors.New("percolation: row/col out of range")

// ErrInvalidTrials indicates a trial count T <= 0 was requested.
var ErrInvalidTrials = errors.New("percolation: trial count must be positive")
