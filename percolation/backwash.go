package percolation

import "github.com/katalvlaran/algoexercises/unionfind"

// NoBackwash wraps a Percolation with a second overlay wired only to the
// virtual top, giving a backwash-free IsFull at the cost of a second
// n²+1-site union-find. This is the two-pass alternative described in
// the package doc: track fullness with a structure the virtual bottom
// never touches.
type NoBackwash struct {
	*Percolation
	topOnly *unionfind.OpenOverlay
}

// NewNoBackwash constructs a fully blocked n-by-n grid with backwash-free
// fullness tracking alongside the standard Percolation.
func NewNoBackwash(n int) (*NoBackwash, error) {
	base, err := New(n)
	if err != nil {
		return nil, err
	}

	// n²+1 sites: the grid plus a virtual top only, index 0.
	topOnly := unionfind.NewOpenOverlay(n*n + 1)
	topOnly.Open(0)

	return &NoBackwash{Percolation: base, topOnly: topOnly}, nil
}

func (nb *NoBackwash) topIndex(row, col int) int {
	return nb.Percolation.index(row, col)
}

// Open opens the site in both the base Percolation and the top-only
// overlay used for backwash-free fullness.
func (nb *NoBackwash) Open(row, col int) error {
	wasOpen := nb.Percolation.IsOpen(row, col)
	if err := nb.Percolation.Open(row, col); err != nil {
		return err
	}
	if wasOpen {
		return nil
	}

	idx := nb.topIndex(row, col)
	nb.topOnly.Open(idx)

	n := nb.Percolation.n
	if row == 1 {
		nb.topOnly.Join(0, idx)
	} else if nb.Percolation.IsOpen(row-1, col) {
		nb.topOnly.Join(nb.topIndex(row-1, col), idx)
	}
	if row < n && nb.Percolation.IsOpen(row+1, col) {
		nb.topOnly.Join(nb.topIndex(row+1, col), idx)
	}
	if col < n && nb.Percolation.IsOpen(row, col+1) {
		nb.topOnly.Join(nb.topIndex(row, col+1), idx)
	}
	if col > 1 && nb.Percolation.IsOpen(row, col-1) {
		nb.topOnly.Join(nb.topIndex(row, col-1), idx)
	}

	return nil
}

// IsFullNoBackwash reports whether the given site is open and connected
// to the virtual top via the top-only overlay, free of backwash.
func (nb *NoBackwash) IsFullNoBackwash(row, col int) bool {
	if !nb.Percolation.IsOpen(row, col) {
		return false
	}

	return nb.topOnly.Connected(0, nb.topIndex(row, col))
}
