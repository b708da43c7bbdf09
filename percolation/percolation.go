package percolation

import "github.com/katalvlaran/algoexercises/unionfind"

// Percolation models an n-by-n grid of blocked/open sites, backed by an
// unionfind.OpenOverlay of n²+2 sites: the grid (1-based, row-major) plus
// a virtual top (index 0) and virtual bottom (index n²+1). Both virtual
// sites are open from construction.
type Percolation struct {
	uf           *unionfind.OpenOverlay
	n            int
	top, bottom  int
	numOpenSites int
}

// New constructs a fully blocked n-by-n percolation grid. Returns
// ErrInvalidSize if n <= 0.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	p := &Percolation{
		uf:     unionfind.NewOpenOverlay(n*n + 2),
		n:      n,
		top:    0,
		bottom: n*n + 1,
	}

	p.uf.Open(p.top)
	p.uf.Open(p.bottom)

	return p, nil
}

// index maps a 1-based (row, col) grid site to its union-find index.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + col
}

// inRange reports whether (row, col) is a valid 1-based grid coordinate.
func (p *Percolation) inRange(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// IsOpen reports whether the given 1-based grid site is open.
func (p *Percolation) IsOpen(row, col int) bool {
	if !p.inRange(row, col) {
		panic("percolation: row/col out of range")
	}

	return p.uf.IsOpen(p.index(row, col))
}

// IsFull reports whether the given site is open and connected to the
// virtual top. Subject to backwash — see package doc.
func (p *Percolation) IsFull(row, col int) bool {
	if !p.IsOpen(row, col) {
		return false
	}

	return p.uf.Connected(p.top, p.index(row, col))
}

// NumberOfOpenSites returns the count of open non-virtual sites.
func (p *Percolation) NumberOfOpenSites() int {
	return p.numOpenSites
}

// Percolates reports whether the virtual top is connected to the virtual
// bottom.
func (p *Percolation) Percolates() bool {
	return p.uf.Connected(p.top, p.bottom)
}

// Open opens the given 1-based grid site, wiring it to any open
// neighbors (including the virtual top/bottom if on the boundary row).
// No-op if already open. Returns ErrOutOfRange for an invalid (row,
// col).
func (p *Percolation) Open(row, col int) error {
	if !p.inRange(row, col) {
		return ErrOutOfRange
	}

	if p.IsOpen(row, col) {
		return nil
	}

	idx := p.index(row, col)
	p.uf.Open(idx)
	p.numOpenSites++

	p.connectNeighbors(row, col)

	return nil
}

// connectNeighbors wires a freshly opened site to the virtual top/bottom
// (if on the boundary row) and to each existing open grid neighbor.
func (p *Percolation) connectNeighbors(row, col int) {
	idx := p.index(row, col)

	if row == 1 {
		p.uf.Join(p.top, idx)
	} else if p.IsOpen(row-1, col) {
		p.uf.Join(p.index(row-1, col), idx)
	}

	if row == p.n {
		p.uf.Join(p.bottom, idx)
	} else if p.IsOpen(row+1, col) {
		p.uf.Join(p.index(row+1, col), idx)
	}

	if col < p.n && p.IsOpen(row, col+1) {
		p.uf.Join(p.index(row, col+1), idx)
	}
	if col > 1 && p.IsOpen(row, col-1) {
		p.uf.Join(p.index(row, col-1), idx)
	}
}
