package puzzle

import (
	"fmt"
	"strings"
)

const (
	minDimension = 2
	maxDimension = 127
)

// Board is an n-by-n permutation of {0, ..., n²-1}; 0 is the blank.
// Validity, solved state, Hamming and Manhattan distances, and the
// blank's position are all computed once at construction and cached.
type Board struct {
	tiles             [][]int
	n                 int
	solved            bool
	hamming           int
	manhattan         int
	blankRow, blankCol int
}

// NewBoard validates tiles and, on success, returns a Board with its
// solved flag and Hamming/Manhattan distances precomputed. Returns
// ErrDimension if the row count n isn't in [2, 127], or ErrInvalidBoard
// if any row's length differs from n or the entries aren't a permutation
// of {0, ..., n²-1} with exactly one blank.
func NewBoard(tiles [][]int) (*Board, error) {
	n := len(tiles)
	if n < minDimension || n > maxDimension {
		return nil, ErrDimension
	}

	b := &Board{tiles: cloneTiles(tiles), n: n}

	if err := b.validate(); err != nil {
		return nil, err
	}

	b.assess()

	return b, nil
}

func cloneTiles(tiles [][]int) [][]int {
	out := make([][]int, len(tiles))
	for i, row := range tiles {
		out[i] = append([]int(nil), row...)
	}

	return out
}

func (b *Board) validate() error {
	n := b.n
	seen := make([]bool, n*n)
	blankFound := false

	for r, row := range b.tiles {
		if len(row) != n {
			return ErrInvalidBoard
		}

		for c, v := range row {
			if v < 0 || v >= n*n {
				return ErrInvalidBoard
			}
			if seen[v] {
				return ErrInvalidBoard
			}
			seen[v] = true

			if v == 0 {
				blankFound = true
				b.blankRow, b.blankCol = r, c
			}
		}
	}

	if !blankFound {
		return ErrInvalidBoard
	}

	return nil
}

// assess recomputes solved/Hamming/Manhattan from the current tiles and
// blank position.
func (b *Board) assess() {
	b.solved = true
	value := 1
	for r := 0; r < b.n && b.solved; r++ {
		for c := 0; c < b.n; c++ {
			if r == b.n-1 && c == b.n-1 {
				break
			}
			if b.tiles[r][c] != value {
				b.solved = false
				break
			}
			value++
		}
	}

	b.hamming, b.manhattan = 0, 0
	if b.solved {
		return
	}

	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			v := b.tiles[r][c]
			if v == 0 {
				continue
			}

			goalRow, goalCol := valueToPosition(v, b.n)
			if r != goalRow || c != goalCol {
				b.hamming++
				b.manhattan += abs(goalRow-r) + abs(goalCol-c)
			}
		}
	}
}

func valueToPosition(v, n int) (row, col int) {
	return (v - 1) / n, (v - 1) % n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Dimension returns n.
func (b *Board) Dimension() int { return b.n }

// Solved reports whether the board is in goal order.
func (b *Board) Solved() bool { return b.solved }

// Hamming returns the count of non-blank tiles out of place.
func (b *Board) Hamming() int { return b.hamming }

// Manhattan returns the sum over non-blank tiles of the row+column
// distance to their goal position.
func (b *Board) Manhattan() int { return b.manhattan }

// BlankPosition returns the (row, col) of the blank tile.
func (b *Board) BlankPosition() (row, col int) { return b.blankRow, b.blankCol }

// Tile returns the value at (row, col).
func (b *Board) Tile(row, col int) int { return b.tiles[row][col] }

// Neighbors returns up to four boards produced by swapping the blank
// with each existing orthogonal neighbor, each freshly reassessed.
func (b *Board) Neighbors() []*Board {
	deltas := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	out := make([]*Board, 0, 4)
	for _, d := range deltas {
		nr, nc := b.blankRow+d[0], b.blankCol+d[1]
		if nr < 0 || nr >= b.n || nc < 0 || nc >= b.n {
			continue
		}

		out = append(out, b.swapped(b.blankRow, b.blankCol, nr, nc))
	}

	return out
}

// swapped returns a copy of b with the tiles at (r1,c1) and (r2,c2)
// exchanged and reassessed. If the blank is one of the two positions (as
// in Neighbors), its new position is recorded; otherwise (as in Twin) the
// blank position carries over unchanged.
func (b *Board) swapped(r1, c1, r2, c2 int) *Board {
	cp := &Board{tiles: cloneTiles(b.tiles), n: b.n}
	cp.tiles[r1][c1], cp.tiles[r2][c2] = cp.tiles[r2][c2], cp.tiles[r1][c1]

	if cp.tiles[r1][c1] == 0 {
		cp.blankRow, cp.blankCol = r1, c1
	} else if cp.tiles[r2][c2] == 0 {
		cp.blankRow, cp.blankCol = r2, c2
	} else {
		cp.blankRow, cp.blankCol = b.blankRow, b.blankCol
	}

	cp.assess()

	return cp
}

// Twin returns a board with two non-blank tiles swapped: the tiles at
// (0,0) and (1,0), shifting either position right by one column if it
// coincides with the blank. This concrete, deterministic rule matches
// the one the puzzle solver's twin-unsolvability guard depends on.
func (b *Board) Twin() *Board {
	r1, c1 := 0, 0
	r2, c2 := 1, 0

	if b.blankRow == r1 && b.blankCol == c1 {
		c1++
	}
	if b.blankRow == r2 && b.blankCol == c2 {
		c2++
	}

	return b.swapped(r1, c1, r2, c2)
}

// Equal reports whether b and o hold the same tiles entrywise.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.n != o.n {
		return false
	}

	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if b.tiles[r][c] != o.tiles[r][c] {
				return false
			}
		}
	}

	return true
}

// String renders the board as a right-aligned grid with a one-line
// summary of its cached attributes.
func (b *Board) String() string {
	width := len(fmt.Sprintf("%d", b.n*b.n-1))

	var sb strings.Builder
	fmt.Fprintf(&sb, "dimension = %d solved = %t hamming = %d manhattan = %d blank = (%d, %d)\n",
		b.n, b.solved, b.hamming, b.manhattan, b.blankRow, b.blankCol)

	for _, row := range b.tiles {
		for _, v := range row {
			fmt.Fprintf(&sb, "%*d ", width, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
