package unionfind

import "fmt"

// QuickUF is the quick-find variant: each entry holds its
// class representative directly. Connected is a single array comparison;
// Join rewrites every site carrying p's old id to q's id, so it costs
// O(n) per call. Kept for pedagogy — see WeightedUF for the variant with
// amortized near-constant operations.
type QuickUF struct {
	id []int
}

// NewQuick constructs a QuickUF over n sites, each initially its own
// class. Panics if n <= 0.
func NewQuick(n int) *QuickUF {
	if n <= 0 {
		panic("unionfind: n must be positive")
	}

	id := make([]int, n)
	for i := range id {
		id[i] = i
	}

	return &QuickUF{id: id}
}

// Size returns the number of sites.
func (u *QuickUF) Size() int { return len(u.id) }

// ID returns the stored class id for p.
func (u *QuickUF) ID(p int) int {
	checkIndex(p, len(u.id))

	return u.id[p]
}

// Connected reports whether p and q carry the same class id.
func (u *QuickUF) Connected(p, q int) bool {
	checkIndex(p, len(u.id))
	checkIndex(q, len(u.id))

	return u.id[p] == u.id[q]
}

// Join merges the classes of p and q by rewriting every site carrying
// p's class id to q's class id.
func (u *QuickUF) Join(p, q int) {
	checkIndex(p, len(u.id))
	checkIndex(q, len(u.id))

	pid, qid := u.id[p], u.id[q]
	if pid == qid {
		return
	}

	for i, id := range u.id {
		if id == pid {
			u.id[i] = qid
		}
	}
}

// String renders the raw id array, one entry per site.
func (u *QuickUF) String() string {
	return fmt.Sprint(u.id)
}
