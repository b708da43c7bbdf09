package unionfind

import "fmt"

// WeightedUF is the weighted quick-union variant with path compression.
// parent[i] holds the parent of i in its tree; a root's entry equals its
// own index. size[i] holds the number of sites in the tree rooted at i
// and is only meaningful when i is a root. Join attaches the smaller
// tree under the larger root; on a size tie, q's root goes under p's
// root.
type WeightedUF struct {
	parent []int
	size   []int
}

// New constructs a WeightedUF over n sites, each its own singleton tree.
// Panics if n <= 0.
func New(n int) *WeightedUF {
	if n <= 0 {
		panic("unionfind: n must be positive")
	}

	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &WeightedUF{parent: parent, size: size}
}

// Size returns the number of sites.
func (u *WeightedUF) Size() int { return len(u.parent) }

// ID returns the raw stored parent entry for p (not necessarily a root).
func (u *WeightedUF) ID(p int) int {
	checkIndex(p, len(u.parent))

	return u.parent[p]
}

// root walks parent links to the fixed point, halving the path one pass
// as it goes: each visited node is repointed to its grandparent.
func (u *WeightedUF) root(i int) int {
	for i != u.parent[i] {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}

	return i
}

// Connected reports whether p and q share a root.
func (u *WeightedUF) Connected(p, q int) bool {
	checkIndex(p, len(u.parent))
	checkIndex(q, len(u.parent))

	return u.root(p) == u.root(q)
}

// Join merges the trees containing p and q, attaching the smaller tree
// under the larger root. Idempotent if p and q are already joined.
func (u *WeightedUF) Join(p, q int) {
	checkIndex(p, len(u.parent))
	checkIndex(q, len(u.parent))

	i, j := u.root(p), u.root(q)
	if i == j {
		return
	}

	if u.size[i] < u.size[j] {
		u.parent[i] = j
		u.size[j] += u.size[i]
	} else {
		u.parent[j] = i
		u.size[i] += u.size[j]
	}
}

// String renders each site's parent(size) pair, in site order.
func (u *WeightedUF) String() string {
	s := ""
	for i, p := range u.parent {
		s += fmt.Sprintf("%d(%d) ", p, u.size[i])
	}

	return s
}
