package unionfind

import "testing"

// TestWeightedUF_SequenceFromSpec replays the canonical join sequence:
// N=10; join(4,3),(3,8),(6,5),(9,4),(2,1),(5,0),(7,2),(6,1),(7,3).
// Afterward every pair in {0..9} must be connected.
func TestWeightedUF_SequenceFromSpec(t *testing.T) {
	uf := New(10)

	joins := [][2]int{
		{4, 3}, {3, 8}, {6, 5}, {9, 4},
		{2, 1}, {5, 0}, {7, 2}, {6, 1}, {7, 3},
	}
	for _, j := range joins {
		uf.Join(j[0], j[1])
	}

	if !uf.Connected(8, 9) {
		t.Errorf("connected(8,9) = false; want true")
	}
	if !uf.Connected(5, 0) {
		t.Errorf("connected(5,0) = false; want true")
	}

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if !uf.Connected(i, j) {
				t.Errorf("connected(%d,%d) = false; want true", i, j)
			}
		}
	}
}

// TestWeightedUF_JoinIdempotent verifies joining already-connected sites
// changes nothing observable.
func TestWeightedUF_JoinIdempotent(t *testing.T) {
	uf := New(4)
	uf.Join(0, 1)
	before := uf.Connected(0, 1)
	uf.Join(0, 1)
	if uf.Connected(0, 1) != before {
		t.Fatalf("idempotent join changed connectivity")
	}
}

// TestWeightedUF_OutOfRangePanics checks the programming-contract panic
// on out-of-range indices.
func TestWeightedUF_OutOfRangePanics(t *testing.T) {
	uf := New(3)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range index")
		}
	}()
	uf.Connected(0, 3)
}

// TestWeightedUF_TreeDepthBound spot-checks the amortized depth bound:
// with n sites unioned into a single chain via repeated halving, no site
// should require more than a small constant number of hops to its root
// after a handful of queries have triggered compression.
func TestWeightedUF_TreeDepthBound(t *testing.T) {
	const n = 64
	uf := New(n)
	for i := 1; i < n; i++ {
		uf.Join(i-1, i)
	}

	// Trigger path compression via queries, then verify every site
	// reaches the root in at most a couple of hops.
	root := uf.root(0)
	for i := 0; i < n; i++ {
		if uf.root(i) != root {
			t.Fatalf("site %d not connected to root after chained joins", i)
		}
		hops := 0
		j := i
		for j != uf.parent[j] {
			j = uf.parent[j]
			hops++
		}
		if hops > 2 {
			t.Errorf("site %d took %d hops to root after compression; want <=2", i, hops)
		}
	}
}
