package unionfind

import "testing"

// TestQuickUF_JoinRewritesClass checks quick-find's defining behavior:
// join rewrites every site sharing p's old class id.
func TestQuickUF_JoinRewritesClass(t *testing.T) {
	uf := NewQuick(5)
	uf.Join(0, 1)
	uf.Join(1, 2)

	if !uf.Connected(0, 2) {
		t.Fatalf("connected(0,2) = false; want true")
	}
	if uf.Connected(0, 3) {
		t.Fatalf("connected(0,3) = true; want false")
	}
}

func TestQuickUF_SequenceFromSpec(t *testing.T) {
	uf := NewQuick(10)
	joins := [][2]int{
		{4, 3}, {3, 8}, {6, 5}, {9, 4},
		{2, 1}, {5, 0}, {7, 2}, {6, 1}, {7, 3},
	}
	for _, j := range joins {
		uf.Join(j[0], j[1])
	}

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if !uf.Connected(i, j) {
				t.Errorf("connected(%d,%d) = false; want true", i, j)
			}
		}
	}
}
