package puzzle

import "container/heap"

// Priority selects which distance function drives the A* search.
type Priority int

const (
	// Hamming orders nodes by board.Hamming() + depth.
	Hamming Priority = iota
	// Manhattan orders nodes by board.Manhattan() + depth.
	Manhattan
)

// Solver runs A* on the input board and, in lockstep, on its twin, to
// solve solvable boards and detect unsolvable ones without running
// forever. See the package doc for why the twin guarantees termination.
type Solver struct {
	priority Priority
	tree     *gameTree
	twinTree *gameTree
	solvable bool
	goal     *gameNode
}

// NewSolver solves b using the given priority function, defaulting
// neither tree's exploration order beyond what that priority dictates.
func NewSolver(b *Board, priority Priority) *Solver {
	s := &Solver{priority: priority}
	s.solve(b)

	return s
}

func (s *Solver) solve(b *Board) {
	var root, twinRoot *gameNode
	s.tree, root = newGameTree(b)
	s.twinTree, twinRoot = newGameTree(b.Twin())

	pq := &nodePQ{sel: s.priority}
	heap.Init(pq)
	heap.Push(pq, root)

	twinPQ := &nodePQ{sel: s.priority}
	heap.Init(twinPQ)
	heap.Push(twinPQ, twinRoot)

	for {
		cur := heap.Pop(pq).(*gameNode)
		twinCur := heap.Pop(twinPQ).(*gameNode)

		if cur.board.Solved() {
			s.solvable = true
			s.goal = cur

			return
		}
		if twinCur.board.Solved() {
			s.solvable = false

			return
		}

		expand(s.tree, cur, pq)
		expand(s.twinTree, twinCur, twinPQ)
	}
}

// expand pushes a child node for every neighbor of cur.board that isn't
// equal to the board cur was expanded from — the optimization that
// prevents immediately undoing the move that produced cur.
func expand(tree *gameTree, cur *gameNode, pq *nodePQ) {
	for _, nb := range cur.board.Neighbors() {
		if cur.parent != nil && nb.Equal(cur.parent.board) {
			continue
		}

		child := tree.addNode(nb, cur.depth+1, cur)
		heap.Push(pq, child)
	}
}

// IsSolvable reports whether the goal was reached on the main tree.
func (s *Solver) IsSolvable() bool { return s.solvable }

// Moves returns the minimum number of moves to solve the board, or -1 if
// it is unsolvable.
func (s *Solver) Moves() int {
	if !s.solvable {
		return -1
	}

	return s.goal.depth
}

// Solution returns the sequence of boards from the input board to the
// goal, inclusive, or nil if the board is unsolvable.
func (s *Solver) Solution() []*Board {
	if !s.solvable {
		return nil
	}

	var reversed []*Board
	for n := s.goal; n != nil; n = n.parent {
		reversed = append(reversed, n.board)
	}

	out := make([]*Board, len(reversed))
	for i, b := range reversed {
		out[len(reversed)-1-i] = b
	}

	return out
}

// nodePQ is a min-heap of *gameNode ordered by the configured priority,
// matching the container/heap shape this module's teacher already uses
// for Dijkstra's priority queue (Len/Less/Swap/Push/Pop over a backing
// slice with no separate decrease-key support).
type nodePQ struct {
	items []*gameNode
	sel   Priority
}

func (pq *nodePQ) Len() int { return len(pq.items) }

func (pq *nodePQ) Less(i, j int) bool {
	if pq.sel == Hamming {
		return pq.items[i].hamming < pq.items[j].hamming
	}

	return pq.items[i].manhattan < pq.items[j].manhattan
}

func (pq *nodePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *nodePQ) Push(x interface{}) { pq.items = append(pq.items, x.(*gameNode)) }

func (pq *nodePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
