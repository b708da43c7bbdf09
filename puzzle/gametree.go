package puzzle

// gameNode is a single position in the A* search: a board, its depth
// (moves from the tree's root), a logical link to the node it was
// expanded from, and its cached Hamming/Manhattan priorities
// (board.{hamming|manhattan} + depth).
type gameNode struct {
	board     *Board
	depth     int
	parent    *gameNode
	hamming   int
	manhattan int
}

// gameTree owns every gameNode it creates as a flat, insertion-order
// arena. The parent-pointer graph threaded through gameNode.parent is a
// logical, read-only view into this arena, not an ownership relation —
// tearing down the tree is O(n) regardless of how deep any one branch
// runs, since Go's garbage collector reclaims the arena's backing slice
// as a single unit once the tree itself is unreachable.
type gameTree struct {
	nodes []*gameNode
}

// newGameTree builds a tree rooted at root with depth 0 and no parent.
func newGameTree(root *Board) (*gameTree, *gameNode) {
	t := &gameTree{}
	n := t.addNode(root, 0, nil)

	return t, n
}

// addNode creates and records a new node for board at the given depth,
// logically linked to parent.
func (t *gameTree) addNode(board *Board, depth int, parent *gameNode) *gameNode {
	n := &gameNode{
		board:     board,
		depth:     depth,
		parent:    parent,
		hamming:   board.Hamming() + depth,
		manhattan: board.Manhattan() + depth,
	}
	t.nodes = append(t.nodes, n)

	return n
}

// numNodes returns the number of nodes allocated in this tree so far.
func (t *gameTree) numNodes() int { return len(t.nodes) }
