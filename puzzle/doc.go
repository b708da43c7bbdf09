// Package puzzle solves n-by-n sliding tile puzzles with A*, expanding
// both the input board and its "twin" (two non-blank tiles swapped) in
// lockstep to detect unsolvable inputs without running forever.
//
// Board models a permutation of {0, ..., n²-1} (0 is the blank), caching
// validity, solved-state, Hamming and Manhattan distances, and the
// blank's position so these don't need to be recomputed on every probe.
//
// Solver owns two independent game trees — one rooted at the board, one
// at its twin — each backed by a container/heap priority queue keyed by
// the selected priority (Hamming or Manhattan distance plus depth). Every
// round pops the minimum from both queues; if the main board's node is
// solved, that is the answer; if the twin's is solved first, the input is
// unsolvable. Exactly one of a board and its twin is solvable (they sit
// in opposite parity classes of the 15-puzzle's permutation group), so
// the loop always terminates.
//
// Game tree nodes are owned by a flat, insertion-order arena (gameTree),
// not by their logical parent: this keeps teardown O(n) instead of
// O(depth) recursive destruction, and keeps the parent-pointer graph a
// read-only view into the arena rather than an ownership relationship.
package puzzle
