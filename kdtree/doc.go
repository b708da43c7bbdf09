// Package kdtree implements a 2D k-d tree over the closed unit square
// [0,1]x[0,1], supporting insertion, membership, orthogonal range search,
// and nearest-neighbor search with axis-alternating pruning.
//
// Level parity encodes the splitting axis: even levels split by x, odd
// levels split by y. Each node carries the axis-aligned Rectangle giving
// the region of space that could contain its descendants, so Range and
// Nearest can prune entire subtrees whose region cannot possibly
// intersect the query.
//
// Points outside the unit square are rejected by Insert (report and
// ignore, not an error) — the same policy applies to Nearest query
// points that fall outside the square, per the package's reporting
// contract. Range accepts any rectangle and does not check it against
// the square.
package kdtree
