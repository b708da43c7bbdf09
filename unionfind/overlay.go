package unionfind

// OpenOverlay adds blocked/open state to an underlying Interface. New
// sites start blocked: Connected and Join are no-ops (false / nothing)
// against a blocked endpoint, including a blocked site compared to
// itself. open[p] is a separate side table rather than a sentinel parent
// value folded into the backing array — Go's Interface doesn't expose an
// embedded implementation's storage, so the "one container, one
// allocation" trick from the original template can't be replicated
// without reaching into private fields; a same-length bool slice costs
// one extra allocation in exchange for keeping UnionFind implementations
// wholly ignorant of blocked state.
type OpenOverlay struct {
	Interface
	open []bool
}

// NewOpenOverlay builds an OpenOverlay of n sites backed by a fresh
// WeightedUF — the variant this package recommends for everything but
// pedagogy.
func NewOpenOverlay(n int) *OpenOverlay {
	return NewOpenOverlayOn(New(n), n)
}

// NewOpenOverlayOn builds an OpenOverlay of n sites backed by the given
// Interface implementation (e.g. a QuickUF, for the pedagogical case).
func NewOpenOverlayOn(uf Interface, n int) *OpenOverlay {
	return &OpenOverlay{Interface: uf, open: make([]bool, n)}
}

// IsOpen reports whether p has been opened.
func (o *OpenOverlay) IsOpen(p int) bool {
	checkIndex(p, len(o.open))

	return o.open[p]
}

// Open marks p open. Idempotent.
func (o *OpenOverlay) Open(p int) {
	checkIndex(p, len(o.open))

	if o.open[p] {
		return
	}

	o.open[p] = true
}

// Connected returns false if either endpoint is blocked; otherwise
// delegates to the underlying Interface.
func (o *OpenOverlay) Connected(p, q int) bool {
	if !o.IsOpen(p) || !o.IsOpen(q) {
		return false
	}

	return o.Interface.Connected(p, q)
}

// Join is a no-op if either endpoint is blocked; otherwise delegates to
// the underlying Interface.
func (o *OpenOverlay) Join(p, q int) {
	if !o.IsOpen(p) || !o.IsOpen(q) {
		return
	}

	o.Interface.Join(p, q)
}
