package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/algoexercises/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenOverlay_BlockedIsIsolated verifies that a blocked site is
// connected to nothing, including itself under Connected, and that no
// join involving it mutates any parent entry.
func TestOpenOverlay_BlockedIsIsolated(t *testing.T) {
	o := unionfind.NewOpenOverlay(4)

	assert.False(t, o.Connected(0, 0), "blocked site connected to itself")
	assert.False(t, o.IsOpen(0))

	before := o.ID(1)
	o.Join(0, 1)
	assert.Equal(t, before, o.ID(1), "join against a blocked site must not mutate state")
}

// TestOpenOverlay_OpenThenJoin exercises the open/join/connected happy
// path against a QuickUF-backed overlay.
func TestOpenOverlay_OpenThenJoin(t *testing.T) {
	o := unionfind.NewOpenOverlayOn(unionfind.NewQuick(4), 4)

	o.Open(0)
	o.Open(1)
	require.True(t, o.IsOpen(0))
	require.True(t, o.IsOpen(1))

	assert.False(t, o.Connected(0, 1))
	o.Join(0, 1)
	assert.True(t, o.Connected(0, 1))
}

// TestOpenOverlay_OpenIdempotent checks opening twice is a no-op.
func TestOpenOverlay_OpenIdempotent(t *testing.T) {
	o := unionfind.NewOpenOverlay(2)
	o.Open(0)
	o.Join(0, 1) // site 1 still blocked; must be a no-op
	o.Open(0)    // re-open is a no-op
	assert.True(t, o.IsOpen(0))
	assert.False(t, o.IsOpen(1))
}
