package reel

import (
	"sync/atomic"

	"github.com/framegrace/panelreel/core"
)

// DrawFn renders a tablet's content into its panel. begx/begy and
// maxx/maxy are inclusive, zero-indexed, panel-local bounds of the
// usable area. When cliptop is true the tablet is only partially
// visible at the top of the reel: content must be written so that its
// last lines occupy the rows up to maxy (write in reverse). When
// cliptop is false output starts at begy and the bottom may be clipped.
// The return value is the number of lines written; values outside
// [0, maxy-begy+1] are clamped by the engine.
type DrawFn func(t *Tablet, begx, begy, maxx, maxy int, cliptop bool) int

// Tablet is one navigable item within a reel. Tablets live in a
// circular doubly-linked ring owned by their reel; all mutation happens
// through the reel's facade.
type Tablet struct {
	reel   *Reel
	cb     DrawFn
	opaque any
	panel  *core.Panel

	prev, next *Tablet

	dirty atomic.Bool

	// scrtop remembers the on-screen top row from the previous redraw, or
	// -1 while the tablet is off-screen. The solver anchors the focused
	// tablet here so navigation scrolls rather than jumps.
	scrtop int
}

// UserPtr returns the opaque payload supplied to Add.
func (t *Tablet) UserPtr() any { return t.opaque }

// SetUserPtr replaces the opaque payload and returns the previous one.
func (t *Tablet) SetUserPtr(p any) any {
	old := t.opaque
	t.opaque = p
	return old
}

// Panel returns the tablet's drawing panel. It is borrowed: valid only
// while the tablet is live, and only under the reel's lock (inside the
// draw callback is the usual place).
func (t *Tablet) Panel() *core.Panel { return t.panel }

// Next and Prev expose ring neighbours for read-only traversal under
// the reel's lock.
func (t *Tablet) Next() *Tablet { return t.next }
func (t *Tablet) Prev() *Tablet { return t.prev }
