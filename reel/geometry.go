package reel

import "github.com/framegrace/panelreel/core"

// clipDir records which edge of a partially visible tablet is off-screen.
type clipDir uint8

const (
	clipNone clipDir = iota
	clipTop
	clipBottom
)

// drawOrder is one solver result: where a tablet goes this frame, how it
// is clipped, and how many content lines its callback produced.
type drawOrder struct {
	t       *Tablet
	region  core.Rect
	clip    clipDir
	focused bool
	lines   int
}

// tabletChrome returns the rows/cols consumed by the per-tablet border
// on each edge, honouring the tablet mask.
func (r *Reel) tabletChrome() (top, right, bottom, left int) {
	m := r.opts.TabletMask
	if !m.Has(core.EdgeTop) {
		top = 1
	}
	if !m.Has(core.EdgeRight) {
		right = 1
	}
	if !m.Has(core.EdgeBottom) {
		bottom = 1
	}
	if !m.Has(core.EdgeLeft) {
		left = 1
	}
	return
}

// invokeLocked sizes the tablet's panel for a trial of trialLines
// content rows, clears it, and runs the draw callback exactly once.
// The return value is the callback's line count clamped to [0, trialLines].
func (r *Reel) invokeLocked(t *Tablet, width, trialLines int, cliptop bool) int {
	ct, cr, cb, cl := r.tabletChrome()
	t.panel.Resize(width, trialLines+ct+cb)
	t.panel.Clear(r.bgStyle)
	begx := cl
	maxx := width - 1 - cr
	begy := ct
	maxy := ct + trialLines - 1
	ll := t.cb(t, begx, begy, maxx, maxy, cliptop)
	if ll < 0 {
		ll = 0
	}
	if ll > trialLines {
		ll = trialLines
	}
	return ll
}

// solveLocked computes the frame's draw orders. Every tablet that ends
// up in an order has had its callback invoked exactly once; tablets not
// in any order were not invoked at all.
//
// The focused tablet is measured against the full interior height and
// anchored to its remembered top (or the interior top on first render).
// Space below is filled walking next pointers, space above walking prev
// pointers; the final tablet in each direction may be clipped. In
// finite mode, leftover rows on one side are lent to the other so no
// interior row is wasted while tablets remain to fill it.
func (r *Reel) solveLocked(interior core.Rect) []drawOrder {
	f := r.focused
	if f == nil || interior.Empty() {
		return nil
	}
	ct, cr, cb, cl := r.tabletChrome()
	vc := ct + cb
	if interior.H <= vc || interior.W <= cl+cr {
		return nil
	}

	// Focused tablet: trial against the whole interior.
	maxContent := interior.H - vc
	ll := r.invokeLocked(f, interior.W, maxContent, false)
	lines := ll
	if lines < 1 {
		lines = 1
	}
	fh := lines + vc
	top := f.scrtop
	if top < interior.Y {
		top = interior.Y
	}
	if top+fh > interior.Y+interior.H {
		top = interior.Y + interior.H - fh
	}
	fclip := clipNone
	if ll == maxContent {
		fclip = clipBottom
	}
	focusedOrder := drawOrder{t: f, region: core.Rect{X: interior.X, Y: top, W: interior.W, H: fh}, clip: fclip, focused: true, lines: ll}

	visited := map[*Tablet]bool{f: true}
	tail := r.head.prev

	// Fill downward from the focused tablet.
	below := (interior.Y + interior.H) - (top + fh)
	var belowOrders []drawOrder
	y := top + fh
	cur := f
	moreBelow := false
	for below > 0 {
		if !r.opts.Circular && cur == tail {
			break
		}
		n := cur.next
		if n == nil || visited[n] {
			break
		}
		trial := below - vc
		if trial < 1 {
			moreBelow = true
			break
		}
		nll := r.invokeLocked(n, interior.W, trial, false)
		nlines := nll
		if nlines < 1 {
			nlines = 1
		}
		th := nlines + vc
		c := clipNone
		if nll == trial {
			c = clipBottom
			moreBelow = true
		}
		belowOrders = append(belowOrders, drawOrder{t: n, region: core.Rect{X: interior.X, Y: y, W: interior.W, H: th}, clip: c, lines: nll})
		visited[n] = true
		below -= th
		y += th
		if c == clipBottom {
			break
		}
		cur = n
	}

	// Fill upward. In finite mode the budget borrows any rows the
	// downward walk left unused; the overflow is repaid afterwards by
	// sliding the whole arrangement down.
	above := top - interior.Y
	budget := above
	if !r.opts.InfiniteScroll {
		budget += below
	}
	var aboveOrders []drawOrder
	yTop := top
	cur = f
	for budget > 0 {
		if !r.opts.Circular && cur == r.head {
			break
		}
		p := cur.prev
		if p == nil || visited[p] {
			break
		}
		trial := budget - vc
		if trial < 1 {
			break
		}
		pll := r.invokeLocked(p, interior.W, trial, true)
		plines := pll
		if plines < 1 {
			plines = 1
		}
		th := plines + vc
		c := clipNone
		if pll == trial {
			c = clipTop
		}
		yTop -= th
		aboveOrders = append(aboveOrders, drawOrder{t: p, region: core.Rect{X: interior.X, Y: yTop, W: interior.W, H: th}, clip: c, lines: pll})
		visited[p] = true
		budget -= th
		if c == clipTop {
			break
		}
		cur = p
	}

	orders := make([]drawOrder, 0, 1+len(belowOrders)+len(aboveOrders))
	orders = append(orders, aboveOrders...)
	orders = append(orders, focusedOrder)
	orders = append(orders, belowOrders...)

	// Repay borrowed rows: if the upward walk went above the interior
	// top, slide everything down by the overflow (never more than the
	// rows the downward walk left free).
	if yTop < interior.Y {
		shift := interior.Y - yTop
		for i := range orders {
			orders[i].region.Y += shift
		}
		yTop += shift
		below -= shift
	}

	// The symmetric case: rows left unused at the top while unvisited
	// tablets remain below. Slide the arrangement up and keep walking
	// downward into the freed space (finite mode only). Skipped when the
	// downward walk ended on a clipped tablet: its callback already ran
	// against the smaller trial, so sliding would only trade a top gap
	// for a bottom one.
	last := orders[len(orders)-1]
	if !r.opts.InfiniteScroll && yTop > interior.Y && moreBelow && last.clip != clipBottom {
		shift := yTop - interior.Y
		for i := range orders {
			orders[i].region.Y -= shift
		}
		below += shift
		y = orders[len(orders)-1].region.Y + orders[len(orders)-1].region.H
		cur = last.t
		for below > 0 {
			if !r.opts.Circular && cur == tail {
				break
			}
			n := cur.next
			if n == nil || visited[n] {
				break
			}
			trial := below - vc
			if trial < 1 {
				break
			}
			nll := r.invokeLocked(n, interior.W, trial, false)
			nlines := nll
			if nlines < 1 {
				nlines = 1
			}
			th := nlines + vc
			c := clipNone
			if nll == trial {
				c = clipBottom
			}
			orders = append(orders, drawOrder{t: n, region: core.Rect{X: interior.X, Y: y, W: interior.W, H: th}, clip: c, lines: nll})
			visited[n] = true
			below -= th
			y += th
			if c == clipBottom {
				break
			}
			cur = n
		}
	}

	return orders
}
