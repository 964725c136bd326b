package reel

import (
	"fmt"

	"github.com/framegrace/panelreel/core"
)

// redrawLocked performs a whole-reel redraw: recompute the working rect
// from the host, handle the too-small stand-in, draw the outer border,
// run the solver, then finalize every drawn tablet (panel placement,
// border, summary header) and hide the rest.
func (r *Reel) redrawLocked() error {
	host := r.host.Intersect(r.surface.Rect())
	work := host.Inner(r.opts.TOff, r.opts.ROff, r.opts.BOff, r.opts.LOff)

	if r.tooSmallLocked(work) {
		r.drawTooSmallLocked(host)
		r.hideAllLocked(nil)
		r.lastOrders = nil
		r.lastInterior = core.Rect{}
		return nil
	}

	if r.opts.MaxCols > 0 && work.W > r.opts.MaxCols {
		work.W = r.opts.MaxCols
	}
	if r.opts.MaxRows > 0 && work.H > r.opts.MaxRows {
		work.H = r.opts.MaxRows
	}

	r.bgPanel.Resize(work.W, work.H)
	r.bgPanel.Move(work.X, work.Y)
	r.bgPanel.Show()
	r.bgPanel.Clear(r.bgStyle)
	p := r.bgPanel.Painter()
	p.DrawBorderEdges(core.Rect{W: work.W, H: work.H}, r.opts.BorderStyle, core.SingleBorder, r.opts.BorderMask)

	interior := work.Inner(r.outerChrome())

	orders := r.solveLocked(interior)
	drawn := make(map[*Tablet]bool, len(orders))
	for _, o := range orders {
		r.finalizeTabletLocked(o)
		o.t.scrtop = o.region.Y
		drawn[o.t] = true
	}
	r.hideAllLocked(drawn)

	// Dirty marks are level-triggered; a whole-reel redraw satisfies them
	// all at once.
	if r.head != nil {
		t := r.head
		for {
			t.dirty.Store(false)
			t = t.next
			if t == r.head {
				break
			}
		}
	}

	r.lastOrders = orders
	r.lastInterior = interior
	return nil
}

// outerChrome returns the interior margins consumed by the outer border.
func (r *Reel) outerChrome() (t, rt, b, l int) {
	m := r.opts.BorderMask
	if !m.Has(core.EdgeTop) {
		t = 1
	}
	if !m.Has(core.EdgeRight) {
		rt = 1
	}
	if !m.Has(core.EdgeBottom) {
		b = 1
	}
	if !m.Has(core.EdgeLeft) {
		l = 1
	}
	return
}

func (r *Reel) tooSmallLocked(work core.Rect) bool {
	if work.Empty() {
		return true
	}
	if r.opts.MinCols > 0 && work.W < r.opts.MinCols {
		return true
	}
	if r.opts.MinRows > 0 && work.H < r.opts.MinRows {
		return true
	}
	return false
}

// drawTooSmallLocked paints the stand-in notice over the host area. No
// tablets are drawn until the host grows past the minima.
func (r *Reel) drawTooSmallLocked(host core.Rect) {
	if host.Empty() {
		r.bgPanel.Hide()
		return
	}
	r.bgPanel.Resize(host.W, host.H)
	r.bgPanel.Move(host.X, host.Y)
	r.bgPanel.Show()
	r.bgPanel.Clear(r.bgStyle)
	msg := fmt.Sprintf("terminal too small (want %dx%d)", r.opts.MinCols, r.opts.MinRows)
	if len(msg) > host.W {
		msg = "too small"
	}
	p := r.bgPanel.Painter()
	p.DrawText((host.W-len(msg))/2, host.H/2, msg, r.noticeStyle)
}

// finalizeTabletLocked trims the tablet's panel to its assigned region
// (its callback already ran during the solve), then draws the tablet
// border and summary header on top of the content.
func (r *Reel) finalizeTabletLocked(o drawOrder) {
	t := o.t
	t.panel.Resize(o.region.W, o.region.H)
	t.panel.Move(o.region.X, o.region.Y)
	t.panel.Show()

	style := r.opts.TabletStyle
	if o.focused {
		style = r.opts.FocusedStyle
	}
	p := t.panel.Painter()
	p.DrawBorderEdges(core.Rect{W: o.region.W, H: o.region.H}, style, core.SingleBorder, r.opts.TabletMask)

	if o.lines > 0 {
		r.drawSummaryLocked(p, o, style)
	}
}

// drawSummaryLocked writes the one-line summary header. Placement
// follows the callback protocol: the first usable row for top-anchored
// tablets; for top-clipped tablets the last content row when the region
// is full, or panel-local row lines when it is short.
func (r *Reel) drawSummaryLocked(p *core.Painter, o drawOrder, style core.Style) {
	ct, cr, cb, cl := r.tabletChrome()
	begx := cl
	begy := ct
	maxx := o.region.W - 1 - cr
	maxy := o.region.H - 1 - cb
	content := o.region.H - ct - cb

	row := begy
	if o.clip == clipTop {
		if o.lines == content {
			row = begy + o.lines - 1
		} else {
			row = o.lines
		}
	}
	if row > maxy {
		row = maxy
	}

	plural := "s"
	if o.lines == 1 {
		plural = ""
	}
	msg := fmt.Sprintf("[%d line%s %d/%d] ", o.lines, plural, begy, maxy)
	p.WithClip(core.Rect{X: begx, Y: row, W: maxx - begx + 1, H: 1}).DrawText(begx, row, msg, style)
}

// hideAllLocked hides every tablet not in keep and forgets its screen
// position, so it re-anchors cleanly when it comes back.
func (r *Reel) hideAllLocked(keep map[*Tablet]bool) {
	if r.head == nil {
		return
	}
	t := r.head
	for {
		if !keep[t] {
			t.panel.Hide()
			t.scrtop = -1
		}
		t = t.next
		if t == r.head {
			break
		}
	}
}
