package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter writes into a [][]Cell target with clipping.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

func (p *Painter) Size() (int, int) {
	if p.buf == nil {
		return 0, 0
	}
	h := len(p.buf)
	w := 0
	if h > 0 {
		w = len(p.buf[0])
	}
	return w, h
}

func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if p.buf == nil {
		return
	}
	if x < p.clip.X || y < p.clip.Y || x >= p.clip.X+p.clip.W || y >= p.clip.Y+p.clip.H {
		return
	}
	if y >= 0 && y < len(p.buf) && x >= 0 && x < len(p.buf[y]) {
		p.buf[y][x] = Cell{Ch: ch, Style: style}
	}
}

func (p *Painter) Fill(rect Rect, ch rune, style tcell.Style) {
	for yy := rect.Y; yy < rect.Y+rect.H; yy++ {
		for xx := rect.X; xx < rect.X+rect.W; xx++ {
			p.SetCell(xx, yy, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y), advancing by the display width of
// each rune. Wide runes occupy their width; the trailing cells are blanked
// so stale glyphs cannot show through.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	xx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(xx, y, r, style)
		for i := 1; i < w; i++ {
			p.SetCell(xx+i, y, ' ', style)
		}
		xx += w
	}
	return xx - x
}

// BorderCharset is the rune set used for box drawing:
// horizontal, vertical, then the four corners (tl, tr, bl, br).
type BorderCharset [6]rune

// SingleBorder is the default single-line box drawing charset.
var SingleBorder = BorderCharset{'─', '│', '┌', '┐', '└', '┘'}

func (p *Painter) DrawBorder(rect Rect, style tcell.Style, charset BorderCharset) {
	p.DrawBorderEdges(rect, style, charset, 0)
}

// DrawBorderEdges draws a border around rect, skipping the edges set in
// omit. A corner is drawn only when both adjacent edges are drawn; when
// exactly one is, its line continues through the corner cell.
func (p *Painter) DrawBorderEdges(rect Rect, style tcell.Style, charset BorderCharset, omit Edges) {
	if rect.W <= 0 || rect.H <= 0 || omit.Has(EdgesAll) {
		return
	}
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1
	h, v := charset[0], charset[1]
	tl, tr, bl, br := charset[2], charset[3], charset[4], charset[5]

	top := !omit.Has(EdgeTop)
	right := !omit.Has(EdgeRight)
	bottom := !omit.Has(EdgeBottom)
	left := !omit.Has(EdgeLeft)

	for x := x0 + 1; x < x1; x++ {
		if top {
			p.SetCell(x, y0, h, style)
		}
		if bottom {
			p.SetCell(x, y1, h, style)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		if left {
			p.SetCell(x0, y, v, style)
		}
		if right {
			p.SetCell(x1, y, v, style)
		}
	}
	corner := func(x, y int, a, b bool, both rune) {
		switch {
		case a && b:
			p.SetCell(x, y, both, style)
		case a:
			p.SetCell(x, y, h, style)
		case b:
			p.SetCell(x, y, v, style)
		}
	}
	corner(x0, y0, top, left, tl)
	corner(x1, y0, top, right, tr)
	corner(x0, y1, bottom, left, bl)
	corner(x1, y1, bottom, right, br)
}

// WithClip returns a new Painter that clips to the intersection of the
// current clip and the given rectangle. If the intersection is empty,
// returns a painter with an empty clip (no output will be rendered).
func (p *Painter) WithClip(rect Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(rect)}
}
