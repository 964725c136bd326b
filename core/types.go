package core

import "github.com/gdamore/tcell/v2"

// Rect describes a position and size in cells.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inner returns r shrunk by the given top/right/bottom/left margins.
// Negative margins are treated as zero.
func (r Rect) Inner(t, rt, b, l int) Rect {
	if t < 0 {
		t = 0
	}
	if rt < 0 {
		rt = 0
	}
	if b < 0 {
		b = 0
	}
	if l < 0 {
		l = 0
	}
	return Rect{X: r.X + l, Y: r.Y + t, W: r.W - l - rt, H: r.H - t - b}
}

// Intersect returns the overlap of r and o, or a zero Rect if they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Edges is a bitfield of rectangle edges. Set bits select (or, in a
// border mask, suppress) the corresponding edge.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgesAll = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
)

// Has reports whether all edges in q are set.
func (e Edges) Has(q Edges) bool { return e&q == q }

// Style wraps a tcell.Style for convenience if we later want extensions.
type Style = tcell.Style
