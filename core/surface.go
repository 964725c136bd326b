// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/surface.go
// Summary: Stacked-panel drawing surface over a cell buffer.
// Usage: Hosts for panel-based widgets (the reel) compose through here.

package core

import "github.com/gdamore/tcell/v2"

// Surface owns a W×H cell grid and an ordered stack of panels. Panels
// retain their own content, so hiding and re-showing one never requires
// the owner to repaint what it occluded. Surface and Panel are not
// thread-safe; callers serialise access (the reel does so under its lock).
type Surface struct {
	w, h    int
	bgStyle tcell.Style
	panels  []*Panel
	frame   [][]Cell
}

func NewSurface(w, h int, bg tcell.Style) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{w: w, h: h, bgStyle: bg}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// Rect returns the surface bounds as a Rect at the origin.
func (s *Surface) Rect() Rect { return Rect{W: s.w, H: s.h} }

func (s *Surface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.frame = nil
}

// NewPanel creates a visible panel at rect, stacked above every existing
// panel. Stacking order is fixed at creation and preserved across
// show/hide cycles.
func (s *Surface) NewPanel(rect Rect) *Panel {
	p := &Panel{surface: s, visible: true}
	p.reshape(rect)
	s.panels = append(s.panels, p)
	return p
}

func (s *Surface) removePanel(target *Panel) {
	for i, p := range s.panels {
		if p == target {
			s.panels = append(s.panels[:i], s.panels[i+1:]...)
			return
		}
	}
}

func (s *Surface) ensureFrame() {
	if s.frame != nil && len(s.frame) == s.h && (s.h == 0 || len(s.frame[0]) == s.w) {
		return
	}
	s.frame = make([][]Cell, s.h)
	for y := range s.frame {
		s.frame[y] = make([]Cell, s.w)
	}
}

// Compose paints the background and every visible panel, bottom-up, into
// the frame buffer and returns it. The returned buffer is owned by the
// surface and valid until the next Resize.
func (s *Surface) Compose() [][]Cell {
	s.ensureFrame()
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.frame[y][x] = Cell{Ch: ' ', Style: s.bgStyle}
		}
	}
	bounds := s.Rect()
	for _, p := range s.panels {
		if !p.visible {
			continue
		}
		vis := p.rect.Intersect(bounds)
		for y := vis.Y; y < vis.Y+vis.H; y++ {
			row := p.buf[y-p.rect.Y]
			copy(s.frame[y][vis.X:vis.X+vis.W], row[vis.X-p.rect.X:vis.X-p.rect.X+vis.W])
		}
	}
	return s.frame
}

// Panel is a movable, hideable sub-region of a Surface with retained
// content. Coordinates handed to its Painter are panel-local.
type Panel struct {
	surface *Surface
	rect    Rect
	buf     [][]Cell
	visible bool
}

func (p *Panel) Rect() Rect    { return p.rect }
func (p *Panel) Visible() bool { return p.visible }
func (p *Panel) Show()         { p.visible = true }
func (p *Panel) Hide()         { p.visible = false }

func (p *Panel) Move(x, y int) {
	p.rect.X, p.rect.Y = x, y
}

// Resize grows or shrinks the panel, preserving content anchored at the
// panel's top-left (rows and columns beyond the new size are dropped;
// new cells start blank).
func (p *Panel) Resize(w, h int) {
	p.reshape(Rect{X: p.rect.X, Y: p.rect.Y, W: w, H: h})
}

func (p *Panel) reshape(rect Rect) {
	if rect.W < 0 {
		rect.W = 0
	}
	if rect.H < 0 {
		rect.H = 0
	}
	buf := make([][]Cell, rect.H)
	for y := range buf {
		buf[y] = make([]Cell, rect.W)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' '}
		}
		if y < len(p.buf) {
			copy(buf[y], p.buf[y])
		}
	}
	p.rect = rect
	p.buf = buf
}

// Clear resets every cell of the panel to a blank with the given style.
func (p *Panel) Clear(style tcell.Style) {
	for y := range p.buf {
		for x := range p.buf[y] {
			p.buf[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Painter returns a painter over the panel's content in panel-local
// coordinates, clipped to the panel bounds.
func (p *Panel) Painter() *Painter {
	return NewPainter(p.buf, Rect{W: p.rect.W, H: p.rect.H})
}

// Destroy detaches the panel from its surface. The panel must not be
// used afterwards.
func (p *Panel) Destroy() {
	if p.surface != nil {
		p.surface.removePanel(p)
		p.surface = nil
	}
	p.buf = nil
	p.visible = false
}
