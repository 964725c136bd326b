// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: reel/reel.go
// Summary: The panelreel facade: a vertically scrolling carousel of
// variable-height tablets hosted on a panel surface.
//
// A reel displays zero or more line-oriented, bordered tablets between
// which the user navigates. If at least one tablet exists, one of them
// is focused; as much of the focused tablet as geometry permits is
// always displayed, and leftover rows are filled with its neighbours,
// clipped at the reel's edges as needed. Tablets can come and go at any
// time and can grow or shrink at any time.

package reel

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
	"github.com/framegrace/panelreel/theme"
)

// Reel hosts the tablet ring on a region of a core.Surface. All methods
// are safe for use from the UI thread; only Touch may be called from
// other goroutines.
type Reel struct {
	mu sync.Mutex

	surface *core.Surface
	host    core.Rect
	opts    Options

	bgPanel     *core.Panel
	bgStyle     tcell.Style
	noticeStyle tcell.Style

	head    *Tablet
	focused *Tablet
	n       int

	notifier Notifier

	lastOrders   []drawOrder
	lastInterior core.Rect
}

// New creates a reel on the given surface region. A zero host rect
// means the whole surface. The notifier may be nil when no cross-thread
// wakeups are wanted. Creation fails on an invalid Options record but
// never because the host is currently smaller than the minima.
func New(surface *core.Surface, host core.Rect, opts Options, notifier Notifier) (*Reel, error) {
	if surface == nil {
		return nil, ErrInvalidConfig
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyThemeDefaults()
	if host.Empty() {
		host = surface.Rect()
	}
	r := &Reel{
		surface:     surface,
		host:        host,
		opts:        opts,
		bgStyle:     theme.SurfaceStyle(),
		noticeStyle: theme.NoticeStyle(),
		notifier:    notifier,
	}
	r.bgPanel = surface.NewPanel(core.Rect{X: host.X, Y: host.Y, W: host.W, H: host.H})

	r.mu.Lock()
	defer r.mu.Unlock()
	return r, r.redrawLocked()
}

// Destroy removes every tablet and the reel's own panels from the
// surface. The surface itself is untouched and remains usable.
func (r *Reel) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.head != nil {
		t := r.head
		for {
			next := t.next
			t.panel.Destroy()
			t.reel = nil
			t.prev, t.next = nil, nil
			if next == r.head {
				break
			}
			t = next
		}
	}
	r.head = nil
	r.focused = nil
	r.n = 0
	r.bgPanel.Destroy()
	r.lastOrders = nil
}

// Add creates a tablet and places it in the ring. Neither, either, or
// both placement hints may be given: with both, the pair must be
// adjacent (after.next == before); with one, the tablet lands
// immediately after/before it; with neither, it lands after the focused
// tablet, or at the ring tail when nothing is focused. The first tablet
// added to an empty reel becomes focused.
func (r *Reel) Add(after, before *Tablet, cb DrawFn, opaque any) (*Tablet, error) {
	if cb == nil {
		return nil, ErrInvalidConfig
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if after != nil && after.reel != r {
		return nil, ErrNotFound
	}
	if before != nil && before.reel != r {
		return nil, ErrNotFound
	}
	if after != nil && before != nil && after.next != before {
		return nil, ErrAdjacency
	}

	t := &Tablet{reel: r, cb: cb, opaque: opaque, scrtop: -1}
	t.panel = r.surface.NewPanel(core.Rect{W: 1, H: 1})
	t.panel.Hide()

	switch {
	case r.head == nil:
		t.prev, t.next = t, t
		r.head = t
		r.focused = t
	case after != nil:
		insertAfter(after, t)
	case before != nil:
		insertAfter(before.prev, t)
	case r.focused != nil:
		insertAfter(r.focused, t)
	default:
		insertAfter(r.head.prev, t)
	}
	r.n++

	return t, r.redrawLocked()
}

func insertAfter(a, t *Tablet) {
	t.prev = a
	t.next = a.next
	a.next.prev = t
	a.next = t
}

// Del removes the tablet from the reel. Deleting the focused tablet
// moves focus to its successor, or empties the reel when it was alone.
func (r *Reel) Del(t *Tablet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t == nil || t.reel != r {
		return ErrNotFound
	}
	return r.delLocked(t)
}

// DelFocused removes the focused tablet, if any.
func (r *Reel) DelFocused() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused == nil {
		return ErrEmpty
	}
	return r.delLocked(r.focused)
}

func (r *Reel) delLocked(t *Tablet) error {
	if t.next == t {
		r.head = nil
		r.focused = nil
	} else {
		t.prev.next = t.next
		t.next.prev = t.prev
		if r.head == t {
			r.head = t.next
		}
		if r.focused == t {
			r.focused = t.next
		}
	}
	t.panel.Destroy()
	t.reel = nil
	t.prev, t.next = nil, nil
	r.n--
	return r.redrawLocked()
}

// Touch marks the tablet dirty and fires the wakeup notifier. It is
// idempotent and safe from any goroutine; it never takes the reel lock,
// so worker threads never block on rendering. A touch racing a removal
// of its tablet just produces a harmless spurious wakeup.
func (r *Reel) Touch(t *Tablet) {
	if t == nil {
		return
	}
	t.dirty.Store(true)
	if n := r.notifier; n != nil {
		n.Wakeup()
	}
}

// Move repositions the reel within its host by updating the left and
// top offsets. Offsets that would push the reel off the host are
// clamped; ErrClipped reports that (informationally — the move still
// took effect).
func (r *Reel) Move(x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clipped := false
	if x < 0 {
		x = 0
		clipped = true
	}
	if y < 0 {
		y = 0
		clipped = true
	}
	host := r.host.Intersect(r.surface.Rect())
	if x+r.opts.ROff >= host.W {
		x = host.W - r.opts.ROff - 1
		if x < 0 {
			x = 0
		}
		clipped = true
	}
	if y+r.opts.BOff >= host.H {
		y = host.H - r.opts.BOff - 1
		if y < 0 {
			y = 0
		}
		clipped = true
	}
	r.opts.LOff = x
	r.opts.TOff = y
	if err := r.redrawLocked(); err != nil {
		return err
	}
	if clipped {
		return ErrClipped
	}
	return nil
}

// Resize tells the reel its host region changed (e.g. after a terminal
// resize). A zero rect means the whole surface.
func (r *Reel) Resize(host core.Rect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if host.Empty() {
		host = r.surface.Rect()
	}
	r.host = host
	return r.redrawLocked()
}

// Redraw recomputes the layout and repaints the reel in its entirety,
// for instance after a dirty notification or external corruption. It is
// idempotent: absent intervening mutation, consecutive redraws produce
// identical output.
func (r *Reel) Redraw() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redrawLocked()
}

// Focused returns the focused tablet, or nil on an empty reel. The
// handle is borrowed; use it only while no other goroutine can mutate
// the reel.
func (r *Reel) Focused() *Tablet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focused
}

// Next moves focus to the following tablet and returns the new focus.
// Without Circular, focus stops at the last tablet.
func (r *Reel) Next() *Tablet {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused == nil {
		return nil
	}
	if r.focused.next != r.focused && (r.opts.Circular || r.focused != r.head.prev) {
		r.focused = r.focused.next
		_ = r.redrawLocked()
	}
	return r.focused
}

// Prev moves focus to the preceding tablet and returns the new focus.
// Without Circular, focus stops at the first tablet.
func (r *Reel) Prev() *Tablet {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused == nil {
		return nil
	}
	if r.focused.prev != r.focused && (r.opts.Circular || r.focused != r.head) {
		r.focused = r.focused.prev
		_ = r.redrawLocked()
	}
	return r.focused
}

// TabletCount returns the number of tablets in the ring.
func (r *Reel) TabletCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}
