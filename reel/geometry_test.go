package reel_test

import (
	"strings"
	"testing"

	"github.com/framegrace/panelreel/core"
	"github.com/framegrace/panelreel/reel"
)

func TestCircularNavigationWraps(t *testing.T) {
	_, r := newReel(t, 30, 12, borderless(reel.Options{InfiniteScroll: true, Circular: true}))
	tabs, _ := addSeq(t, r, 2, 2, 2)

	r.Next()
	r.Next()
	if got := r.Next(); got != tabs[0] {
		t.Fatal("next past the last tablet must wrap to the first")
	}
	if got := r.Prev(); got != tabs[2] {
		t.Fatal("prev past the first tablet must wrap to the last")
	}
}

func TestInfiniteWithoutCircularStopsAtEndpoints(t *testing.T) {
	_, r := newReel(t, 30, 12, borderless(reel.Options{InfiniteScroll: true}))
	tabs, _ := addSeq(t, r, 2, 2)

	if got := r.Prev(); got != tabs[0] {
		t.Fatal("prev at the head must not wrap")
	}
	r.Next()
	if got := r.Next(); got != tabs[1] {
		t.Fatal("next at the tail must not wrap")
	}
}

func TestCircularLayoutStopsAfterOneRevolution(t *testing.T) {
	_, r := newReel(t, 30, 10, borderless(reel.Options{InfiniteScroll: true, Circular: true}))
	tabs, _ := addSeq(t, r, 1, 1)

	// Two one-line tablets in a ten-row interior: each is drawn exactly
	// once, the rest of the interior stays empty.
	wantRect(t, tabs[0], core.Rect{X: 0, Y: 0, W: 30, H: 1})
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 1, W: 30, H: 1})
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestFiniteSlideDownAbsorbsBottomGap(t *testing.T) {
	_, r := newReel(t, 40, 10, borderless(reel.Options{}))
	tabs, probes := addSeq(t, r, 2, 2)

	if got := r.Next(); got != tabs[1] {
		t.Fatal("expected focus on the second tablet")
	}
	wantRect(t, tabs[0], core.Rect{X: 0, Y: 0, W: 40, H: 2})
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 2, W: 40, H: 2})

	// The first tablet grows past the space above the focused one; the
	// whole arrangement slides down to keep showing as much of it as
	// possible while the focused tablet stays fully visible.
	probes[0].setLines(9)
	r.Touch(tabs[0])
	if err := r.Redraw(); err != nil {
		t.Fatalf("redraw: %v", err)
	}
	wantRect(t, tabs[0], core.Rect{X: 0, Y: 0, W: 40, H: 8})
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 8, W: 40, H: 2})
	if c := probes[0].lastCall(t); !c.cliptop {
		t.Error("the grown tablet above focus must be invoked with cliptop")
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestFiniteSlideUpFillsFreedSpace(t *testing.T) {
	// Tablet borders on (two chrome rows per tablet), outer border off.
	opts := reel.Options{BorderMask: reel.BorderMaskAll}
	_, r := newReel(t, 20, 14, opts)
	tabs, _ := addSeq(t, r, 4, 2, 1, 1)

	wantRect(t, tabs[0], core.Rect{X: 0, Y: 0, W: 20, H: 6})
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 6, W: 20, H: 4})
	wantRect(t, tabs[2], core.Rect{X: 0, Y: 10, W: 20, H: 3})

	// Deleting the first tablet frees its rows; the remainder slides up
	// and the previously hidden last tablet comes on screen.
	if err := r.Del(tabs[0]); err != nil {
		t.Fatalf("del: %v", err)
	}
	if got := r.Focused(); got != tabs[1] {
		t.Fatal("focus should pass to the deleted tablet's successor")
	}
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 0, W: 20, H: 4})
	wantRect(t, tabs[2], core.Rect{X: 0, Y: 4, W: 20, H: 3})
	wantRect(t, tabs[3], core.Rect{X: 0, Y: 7, W: 20, H: 3})
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestSummaryHeaderPlacement(t *testing.T) {
	s, r := newReel(t, 24, 6, borderless(reel.Options{}))
	tabs, _ := addSeq(t, r, 10, 2)

	if got := r.Next(); got != tabs[1] {
		t.Fatal("expected focus on the second tablet")
	}
	// The oversized first tablet sits above, top-clipped to four rows;
	// its header lands on its last visible row. The focused tablet's
	// header lands on its first row.
	wantRect(t, tabs[0], core.Rect{X: 0, Y: 0, W: 24, H: 4})
	wantRect(t, tabs[1], core.Rect{X: 0, Y: 4, W: 24, H: 2})

	lines := strings.Split(render(s), "\n")
	if !strings.HasPrefix(lines[3], "[4 lines 0/3]") {
		t.Errorf("top-clipped header misplaced: %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "[2 lines 0/1]") {
		t.Errorf("focused header misplaced: %q", lines[4])
	}
}

func TestZeroLineTabletGetsOneRow(t *testing.T) {
	_, r := newReel(t, 20, 8, borderless(reel.Options{}))
	empty := &probe{lines: 0}
	tab, err := r.Add(nil, nil, empty.draw, empty)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	wantRect(t, tab, core.Rect{X: 0, Y: 0, W: 20, H: 1})
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestHiddenTabletsDoNotBleedThrough(t *testing.T) {
	s, r := newReel(t, 20, 4, borderless(reel.Options{}))
	tabs, _ := addSeq(t, r, 4, 3)

	// The second tablet gets no rows at all.
	if tabs[1].Panel().Visible() {
		t.Fatal("tablet without space must be hidden")
	}
	frame := render(s)
	if strings.Contains(frame, "[3 lines") {
		t.Error("hidden tablet content leaked into the frame")
	}
}
