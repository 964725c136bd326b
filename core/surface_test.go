package core_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
)

func frameCell(frame [][]core.Cell, x, y int) rune {
	return frame[y][x].Ch
}

func TestSurfaceComposeStacking(t *testing.T) {
	s := core.NewSurface(10, 6, tcell.StyleDefault)
	p1 := s.NewPanel(core.Rect{X: 0, Y: 0, W: 4, H: 2})
	p2 := s.NewPanel(core.Rect{X: 1, Y: 0, W: 4, H: 2})
	p1.Painter().Fill(core.Rect{W: 4, H: 2}, '1', tcell.StyleDefault)
	p2.Painter().Fill(core.Rect{W: 4, H: 2}, '2', tcell.StyleDefault)

	frame := s.Compose()
	if frameCell(frame, 0, 0) != '1' || frameCell(frame, 1, 0) != '2' {
		t.Error("later panel must draw on top of earlier one")
	}

	// Hiding the top panel reveals the bottom one without repainting.
	p2.Hide()
	frame = s.Compose()
	if frameCell(frame, 1, 0) != '1' {
		t.Error("hidden panel still occludes")
	}
	if frameCell(frame, 4, 0) != ' ' {
		t.Error("hidden panel content leaked")
	}

	// Re-showing restores the original stacking order.
	p2.Show()
	frame = s.Compose()
	if frameCell(frame, 1, 0) != '2' {
		t.Error("stacking order lost across hide/show")
	}
}

func TestPanelResizeKeepsTopLeftContent(t *testing.T) {
	s := core.NewSurface(10, 6, tcell.StyleDefault)
	p := s.NewPanel(core.Rect{X: 0, Y: 0, W: 4, H: 4})
	p.Painter().SetCell(0, 0, 'A', tcell.StyleDefault)
	p.Painter().SetCell(3, 3, 'B', tcell.StyleDefault)

	p.Resize(6, 2)
	frame := s.Compose()
	if frameCell(frame, 0, 0) != 'A' {
		t.Error("top-left content lost on resize")
	}
	if frameCell(frame, 3, 3) == 'B' {
		t.Error("rows beyond the new height must be dropped")
	}

	p.Resize(6, 4)
	frame = s.Compose()
	if frameCell(frame, 3, 3) == 'B' {
		t.Error("dropped rows must not reappear after growing back")
	}
}

func TestPanelMoveAndOffscreenClipping(t *testing.T) {
	s := core.NewSurface(8, 4, tcell.StyleDefault)
	p := s.NewPanel(core.Rect{X: 0, Y: 0, W: 3, H: 2})
	p.Painter().Fill(core.Rect{W: 3, H: 2}, 'x', tcell.StyleDefault)

	p.Move(6, 3)
	frame := s.Compose()
	if frameCell(frame, 6, 3) != 'x' || frameCell(frame, 7, 3) != 'x' {
		t.Error("moved panel content missing")
	}
	// The parts beyond the surface are simply not composed; nothing
	// panics and the rest of the frame stays clean.
	if frameCell(frame, 0, 0) != ' ' {
		t.Error("stale content at the old position")
	}
}

func TestPanelDestroyDetaches(t *testing.T) {
	s := core.NewSurface(6, 3, tcell.StyleDefault)
	p := s.NewPanel(core.Rect{W: 6, H: 3})
	p.Painter().Fill(core.Rect{W: 6, H: 3}, 'x', tcell.StyleDefault)
	p.Destroy()
	if frameCell(s.Compose(), 0, 0) != ' ' {
		t.Error("destroyed panel still composed")
	}
}

func TestSurfaceResizeReclips(t *testing.T) {
	s := core.NewSurface(6, 3, tcell.StyleDefault)
	p := s.NewPanel(core.Rect{W: 6, H: 3})
	p.Painter().Fill(core.Rect{W: 6, H: 3}, 'x', tcell.StyleDefault)

	s.Resize(4, 2)
	frame := s.Compose()
	if len(frame) != 2 || len(frame[0]) != 4 {
		t.Fatalf("frame size %dx%d after resize, want 4x2", len(frame[0]), len(frame))
	}
	if frameCell(frame, 3, 1) != 'x' {
		t.Error("panel content missing after shrink")
	}

	s.Resize(8, 4)
	frame = s.Compose()
	if frameCell(frame, 7, 3) != ' ' {
		t.Error("grown area should be background")
	}
}
