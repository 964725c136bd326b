package fade

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
)

func TestScaleColorEndpoints(t *testing.T) {
	c := tcell.NewRGBColor(255, 0, 128)

	full := ScaleColor(c, 1)
	r, g, b := full.RGB()
	if r != 255 || g != 0 {
		t.Errorf("t=1 changed pure components: %d,%d,%d", r, g, b)
	}

	dark := ScaleColor(c, 0)
	r, g, b = dark.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("t=0 should be black, got %d,%d,%d", r, g, b)
	}
}

func TestScaleColorMonotonic(t *testing.T) {
	c := tcell.NewRGBColor(200, 200, 200)
	r1, _, _ := ScaleColor(c, 0.25).RGB()
	r2, _, _ := ScaleColor(c, 0.75).RGB()
	if !(0 < r1 && r1 < r2 && r2 < 200) {
		t.Errorf("scaling not monotonic: %d, %d", r1, r2)
	}
}

func TestScaleColorPassesNonRGBThrough(t *testing.T) {
	if got := ScaleColor(tcell.ColorDefault, 0.5); got != tcell.ColorDefault {
		t.Error("ColorDefault must pass through untouched")
	}
}

func TestScaleStyleKeepsAttributes(t *testing.T) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(100, 150, 200)).
		Background(tcell.NewRGBColor(10, 20, 30)).
		Bold(true)
	scaled := ScaleStyle(style, 0.5)
	_, _, attr := scaled.Decompose()
	if attr&tcell.AttrBold == 0 {
		t.Error("attributes lost while scaling")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	frame := [][]core.Cell{
		{{Ch: 'a'}, {Ch: 'b'}},
		{{Ch: 'c'}, {Ch: 'd'}},
	}
	snap := Snapshot(frame)
	frame[0][0].Ch = 'z'
	if snap[0][0].Ch != 'a' {
		t.Error("snapshot shares backing storage with the source")
	}
}

func TestOutDrivesScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))
	frame := [][]core.Cell{
		{{Ch: 'x', Style: style}, {Ch: 'x', Style: style}},
	}
	Out(screen, frame, 2*Step)

	// After the fade the glyphs are still present but fully darkened.
	contents, _, _ := screen.GetContents()
	if contents[0].Runes[0] != 'x' {
		t.Errorf("glyph lost during fade: %q", contents[0].Runes)
	}
	fg, _, _ := contents[0].Style.Decompose()
	r, g, b := fg.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("final frame not fully dark: %d,%d,%d", r, g, b)
	}
}
