// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fade/fade.go
// Summary: Fade a composed frame to or from black on a tcell screen.
// Usage: Shells call Out on teardown (and In on startup) for a soft
// transition instead of an abrupt clear.

package fade

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/panelreel/core"
)

// Step is the frame interval used by Out and In.
const Step = 25 * time.Millisecond

// Snapshot deep-copies a composed frame so the fade keeps rendering it
// after the source surface moves on.
func Snapshot(frame [][]core.Cell) [][]core.Cell {
	out := make([][]core.Cell, len(frame))
	for y, row := range frame {
		out[y] = make([]core.Cell, len(row))
		copy(out[y], row)
	}
	return out
}

// Out fades the frame to black over the given duration, blocking until
// done. The screen is left showing the fully darkened frame.
func Out(screen tcell.Screen, frame [][]core.Cell, d time.Duration) {
	steps := int(d / Step)
	if steps < 1 {
		steps = 1
	}
	for i := steps - 1; i >= 0; i-- {
		blit(screen, frame, float64(i)/float64(steps))
		time.Sleep(Step)
	}
}

// In fades the frame up from black over the given duration.
func In(screen tcell.Screen, frame [][]core.Cell, d time.Duration) {
	steps := int(d / Step)
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		blit(screen, frame, float64(i)/float64(steps))
		time.Sleep(Step)
	}
}

func blit(screen tcell.Screen, frame [][]core.Cell, t float64) {
	for y, row := range frame {
		for x, cell := range row {
			screen.SetContent(x, y, cell.Ch, nil, ScaleStyle(cell.Style, t))
		}
	}
	screen.Show()
}

// ScaleStyle returns style with both colors scaled toward black;
// t=1 leaves it untouched, t=0 is fully dark. Attributes survive.
func ScaleStyle(style tcell.Style, t float64) tcell.Style {
	fg, bg, attr := style.Decompose()
	return tcell.StyleDefault.
		Attributes(attr).
		Foreground(ScaleColor(fg, t)).
		Background(ScaleColor(bg, t))
}

// ScaleColor darkens c by factor t in linear RGB, which keeps the ramp
// perceptually even instead of crushing the dark end. Non-RGB colors
// (ColorDefault and unset) pass through untouched.
func ScaleColor(c tcell.Color, t float64) tcell.Color {
	if !c.Valid() {
		return c
	}
	r, g, b := c.TrueColor().RGB()
	if r < 0 || g < 0 || b < 0 {
		return c
	}
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := col.LinearRgb()
	scaled := colorful.LinearRgb(lr*t, lg*t, lb*t).Clamped()
	r8, g8, b8 := scaled.RGB255()
	return tcell.NewRGBColor(int32(r8), int32(g8), int32(b8))
}
