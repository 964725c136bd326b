package reel

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
	"github.com/framegrace/panelreel/theme"
)

// Border mask bits. Set bits suppress drawing of that edge.
const (
	BorderMaskTop    = core.EdgeTop
	BorderMaskRight  = core.EdgeRight
	BorderMaskBottom = core.EdgeBottom
	BorderMaskLeft   = core.EdgeLeft
	BorderMaskAll    = core.EdgesAll
)

// Options configures a reel at creation time. The zero value is a valid
// finite-scroll reel with borders everywhere and theme-default styling.
type Options struct {
	// MinCols/MinRows, when non-zero, are the smallest host geometry
	// (including borders) the reel will render tablets in. Below them it
	// draws a stand-in notice and waits for the host to grow; creation
	// never fails on account of a small host.
	MinCols, MinRows int

	// MaxCols/MaxRows, when non-zero, cap the reel's working area. A host
	// larger than the maxima leaves the reel anchored at its offset
	// origin (top-left); the surplus stays untouched. May not be smaller
	// than the corresponding minimum.
	MaxCols, MaxRows int

	// Offsets within the host window, applied on creation and resize.
	// Move updates the top and left offsets.
	TOff, ROff, BOff, LOff int

	// InfiniteScroll makes scrolling continuous rather than stopping at
	// the physical ends of the reel. Circular makes navigation wrap from
	// the last tablet to the first; it requires InfiniteScroll.
	InfiniteScroll bool
	Circular       bool

	// BorderMask suppresses outer reel border edges; TabletMask does the
	// same for the per-tablet borders.
	BorderMask core.Edges
	TabletMask core.Edges

	// Styling for the outer border, unfocused tablet borders, and the
	// focused tablet border. Zero values resolve through the theme.
	BorderStyle  tcell.Style
	TabletStyle  tcell.Style
	FocusedStyle tcell.Style
}

func (o *Options) validate() error {
	if o.Circular && !o.InfiniteScroll {
		return ErrInvalidConfig
	}
	if o.MinCols < 0 || o.MinRows < 0 || o.MaxCols < 0 || o.MaxRows < 0 {
		return ErrInvalidConfig
	}
	if o.TOff < 0 || o.ROff < 0 || o.BOff < 0 || o.LOff < 0 {
		return ErrInvalidConfig
	}
	if o.MaxCols != 0 && o.MaxCols < o.MinCols {
		return ErrInvalidConfig
	}
	if o.MaxRows != 0 && o.MaxRows < o.MinRows {
		return ErrInvalidConfig
	}
	return nil
}

// applyThemeDefaults fills zero styles from the active theme.
func (o *Options) applyThemeDefaults() {
	var zero tcell.Style
	styles := theme.DefaultReelStyles()
	if o.BorderStyle == zero {
		o.BorderStyle = styles.Border
	}
	if o.TabletStyle == zero {
		o.TabletStyle = styles.Tablet
	}
	if o.FocusedStyle == zero {
		o.FocusedStyle = styles.Focused
	}
}
