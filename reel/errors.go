package reel

import "errors"

// Operation errors. Facade operations either complete or leave the ring
// and focus untouched; these never signal a partial mutation.
var (
	// ErrInvalidConfig rejects a bad Options record at creation time:
	// circular without infinite scroll, a maximum below a minimum, or
	// negative geometry.
	ErrInvalidConfig = errors.New("panelreel: invalid configuration")

	// ErrNotFound is returned when a tablet does not belong to this reel.
	ErrNotFound = errors.New("panelreel: tablet not found")

	// ErrAdjacency is returned by Add when both placement hints are given
	// but are not neighbours in the ring.
	ErrAdjacency = errors.New("panelreel: placement hints are not adjacent")

	// ErrEmpty is returned by operations that need at least one tablet.
	ErrEmpty = errors.New("panelreel: reel is empty")

	// ErrClipped is informational: the requested offsets pushed the reel
	// partially off its host and were clamped. The move still happened.
	ErrClipped = errors.New("panelreel: offsets clipped to host")
)

// Validation violations, one per invariant checked by Validate.
var (
	ErrRingCorrupt    = errors.New("panelreel: ring links inconsistent")
	ErrFocusInvalid   = errors.New("panelreel: focus does not match tablet count")
	ErrContainment    = errors.New("panelreel: tablet drawn outside interior")
	ErrMultipleFocus  = errors.New("panelreel: more than one focused tablet drawn")
	ErrRegionsOverlap = errors.New("panelreel: tablet regions overlap")
	ErrRegionGap      = errors.New("panelreel: blank rows between adjacent tablets")
	ErrFocusPriority  = errors.New("panelreel: focused tablet shorter than it could be")
)
