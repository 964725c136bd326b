package reel

import "sort"

// Validate checks the reel's structural invariants and the layout of
// the most recent redraw. Intended for tests; returns the first
// violation found, or nil.
func (r *Reel) Validate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Ring consistency and count.
	if r.head == nil {
		if r.n != 0 {
			return ErrRingCorrupt
		}
	} else {
		count := 0
		t := r.head
		for {
			if t.next == nil || t.prev == nil || t.next.prev != t || t.prev.next != t || t.reel != r {
				return ErrRingCorrupt
			}
			count++
			if count > r.n {
				return ErrRingCorrupt
			}
			t = t.next
			if t == r.head {
				break
			}
		}
		if count != r.n {
			return ErrRingCorrupt
		}
	}

	// Focus validity: none iff empty, and live in the ring otherwise.
	if (r.n == 0) != (r.focused == nil) {
		return ErrFocusInvalid
	}
	if r.focused != nil && r.focused.reel != r {
		return ErrFocusInvalid
	}

	if len(r.lastOrders) == 0 {
		return nil
	}

	orders := make([]drawOrder, len(r.lastOrders))
	copy(orders, r.lastOrders)
	sort.Slice(orders, func(i, j int) bool { return orders[i].region.Y < orders[j].region.Y })

	focusedSeen := 0
	for i, o := range orders {
		reg := o.region
		if reg.Intersect(r.lastInterior) != reg {
			return ErrContainment
		}
		if o.focused {
			focusedSeen++
		}
		if i > 0 {
			prev := orders[i-1].region
			if reg.Y < prev.Y+prev.H {
				return ErrRegionsOverlap
			}
			if reg.Y > prev.Y+prev.H {
				return ErrRegionGap
			}
		}
	}
	if focusedSeen != 1 {
		return ErrMultipleFocus
	}

	// Focused priority: the focused region is as tall as its content
	// wants, capped at the interior.
	for _, o := range orders {
		if !o.focused {
			continue
		}
		ct, _, cb, _ := r.tabletChrome()
		want := o.lines + ct + cb
		if o.lines < 1 {
			want = 1 + ct + cb
		}
		if want > r.lastInterior.H {
			want = r.lastInterior.H
		}
		if o.region.H < want {
			return ErrFocusPriority
		}
	}
	return nil
}
