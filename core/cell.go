// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: Implements the character cell underlying all drawing surfaces.

package core

import "github.com/gdamore/tcell/v2"

// Cell represents a single character cell on the terminal screen.
// It uses tcell.Style to handle all formatting.
type Cell struct {
	Ch    rune
	Style tcell.Style
}
