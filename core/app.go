// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/app.go
// Summary: Contract between an application and the standalone runner.

package core

import "github.com/gdamore/tcell/v2"

// App is anything the standalone runner can drive: it reacts to keys and
// resizes, renders a cell buffer on demand, and may signal refreshes
// through the notifier channel it is handed.
type App interface {
	// Run starts the application's logic, e.g., launching worker goroutines.
	Run() error
	// Stop terminates the application's logic.
	Stop()
	// Resize informs the application that the screen dimensions have changed.
	Resize(cols, rows int)
	// Render returns the application's current visual state as a 2D buffer of Cells.
	Render() [][]Cell
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
}
