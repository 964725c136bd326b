// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: standalone/runner.go
// Summary: Standalone tcell runner for panel-surface apps.

package standalone

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
)

// Options controls the standalone runner behavior.
type Options struct {
	ExitKey tcell.Key
	OnInit  func(screen tcell.Screen)
	// OnExit runs on the live screen just before teardown, e.g. to fade
	// the last frame out.
	OnExit func(screen tcell.Screen)
}

var (
	screenFactory = tcell.NewScreen

	exitMu     sync.Mutex
	activeExit chan struct{}
)

// RequestExit signals the active runner (if any) to exit.
func RequestExit() {
	exitMu.Lock()
	ch := activeExit
	exitMu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// SetScreenFactory overrides the screen factory used by the runner.
// Tests can install tcell's simulation screen through this.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run drives a core.App in a terminal session until the exit key is
// pressed, the app's Run returns, or RequestExit fires.
func Run(app core.App, opts Options) error {
	if app == nil {
		return fmt.Errorf("standalone: nil app")
	}
	if opts.ExitKey == 0 {
		opts.ExitKey = tcell.KeyEscape
	}

	exitMu.Lock()
	activeExit = make(chan struct{}, 1)
	exitMu.Unlock()
	defer func() {
		exitMu.Lock()
		activeExit = nil
		exitMu.Unlock()
	}()

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	if opts.OnInit != nil {
		opts.OnInit(screen)
	}

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		buffer := app.Render()
		if buffer != nil {
			for y := 0; y < len(buffer); y++ {
				row := buffer[y]
				for x := 0; x < len(row); x++ {
					cell := row[x]
					screen.SetContent(x, y, cell.Ch, nil, cell.Style)
				}
			}
		}
		screen.Show()
	}

	draw()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
	}()
	defer app.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case err := <-runErr:
			if opts.OnExit != nil {
				opts.OnExit(screen)
			}
			return err
		case <-activeExit:
			if opts.OnExit != nil {
				opts.OnExit(screen)
			}
			return nil
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			draw()
		case *tcell.EventKey:
			if tev.Key() == opts.ExitKey || tev.Key() == tcell.KeyCtrlC {
				if opts.OnExit != nil {
					opts.OnExit(screen)
				}
				return nil
			}
			app.HandleKey(tev)
			draw()
		}
	}
}
