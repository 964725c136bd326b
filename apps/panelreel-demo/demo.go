// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/panelreel-demo/demo.go
// Summary: Interactive panelreel demo app.
// Usage: 'a'/'b'/'c' create tablets, Delete removes the focused one,
// j/k or Up/Down navigate, h/l or Left/Right move the reel, q quits.

package panelreeldemo

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/panelreel/core"
	"github.com/framegrace/panelreel/enmetric"
	"github.com/framegrace/panelreel/reel"
	"github.com/framegrace/panelreel/standalone"
	"github.com/framegrace/panelreel/theme"
)

// tabletCtx is the payload behind each demo tablet: a line count that a
// worker goroutine keeps nudging up and down.
type tabletCtx struct {
	mu    sync.Mutex
	lines int
	id    int
	hue   tcell.Color
	t     *reel.Tablet
	stop  chan struct{}
}

type demoApp struct {
	mu      sync.Mutex
	surface *core.Surface
	r       *reel.Reel
	bus     core.ControlBus
	status  *core.Panel

	tablets []*tabletCtx
	nextID  int
	touches uint64
	x, y    int

	refresh chan<- bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New builds the demo app around a fresh surface and reel.
func New() (core.App, error) {
	a := &demoApp{
		surface: core.NewSurface(80, 24, theme.SurfaceStyle()),
		bus:     core.NewControlBus(),
		done:    make(chan struct{}),
		x:       4,
		y:       4,
	}
	a.status = a.surface.NewPanel(core.Rect{W: 80, H: 3})

	opts := reel.Options{
		InfiniteScroll: true,
		Circular:       true,
		MinCols:        8,
		MinRows:        5,
		TOff:           a.y,
		LOff:           a.x,
	}
	r, err := reel.New(a.surface, core.Rect{}, opts, a)
	if err != nil {
		return nil, err
	}
	a.r = r
	a.registerControls()
	return a, nil
}

// Wakeup implements reel.Notifier: touches from tablet workers land
// here and coalesce into the runner's refresh channel.
func (a *demoApp) Wakeup() {
	a.mu.Lock()
	a.touches++
	ch := a.refresh
	a.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- true:
	default:
	}
}

func (a *demoApp) registerControls() {
	_ = a.bus.Register("reel.add", "create a tablet", func(any) error {
		a.newTablet()
		return nil
	})
	_ = a.bus.Register("reel.del", "delete the focused tablet", func(any) error {
		a.killFocused()
		return nil
	})
	_ = a.bus.Register("reel.next", "focus the next tablet", func(any) error {
		a.r.Next()
		return nil
	})
	_ = a.bus.Register("reel.prev", "focus the previous tablet", func(any) error {
		a.r.Prev()
		return nil
	})
}

func (a *demoApp) Run() error {
	<-a.done
	return nil
}

func (a *demoApp) Stop() {
	a.mu.Lock()
	tablets := a.tablets
	a.tablets = nil
	a.mu.Unlock()
	for _, tc := range tablets {
		close(tc.stop)
	}
	a.wg.Wait()
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a *demoApp) Resize(cols, rows int) {
	a.surface.Resize(cols, rows)
	a.status.Resize(cols, 3)
	_ = a.r.Resize(core.Rect{})
}

func (a *demoApp) SetRefreshNotifier(ch chan<- bool) {
	a.mu.Lock()
	a.refresh = ch
	a.mu.Unlock()
}

func (a *demoApp) Render() [][]core.Cell {
	_ = a.r.Redraw()
	a.drawStatus()
	return a.surface.Compose()
}

func (a *demoApp) drawStatus() {
	a.status.Clear(theme.SurfaceStyle())
	p := a.status.Painter()
	hint := tcell.StyleDefault.Foreground(theme.GetSemanticColor("accent"))
	p.DrawText(1, 0, "a, b, c create tablets, DEL deletes, j/k navigate, q quits.", hint)

	a.mu.Lock()
	touches := a.touches
	a.mu.Unlock()
	count := a.r.TabletCount()
	plural := "s"
	if count == 1 {
		plural = ""
	}
	info := tcell.StyleDefault.Foreground(theme.GetSemanticColor("text.muted"))
	p.DrawText(2, 1, fmt.Sprintf("%d tablet%s, %s touches", count, plural, enmetric.SI(touches)), info)
}

func (a *demoApp) HandleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
		_ = a.bus.Trigger("reel.prev", nil)
	case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
		_ = a.bus.Trigger("reel.next", nil)
	case ev.Key() == tcell.KeyLeft, ev.Rune() == 'h':
		a.moveReel(-1, 0)
	case ev.Key() == tcell.KeyRight, ev.Rune() == 'l':
		a.moveReel(1, 0)
	case ev.Key() == tcell.KeyDelete:
		_ = a.bus.Trigger("reel.del", nil)
	case ev.Rune() == 'a', ev.Rune() == 'b', ev.Rune() == 'c':
		_ = a.bus.Trigger("reel.add", nil)
	case ev.Rune() == 'q':
		standalone.RequestExit()
	}
}

func (a *demoApp) moveReel(dx, dy int) {
	a.mu.Lock()
	x, y := a.x+dx, a.y+dy
	a.mu.Unlock()
	if x < 0 || y < 0 {
		return
	}
	if err := a.r.Move(x, y); err == nil {
		a.mu.Lock()
		a.x, a.y = x, y
		a.mu.Unlock()
	}
}

func (a *demoApp) newTablet() {
	a.mu.Lock()
	a.nextID++
	tc := &tabletCtx{
		lines: rand.Intn(10) + 1,
		id:    a.nextID,
		hue:   theme.GetSemanticColor("text.primary"),
		stop:  make(chan struct{}),
	}
	a.mu.Unlock()

	t, err := a.r.Add(nil, nil, tabletDraw, tc)
	if err != nil {
		return
	}
	tc.t = t

	a.mu.Lock()
	a.tablets = append(a.tablets, tc)
	a.mu.Unlock()

	a.wg.Add(1)
	go a.tabletWorker(tc)
}

// tabletWorker periodically grows or shrinks its tablet and signals the
// reel, exactly the churn a live feed would produce.
func (a *demoApp) tabletWorker(tc *tabletCtx) {
	defer a.wg.Done()
	for {
		delay := time.Duration(rand.Int63n(int64(3 * time.Second)))
		select {
		case <-tc.stop:
			return
		case <-time.After(delay):
		}
		action := rand.Intn(5)
		tc.mu.Lock()
		switch {
		case action < 2:
			tc.lines -= action + 1
		case action > 2:
			tc.lines += action - 2
		}
		if tc.lines < 1 {
			tc.lines = 1
		}
		tc.mu.Unlock()
		if action != 2 {
			a.r.Touch(tc.t)
		}
	}
}

func (a *demoApp) killFocused() {
	focused := a.r.Focused()
	if focused == nil {
		return
	}
	a.mu.Lock()
	var tc *tabletCtx
	for i, c := range a.tablets {
		if c.t == focused {
			tc = c
			a.tablets = append(a.tablets[:i], a.tablets[i+1:]...)
			break
		}
	}
	a.mu.Unlock()
	if tc == nil {
		return
	}
	close(tc.stop)
	_ = a.r.Del(tc.t)
}

// tabletDraw renders rows of hex digits, one digit per content line, in
// reverse when the top is clipped so the final lines stay visible.
func tabletDraw(t *reel.Tablet, begx, begy, maxx, maxy int, cliptop bool) int {
	tc := t.UserPtr().(*tabletCtx)
	tc.mu.Lock()
	defer tc.mu.Unlock()
	p := t.Panel().Painter()
	style := tcell.StyleDefault.Foreground(tc.hue)
	if cliptop {
		return tabletUp(p, begx, begy, maxx, maxy, tc.lines, style)
	}
	return tabletDown(p, begx, begy, maxx, maxy, tc.lines, style)
}

func tabletDown(p *core.Painter, begx, begy, maxx, maxy, lines int, style tcell.Style) int {
	y := begy
	for ; y <= maxy; y++ {
		if y-begy >= lines {
			break
		}
		ch := hexDigit(y % 16)
		for x := begx; x <= maxx; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
	return y - begy
}

// tabletUp writes in reverse order (only the bottom will be seen when
// partially off-screen) but keeps the content anchored at begy when it
// fits, since a shrink keeps the top rows.
func tabletUp(p *core.Painter, begx, begy, maxx, maxy, lines int, style tcell.Style) int {
	idx := lines
	if maxy-begy >= lines {
		maxy -= maxy - begy + 1 - lines
	}
	for y := maxy; y >= begy; y-- {
		ch := hexDigit(idx % 16)
		for x := begx; x <= maxx; x++ {
			p.SetCell(x, y, ch, style)
		}
		idx--
		if idx == 0 {
			break
		}
	}
	return lines - idx
}

func hexDigit(n int) rune {
	const digits = "0123456789abcdef"
	return rune(digits[n&0xf])
}
