//go:build linux

package reel_test

import (
	"testing"

	"github.com/framegrace/panelreel/reel"
)

func TestEventFDNotifier(t *testing.T) {
	n, err := reel.NewEventFDNotifier()
	if err != nil {
		t.Fatalf("eventfd: %v", err)
	}
	defer n.Close()

	if n.FD() < 0 {
		t.Fatal("invalid descriptor")
	}
	n.Wakeup()
	n.Wakeup()
	if !n.Drain() {
		t.Fatal("expected a pending wakeup")
	}
	// The counter accumulates; both writes drained in one read.
	if n.Drain() {
		t.Fatal("drained eventfd should be empty")
	}
}
