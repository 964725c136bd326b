//go:build linux

package reel

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// EventFDNotifier signals through an eventfd, for callers whose event
// loop polls file descriptors rather than Go channels. Each Wakeup
// writes one 8-byte value of 1; a full counter (EAGAIN) is tolerated
// because the signal is already pending.
type EventFDNotifier struct {
	fd int
}

func NewEventFDNotifier() (*EventFDNotifier, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &EventFDNotifier{fd: fd}, nil
}

// FD returns the readable descriptor for poll/epoll integration.
func (n *EventFDNotifier) FD() int { return n.fd }

func (n *EventFDNotifier) Wakeup() {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 1)
	// EAGAIN means the counter is saturated; the reader already has a
	// pending wakeup. Other errors have no caller to report to.
	_, _ = unix.Write(n.fd, buf[:])
}

// Drain consumes the pending counter and reports whether a wakeup was
// pending.
func (n *EventFDNotifier) Drain() bool {
	var buf [8]byte
	nr, err := unix.Read(n.fd, buf[:])
	return err == nil && nr == len(buf) && binary.LittleEndian.Uint64(buf[:]) > 0
}

func (n *EventFDNotifier) Close() error {
	return unix.Close(n.fd)
}
