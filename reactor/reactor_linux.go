//go:build linux
// +build linux

// File: reactor/reactor_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7) event queue backend.

package reactor

import (
	"golang.org/x/sys/unix"
)

// osPoller is the epoll instance behind a Poller.
type osPoller struct {
	epfd   int
	events []unix.EpollEvent
}

func openOSPoller() (*osPoller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &osPoller{epfd: epfd}, nil
}

// addRead installs level-triggered read interest for fd. The caller's
// tag rides in the event Pad field and comes back with every delivery.
// Error conditions (EPOLLERR, EPOLLHUP) are reported by the kernel
// regardless of the mask and surface to the computation through the
// retried read.
func (o *osPoller) addRead(fd int, tag uint32) error {
	event := unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLRDHUP,
		Fd:     int32(fd),
		Pad:    int32(tag),
	}
	return unix.EpollCtl(o.epfd, unix.EPOLL_CTL_ADD, fd, &event)
}

func (o *osPoller) delRead(fd int) error {
	return unix.EpollCtl(o.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

// wait blocks with no timeout until epoll reports readiness, retrying
// interrupted calls in place.
func (o *osPoller) wait(buf []rawEvent) (int, error) {
	if len(o.events) < len(buf) {
		o.events = make([]unix.EpollEvent, len(buf))
	}
	for {
		n, err := unix.EpollWait(o.epfd, o.events[:len(buf)], -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		for i := 0; i < n; i++ {
			buf[i] = rawEvent{
				fd:  int(o.events[i].Fd),
				tag: uint32(o.events[i].Pad),
			}
		}
		return n, nil
	}
}

func (o *osPoller) close() error {
	return unix.Close(o.epfd)
}
