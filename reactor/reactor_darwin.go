//go:build darwin
// +build darwin

// File: reactor/reactor_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin kqueue(2) event queue backend.

package reactor

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// osPoller is the kqueue instance behind a Poller.
type osPoller struct {
	kq     int
	events []unix.Kevent_t
}

func openOSPoller() (*osPoller, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	unix.CloseOnExec(kq)
	return &osPoller{kq: kq}, nil
}

// addRead submits an EV_ADD change for the read filter without
// collecting any events. The tag travels in the kevent udata word; it
// is a plain integer smuggled through the pointer-typed field and is
// never dereferenced.
func (o *osPoller) addRead(fd int, tag uint32) error {
	change := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
		Udata:  (*byte)(unsafe.Pointer(uintptr(tag))),
	}
	_, err := unix.Kevent(o.kq, []unix.Kevent_t{change}, nil, nil)
	return err
}

func (o *osPoller) delRead(fd int) error {
	change := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_DELETE,
	}
	_, err := unix.Kevent(o.kq, []unix.Kevent_t{change}, nil, nil)
	return err
}

// wait blocks with no timeout until kqueue reports readiness, retrying
// interrupted calls in place.
func (o *osPoller) wait(buf []rawEvent) (int, error) {
	if len(o.events) < len(buf) {
		o.events = make([]unix.Kevent_t, len(buf))
	}
	for {
		n, err := unix.Kevent(o.kq, nil, o.events[:len(buf)], nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		for i := 0; i < n; i++ {
			ev := &o.events[i]
			buf[i] = rawEvent{
				fd:  int(ev.Ident),
				tag: uint32(uintptr(unsafe.Pointer(ev.Udata))),
			}
		}
		return n, nil
	}
}

func (o *osPoller) close() error {
	return unix.Close(o.kq)
}
