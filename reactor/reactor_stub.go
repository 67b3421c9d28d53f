//go:build !linux && !darwin
// +build !linux,!darwin

// File: reactor/reactor_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub backend for platforms without a supported kernel event queue.

package reactor

import "github.com/momentics/pollfut/api"

type osPoller struct{}

func openOSPoller() (*osPoller, error) {
	return nil, api.ErrNotSupported
}

func (o *osPoller) addRead(fd int, tag uint32) error { return api.ErrNotSupported }

func (o *osPoller) delRead(fd int) error { return api.ErrNotSupported }

func (o *osPoller) wait(buf []rawEvent) (int, error) { return 0, api.ErrNotSupported }

func (o *osPoller) close() error { return nil }
