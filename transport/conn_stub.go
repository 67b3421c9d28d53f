//go:build !linux && !darwin
// +build !linux,!darwin

// File: transport/conn_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub plumbing for platforms without non-blocking descriptor support.

package transport

import "github.com/momentics/pollfut/api"

func dialTCP(addr string) (int, error) { return -1, api.ErrNotSupported }

func readFD(fd int, p []byte) (int, error) { return 0, api.ErrNotSupported }

func writeFD(fd int, p []byte) (int, error) { return 0, api.ErrNotSupported }

func closeFD(fd int) error { return api.ErrNotSupported }

func wouldBlock(err error) bool { return false }
