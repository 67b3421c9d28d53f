//go:build linux || darwin
// +build linux darwin

// File: transport/conn_unix.go
// Author: momentics <momentics@gmail.com>
//
// Raw non-blocking TCP socket plumbing for Unix-like platforms.

package transport

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"github.com/momentics/pollfut/api"
)

// dialTCP resolves addr, connects a stream socket, and flips it into
// non-blocking mode.
func dialTCP(addr string) (int, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return -1, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	family, sa, err := sockaddrFor(tcpAddr)
	if err != nil {
		return -1, err
	}
	fd, err := unix.Socket(family, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return -1, fmt.Errorf("transport: socket: %w", err)
	}
	unix.CloseOnExec(fd)
	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("transport: connect %s: %w", addr, err)
	}
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("transport: set nonblock: %w", err)
	}
	return fd, nil
}

// sockaddrFor maps a resolved TCP address onto the matching socket
// family and sockaddr.
func sockaddrFor(a *net.TCPAddr) (int, unix.Sockaddr, error) {
	if ip4 := a.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: a.Port}
		copy(sa.Addr[:], ip4)
		return unix.AF_INET, sa, nil
	}
	if ip6 := a.IP.To16(); ip6 != nil {
		sa := &unix.SockaddrInet6{Port: a.Port}
		copy(sa.Addr[:], ip6)
		return unix.AF_INET6, sa, nil
	}
	return 0, nil, fmt.Errorf("transport: no usable IP in %v: %w", a, api.ErrInvalidArgument)
}

func readFD(fd int, p []byte) (int, error)  { return unix.Read(fd, p) }
func writeFD(fd int, p []byte) (int, error) { return unix.Write(fd, p) }
func closeFD(fd int) error                  { return unix.Close(fd) }

// wouldBlock reports whether err is the non-blocking "try again" signal.
func wouldBlock(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK
}
