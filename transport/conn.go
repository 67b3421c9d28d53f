// File: transport/conn.go
// Package transport wraps a non-blocking TCP stream with poll-driven
// read and teardown futures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"github.com/momentics/pollfut/api"
)

// Conn is a non-blocking duplex TCP stream suitable for reactor-driven
// reads. The descriptor is owned by the Conn until Close or a completed
// Disconnect releases it. A Conn and the futures it hands out belong to
// a single drive goroutine.
type Conn struct {
	fd     int
	closed bool
}

// Dial connects to addr ("host:port"), switches the socket into
// non-blocking mode, and returns the adapter. The connect itself is the
// last blocking operation the descriptor performs.
func Dial(addr string) (*Conn, error) {
	fd, err := dialTCP(addr)
	if err != nil {
		return nil, err
	}
	return &Conn{fd: fd}, nil
}

// RawFD returns the underlying descriptor for registration purposes.
func (c *Conn) RawFD() int { return c.fd }

// Write performs one non-blocking write. Would-block and short writes
// surface to the caller unchanged; write readiness is not driven by the
// reactor.
func (c *Conn) Write(p []byte) (int, error) {
	if c.closed {
		return 0, api.ErrTransportClosed
	}
	return writeFD(c.fd, p)
}

// Read returns a future that fills p with one non-blocking read.
func (c *Conn) Read(p []byte) *ReadFuture {
	return &ReadFuture{conn: c, buf: p}
}

// Disconnect returns the two-phase teardown future: its first poll asks
// the drive loop to drop any registration for the descriptor, and the
// take that follows closes the descriptor itself.
func (c *Conn) Disconnect() *CloseFuture {
	return &CloseFuture{conn: c}
}

// Close releases the descriptor immediately. Callers bypassing
// Disconnect own the unregister-before-close ordering themselves.
func (c *Conn) Close() error {
	if c.closed {
		return api.ErrTransportClosed
	}
	c.closed = true
	return closeFD(c.fd)
}
