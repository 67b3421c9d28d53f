// File: transport/close.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import "github.com/momentics/pollfut/api"

// closeState tracks the two-phase teardown of a connection. The close
// request is first handed to the drive loop so the registration dies
// before the descriptor does; only the take call that follows releases
// the descriptor itself.
type closeState uint8

const (
	closePending closeState = iota
	closeRequested
	closeCompleted
)

// CloseFuture deregisters and then closes the wrapped stream.
type CloseFuture struct {
	conn  *Conn
	state closeState
}

var _ api.Future[error] = (*CloseFuture)(nil)

// Poll emits the close request once and otherwise does nothing. It
// never requests read interest, so the drive loop proceeds straight to
// Take without blocking.
func (f *CloseFuture) Poll(ready []api.Waitable) []api.Waitable {
	if f.state != closePending {
		return nil
	}
	f.state = closeRequested
	return []api.Waitable{{FD: f.conn.fd, Interest: api.InterestClose}}
}

// Take closes the descriptor on the first call after the close request
// was emitted and yields the close error, nil on clean teardown.
// Earlier and later calls return nothing.
func (f *CloseFuture) Take() (error, bool) {
	if f.state != closeRequested {
		return nil, false
	}
	f.state = closeCompleted
	return f.conn.Close(), true
}
