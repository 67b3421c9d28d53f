// File: transport/read.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import "github.com/momentics/pollfut/api"

// ReadFuture is a one-shot non-blocking read of the wrapped stream.
//
// Poll attempts the read immediately. Success and genuine I/O errors
// both complete the future; a would-block outcome instead requests read
// interest on the stream's descriptor. The byte count (zero at end of
// data) or the captured error is handed over by Take exactly once.
type ReadFuture struct {
	conn      *Conn
	buf       []byte
	out       api.Result[int]
	completed bool
	ready     bool
}

var _ api.Future[api.Result[int]] = (*ReadFuture)(nil)

// Poll runs the read attempt. Completed futures ignore further polls.
func (f *ReadFuture) Poll(ready []api.Waitable) []api.Waitable {
	if f.completed {
		return nil
	}
	if f.conn.closed {
		f.complete(api.Result[int]{Err: api.ErrTransportClosed})
		return nil
	}
	n, err := readFD(f.conn.fd, f.buf)
	if err != nil {
		if wouldBlock(err) {
			return []api.Waitable{{FD: f.conn.fd, Interest: api.InterestRead}}
		}
		f.complete(api.Result[int]{Err: err})
		return nil
	}
	f.complete(api.Result[int]{Value: n})
	return nil
}

// Take hands over the cached result. ok is false before completion and
// after the result was already taken.
func (f *ReadFuture) Take() (api.Result[int], bool) {
	if !f.ready {
		return api.Result[int]{}, false
	}
	f.ready = false
	return f.out, true
}

func (f *ReadFuture) complete(r api.Result[int]) {
	f.out = r
	f.completed = true
	f.ready = true
}
