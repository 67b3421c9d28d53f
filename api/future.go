// File: api/future.go
// Package api defines the pollable computation contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Future is a unit of asynchronous work driven by repeated polling.
//
// Poll consumes the waitables that became ready since the previous call
// (empty on the first call), attempts to make progress without blocking,
// and returns the waitables the computation now needs. An empty return
// means no further external waiting is required and the caller must call
// Take next. Implementations in this module return at most one waitable
// per Poll call.
//
// Take hands over the computation's result exactly once. Calling it
// before completion, or again after the result was retrieved, returns
// ok == false; neither is an error.
//
// A non-would-block failure of the underlying operation is captured as
// the result value, not reported out-of-band; would-block conditions are
// expressed as requested waitables.
type Future[T any] interface {
	Poll(ready []Waitable) []Waitable
	Take() (result T, ok bool)
}
