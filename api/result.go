// Package api
// Author: momentics@gmail.com
//
// Generic result carrier for operations whose failure is a value.

package api

// Result wraps a payload or the error that replaced it. Read futures
// complete with a Result[int]: the byte count of one successful read,
// zero meaning end of data, or the I/O error captured while polling.
type Result[T any] struct {
	Value T
	Err   error
}
