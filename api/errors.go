// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the pollfut library.

package api

import "fmt"

// Errors reported by reactor and transport operations. Raw system call
// errors are wrapped with %w where they occur; the values below cover
// lifecycle and misuse conditions detected before any kernel call.
var (
	ErrPollerClosed      = fmt.Errorf("poller is closed")
	ErrTransportClosed   = fmt.Errorf("transport is closed")
	ErrAlreadyRegistered = fmt.Errorf("interest already registered")
	ErrNotRegistered     = fmt.Errorf("interest not registered")
	ErrNoRegistrations   = fmt.Errorf("wait with empty interest set")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrNotSupported      = fmt.Errorf("operation not supported")
)
