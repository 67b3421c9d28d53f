// File: api/waitable.go
// Package api defines the readiness vocabulary shared by the reactor,
// futures, and transports.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// Interest is the kind of readiness a registration cares about.
type Interest uint8

const (
	// InterestRead asks to be woken when the descriptor has data to read.
	InterestRead Interest = 0x1
	// InterestClose asks the drive loop to remove any outstanding
	// registration for the descriptor before it is closed. It never
	// reaches the kernel as a registration of its own.
	InterestClose Interest = 0x2
)

// String returns a human-readable interest name.
func (i Interest) String() string {
	switch i {
	case InterestRead:
		return "read"
	case InterestClose:
		return "close"
	}
	return fmt.Sprintf("interest(%d)", uint8(i))
}

// Waitable declares that a computation is blocked on descriptor FD
// becoming available for the given Interest.
//
// A Waitable must never outlive the descriptor it names: the reactor
// registration for FD is removed before FD is closed.
type Waitable struct {
	FD       int
	Interest Interest
}
