// File: reactor/stats.go
// Author: momentics <momentics@gmail.com>
//
// Poller activity counters.

package reactor

// Stats aggregates poller activity since Open. Counters are maintained
// on the poller goroutine; Stats returns them by value.
type Stats struct {
	TotalWaits          int64 // blocking Wait calls that returned
	TotalEvents         int64 // waitables buffered for Drain
	StaleEvents         int64 // kernel deliveries dropped on tag mismatch
	TotalRegisters      int64 // successful Register calls
	TotalUnregisters    int64 // successful Unregister calls
	ActiveRegistrations int64 // current interest set size
}
