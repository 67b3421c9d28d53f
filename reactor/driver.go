// File: reactor/driver.go
// Author: momentics <momentics@gmail.com>
//
// Synchronous drive loop running one future against one poller.

package reactor

import (
	"fmt"

	"github.com/momentics/pollfut/api"
)

// BlockOn drives fut to completion against p and returns its result.
//
// Each iteration hands the waitables delivered by the previous Wait to
// Poll, turns requested read interest into kernel registrations, honors
// close requests by removing registrations, and blocks on the event
// queue whenever read interest was requested. Once a poll round
// requests nothing, the future must hand over its result; a future that
// reports neither interest nor a result is defective, and BlockOn
// panics rather than spin forever.
//
// Interest bookkeeping is consulted before every kernel call: interest
// re-requested after a spurious wake-up does not register twice, and a
// close request for a descriptor with no entry does not reach the
// kernel. Poller errors abort the drive and are returned as the
// function error; failures of the underlying operation belong to the
// future's result and never surface here.
func BlockOn[T any](p *Poller, fut api.Future[T]) (T, error) {
	var zero T
	for {
		mustWait := false
		for _, w := range fut.Poll(p.Drain()) {
			switch w.Interest {
			case api.InterestRead:
				mustWait = true
				if p.Registered(w.FD) {
					continue
				}
				if err := p.Register(w.FD, api.InterestRead); err != nil {
					return zero, err
				}
			case api.InterestClose:
				if !p.Registered(w.FD) {
					continue
				}
				if err := p.Unregister(w.FD); err != nil {
					return zero, err
				}
			default:
				return zero, fmt.Errorf("reactor: drive %v: %w", w.Interest, api.ErrNotSupported)
			}
		}
		if mustWait {
			if _, err := p.Wait(); err != nil {
				return zero, err
			}
			continue
		}
		out, ok := fut.Take()
		if !ok {
			panic("reactor: future requested no interest and produced no result")
		}
		return out, nil
	}
}
