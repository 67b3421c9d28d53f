// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral poller front end over the OS event queue backends.

package reactor

import (
	"fmt"

	"github.com/eapache/queue"
	"github.com/momentics/pollfut/api"
)

// rawEvent is one kernel notification translated to neutral form.
type rawEvent struct {
	fd  int
	tag uint32
}

// Poller owns one kernel event queue handle, the interest bookkeeping
// for descriptors registered with it, and the buffer of events delivered
// by the most recent Wait call.
//
// A Poller is confined to the goroutine that drives it; none of its
// methods may be called concurrently.
type Poller struct {
	osp        *osPoller
	delivered  *queue.Queue // FIFO of api.Waitable pending Drain
	registered map[int]api.Interest
	scratch    []rawEvent
	tag        uint32
	closed     bool
	stats      Stats
}

// Open acquires a kernel event queue handle and returns a ready Poller.
func Open(opts ...Option) (*Poller, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	osp, err := openOSPoller()
	if err != nil {
		return nil, fmt.Errorf("reactor: open event queue: %w", err)
	}
	return &Poller{
		osp:        osp,
		delivered:  queue.New(),
		registered: make(map[int]api.Interest),
		scratch:    make([]rawEvent, cfg.maxEvents),
		tag:        cfg.tag,
	}, nil
}

// Register adds a read-interest entry for fd to the kernel queue.
//
// Only InterestRead names a kernel condition; InterestClose is a drive
// loop command and is rejected here. Registering a pair that is already
// present is a caller bug, reported as ErrAlreadyRegistered before any
// kernel call is made. Entries persist until Unregister removes them.
func (p *Poller) Register(fd int, interest api.Interest) error {
	if p.closed {
		return api.ErrPollerClosed
	}
	if fd < 0 {
		return fmt.Errorf("reactor: register fd %d: %w", fd, api.ErrInvalidArgument)
	}
	if interest != api.InterestRead {
		return fmt.Errorf("reactor: register %v: %w", interest, api.ErrNotSupported)
	}
	if _, ok := p.registered[fd]; ok {
		return api.ErrAlreadyRegistered
	}
	if err := p.osp.addRead(fd, p.tag); err != nil {
		return fmt.Errorf("reactor: register fd %d: %w", fd, err)
	}
	p.registered[fd] = interest
	p.stats.TotalRegisters++
	return nil
}

// Unregister removes the interest entry for fd. It must run while fd is
// still open; closing a registered descriptor first leaves the kernel
// entry dangling.
func (p *Poller) Unregister(fd int) error {
	if p.closed {
		return api.ErrPollerClosed
	}
	if _, ok := p.registered[fd]; !ok {
		return api.ErrNotRegistered
	}
	if err := p.osp.delRead(fd); err != nil {
		return fmt.Errorf("reactor: unregister fd %d: %w", fd, err)
	}
	delete(p.registered, fd)
	p.stats.TotalUnregisters++
	return nil
}

// Wait blocks until the kernel reports at least one registered interest
// ready, then buffers the deliveries for Drain and returns their count.
//
// Waiting with an empty interest set would never return, so it is
// rejected with ErrNoRegistrations. Interrupted waits are retried in
// place. A wake-up may still be spurious for the computation; the
// retried operation then reports would-block again and the caller loops
// back here.
func (p *Poller) Wait() (int, error) {
	if p.closed {
		return 0, api.ErrPollerClosed
	}
	if len(p.registered) == 0 {
		return 0, api.ErrNoRegistrations
	}
	n, err := p.osp.wait(p.scratch)
	if err != nil {
		return 0, fmt.Errorf("reactor: wait: %w", err)
	}
	p.stats.TotalWaits++
	delivered := 0
	for i := 0; i < n; i++ {
		ev := p.scratch[i]
		if ev.tag != p.tag {
			p.stats.StaleEvents++
			continue
		}
		p.delivered.Add(api.Waitable{FD: ev.fd, Interest: api.InterestRead})
		delivered++
	}
	p.stats.TotalEvents += int64(delivered)
	return delivered, nil
}

// Drain empties the delivered-event buffer in arrival order. Events are
// handed out exactly once: a second Drain with no Wait in between
// returns nil.
func (p *Poller) Drain() []api.Waitable {
	n := p.delivered.Length()
	if n == 0 {
		return nil
	}
	out := make([]api.Waitable, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.delivered.Remove().(api.Waitable))
	}
	return out
}

// Registered reports whether fd currently has an interest entry.
func (p *Poller) Registered(fd int) bool {
	_, ok := p.registered[fd]
	return ok
}

// Registrations returns the number of descriptors with interest entries.
func (p *Poller) Registrations() int {
	return len(p.registered)
}

// Stats returns a snapshot of the poller counters.
func (p *Poller) Stats() Stats {
	s := p.stats
	s.ActiveRegistrations = int64(len(p.registered))
	return s
}

// Close releases the kernel event queue handle. Interest entries die
// with the handle, and buffered events are discarded. Close is
// idempotent; every other method fails with ErrPollerClosed afterwards.
func (p *Poller) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	for p.delivered.Length() > 0 {
		p.delivered.Remove()
	}
	p.registered = make(map[int]api.Interest)
	return p.osp.close()
}
