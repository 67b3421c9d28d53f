// File: reactor/reactor_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor_test

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/pollfut/api"
	"github.com/momentics/pollfut/reactor"
)

// openPipe returns a read/write descriptor pair that is closed when the
// test ends.
func openPipe(t *testing.T) (rfd, wfd int) {
	t.Helper()
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func openPoller(t *testing.T, opts ...reactor.Option) *reactor.Poller {
	t.Helper()
	p, err := reactor.Open(opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestOpenAndClose(t *testing.T) {
	p, err := reactor.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if n := p.Registrations(); n != 0 {
		t.Errorf("expected empty interest set, got %d", n)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := p.Register(0, api.InterestRead); !errors.Is(err, api.ErrPollerClosed) {
		t.Errorf("Register after Close: expected ErrPollerClosed, got %v", err)
	}
	if err := p.Unregister(0); !errors.Is(err, api.ErrPollerClosed) {
		t.Errorf("Unregister after Close: expected ErrPollerClosed, got %v", err)
	}
	if _, err := p.Wait(); !errors.Is(err, api.ErrPollerClosed) {
		t.Errorf("Wait after Close: expected ErrPollerClosed, got %v", err)
	}
}

func TestRegisterBookkeeping(t *testing.T) {
	p := openPoller(t)
	rfd, wfd := openPipe(t)

	if err := p.Register(rfd, api.InterestRead); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !p.Registered(rfd) {
		t.Error("Registered should report the new entry")
	}
	if n := p.Registrations(); n != 1 {
		t.Errorf("expected 1 registration, got %d", n)
	}

	if err := p.Register(rfd, api.InterestRead); !errors.Is(err, api.ErrAlreadyRegistered) {
		t.Errorf("duplicate Register: expected ErrAlreadyRegistered, got %v", err)
	}
	if err := p.Register(wfd, api.InterestClose); !errors.Is(err, api.ErrNotSupported) {
		t.Errorf("Register with close interest: expected ErrNotSupported, got %v", err)
	}
	if err := p.Register(-1, api.InterestRead); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Register with negative fd: expected ErrInvalidArgument, got %v", err)
	}

	if err := p.Unregister(rfd); err != nil {
		t.Fatalf("Unregister failed: %v", err)
	}
	if p.Registered(rfd) {
		t.Error("Registered should report removal")
	}
	if err := p.Unregister(rfd); !errors.Is(err, api.ErrNotRegistered) {
		t.Errorf("second Unregister: expected ErrNotRegistered, got %v", err)
	}

	stats := p.Stats()
	if stats.TotalRegisters != 1 || stats.TotalUnregisters != 1 {
		t.Errorf("expected 1 register and 1 unregister, got %d/%d",
			stats.TotalRegisters, stats.TotalUnregisters)
	}
}

func TestWaitWithoutRegistrations(t *testing.T) {
	p := openPoller(t)
	if _, err := p.Wait(); !errors.Is(err, api.ErrNoRegistrations) {
		t.Fatalf("expected ErrNoRegistrations, got %v", err)
	}
}

func TestWaitDeliversBufferedReadiness(t *testing.T) {
	p := openPoller(t)
	rfd, wfd := openPipe(t)

	if err := p.Register(rfd, api.InterestRead); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := unix.Write(wfd, []byte{0x1}); err != nil {
		t.Fatalf("pipe write: %v", err)
	}

	n, err := p.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 delivered waitable, got %d", n)
	}

	got := p.Drain()
	if len(got) != 1 {
		t.Fatalf("expected 1 drained waitable, got %d", len(got))
	}
	if got[0].FD != rfd || got[0].Interest != api.InterestRead {
		t.Errorf("expected read waitable for fd %d, got %+v", rfd, got[0])
	}
	if again := p.Drain(); again != nil {
		t.Errorf("second Drain should be empty, got %+v", again)
	}

	stats := p.Stats()
	if stats.TotalWaits != 1 || stats.TotalEvents != 1 || stats.StaleEvents != 0 {
		t.Errorf("unexpected counters: %+v", stats)
	}
	if stats.ActiveRegistrations != 1 {
		t.Errorf("expected 1 active registration, got %d", stats.ActiveRegistrations)
	}
}

func TestWaitCollectsAllReadyDescriptors(t *testing.T) {
	p := openPoller(t)
	r1, w1 := openPipe(t)
	r2, w2 := openPipe(t)

	for _, fd := range []int{r1, r2} {
		if err := p.Register(fd, api.InterestRead); err != nil {
			t.Fatalf("Register fd %d failed: %v", fd, err)
		}
	}
	for _, fd := range []int{w1, w2} {
		if _, err := unix.Write(fd, []byte{0x1}); err != nil {
			t.Fatalf("pipe write: %v", err)
		}
	}

	n, err := p.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 delivered waitables, got %d", n)
	}

	seen := make(map[int]bool)
	for _, w := range p.Drain() {
		seen[w.FD] = true
	}
	if !seen[r1] || !seen[r2] {
		t.Errorf("expected readiness for both fds %d and %d, got %v", r1, r2, seen)
	}
}

func TestCloseDiscardsStateAndBufferedEvents(t *testing.T) {
	p := openPoller(t)
	rfd, wfd := openPipe(t)

	if err := p.Register(rfd, api.InterestRead); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := unix.Write(wfd, []byte{0x1}); err != nil {
		t.Fatalf("pipe write: %v", err)
	}
	if _, err := p.Wait(); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := p.Drain(); got != nil {
		t.Errorf("Drain after Close should be empty, got %+v", got)
	}
	if n := p.Registrations(); n != 0 {
		t.Errorf("expected empty interest set after Close, got %d", n)
	}
}
