// File: reactor/options.go
// Author: momentics <momentics@gmail.com>
//
// Functional options for Open.

package reactor

const (
	defaultMaxEvents = 128
	defaultEventTag  = 0x7
)

type config struct {
	maxEvents int
	tag       uint32
}

func defaultConfig() config {
	return config{
		maxEvents: defaultMaxEvents,
		tag:       defaultEventTag,
	}
}

// Option customizes a Poller at Open time.
type Option func(*config)

// WithMaxEvents sets how many kernel events one Wait call may collect.
// Values below one are ignored.
func WithMaxEvents(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxEvents = n
		}
	}
}

// WithEventTag sets the opaque tag attached to every registration and
// checked against every delivered event. Deliveries carrying any other
// tag are dropped as stale and counted in Stats.
func WithEventTag(tag uint32) Option {
	return func(c *config) {
		c.tag = tag
	}
}
