// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the readiness reactor: a kernel event queue
// poller (epoll on Linux, kqueue on Darwin) plus the synchronous drive
// loop that runs a single future to completion against it.
package reactor
