// File: internal/echotest/server.go
// Package echotest runs a loopback echo peer for tests and demos.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package echotest

import (
	"io"
	"net"
	"sync"
	"time"
)

// Server is a TCP echo peer on a loopback address. Every accepted
// connection is served by its own goroutine that copies bytes straight
// back, optionally after a fixed delay. The delay keeps the client's
// first read on the would-block path long enough to observe it.
type Server struct {
	ln    net.Listener
	delay time.Duration
	wg    sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// Start listens on 127.0.0.1:0 and begins accepting.
func Start(delay time.Duration) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		ln:    ln,
		delay: delay,
		conns: make(map[net.Conn]struct{}),
	}
	s.wg.Add(1)
	go s.acceptLoop()
	return s, nil
}

// Addr returns the dialable listen address.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Close stops accepting, disconnects live peers, and waits for the
// serving goroutines to drain.
func (s *Server) Close() {
	s.ln.Close()
	s.mu.Lock()
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.track(conn)
		s.wg.Add(1)
		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	_, _ = io.Copy(conn, conn)
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
