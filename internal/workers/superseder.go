// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Ticket identifies one started operation.
type Ticket struct {
	seq uint64
}

// Seq returns the start-order sequence number of the ticket. Zero is never
// issued.
func (t Ticket) Seq() uint64 {
	return t.seq
}

// Superseder implements [Coordinator]. The zero value is ready to use.
type Superseder struct {
	mu     sync.Mutex
	seq    uint64
	shown  uint64
	cancel context.CancelFunc
}

// NewSuperseder returns an empty Superseder.
func NewSuperseder() *Superseder {
	return &Superseder{}
}

func (s *Superseder) Begin(parent context.Context) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.seq++
	s.cancel = cancel
	return ctx, Ticket{seq: s.seq}
}

// Next leaves the in-flight read running.
func (s *Superseder) Next() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return Ticket{seq: s.seq}
}

func (s *Superseder) Accept(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.seq == 0 || t.seq <= s.shown {
		return false
	}
	s.shown = t.seq
	return true
}

func (s *Superseder) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
}

func (s *Superseder) cancelLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
