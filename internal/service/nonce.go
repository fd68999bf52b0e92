// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

// NonceSource issues created_at_time values for ledger calls. Values are
// ms*1_000_000 + counter, with a rolling 16-bit counter, and strictly
// increase across calls even if the clock stalls or steps back.
type NonceSource struct {
	mu      sync.Mutex
	now     func() time.Time
	counter uint16
	last    uint64
}

// NewNonceSource returns a source seeded from the wall clock.
func NewNonceSource() *NonceSource {
	return &NonceSource{now: time.Now}
}

// Next returns the next nonce.
func (s *NonceSource) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	v := uint64(s.now().UnixMilli())*1_000_000 + uint64(s.counter)
	if v <= s.last {
		v = s.last + 1
	}
	s.last = v

	return v
}
