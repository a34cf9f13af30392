// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/secure-notes/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var testMeta = models.ClientMeta{IP: "203.0.113.7", UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// manualClock is a clock that tests advance explicitly.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequenceIDs hands out prefix-1, prefix-2, ...
type sequenceIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
