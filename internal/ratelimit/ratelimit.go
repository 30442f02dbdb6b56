// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit gates requests per identity with a sliding time window.
//
// State lives in process memory only and is lost on restart. Identities are
// never evicted, so the table grows with the number of distinct callers seen
// during the process lifetime.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

const (
	// DefaultMaxRequests is the number of requests an identity may make
	// within one window.
	DefaultMaxRequests = 15
	// DefaultWindow is the length of the trailing window.
	DefaultWindow = 60 * time.Second
)

// ErrRateLimited is returned by callers of a [Limiter] when a request is
// refused. It is transient: the caller should back off and retry later.
var ErrRateLimited = errors.New("rate limit exceeded")

// Limiter decides whether a request from identity may proceed. Allow records
// the request when it returns true.
type Limiter interface {
	Allow(identity string) bool
}

// SlidingWindow keeps, per identity, the timestamps of accepted requests
// that are still inside the trailing window.
type SlidingWindow struct {
	mu      sync.RWMutex
	history map[string]*requestLog

	maxRequests int
	window      time.Duration
	now         func() time.Time
}

type requestLog struct {
	mu    sync.Mutex
	times []time.Time
}

// Option configures a [SlidingWindow].
type Option func(*SlidingWindow)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *SlidingWindow) {
		s.now = now
	}
}

// NewSlidingWindow returns a limiter accepting at most maxRequests per
// identity within any trailing window. Non-positive arguments fall back to
// [DefaultMaxRequests] and [DefaultWindow].
func NewSlidingWindow(maxRequests int, window time.Duration, opts ...Option) *SlidingWindow {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}

	s := &SlidingWindow{
		history:     make(map[string]*requestLog),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow prunes timestamps older than the window from the identity's history
// and accepts the request iff fewer than maxRequests remain. The current time
// is recorded only on acceptance.
func (s *SlidingWindow) Allow(identity string) bool {
	log := s.logFor(identity)

	log.mu.Lock()
	defer log.mu.Unlock()

	now := s.now()

	keep := 0
	for keep < len(log.times) && now.Sub(log.times[keep]) >= s.window {
		keep++
	}
	if keep > 0 {
		log.times = append(log.times[:0], log.times[keep:]...)
	}

	if len(log.times) >= s.maxRequests {
		return false
	}

	log.times = append(log.times, now)
	return true
}

// Remaining reports how many more requests identity may make right now
// without recording anything.
func (s *SlidingWindow) Remaining(identity string) int {
	s.mu.RLock()
	log, ok := s.history[identity]
	s.mu.RUnlock()
	if !ok {
		return s.maxRequests
	}

	log.mu.Lock()
	defer log.mu.Unlock()

	now := s.now()
	active := 0
	for _, t := range log.times {
		if now.Sub(t) < s.window {
			active++
		}
	}
	return max(s.maxRequests-active, 0)
}

// RetryAfter reports how long identity has to wait until its oldest
// recorded request leaves the window. It is zero when a request would be
// accepted now.
func (s *SlidingWindow) RetryAfter(identity string) time.Duration {
	s.mu.RLock()
	log, ok := s.history[identity]
	s.mu.RUnlock()
	if !ok {
		return 0
	}

	log.mu.Lock()
	defer log.mu.Unlock()

	now := s.now()
	active := make([]time.Time, 0, len(log.times))
	for _, t := range log.times {
		if now.Sub(t) < s.window {
			active = append(active, t)
		}
	}
	if len(active) < s.maxRequests {
		return 0
	}

	return active[len(active)-s.maxRequests].Add(s.window).Sub(now)
}

// Identities returns the number of identities the limiter has seen.
func (s *SlidingWindow) Identities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

func (s *SlidingWindow) logFor(identity string) *requestLog {
	s.mu.RLock()
	log, ok := s.history[identity]
	s.mu.RUnlock()
	if ok {
		return log
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if log, ok = s.history[identity]; ok {
		return log
	}
	log = &requestLog{}
	s.history[identity] = log
	return log
}
