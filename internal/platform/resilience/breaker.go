// Package resilience guards calls to flaky dependencies.
package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// withDefaults fills unset limits: 5 failures, 30s open, 1 probe.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = 5
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = 1
	}
	return c
}

type BreakerOption func(*Breaker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		if now != nil {
			b.now = now
		}
	}
}

// WithFailurePredicate decides which errors count against the breaker.
// By default every non-nil error does.
func WithFailurePredicate(fn func(error) bool) BreakerOption {
	return func(b *Breaker) {
		if fn != nil {
			b.isFailure = fn
		}
	}
}

// WithStateHook is called, outside the lock, after every state transition.
func WithStateHook(fn func(from, to State)) BreakerOption {
	return func(b *Breaker) { b.onChange = fn }
}

// Breaker opens after FailureThreshold consecutive failures, rejects calls
// for OpenTimeout, then lets HalfOpenMaxReq probes through. That many
// successful probes close it again; any failed probe reopens it.
type Breaker struct {
	cfg       CircuitBreakerConfig
	now       func() time.Time
	isFailure func(error) bool
	onChange  func(from, to State)

	mu        sync.Mutex
	state     State
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int
}

func NewBreaker(cfg CircuitBreakerConfig, opts ...BreakerOption) *Breaker {
	b := &Breaker{
		cfg:       cfg.withDefaults(),
		now:       time.Now,
		isFailure: func(err error) bool { return err != nil },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Execute runs fn unless the breaker rejects it with ErrCircuitOpen. A
// disabled breaker always runs fn and keeps no state.
func (b *Breaker) Execute(fn func() error) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.acquire(); err != nil {
		return err
	}
	err := fn()
	b.release(b.isFailure(err))
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) acquire() error {
	b.mu.Lock()
	from := b.state
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.setLocked(StateHalfOpen)
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenMaxReq {
			b.mu.Unlock()
			b.notify(from, b.State())
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
	return nil
}

func (b *Breaker) release(failed bool) {
	b.mu.Lock()
	from := b.state
	switch b.state {
	case StateClosed:
		if !failed {
			b.failures = 0
			break
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.setLocked(StateOpen)
		}
	case StateHalfOpen:
		if b.inFlight > 0 {
			b.inFlight--
		}
		if failed {
			b.setLocked(StateOpen)
			break
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
			b.setLocked(StateClosed)
		}
	case StateOpen:
		// A call admitted before the breaker opened finished late.
		if failed {
			b.openedAt = b.now()
		}
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

func (b *Breaker) setLocked(next State) {
	b.state = next
	b.inFlight = 0
	b.successes = 0
	switch next {
	case StateOpen:
		b.openedAt = b.now()
	case StateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
}

func (b *Breaker) notify(from, to State) {
	if from != to && b.onChange != nil {
		b.onChange(from, to)
	}
}
