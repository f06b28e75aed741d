package services

import (
	"errors"
	"sync"
	"time"
)

// ErrStoreUnavailable is returned while the breaker refuses dataset loads
var ErrStoreUnavailable = errors.New("sales store is unavailable")

// BreakerState is the position of a StoreBreaker
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:  5,
		ResetTimeout: 30 * time.Second,
	}
}

// StoreBreaker stops dataset loads from reaching a failing store. After
// MaxFailures consecutive failures it opens; once ResetTimeout has passed a
// single probe load is let through, and its outcome closes or reopens it.
type StoreBreaker struct {
	mu          sync.Mutex
	config      BreakerConfig
	state       BreakerState
	failures    int
	lastFailure time.Time
	now         func() time.Time
}

func NewStoreBreaker(config BreakerConfig) *StoreBreaker {
	if config.MaxFailures < 1 {
		config.MaxFailures = DefaultBreakerConfig().MaxFailures
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = DefaultBreakerConfig().ResetTimeout
	}
	return &StoreBreaker{
		config: config,
		state:  BreakerClosed,
		now:    time.Now,
	}
}

// Allow reports whether a load may go to the store
func (b *StoreBreaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerOpen:
		if b.now().Sub(b.lastFailure) < b.config.ResetTimeout {
			return false
		}
		b.state = BreakerHalfOpen
		return true
	case BreakerHalfOpen:
		// one probe at a time
		return false
	default:
		return true
	}
}

func (b *StoreBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = BreakerClosed
	b.failures = 0
}

func (b *StoreBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = b.now()
	b.failures++
	if b.state == BreakerHalfOpen || b.failures >= b.config.MaxFailures {
		b.state = BreakerOpen
	}
}

func (b *StoreBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *StoreBreaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = BreakerClosed
	b.failures = 0
}
