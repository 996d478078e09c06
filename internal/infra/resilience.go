// Package infra provides the resilience layer underneath the Wikipedia API
// transport: response caching, in-flight request coalescing, and a circuit
// breaker. The client library itself never retries or caches; everything in
// this package operates strictly below the transport contract.
package infra

import (
	"context"
	"sync"
	"time"
)

// Deduplicator coalesces identical in-flight API fetches. MediaWiki GET
// requests are idempotent, so when several goroutines ask for the same URL
// simultaneously only one request goes out and every waiter receives the
// same body.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[string]*inflightFetch
}

type inflightFetch struct {
	done    chan struct{}
	body    string
	err     error
	waiters int
}

// NewDeduplicator creates an empty deduplicator
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		inflight: make(map[string]*inflightFetch),
	}
}

// Do executes fetch unless an identical fetch (by URL) is already running,
// in which case it waits for that one. Returns the body, whether the result
// was shared from another caller's fetch, and any error.
func (d *Deduplicator) Do(ctx context.Context, url string, fetch func() (string, error)) (string, bool, error) {
	d.mu.Lock()

	if f, ok := d.inflight[url]; ok {
		f.waiters++
		d.mu.Unlock()

		select {
		case <-f.done:
			return f.body, true, f.err
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}

	f := &inflightFetch{
		done:    make(chan struct{}),
		waiters: 1,
	}
	d.inflight[url] = f
	d.mu.Unlock()

	f.body, f.err = fetch()
	close(f.done)

	d.mu.Lock()
	delete(d.inflight, url)
	d.mu.Unlock()

	return f.body, false, f.err
}

// Inflight returns the number of fetches currently in progress
func (d *Deduplicator) Inflight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inflight)
}

// CircuitBreaker fails fast when the wiki API becomes unresponsive, instead
// of piling more requests on it. Consecutive failures open the circuit;
// after a cooldown a few probe requests are let through to test recovery.
type CircuitBreaker struct {
	mu sync.RWMutex

	failureThreshold int           // consecutive failures before opening
	resetTimeout     time.Duration // cooldown before probing again
	halfOpenMax      int           // probes allowed while half-open

	state            CircuitState
	consecutiveFails int
	lastFailure      time.Time
	halfOpenCount    int
}

// CircuitState is the breaker's current mode
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // normal operation
	CircuitOpen                         // rejecting requests
	CircuitHalfOpen                     // probing for recovery
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// NewCircuitBreaker creates a breaker with defaults suited to a public wiki
// API: open after 5 consecutive failures, probe again after 30 seconds.
func NewCircuitBreaker() *CircuitBreaker {
	return NewCircuitBreakerWithConfig(5, 30*time.Second, 2)
}

// NewCircuitBreakerWithConfig creates a breaker with explicit thresholds
func NewCircuitBreakerWithConfig(failureThreshold int, resetTimeout time.Duration, halfOpenMax int) *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		halfOpenMax:      halfOpenMax,
		state:            CircuitClosed,
	}
}

// Allow reports whether a request may proceed right now
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed:
		return true

	case CircuitOpen:
		if time.Since(cb.lastFailure) > cb.resetTimeout {
			// The transitioning request is the first probe
			cb.state = CircuitHalfOpen
			cb.halfOpenCount = 1
			return true
		}
		return false

	case CircuitHalfOpen:
		if cb.halfOpenCount < cb.halfOpenMax {
			cb.halfOpenCount++
			return true
		}
		return false

	default:
		return false
	}
}

// RecordSuccess resets the failure streak; a success while half-open closes
// the circuit
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.consecutiveFails = 0

	if cb.state == CircuitHalfOpen {
		cb.state = CircuitClosed
		cb.halfOpenCount = 0
	}
}

// RecordFailure notes a failed request; enough of them open the circuit
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.consecutiveFails++
	cb.lastFailure = time.Now()

	switch cb.state {
	case CircuitClosed:
		if cb.consecutiveFails >= cb.failureThreshold {
			cb.state = CircuitOpen
		}

	case CircuitHalfOpen:
		// Any failure while probing reopens immediately
		cb.state = CircuitOpen
		cb.halfOpenCount = 0
	}
}

// State returns the breaker's current mode
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Stats returns a snapshot for logging and health reporting
func (cb *CircuitBreaker) Stats() CircuitBreakerStats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return CircuitBreakerStats{
		State:            cb.state.String(),
		ConsecutiveFails: cb.consecutiveFails,
		LastFailure:      cb.lastFailure,
	}
}

// CircuitBreakerStats is a point-in-time view of the breaker
type CircuitBreakerStats struct {
	State            string    `json:"state"`
	ConsecutiveFails int       `json:"consecutive_failures"`
	LastFailure      time.Time `json:"last_failure,omitempty"`
}

// ErrCircuitOpen is returned when the breaker rejects a request
type ErrCircuitOpen struct {
	RetryAt  time.Time
	Failures int
}

func (e ErrCircuitOpen) Error() string {
	return "circuit breaker is open: the wiki API is failing, retry after " + e.RetryAt.Format(time.RFC3339)
}
