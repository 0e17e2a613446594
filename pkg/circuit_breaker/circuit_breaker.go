package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status

	// sliding window of recent call outcomes, true = failure
	window []bool
	head   int

	// failure share of the window that trips the breaker
	percentile float64
	// how long the breaker stays open before probing
	timeout  time.Duration
	openedAt time.Time
	// consecutive successes in half-open needed to close again
	recoveryRequests int
	successCount     int
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	return &circuitBreaker{
		state:            Closed,
		window:           make([]bool, recordLength),
		timeout:          timeout,
		percentile:       percentile,
		recoveryRequests: recoveryRequests,
	}
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if time.Since(cb.openedAt) <= cb.timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.record(err != nil)

	switch cb.state {
	case HalfOpen:
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount > cb.recoveryRequests {
			cb.Reset()
		}
	default:
		if cb.failureRate() >= cb.percentile {
			cb.trip()
		}
	}
	return err
}

func (cb *circuitBreaker) record(failed bool) {
	cb.window[cb.head] = failed
	cb.head = (cb.head + 1) % len(cb.window)
}

func (cb *circuitBreaker) failureRate() float64 {
	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	return float64(fails) / float64(len(cb.window))
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.openedAt = time.Now()
	cb.successCount = 0
}

func (cb *circuitBreaker) Reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.head = 0
	cb.successCount = 0
	cb.state = Closed
}
