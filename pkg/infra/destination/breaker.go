package destination

import (
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type circuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

func newCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) *circuitBreaker {
	return &circuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
		}),
	}
}

func (b *circuitBreaker) Execute(fn func() error) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", b.breaker.Name(), err)
	}
	return nil
}
