package client

import (
	"math"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// breakerSet holds one circuit breaker per registry host. A registry that
// fails five times in a row stops being queried until its backoff interval
// elapses, so a dead upstream costs one fast error per probe instead of a
// full timeout per tool.
type breakerSet struct {
	mu       sync.RWMutex
	breakers map[string]*circuit.Breaker
}

func newBreakerSet() *breakerSet {
	return &breakerSet{breakers: make(map[string]*circuit.Breaker)}
}

func (s *breakerSet) forURL(rawURL string) *circuit.Breaker {
	host := hostOf(rawURL)

	s.mu.RLock()
	breaker, ok := s.breakers[host]
	s.mu.RUnlock()
	if ok {
		return breaker
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if breaker, ok := s.breakers[host]; ok {
		return breaker
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 15 * time.Second
	expBackoff.MaxInterval = 2 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	breaker = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	})
	s.breakers[host] = breaker
	return breaker
}

// hostOf extracts the host for breaker grouping.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}

// retryDelay computes the backoff delay before retry attempt n, with 10%
// jitter to avoid synchronized retries across concurrent probes.
func retryDelay(base time.Duration, attempt int) time.Duration {
	delay := base * time.Duration(math.Pow(2, float64(attempt-1)))
	jitter := time.Duration(float64(delay) * (rand.Float64() * 0.1))
	return delay + jitter
}
