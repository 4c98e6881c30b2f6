// ABOUTME: Retry helpers for outbound API calls
// ABOUTME: Provides exponential backoff with jitter for the embedding client
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff caps the delay between attempts.
const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: base doubled
// each attempt, capped at 30s, with random jitter of +/-25%.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap the shift to avoid overflow on absurd attempt counts
	if attempt > 30 {
		attempt = 30
	}
	delay := base * time.Duration(1<<uint(attempt))
	if delay > maxBackoff || delay <= 0 {
		delay = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
