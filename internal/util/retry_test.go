// ABOUTME: Tests for backoff calculation
// ABOUTME: Validates growth, bounds, cap, and jitter variation
package util

import (
	"testing"
	"time"
)

func TestBackoff_ZeroAndNegativeAttempts(t *testing.T) {
	for _, attempt := range []int{0, -1, -50} {
		if got := Backoff(time.Second, attempt); got != 0 {
			t.Errorf("attempt %d: expected 0, got %v", attempt, got)
		}
	}
}

func TestBackoff_ExponentialGrowth(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		expected := base * time.Duration(1<<uint(attempt))
		min := expected * 3 / 4
		max := expected * 5 / 4

		got := Backoff(base, attempt)
		if got < min || got > max {
			t.Errorf("attempt %d: expected between %v and %v, got %v", attempt, min, max, got)
		}
	}
}

func TestBackoff_CapsAt30Seconds(t *testing.T) {
	// 2^10 * 1s = 1024s uncapped; should clamp to 30s +/- 25%
	for _, attempt := range []int{10, 100} {
		got := Backoff(time.Second, attempt)
		if got > 37500*time.Millisecond {
			t.Errorf("attempt %d: expected <= 37.5s, got %v", attempt, got)
		}
		if got < 0 {
			t.Errorf("attempt %d: backoff should never be negative, got %v", attempt, got)
		}
	}
}

func TestBackoff_JitterVaries(t *testing.T) {
	base := time.Second
	first := Backoff(base, 2)

	varied := false
	for i := 0; i < 100; i++ {
		got := Backoff(base, 2)
		if got != first {
			varied = true
		}
		// 4s +/- 25%
		if got < 3*time.Second || got > 5*time.Second {
			t.Errorf("sample %d: expected between 3s and 5s, got %v", i, got)
		}
	}
	if !varied {
		t.Error("jitter produced 100 identical samples")
	}
}
