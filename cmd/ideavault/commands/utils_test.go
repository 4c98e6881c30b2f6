// ABOUTME: Tests for shared CLI helpers
// ABOUTME: Covers string truncation and flag validation

package commands

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than limit",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exactly at limit",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "longer than limit",
			input:  "hello world",
			maxLen: 8,
			want:   "hello...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 5,
			want:   "",
		},
		{
			name:   "tiny limit keeps no ellipsis",
			input:  "hello",
			maxLen: 2,
			want:   "he",
		},
		{
			name:   "unicode not split mid-rune",
			input:  "héllo wörld über",
			maxLen: 10,
			want:   "héllo w...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
			if len([]rune(got)) > tt.maxLen {
				t.Errorf("truncate(%q, %d) = %q exceeds limit", tt.input, tt.maxLen, got)
			}
		})
	}
}

func TestValidatePositiveInt(t *testing.T) {
	if err := validatePositiveInt(5, "limit"); err != nil {
		t.Errorf("validatePositiveInt(5) error = %v", err)
	}
	if err := validatePositiveInt(1, "limit"); err != nil {
		t.Errorf("validatePositiveInt(1) error = %v", err)
	}

	err := validatePositiveInt(0, "limit")
	if err == nil {
		t.Error("validatePositiveInt(0) should return an error")
	}
	if err != nil && !strings.Contains(err.Error(), "limit") {
		t.Errorf("error should name the flag, got %v", err)
	}

	if err := validatePositiveInt(-3, "count"); err == nil {
		t.Error("validatePositiveInt(-3) should return an error")
	}
}

func TestValidateThreshold(t *testing.T) {
	valid := []float64{-1, -0.5, 0, 0.7, 1}
	for _, v := range valid {
		if err := validateThreshold(v); err != nil {
			t.Errorf("validateThreshold(%g) error = %v", v, err)
		}
	}

	invalid := []float64{-1.01, 1.01, 2, -5}
	for _, v := range invalid {
		if err := validateThreshold(v); err == nil {
			t.Errorf("validateThreshold(%g) should return an error", v)
		}
	}
}
