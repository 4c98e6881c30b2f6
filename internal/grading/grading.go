// ABOUTME: Weighted grading formula for idea validations
// ABOUTME: Fixed four-term weighted sum over 1-10 scores, rounded to one decimal
package grading

import (
	"fmt"
	"math"
)

// Weights of the four grading dimensions. They sum to 1.
const (
	MarketFitWeight   = 0.30
	FeasibilityWeight = 0.25
	InnovationWeight  = 0.25
	ScalabilityWeight = 0.20
)

// Scores holds the four raw grading dimensions, each in [1,10].
type Scores struct {
	MarketFit   float64
	Feasibility float64
	Innovation  float64
	Scalability float64
}

// Validate checks every dimension is within the declared 1-10 range.
func (s Scores) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"market_fit", s.MarketFit},
		{"feasibility", s.Feasibility},
		{"innovation", s.Innovation},
		{"scalability", s.Scalability},
	}
	for _, c := range checks {
		if c.value < 1 || c.value > 10 {
			return fmt.Errorf("%s score must be between 1 and 10, got %g", c.name, c.value)
		}
	}
	return nil
}

// WeightedScore computes the overall grade: the fixed weighted sum of the
// four dimensions, rounded to one decimal place.
func WeightedScore(s Scores) float64 {
	weighted := s.MarketFit*MarketFitWeight +
		s.Feasibility*FeasibilityWeight +
		s.Innovation*InnovationWeight +
		s.Scalability*ScalabilityWeight
	return math.Round(weighted*10) / 10
}
