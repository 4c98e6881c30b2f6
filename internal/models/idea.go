// ABOUTME: Core data models for the idea pool and user ideas
// ABOUTME: Defines IdeaRecord, UserIdea, and generated idea structures
package models

import "time"

// IdeaRecord is a candidate idea from the curated pool.
// Embedding is nil when no vector has been generated yet; such records
// never participate in vector comparison.
type IdeaRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Source          string    `json:"source"`
	PopularityScore float64   `json:"popularity_score"`
	Embedding       []float64 `json:"embedding,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasEmbedding reports whether the record carries a usable vector.
func (r *IdeaRecord) HasEmbedding() bool {
	return len(r.Embedding) > 0
}

// UserIdea is a user's draft idea, the source of a similarity query.
// SimilarIdeas holds cached pool ids from the last fresh search; the cache
// stores identity only, not scores.
type UserIdea struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	Embedding    []float64 `json:"embedding,omitempty"`
	SimilarIdeas []string  `json:"similar_ideas,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GeneratedIdea is a structured idea produced by the LLM generator.
type GeneratedIdea struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ProblemStatement string   `json:"problem_statement"`
	SolutionSummary  string   `json:"solution_summary"`
	TargetMarket     string   `json:"target_market"`
	BusinessModel    string   `json:"business_model"`
	RevenueStreams   []string `json:"revenue_streams"`
	CostStructure    []string `json:"cost_structure"`
	KeyMetrics       []string `json:"key_metrics"`
	Tags             []string `json:"tags"`
}

// Validation is a single grading submission for a user idea.
type Validation struct {
	ID               string    `json:"id"`
	IdeaID           string    `json:"idea_id"`
	ValidatorID      string    `json:"validator_id"`
	MarketFitScore   float64   `json:"market_fit_score"`
	FeasibilityScore float64   `json:"feasibility_score"`
	InnovationScore  float64   `json:"innovation_score"`
	ScalabilityScore float64   `json:"scalability_score"`
	OverallScore     float64   `json:"overall_score"`
	Feedback         string    `json:"feedback"`
	IsAnonymous      bool      `json:"is_anonymous"`
	CreatedAt        time.Time `json:"created_at"`
}
