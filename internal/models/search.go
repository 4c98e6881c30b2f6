// ABOUTME: Search result models for similarity ranking
// ABOUTME: Defines SimilarityResult, SearchMetrics, and match method tags
package models

// MatchMethod tags how a result set was produced. Text-fallback and
// cache-derived similarity values are fixed estimates, not comparable to
// real cosine scores, so callers need the tag to interpret them.
type MatchMethod string

const (
	// MatchVector marks results scored by cosine similarity.
	MatchVector MatchMethod = "vector"
	// MatchText marks results from the substring fallback search.
	MatchText MatchMethod = "text"
	// MatchCached marks results resolved from a stored id list.
	MatchCached MatchMethod = "cached"
)

// SimilarityResult pairs a candidate record with its similarity score.
type SimilarityResult struct {
	Record     IdeaRecord `json:"record"`
	Similarity float64    `json:"similarity"`
}

// SearchMetrics summarizes a ranking call. AverageSimilarity is 0 for an
// empty result set. SearchTimeMillis covers the ranking scan only, not the
// embedding round trip.
type SearchMetrics struct {
	QueryText         string  `json:"query_text"`
	SearchTimeMillis  int64   `json:"search_time_ms"`
	TotalFound        int     `json:"total_found"`
	AverageSimilarity float64 `json:"average_similarity"`
	CacheDerived      bool    `json:"cache_derived"`
}

// SearchResponse is the full payload returned for a similarity query.
type SearchResponse struct {
	Results     []SimilarityResult `json:"results"`
	Metrics     SearchMetrics      `json:"metrics"`
	MatchMethod MatchMethod        `json:"match_method"`
}
