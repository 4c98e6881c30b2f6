// ABOUTME: Similarity ranking over a candidate idea pool
// ABOUTME: Cosine similarity scoring with threshold, stable ordering, and text fallback
package search

import (
	"log"
	"math"
	"sort"
	"strings"

	"github.com/adityamathur5836/ideavault/internal/models"
)

const (
	// DefaultThreshold is the minimum cosine similarity for a match.
	DefaultThreshold = 0.7
	// DefaultLimit is the maximum number of results returned.
	DefaultLimit = 8
	// TextMatchSimilarity is the fixed estimate assigned to substring matches.
	TextMatchSimilarity = 0.5
	// CachedSimilarity is the fixed estimate assigned to cache-derived results.
	// True scores are not persisted with the cached id list.
	CachedSimilarity = 0.8
)

// RankOptions controls a ranking pass. Callers are expected to fill every
// field; zero values are not treated as defaults.
type RankOptions struct {
	Threshold float64
	Limit     int
	Category  string
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero-norm vectors yield 0 rather than an error or
// NaN, so a positive threshold excludes them naturally.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankByEmbedding scores candidates against the query embedding and returns
// matches at or above the threshold, descending by similarity, truncated to
// the limit. Ties keep discovery order (stable sort). Candidates without an
// embedding are excluded; candidates with a mismatched vector length are
// skipped and logged as data errors. Pure over its inputs.
func RankByEmbedding(query []float64, candidates []models.IdeaRecord, opts RankOptions) []models.SimilarityResult {
	results := make([]models.SimilarityResult, 0, len(candidates))

	for _, c := range candidates {
		if opts.Category != "" && c.Category != opts.Category {
			continue
		}
		if !c.HasEmbedding() {
			continue
		}
		if len(c.Embedding) != len(query) {
			derr := &DataError{RecordID: c.ID, Reason: "vector length mismatch"}
			log.Printf("Warning: skipping candidate: %v", derr)
			continue
		}

		similarity := CosineSimilarity(query, c.Embedding)
		if similarity < opts.Threshold {
			continue
		}

		results = append(results, models.SimilarityResult{
			Record:     c,
			Similarity: similarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results
}

// TextFallback performs a case-insensitive substring match over candidate
// title and description. Matches get a fixed estimated similarity and are
// ordered by popularity score descending, since no real score exists.
func TextFallback(queryText string, candidates []models.IdeaRecord, opts RankOptions) []models.SimilarityResult {
	needle := strings.ToLower(strings.TrimSpace(queryText))
	if needle == "" {
		return nil
	}

	results := make([]models.SimilarityResult, 0)
	for _, c := range candidates {
		if opts.Category != "" && c.Category != opts.Category {
			continue
		}
		haystack := strings.ToLower(c.Title + " " + c.Description)
		if !strings.Contains(haystack, needle) {
			continue
		}
		results = append(results, models.SimilarityResult{
			Record:     c,
			Similarity: TextMatchSimilarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Record.PopularityScore > results[j].Record.PopularityScore
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results
}

// RankWithFallback ranks by embedding and, when nothing clears the
// threshold, falls back to text matching. The returned method tags which
// path produced the results.
func RankWithFallback(queryText string, query []float64, candidates []models.IdeaRecord, opts RankOptions) ([]models.SimilarityResult, models.MatchMethod) {
	results := RankByEmbedding(query, candidates, opts)
	if len(results) > 0 {
		return results, models.MatchVector
	}

	// Once the vector scan comes up empty the text path is the one that
	// answered, even when it finds nothing either.
	return TextFallback(queryText, candidates, opts), models.MatchText
}

// buildMetrics summarizes a result set. AverageSimilarity is 0 for an empty
// set to avoid a 0/0 division.
func buildMetrics(queryText string, elapsedMillis int64, results []models.SimilarityResult, cacheDerived bool) models.SearchMetrics {
	var sum float64
	for _, r := range results {
		sum += r.Similarity
	}

	avg := 0.0
	if len(results) > 0 {
		avg = sum / float64(len(results))
	}

	return models.SearchMetrics{
		QueryText:         queryText,
		SearchTimeMillis:  elapsedMillis,
		TotalFound:        len(results),
		AverageSimilarity: avg,
		CacheDerived:      cacheDerived,
	}
}
