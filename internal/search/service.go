// ABOUTME: Similarity search service orchestrating embeddings, ranking, and caching
// ABOUTME: Implements the lazy embedding path, cached id resolution, and text fallback
package search

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// EmbeddingProvider turns text into a fixed-length vector.
type EmbeddingProvider interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// CandidatePool is the store of ideas eligible for ranking.
type CandidatePool interface {
	// FetchAll returns pool records, optionally filtered by exact category.
	FetchAll(category string) ([]models.IdeaRecord, error)
	// FetchByIDs returns the records for the given ids. Order is not
	// guaranteed by the store; missing ids are simply absent.
	FetchByIDs(ids []string) ([]models.IdeaRecord, error)
}

// SourceIdeaStore persists user ideas, their embeddings, and cached
// similar-idea id lists.
type SourceIdeaStore interface {
	// Get returns the idea or nil when no row exists.
	Get(id string) (*models.UserIdea, error)
	SaveEmbedding(id string, vector []float64) error
	SaveSimilarIdeas(id string, similarIDs []string) error
}

// SearchRequest describes one "find similar ideas" call. Exactly one of
// SourceIdeaID or QueryText must be set. Threshold and Limit are explicit;
// callers apply their own defaults before building the request.
type SearchRequest struct {
	SourceIdeaID string
	QueryText    string
	Threshold    float64
	Limit        int
	Category     string
	ForceRefresh bool
}

// Service wires the ranker to its collaborators. All state is in the
// injected stores; the service itself is stateless and safe for concurrent
// use. Two concurrent refreshes of the same idea may both compute an
// embedding; last write wins.
type Service struct {
	provider EmbeddingProvider
	pool     CandidatePool
	ideas    SourceIdeaStore
}

// NewService creates a similarity search service.
func NewService(provider EmbeddingProvider, pool CandidatePool, ideas SourceIdeaStore) *Service {
	return &Service{
		provider: provider,
		pool:     pool,
		ideas:    ideas,
	}
}

// FindSimilar is the single entry point for similarity queries. It validates
// parameters before any I/O, then dispatches to the cached, fresh, or
// text-only path.
func (s *Service) FindSimilar(req SearchRequest) (*models.SearchResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.SourceIdeaID != "" {
		return s.findForUserIdea(req)
	}
	return s.findForText(req)
}

func validateRequest(req SearchRequest) error {
	if req.SourceIdeaID == "" && strings.TrimSpace(req.QueryText) == "" {
		return &ValidationError{Field: "query", Reason: "either SourceIdeaID or QueryText must be provided"}
	}
	if req.Threshold < -1 || req.Threshold > 1 {
		return &ValidationError{Field: "threshold", Reason: fmt.Sprintf("must be in [-1,1], got %g", req.Threshold)}
	}
	if req.Limit <= 0 {
		return &ValidationError{Field: "limit", Reason: fmt.Sprintf("must be positive, got %d", req.Limit)}
	}
	return nil
}

// findForUserIdea runs the lazy refresh path for a stored user idea.
func (s *Service) findForUserIdea(req SearchRequest) (*models.SearchResponse, error) {
	idea, err := s.ideas.Get(req.SourceIdeaID)
	if err != nil {
		return nil, fmt.Errorf("loading user idea: %w", err)
	}
	if idea == nil {
		return nil, &NotFoundError{ID: req.SourceIdeaID}
	}

	// Cache hit: resolve stored ids, never touch the embedding provider.
	if !req.ForceRefresh && len(idea.SimilarIdeas) > 0 {
		return s.resolveCached(idea)
	}

	queryText := ideaQueryText(idea.Title, idea.Description)

	// Lazy embedding: compute on first use and persist write-through so
	// subsequent requests skip the provider call. ForceRefresh bypasses the
	// cached id list above, never a stored embedding.
	queryEmbedding := idea.Embedding
	if len(queryEmbedding) == 0 {
		queryEmbedding, err = s.provider.GenerateEmbedding(queryText)
		if err != nil {
			perr := &ProviderError{Err: err}
			log.Printf("Warning: %v, falling back to text search", perr)
			return s.textOnly(queryText, req)
		}
		if err := s.ideas.SaveEmbedding(idea.ID, queryEmbedding); err != nil {
			return nil, fmt.Errorf("persisting embedding: %w", err)
		}
	}

	resp, err := s.rank(queryText, queryEmbedding, req)
	if err != nil {
		return nil, err
	}

	// Overwrite the cached id list only when a real vector ranking
	// completed; caching text-fallback ids would stop the provider from
	// ever being retried.
	if resp.MatchMethod == models.MatchVector {
		ids := make([]string, len(resp.Results))
		for i, r := range resp.Results {
			ids[i] = r.Record.ID
		}
		if err := s.ideas.SaveSimilarIdeas(idea.ID, ids); err != nil {
			log.Printf("Warning: failed to cache similar ideas for %s: %v", idea.ID, err)
		}
	}

	return resp, nil
}

// findForText embeds arbitrary query text and ranks against the pool.
func (s *Service) findForText(req SearchRequest) (*models.SearchResponse, error) {
	queryEmbedding, err := s.provider.GenerateEmbedding(req.QueryText)
	if err != nil {
		perr := &ProviderError{Err: err}
		log.Printf("Warning: %v, falling back to text search", perr)
		return s.textOnly(req.QueryText, req)
	}

	return s.rank(req.QueryText, queryEmbedding, req)
}

// rank fetches the pool and runs the vector ranking with text fallback.
// The timer covers the ranking scan only, not the embedding round trip.
func (s *Service) rank(queryText string, queryEmbedding []float64, req SearchRequest) (*models.SearchResponse, error) {
	candidates, err := s.pool.FetchAll(req.Category)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate pool: %w", err)
	}

	opts := RankOptions{Threshold: req.Threshold, Limit: req.Limit, Category: req.Category}

	start := time.Now()
	results, method := RankWithFallback(queryText, queryEmbedding, candidates, opts)
	elapsed := time.Since(start).Milliseconds()

	return &models.SearchResponse{
		Results:     results,
		Metrics:     buildMetrics(queryText, elapsed, results, false),
		MatchMethod: method,
	}, nil
}

// textOnly runs the substring fallback when no vector search can happen.
func (s *Service) textOnly(queryText string, req SearchRequest) (*models.SearchResponse, error) {
	candidates, err := s.pool.FetchAll(req.Category)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate pool: %w", err)
	}

	opts := RankOptions{Threshold: req.Threshold, Limit: req.Limit, Category: req.Category}

	start := time.Now()
	results := TextFallback(queryText, candidates, opts)
	elapsed := time.Since(start).Milliseconds()

	return &models.SearchResponse{
		Results:     results,
		Metrics:     buildMetrics(queryText, elapsed, results, false),
		MatchMethod: models.MatchText,
	}, nil
}

// resolveCached reconstructs a result set from a stored id list. The cache
// encodes a prior ranking, so the stored order is preserved rather than
// re-sorted; ids that no longer resolve are dropped silently. Every resolved
// record gets the fixed placeholder similarity since true scores were not
// persisted.
func (s *Service) resolveCached(idea *models.UserIdea) (*models.SearchResponse, error) {
	start := time.Now()

	records, err := s.pool.FetchByIDs(idea.SimilarIdeas)
	if err != nil {
		return nil, fmt.Errorf("resolving cached ideas: %w", err)
	}

	byID := make(map[string]models.IdeaRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	results := make([]models.SimilarityResult, 0, len(idea.SimilarIdeas))
	for _, id := range idea.SimilarIdeas {
		record, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, models.SimilarityResult{
			Record:     record,
			Similarity: CachedSimilarity,
		})
	}

	queryText := ideaQueryText(idea.Title, idea.Description)
	elapsed := time.Since(start).Milliseconds()

	return &models.SearchResponse{
		Results:     results,
		Metrics:     buildMetrics(queryText, elapsed, results, true),
		MatchMethod: models.MatchCached,
	}, nil
}

// ideaQueryText builds the embedding input for a user idea: both fields
// trimmed, joined by a single space.
func ideaQueryText(title, description string) string {
	return strings.TrimSpace(title) + " " + strings.TrimSpace(description)
}
