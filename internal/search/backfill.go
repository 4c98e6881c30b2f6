// ABOUTME: Batch embedding backfill for pool records missing vectors
// ABOUTME: Sequential generation with a fixed inter-request pause for provider rate limits
package search

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// DefaultEmbedInterval is the pause between consecutive embedding requests.
const DefaultEmbedInterval = 100 * time.Millisecond

// PoolWriter is the admin side of the candidate pool used by the backfill.
type PoolWriter interface {
	// ListMissingEmbeddings returns pool records without a stored vector.
	ListMissingEmbeddings() ([]models.IdeaRecord, error)
	UpdateEmbedding(id string, vector []float64) error
}

// BatchResult counts the outcome of a backfill run.
type BatchResult struct {
	Success int
	Failed  int
	Skipped int
}

// Backfiller generates embeddings for pool records that lack one. Requests
// are strictly sequential with a fixed pause between them; the provider's
// rate limits make parallel fan-out counterproductive here.
type Backfiller struct {
	provider EmbeddingProvider
	pool     PoolWriter
	limiter  *rate.Limiter
}

// NewBackfiller creates a backfiller with the given inter-request interval.
// A non-positive interval falls back to DefaultEmbedInterval.
func NewBackfiller(provider EmbeddingProvider, pool PoolWriter, interval time.Duration) *Backfiller {
	if interval <= 0 {
		interval = DefaultEmbedInterval
	}
	return &Backfiller{
		provider: provider,
		pool:     pool,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run embeds every pool record missing a vector. A failed record is counted
// and skipped; the run continues. The context cancels the run between
// requests.
func (b *Backfiller) Run(ctx context.Context) (BatchResult, error) {
	var result BatchResult

	records, err := b.pool.ListMissingEmbeddings()
	if err != nil {
		return result, err
	}

	for _, record := range records {
		if record.HasEmbedding() {
			result.Skipped++
			continue
		}

		if err := b.limiter.Wait(ctx); err != nil {
			return result, err
		}

		text := ideaQueryText(record.Title, record.Description)
		vector, err := b.provider.GenerateEmbedding(text)
		if err != nil {
			log.Printf("Warning: embedding failed for idea %s: %v", record.ID, err)
			result.Failed++
			continue
		}

		if err := b.pool.UpdateEmbedding(record.ID, vector); err != nil {
			log.Printf("Warning: storing embedding failed for idea %s: %v", record.ID, err)
			result.Failed++
			continue
		}

		result.Success++
	}

	return result, nil
}
