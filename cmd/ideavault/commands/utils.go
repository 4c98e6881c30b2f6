// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Store wiring, formatting, and flag validation
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/adityamathur5836/ideavault/internal/config"
	"github.com/adityamathur5836/ideavault/internal/llm"
	"github.com/adityamathur5836/ideavault/internal/search"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

// env groups everything a command needs after startup wiring.
type env struct {
	cfg         *config.Config
	db          *sqlite.DB
	pool        *sqlite.IdeaPoolStore
	ideas       *sqlite.UserIdeaStore
	validations *sqlite.ValidationStore
	provider    search.EmbeddingProvider
	openai      *llm.OpenAIClient
}

// openEnv loads configuration and opens the database and stores.
func openEnv() (*env, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = sqlite.DefaultDBPath()
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	e := &env{
		cfg:         cfg,
		db:          db,
		pool:        sqlite.NewIdeaPoolStore(db),
		ideas:       sqlite.NewUserIdeaStore(db),
		validations: sqlite.NewValidationStore(db),
	}

	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			ChatModel:      cfg.ChatModel,
			EmbeddingModel: cfg.EmbeddingModel,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("initializing OpenAI client: %w", err)
		}
		e.openai = client
		e.provider = client
	} else {
		if verbose {
			log.Println("OPENAI_API_KEY not set; similarity queries fall back to text search")
		}
		e.provider = unavailableProvider{}
	}

	return e, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

func (e *env) service() *search.Service {
	return search.NewService(e.provider, e.pool, e.ideas)
}

// unavailableProvider stands in when no API key is configured, so the
// service can still answer with the text fallback.
type unavailableProvider struct{}

func (unavailableProvider) GenerateEmbedding(text string) ([]float64, error) {
	return nil, fmt.Errorf("no OpenAI API key configured")
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// validateThreshold returns error if t is outside the cosine range
func validateThreshold(t float64) error {
	if t < -1 || t > 1 {
		return fmt.Errorf("threshold must be in [-1,1], got %g", t)
	}
	return nil
}
