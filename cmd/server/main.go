// ABOUTME: Main entry point for IdeaVault MCP server with stdio transport
// ABOUTME: Wires config, SQLite stores, search service, and MCP tools
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/adityamathur5836/ideavault/internal/config"
	"github.com/adityamathur5836/ideavault/internal/generator"
	"github.com/adityamathur5836/ideavault/internal/llm"
	"github.com/adityamathur5836/ideavault/internal/mcp"
	"github.com/adityamathur5836/ideavault/internal/search"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = sqlite.DefaultDBPath()
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	pool := sqlite.NewIdeaPoolStore(db)
	ideas := sqlite.NewUserIdeaStore(db)
	validations := sqlite.NewValidationStore(db)

	var provider search.EmbeddingProvider = unavailableProvider{}
	var gen *generator.Generator
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
			log.Fatalf("Failed to initialize OpenAI client: %v", err)
		}
		provider = client
		gen = generator.NewGenerator(client)
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - generation is disabled and similarity falls back to text search")
	}

	service := search.NewService(provider, pool, ideas)

	server := mcpserver.NewMCPServer(
		"IdeaVault",
		"0.1.0",
	)

	mcp.RegisterTools(server, cfg, service, gen, pool, ideas, validations)

	log.Println("IdeaVault MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// unavailableProvider keeps the search service functional without an API
// key by forcing every vector query onto the text fallback.
type unavailableProvider struct{}

func (unavailableProvider) GenerateEmbedding(text string) ([]float64, error) {
	return nil, fmt.Errorf("no OpenAI API key configured")
}
