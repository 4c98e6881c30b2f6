// ABOUTME: MCP tool definitions and registration for the IdeaVault server
// ABOUTME: Defines JSON schemas for the similarity, generation, grading, and import tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/adityamathur5836/ideavault/internal/config"
	"github.com/adityamathur5836/ideavault/internal/generator"
	"github.com/adityamathur5836/ideavault/internal/search"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, cfg *config.Config, service *search.Service,
	gen *generator.Generator, pool *sqlite.IdeaPoolStore, ideas *sqlite.UserIdeaStore,
	validations *sqlite.ValidationStore) *Handlers {

	handlers := &Handlers{
		cfg:         cfg,
		service:     service,
		generator:   gen,
		pool:        pool,
		ideas:       ideas,
		validations: validations,
	}

	// 1. find_similar_ideas - rank the pool against a user idea or query text
	server.AddTool(mcp.Tool{
		Name:        "find_similar_ideas",
		Description: "Find pool ideas similar to a stored user idea or arbitrary query text using embedding similarity, with text-search fallback.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_idea_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of a stored user idea to search from",
				},
				"query_text": map[string]interface{}{
					"type":        "string",
					"description": "Free text to search from (used when user_idea_id is absent)",
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum cosine similarity, -1 to 1 (default: 0.7)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum results to return (default: 8)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional exact-match category filter",
				},
				"force_refresh": map[string]interface{}{
					"type":        "boolean",
					"description": "Bypass the cached id list and recompute (default: false)",
				},
			},
		},
	}, handlers.FindSimilarIdeas)

	// 2. generate_ideas - templated idea generation
	server.AddTool(mcp.Tool{
		Name:        "generate_ideas",
		Description: "Generate structured business ideas matching optional constraints. Generated ideas can be added to the pool.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"industry": map[string]interface{}{
					"type":        "string",
					"description": "Industry to generate ideas for",
				},
				"problem_area": map[string]interface{}{
					"type":        "string",
					"description": "Problem space the ideas should address",
				},
				"target_audience": map[string]interface{}{
					"type":        "string",
					"description": "Who the ideas should serve",
				},
				"budget_range": map[string]interface{}{
					"type":        "string",
					"description": "Available startup budget",
				},
				"timeframe": map[string]interface{}{
					"type":        "string",
					"description": "Time to first revenue",
				},
				"count": map[string]interface{}{
					"type":        "number",
					"description": "Number of ideas to generate (default: 3)",
				},
				"add_to_pool": map[string]interface{}{
					"type":        "boolean",
					"description": "Store generated ideas in the candidate pool (default: false)",
				},
			},
		},
	}, handlers.GenerateIdeas)

	// 3. grade_idea - weighted grading of a user idea
	server.AddTool(mcp.Tool{
		Name:        "grade_idea",
		Description: "Submit a grading validation for a user idea. The overall score is the fixed weighted sum of the four dimensions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"idea_id": map[string]interface{}{
					"type":        "string",
					"description": "User idea to grade",
				},
				"validator_id": map[string]interface{}{
					"type":        "string",
					"description": "Who is grading",
				},
				"market_fit_score": map[string]interface{}{
					"type":        "number",
					"description": "Market fit, 1-10",
				},
				"feasibility_score": map[string]interface{}{
					"type":        "number",
					"description": "Feasibility, 1-10",
				},
				"innovation_score": map[string]interface{}{
					"type":        "number",
					"description": "Innovation, 1-10",
				},
				"scalability_score": map[string]interface{}{
					"type":        "number",
					"description": "Scalability, 1-10",
				},
				"feedback": map[string]interface{}{
					"type":        "string",
					"description": "Optional free-form feedback",
				},
				"is_anonymous": map[string]interface{}{
					"type":        "boolean",
					"description": "Hide the validator from other users (default: false)",
				},
			},
			Required: []string{"idea_id", "validator_id", "market_fit_score", "feasibility_score", "innovation_score", "scalability_score"},
		},
	}, handlers.GradeIdea)

	// 4. import_ideas - bulk insert candidate ideas into the pool
	server.AddTool(mcp.Tool{
		Name:        "import_ideas",
		Description: "Import candidate ideas into the pool. Imported ideas have no embeddings until the backfill runs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ideas": map[string]interface{}{
					"type":        "array",
					"description": "Ideas to import",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"title": map[string]interface{}{
								"type":        "string",
								"description": "Idea title (required)",
							},
							"description": map[string]interface{}{
								"type":        "string",
								"description": "Idea description",
							},
							"category": map[string]interface{}{
								"type":        "string",
								"description": "Optional category",
							},
							"tags": map[string]interface{}{
								"type":        "array",
								"description": "Optional tags",
								"items":       map[string]interface{}{"type": "string"},
							},
							"popularity_score": map[string]interface{}{
								"type":        "number",
								"description": "Popularity score (default: 0)",
							},
						},
						"required": []string{"title"},
					},
				},
			},
			Required: []string{"ideas"},
		},
	}, handlers.ImportIdeas)

	// 5. add_user_idea - store a draft idea for later similarity queries
	server.AddTool(mcp.Tool{
		Name:        "add_user_idea",
		Description: "Store a user's draft idea. Its embedding is computed lazily on the first similarity query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "Owner of the idea",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Idea title",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Idea description",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category",
				},
			},
			Required: []string{"title"},
		},
	}, handlers.AddUserIdea)

	return handlers
}
