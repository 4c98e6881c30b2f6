// ABOUTME: MCP tool handler implementations for the IdeaVault server
// ABOUTME: Validates arguments, calls the search/generation/grading cores, returns JSON results
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/adityamathur5836/ideavault/internal/config"
	"github.com/adityamathur5836/ideavault/internal/generator"
	"github.com/adityamathur5836/ideavault/internal/grading"
	"github.com/adityamathur5836/ideavault/internal/models"
	"github.com/adityamathur5836/ideavault/internal/search"
	"github.com/adityamathur5836/ideavault/internal/storage/sqlite"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	cfg         *config.Config
	service     *search.Service
	generator   *generator.Generator
	pool        *sqlite.IdeaPoolStore
	ideas       *sqlite.UserIdeaStore
	validations *sqlite.ValidationStore
}

// FindSimilarIdeas handles the find_similar_ideas tool
func (h *Handlers) FindSimilarIdeas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userIdeaID := request.GetString("user_idea_id", "")
	queryText := request.GetString("query_text", "")
	if userIdeaID == "" && queryText == "" {
		return mcp.NewToolResultError("either user_idea_id or query_text must be provided"), nil
	}

	req := search.SearchRequest{
		SourceIdeaID: userIdeaID,
		QueryText:    queryText,
		Threshold:    request.GetFloat("threshold", h.cfg.SimilarityThreshold),
		Limit:        request.GetInt("limit", h.cfg.ResultLimit),
		Category:     request.GetString("category", ""),
		ForceRefresh: request.GetBool("force_refresh", false),
	}

	resp, err := h.service.FindSimilar(req)
	if err != nil {
		var nerr *search.NotFoundError
		if errors.As(err, &nerr) {
			return mcp.NewToolResultError(nerr.Error()), nil
		}
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("similarity search failed: %v", err)), nil
	}

	return jsonResult(resp)
}

// GenerateIdeas handles the generate_ideas tool
func (h *Handlers) GenerateIdeas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.generator == nil {
		return mcp.NewToolResultError("idea generation is unavailable: no OpenAI API key configured"), nil
	}

	req := generator.Request{
		Industry:       request.GetString("industry", ""),
		ProblemArea:    request.GetString("problem_area", ""),
		TargetAudience: request.GetString("target_audience", ""),
		BudgetRange:    request.GetString("budget_range", ""),
		Timeframe:      request.GetString("timeframe", ""),
		Count:          request.GetInt("count", 0),
	}

	ideas, err := h.generator.Generate(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("idea generation failed: %v", err)), nil
	}

	added := 0
	if request.GetBool("add_to_pool", false) {
		for _, idea := range ideas {
			record := generator.ToPoolRecord(idea, "generated")
			if err := h.pool.Insert(&record); err != nil {
				log.Printf("Warning: failed to add generated idea to pool: %v", err)
				continue
			}
			added++
		}
	}

	return jsonResult(map[string]interface{}{
		"ideas":         ideas,
		"added_to_pool": added,
	})
}

// GradeIdea handles the grade_idea tool
func (h *Handlers) GradeIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ideaID, err := request.RequireString("idea_id")
	if err != nil {
		return mcp.NewToolResultError("idea_id argument is required and must be a string"), nil
	}
	validatorID, err := request.RequireString("validator_id")
	if err != nil {
		return mcp.NewToolResultError("validator_id argument is required and must be a string"), nil
	}

	scores := grading.Scores{
		MarketFit:   request.GetFloat("market_fit_score", 0),
		Feasibility: request.GetFloat("feasibility_score", 0),
		Innovation:  request.GetFloat("innovation_score", 0),
		Scalability: request.GetFloat("scalability_score", 0),
	}
	if err := scores.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	idea, err := h.ideas.Get(ideaID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading idea failed: %v", err)), nil
	}
	if idea == nil {
		return mcp.NewToolResultError(fmt.Sprintf("user idea %s not found", ideaID)), nil
	}

	validation := &models.Validation{
		IdeaID:           ideaID,
		ValidatorID:      validatorID,
		MarketFitScore:   scores.MarketFit,
		FeasibilityScore: scores.Feasibility,
		InnovationScore:  scores.Innovation,
		ScalabilityScore: scores.Scalability,
		OverallScore:     grading.WeightedScore(scores),
		Feedback:         request.GetString("feedback", ""),
		IsAnonymous:      request.GetBool("is_anonymous", false),
	}

	if err := h.validations.Insert(validation); err != nil {
		if errors.Is(err, sqlite.ErrAlreadyValidated) {
			return mcp.NewToolResultError("this validator has already graded the idea"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("storing validation failed: %v", err)), nil
	}

	average, err := h.validations.AverageScore(ideaID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("averaging scores failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"validation":    validation,
		"average_score": average,
	})
}

// ImportIdeas handles the import_ideas tool
func (h *Handlers) ImportIdeas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["ideas"]
	if !ok {
		return mcp.NewToolResultError("ideas argument is required"), nil
	}

	// Round-trip through JSON to decode the loosely typed argument array.
	data, err := json.Marshal(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid ideas argument: %v", err)), nil
	}

	var entries []struct {
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Category        string   `json:"category"`
		Tags            []string `json:"tags"`
		PopularityScore float64  `json:"popularity_score"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid ideas argument: %v", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultError("ideas argument must not be empty"), nil
	}

	imported := 0
	for i, e := range entries {
		if e.Title == "" {
			return mcp.NewToolResultError(fmt.Sprintf("idea %d is missing a title", i+1)), nil
		}
		record := &models.IdeaRecord{
			Title:           e.Title,
			Description:     e.Description,
			Category:        e.Category,
			Tags:            e.Tags,
			Source:          "imported",
			PopularityScore: e.PopularityScore,
		}
		if err := h.pool.Insert(record); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("importing %q failed: %v", e.Title, err)), nil
		}
		imported++
	}

	return jsonResult(map[string]interface{}{
		"imported": imported,
	})
}

// AddUserIdea handles the add_user_idea tool
func (h *Handlers) AddUserIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}

	idea := &models.UserIdea{
		UserID:      request.GetString("user_id", ""),
		Title:       title,
		Description: request.GetString("description", ""),
		Category:    request.GetString("category", ""),
	}

	if err := h.ideas.Insert(idea); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("storing idea failed: %v", err)), nil
	}

	return jsonResult(idea)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
