// ABOUTME: Templated business idea generation via the chat model
// ABOUTME: Builds structured prompts from user constraints and parses JSON responses
package generator

import (
	"fmt"
	"strings"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// DefaultCount is the number of ideas requested when none is specified.
const DefaultCount = 3

// ChatClient produces structured ideas from a prompt pair.
type ChatClient interface {
	GenerateIdeas(systemPrompt, userPrompt string) ([]models.GeneratedIdea, error)
}

// Request holds the optional constraints for a generation call.
type Request struct {
	Industry       string
	ProblemArea    string
	TargetAudience string
	BudgetRange    string
	Timeframe      string
	Count          int
}

// Generator turns user constraints into generated ideas.
type Generator struct {
	client ChatClient
}

// NewGenerator creates a Generator backed by the given chat client.
func NewGenerator(client ChatClient) *Generator {
	return &Generator{client: client}
}

const systemPrompt = `You are a business idea generation assistant. Generate practical,
specific business ideas matching the user's constraints.

For each idea provide: title, description, problem_statement, solution_summary,
target_market, business_model, revenue_streams (array), cost_structure (array),
key_metrics (array), tags (array).

Return ONLY a JSON array of idea objects. No additional text.`

// Generate asks the chat model for ideas matching the request.
func (g *Generator) Generate(req Request) ([]models.GeneratedIdea, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}

	ideas, err := g.client.GenerateIdeas(systemPrompt, buildUserPrompt(req, count))
	if err != nil {
		return nil, fmt.Errorf("generating ideas: %w", err)
	}
	if len(ideas) > count {
		ideas = ideas[:count]
	}
	return ideas, nil
}

func buildUserPrompt(req Request, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d business ideas", count)

	constraints := []struct {
		label string
		value string
	}{
		{"industry", req.Industry},
		{"problem area", req.ProblemArea},
		{"target audience", req.TargetAudience},
		{"budget range", req.BudgetRange},
		{"timeframe", req.Timeframe},
	}

	var parts []string
	for _, c := range constraints {
		if v := strings.TrimSpace(c.value); v != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", c.label, v))
		}
	}

	if len(parts) > 0 {
		b.WriteString(" with the following constraints:\n")
		for _, p := range parts {
			b.WriteString("- " + p + "\n")
		}
	} else {
		b.WriteString(" across any industry.\n")
	}

	return b.String()
}

// ToPoolRecord converts a generated idea into a candidate pool record. The
// embedding is left empty for the backfill to fill in.
func ToPoolRecord(idea models.GeneratedIdea, source string) models.IdeaRecord {
	return models.IdeaRecord{
		Title:       idea.Title,
		Description: idea.Description,
		Tags:        idea.Tags,
		Source:      source,
	}
}
