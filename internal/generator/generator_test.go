// ABOUTME: Tests for the idea generator prompt building and result handling
// ABOUTME: Uses a fake chat client, no network calls
package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/adityamathur5836/ideavault/internal/models"
)

type fakeChatClient struct {
	ideas      []models.GeneratedIdea
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeChatClient) GenerateIdeas(systemPrompt, userPrompt string) ([]models.GeneratedIdea, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.ideas, f.err
}

func TestGenerate_PromptIncludesConstraints(t *testing.T) {
	client := &fakeChatClient{ideas: []models.GeneratedIdea{{Title: "one"}}}
	g := NewGenerator(client)

	_, err := g.Generate(Request{
		Industry:       "logistics",
		ProblemArea:    "last mile delivery",
		TargetAudience: "small retailers",
		Count:          2,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{"Generate 2 business ideas", "industry: logistics", "problem area: last mile delivery", "target audience: small retailers"} {
		if !strings.Contains(client.lastUser, want) {
			t.Errorf("user prompt missing %q:\n%s", want, client.lastUser)
		}
	}
	if strings.Contains(client.lastUser, "budget range") {
		t.Error("empty constraints should be omitted from the prompt")
	}
	if !strings.Contains(client.lastSystem, "JSON array") {
		t.Error("system prompt should demand a JSON array")
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	client := &fakeChatClient{ideas: []models.GeneratedIdea{{Title: "a"}}}
	g := NewGenerator(client)

	if _, err := g.Generate(Request{}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(client.lastUser, "Generate 3 business ideas") {
		t.Errorf("expected default count of 3, prompt: %s", client.lastUser)
	}
}

func TestGenerate_TruncatesExcessIdeas(t *testing.T) {
	client := &fakeChatClient{ideas: []models.GeneratedIdea{{Title: "a"}, {Title: "b"}, {Title: "c"}}}
	g := NewGenerator(client)

	ideas, err := g.Generate(Request{Count: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(ideas) != 2 {
		t.Errorf("expected 2 ideas, got %d", len(ideas))
	}
}

func TestGenerate_PropagatesClientError(t *testing.T) {
	client := &fakeChatClient{err: errors.New("model overloaded")}
	g := NewGenerator(client)

	if _, err := g.Generate(Request{}); err == nil {
		t.Fatal("expected error from failing client")
	}
}

func TestToPoolRecord(t *testing.T) {
	idea := models.GeneratedIdea{
		Title:       "Composting service",
		Description: "pickup for urban homes",
		Tags:        []string{"green", "subscription"},
	}

	record := ToPoolRecord(idea, "generated")
	if record.Title != idea.Title || record.Source != "generated" {
		t.Errorf("record mismatch: %+v", record)
	}
	if record.HasEmbedding() {
		t.Error("converted record should not carry an embedding")
	}
}
