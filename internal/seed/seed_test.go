// ABOUTME: Tests for the YAML seed loader
// ABOUTME: Covers parsing, defaults, and validation failures
package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeSeed(t, `
ideas:
  - title: Meal kit delivery
    description: weekly boxes
    category: food
    tags: [subscription, food]
    popularity_score: 72.5
  - title: Pet sitting network
    source: curated
`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Meal kit delivery" || first.Category != "food" {
		t.Errorf("record mismatch: %+v", first)
	}
	if len(first.Tags) != 2 || first.PopularityScore != 72.5 {
		t.Errorf("tags/popularity mismatch: %+v", first)
	}
	if first.Source != "seed" {
		t.Errorf("default source = %s, want seed", first.Source)
	}
	if records[1].Source != "curated" {
		t.Errorf("explicit source = %s, want curated", records[1].Source)
	}
	if first.HasEmbedding() {
		t.Error("seed records must not carry embeddings")
	}
}

func TestLoad_MissingTitleRejected(t *testing.T) {
	path := writeSeed(t, `
ideas:
  - description: no title here
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for entry without title")
	}
}

func TestLoad_EmptyFileRejected(t *testing.T) {
	path := writeSeed(t, "ideas: []\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty seed file")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeSeed(t, "ideas: [title: {{")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
