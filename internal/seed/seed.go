// ABOUTME: YAML seed file loader for the idea pool
// ABOUTME: Parses and validates pool records for bulk import
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// File is the top-level structure of a pool seed file.
type File struct {
	Ideas []Entry `yaml:"ideas"`
}

// Entry is one pool idea in a seed file.
type Entry struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Category        string   `yaml:"category"`
	Tags            []string `yaml:"tags"`
	Source          string   `yaml:"source"`
	PopularityScore float64  `yaml:"popularity_score"`
}

// Load reads and validates a seed file, returning pool records ready for
// insertion. Embeddings are left empty for the backfill.
func Load(path string) ([]models.IdeaRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(f.Ideas) == 0 {
		return nil, fmt.Errorf("seed file %s contains no ideas", path)
	}

	records := make([]models.IdeaRecord, 0, len(f.Ideas))
	for i, e := range f.Ideas {
		if e.Title == "" {
			return nil, fmt.Errorf("seed entry %d is missing a title", i+1)
		}
		source := e.Source
		if source == "" {
			source = "seed"
		}
		records = append(records, models.IdeaRecord{
			Title:           e.Title,
			Description:     e.Description,
			Category:        e.Category,
			Tags:            e.Tags,
			Source:          source,
			PopularityScore: e.PopularityScore,
		})
	}

	return records, nil
}
