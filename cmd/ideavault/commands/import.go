// ABOUTME: CLI command to import pool ideas from a YAML seed file
// ABOUTME: Validates entries and inserts them without embeddings
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/seed"
)

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <seed.yml>",
		Short: "Import pool ideas from a YAML seed file",
		Long: `Import curated ideas into the candidate pool from a YAML file.

Imported ideas have no embeddings; run "ideavault embed" afterwards to
backfill them.

Example seed file:
  ideas:
    - title: Meal kit delivery
      description: weekly boxes for athletes
      category: food
      tags: [subscription, food]
      popularity_score: 72`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	records, err := seed.Load(args[0])
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	imported := 0
	for i := range records {
		if err := e.pool.Insert(&records[i]); err != nil {
			return fmt.Errorf("importing %q: %w", records[i].Title, err)
		}
		imported++
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d idea(s) into the pool\n", imported)
	}
	return nil
}
