// ABOUTME: CLI command to generate business ideas from constraints
// ABOUTME: Calls the chat model and optionally stores results in the pool
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/generator"
)

var (
	genIndustry  string
	genProblem   string
	genAudience  string
	genBudget    string
	genTimeframe string
	genCount     int
	genAddToPool bool
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate business ideas with the chat model",
		Long: `Generate structured business ideas matching optional constraints.

Examples:
  ideavault generate --industry logistics --count 5
  ideavault generate --problem-area "food waste" --add-to-pool`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&genIndustry, "industry", "", "Industry to generate ideas for")
	cmd.Flags().StringVar(&genProblem, "problem-area", "", "Problem space the ideas should address")
	cmd.Flags().StringVar(&genAudience, "target-audience", "", "Who the ideas should serve")
	cmd.Flags().StringVar(&genBudget, "budget-range", "", "Available startup budget")
	cmd.Flags().StringVar(&genTimeframe, "timeframe", "", "Time to first revenue")
	cmd.Flags().IntVar(&genCount, "count", generator.DefaultCount, "Number of ideas to generate")
	cmd.Flags().BoolVar(&genAddToPool, "add-to-pool", false, "Store generated ideas in the candidate pool")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(genCount, "count"); err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if e.openai == nil {
		return fmt.Errorf("OPENAI_API_KEY is required to generate ideas")
	}

	gen := generator.NewGenerator(e.openai)
	ideas, err := gen.Generate(generator.Request{
		Industry:       genIndustry,
		ProblemArea:    genProblem,
		TargetAudience: genAudience,
		BudgetRange:    genBudget,
		Timeframe:      genTimeframe,
		Count:          genCount,
	})
	if err != nil {
		return err
	}

	if genAddToPool {
		for _, idea := range ideas {
			record := generator.ToPoolRecord(idea, "generated")
			if err := e.pool.Insert(&record); err != nil {
				return fmt.Errorf("adding %q to pool: %w", idea.Title, err)
			}
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d idea(s) to the pool\n", len(ideas))
		}
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(ideas, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	for i, idea := range ideas {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, idea.Title)
		fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", idea.Description)
		if idea.TargetMarket != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "   Target market: %s\n", idea.TargetMarket)
		}
		if idea.BusinessModel != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "   Business model: %s\n", idea.BusinessModel)
		}
	}

	return nil
}
