// ABOUTME: CLI command to find similar ideas
// ABOUTME: Supports stored user ideas and free text, vector or text fallback
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/search"
)

var (
	similarIdeaID    string
	similarThreshold float64
	similarLimit     int
	similarCategory  string
	similarRefresh   bool
)

// NewSimilarCmd creates the similar command
func NewSimilarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar [query text]",
		Short: "Find similar ideas in the pool",
		Long: `Find pool ideas similar to a stored user idea or free query text.

Uses cosine similarity over OpenAI embeddings. When nothing clears the
threshold (or no API key is configured) a substring text search runs
instead, tagged accordingly.

Examples:
  ideavault similar "meal kit delivery for athletes"
  ideavault similar --idea-id 4f7c... --force-refresh
  ideavault similar --category fintech --threshold 0.6 "budgeting app"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSimilar,
	}

	cmd.Flags().StringVar(&similarIdeaID, "idea-id", "", "Search from a stored user idea instead of query text")
	cmd.Flags().Float64Var(&similarThreshold, "threshold", search.DefaultThreshold, "Minimum cosine similarity (-1 to 1)")
	cmd.Flags().IntVar(&similarLimit, "limit", search.DefaultLimit, "Maximum results to return")
	cmd.Flags().StringVar(&similarCategory, "category", "", "Exact-match category filter")
	cmd.Flags().BoolVar(&similarRefresh, "force-refresh", false, "Bypass the cached id list and recompute")

	return cmd
}

func runSimilar(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(similarLimit, "limit"); err != nil {
		return err
	}
	if err := validateThreshold(similarThreshold); err != nil {
		return err
	}

	queryText := ""
	if len(args) > 0 {
		queryText = args[0]
	}
	if similarIdeaID == "" && strings.TrimSpace(queryText) == "" {
		return fmt.Errorf("provide query text or --idea-id")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	resp, err := e.service().FindSimilar(search.SearchRequest{
		SourceIdeaID: similarIdeaID,
		QueryText:    queryText,
		Threshold:    similarThreshold,
		Limit:        similarLimit,
		Category:     similarCategory,
		ForceRefresh: similarRefresh,
	})
	if err != nil {
		return fmt.Errorf("similarity search: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	if len(resp.Results) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No similar ideas found")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tTITLE\tCATEGORY\tDESCRIPTION\n")
	fmt.Fprintf(w, "-----\t-----\t--------\t-----------\n")
	for _, r := range resp.Results {
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n",
			r.Similarity,
			truncate(r.Record.Title, 30),
			truncate(r.Record.Category, 15),
			truncate(r.Record.Description, 50))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d result(s) via %s match in %dms (avg similarity %.3f)\n",
			resp.Metrics.TotalFound, resp.MatchMethod, resp.Metrics.SearchTimeMillis, resp.Metrics.AverageSimilarity)
	}

	return nil
}
