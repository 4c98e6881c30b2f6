// ABOUTME: CLI command to backfill embeddings for pool ideas
// ABOUTME: Sequential generation with a fixed inter-request pause
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/search"
)

// NewEmbedCmd creates the embed command
func NewEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Backfill embeddings for pool ideas",
		Long: `Generate embeddings for every pool idea that does not have one yet.

Requests run sequentially with a fixed pause between them to respect
the embedding provider's rate limits. Set EMBED_INTERVAL to change the
pause (default 100ms).`,
		RunE: runEmbed,
	}

	return cmd
}

func runEmbed(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if e.openai == nil {
		return fmt.Errorf("OPENAI_API_KEY is required to generate embeddings")
	}

	backfiller := search.NewBackfiller(e.provider, e.pool, e.cfg.EmbedInterval)
	result, err := backfiller.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("embedding backfill: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Backfill complete: %d embedded, %d failed, %d skipped\n",
			result.Success, result.Failed, result.Skipped)
	}
	return nil
}
