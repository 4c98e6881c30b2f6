// ABOUTME: Root CLI command with global flags
// ABOUTME: Registers all subcommands and handles execution
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideavault",
		Short: "Business idea pool with embedding similarity search",
		Long: `IdeaVault manages a pool of business ideas and finds the ones most
similar to yours using OpenAI embeddings and cosine similarity, with a
text-search fallback when no vector match clears the threshold.

Ideas are stored locally in SQLite. Embeddings are computed lazily and
cached, as are similar-idea id lists.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format: table or json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewSimilarCmd(),
		NewImportCmd(),
		NewEmbedCmd(),
		NewGenerateCmd(),
		NewGradeCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
