// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to query and grade ideas via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/adityamathur5836/ideavault/internal/generator"
	"github.com/adityamathur5836/ideavault/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs IdeaVault as an MCP (Model Context Protocol) server, enabling
LLM agents to search for similar ideas, generate new ones, and
submit gradings via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  ideavault mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "ideavault": {
  #       "command": "ideavault",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if e.openai == nil {
		log.Println("Warning: OPENAI_API_KEY not set - generation is disabled and similarity falls back to text search")
	}

	var gen *generator.Generator
	if e.openai != nil {
		gen = generator.NewGenerator(e.openai)
	}

	server := mcpserver.NewMCPServer(
		"IdeaVault",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, e.cfg, e.service(), gen, e.pool, e.ideas, e.validations)

	// Graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("IdeaVault MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
