package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ezmcp/internal/capability"
	"ezmcp/internal/config"
	"ezmcp/internal/greeter"
	"ezmcp/internal/mcpserver"
	"ezmcp/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveEnvFile points at an optional dotenv file loaded before the server
// starts. Values land in the process environment, so the per-call reads of
// GREETING_PREFIX still govern handler output.
var serveEnvFile string

// serveQuiet suppresses the startup banner.
var serveQuiet bool

// serveCmd starts the demo MCP server on stdio.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo MCP server over stdio",
	Long: `Starts the demo MCP server and speaks the Model Context Protocol on
standard input and output until the stream closes.

Three capabilities are registered at startup:
  • server-info       resource at server://info
  • hello-someone     tool greeting a person by name
  • greeting-prompt   prompt template for generating a greeting

Diagnostics and the startup banner go to stderr; stdout is reserved for
the protocol stream.

Environment:
  GREETING_PREFIX   prefix used in all greeting output (default "Hello")
  ENVIRONMENT       printed at startup, no behavioral effect (default "development")`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	if serveEnvFile != "" {
		if err := godotenv.Load(serveEnvFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", serveEnvFile, err)
		}
	} else {
		// Default .env is optional; ignore a missing file.
		_ = godotenv.Load()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if serveDebug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	registry := capability.NewRegistry()
	if err := greeter.RegisterAll(registry, cfg); err != nil {
		return fmt.Errorf("failed to register capabilities: %w", err)
	}

	adapter := mcpserver.NewAdapter(registry, cfg)
	if !serveQuiet {
		adapter.PrintBanner(os.Stderr)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := adapter.Serve(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}

	logging.Info("Serve", "Server shut down cleanly")
	return nil
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveQuiet, "quiet", false, "Suppress the startup banner")
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", "", "Load environment variables from this dotenv file")
}
