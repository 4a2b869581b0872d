package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cosmicserver "github.com/HendryAvila/cosmic-cycles/internal/server"
	"github.com/HendryAvila/cosmic-cycles/internal/updater"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Long: `Starts the MCP server on stdin/stdout. Add it to your AI tool's MCP config:

  {
    "mcpServers": {
      "cosmic": {
        "command": "cosmic",
        "args": ["serve"]
      }
    }
  }

Logs go to stderr so they never interfere with the transport.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, cleanup, err := cosmicserver.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go checkForUpdates(ctx)

	logger.Info("mcp server starting", zap.String("version", cosmicserver.Version))
	return server.ServeStdio(s)
}

// checkForUpdates logs a notice when a newer release exists. Failures are
// only visible at debug level.
func checkForUpdates(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := updater.Check(ctx, cosmicserver.Version)
	if err != nil {
		logger.Debug("update check failed", zap.Error(err))
		return
	}
	if result.UpdateAvailable {
		logger.Info("update available",
			zap.String("current", result.CurrentVersion),
			zap.String("latest", result.LatestVersion),
			zap.String("release", result.ReleaseURL),
		)
	}
}
