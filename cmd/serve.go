package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/koopa0/canvas-mcp/internal/config"
	"github.com/koopa0/canvas-mcp/internal/log"
	"github.com/koopa0/canvas-mcp/internal/mcp"
)

// serverName identifies this server to MCP clients.
const serverName = "canvas-mcp"

// runServe initializes and starts the MCP server on stdio or HTTP.
func runServe(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level, JSON: flagJSONLogs})
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := canvas.New(cfg.APIURL, cfg.APIToken,
		canvas.WithLogger(logger.With("component", "canvas")))
	if err != nil {
		return fmt.Errorf("creating canvas client: %w", err)
	}

	server, err := mcp.NewServer(mcp.Config{
		Name:    serverName,
		Version: Version,
		Logger:  logger.With("component", "mcp"),
		Client:  client,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	logger.Info("MCP server ready",
		"name", serverName,
		"version", Version,
		"api_url", cfg.APIURL)

	if flagHTTPAddr != "" {
		return serveHTTP(ctx, logger, server, flagHTTPAddr)
	}

	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	logger.Info("MCP server shut down gracefully")
	return nil
}

// serveHTTP hosts the server on the MCP streamable HTTP transport and
// shuts it down when ctx is canceled.
func serveHTTP(ctx context.Context, logger log.Logger, server *mcp.Server, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving MCP over HTTP", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP shutdown: %w", err)
		}
		logger.Info("MCP server shut down gracefully")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}
}
