package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server and the Canvas client.
type Server struct {
	mcpServer *mcp.Server
	client    *canvas.Client
	logger    *slog.Logger
	name      string
	version   string
}

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	Logger  *slog.Logger
	Client  *canvas.Client
}

// NewServer creates an MCP server exposing the Canvas tool catalog.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("canvas client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		client:    cfg.Client,
		logger:    cfg.Logger,
		name:      cfg.Name,
		version:   cfg.Version,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server on the given transport. This is a blocking
// call that handles all MCP protocol communication.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// Handler returns an HTTP handler speaking the MCP streamable HTTP
// transport, for hosting the server over HTTP instead of stdio.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// registerTools registers the full Canvas tool catalog.
func (s *Server) registerTools() error {
	for _, register := range []func() error{
		s.registerCourseTools,
		s.registerSectionTools,
		s.registerModuleTools,
		s.registerModuleItemTools,
		s.registerPageTools,
	} {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
