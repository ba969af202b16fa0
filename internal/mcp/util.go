package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// addTool infers the JSON schema for the input type and registers the
// tool with the SDK server.
func addTool[I any](s *Server, name, description string, handler mcp.ToolHandlerFor[I, any]) error {
	schema, err := jsonschema.For[I](nil)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", name, err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}, handler)

	return nil
}

// toolResult converts a Canvas call outcome into an MCP result.
//
// A Canvas API failure is a tool-level error (IsError result, so the
// client can read the status and message); anything else is a protocol
// error and propagates as a Go error.
func (s *Server) toolResult(data any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		var apiErr *canvas.APIError
		if errors.As(err, &apiErr) {
			s.logger.Debug("canvas call failed",
				"status", apiErr.StatusCode, "message", apiErr.Message)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: apiErr.Error()}},
				IsError: true,
			}, nil, nil
		}
		return nil, nil, err
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}
