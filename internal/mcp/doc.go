// Package mcp implements the Model Context Protocol server for the
// Canvas LMS tool catalog.
//
// The server exposes the operations of internal/canvas as remotely
// callable tools, enabling MCP clients (IDE assistants, agent runtimes)
// to manage courses, sections, modules, module items and pages through
// a standardized protocol interface.
//
// # Tool Handler Pattern
//
// Tool handlers follow a net/http.Handler-style convention:
//
//  1. Define an input struct with JSON tags and jsonschema descriptions
//  2. Infer the schema with jsonschema.For via addTool
//  3. Call the corresponding canvas.Client operation
//  4. Map the outcome with toolResult: Canvas API errors become
//     IsError results carrying the upstream status and message, other
//     errors become protocol errors
//
// The dispatch layer performs no transformation of its own: parameters
// pass through to the client typed but otherwise untouched, and
// response bodies are relayed back as JSON text verbatim.
//
// # Thread Safety
//
// The server is safe for concurrent use. Each tool call runs an
// independent request sequence against the shared canvas.Client, whose
// underlying http.Client pools connections safely across goroutines.
package mcp
