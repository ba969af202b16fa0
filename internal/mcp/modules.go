package mcp

import (
	"context"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListModulesInput defines the input schema for list_modules.
type ListModulesInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
}

// GetModuleInput defines the input schema for get_module.
type GetModuleInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string `json:"module_id" jsonschema:"The Canvas module ID"`
}

// CreateModuleInput defines the input schema for create_module.
type CreateModuleInput struct {
	CourseID                  string   `json:"course_id" jsonschema:"The Canvas course ID"`
	Name                      string   `json:"name" jsonschema:"The name of the module"`
	Position                  *int     `json:"position,omitempty" jsonschema:"Position of the module in the course (1-based)"`
	UnlockAt                  *string  `json:"unlock_at,omitempty" jsonschema:"Date the module will unlock (ISO 8601 format)"`
	RequireSequentialProgress *bool    `json:"require_sequential_progress,omitempty" jsonschema:"Whether students must progress through the module sequentially"`
	PrerequisiteModuleIDs     []string `json:"prerequisite_module_ids,omitempty" jsonschema:"Module IDs that must be completed before this one"`
	PublishFinalGrade         *bool    `json:"publish_final_grade,omitempty" jsonschema:"Whether to publish the final grade for the module"`
}

// UpdateModuleInput defines the input schema for update_module.
type UpdateModuleInput struct {
	CourseID                  string   `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID                  string   `json:"module_id" jsonschema:"The Canvas module ID"`
	Name                      *string  `json:"name,omitempty" jsonschema:"New name for the module"`
	Position                  *int     `json:"position,omitempty" jsonschema:"New position"`
	UnlockAt                  *string  `json:"unlock_at,omitempty" jsonschema:"New unlock date (ISO 8601 format)"`
	RequireSequentialProgress *bool    `json:"require_sequential_progress,omitempty" jsonschema:"Whether students must progress through the module sequentially"`
	PrerequisiteModuleIDs     []string `json:"prerequisite_module_ids,omitempty" jsonschema:"Module IDs that must be completed first; an empty list clears them"`
	PublishFinalGrade         *bool    `json:"publish_final_grade,omitempty" jsonschema:"Whether to publish the final grade for the module"`
}

// DeleteModuleInput defines the input schema for delete_module.
type DeleteModuleInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string `json:"module_id" jsonschema:"The Canvas module ID"`
}

// registerModuleTools registers the module tools.
// Tools: list_modules, get_module, create_module, update_module, delete_module
func (s *Server) registerModuleTools() error {
	if err := addTool(s, "list_modules",
		"Get all modules in a course.", s.ListModules); err != nil {
		return err
	}
	if err := addTool(s, "get_module",
		"Get a specific module by ID.", s.GetModule); err != nil {
		return err
	}
	if err := addTool(s, "create_module",
		"Create a new module in a course.", s.CreateModule); err != nil {
		return err
	}
	if err := addTool(s, "update_module",
		"Update a module in a course.", s.UpdateModule); err != nil {
		return err
	}
	return addTool(s, "delete_module",
		"Delete a module from a course.", s.DeleteModule)
}

// ListModules handles the list_modules MCP tool call.
func (s *Server) ListModules(ctx context.Context, req *mcp.CallToolRequest, in ListModulesInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.ListModules(ctx, in.CourseID)
	return s.toolResult(result, err)
}

// GetModule handles the get_module MCP tool call.
func (s *Server) GetModule(ctx context.Context, req *mcp.CallToolRequest, in GetModuleInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetModule(ctx, in.CourseID, in.ModuleID)
	return s.toolResult(result, err)
}

// CreateModule handles the create_module MCP tool call.
func (s *Server) CreateModule(ctx context.Context, req *mcp.CallToolRequest, in CreateModuleInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.CreateModule(ctx, in.CourseID, in.Name, canvas.ModuleOptions{
		Position:                  in.Position,
		UnlockAt:                  in.UnlockAt,
		RequireSequentialProgress: in.RequireSequentialProgress,
		PrerequisiteModuleIDs:     in.PrerequisiteModuleIDs,
		PublishFinalGrade:         in.PublishFinalGrade,
	})
	return s.toolResult(result, err)
}

// UpdateModule handles the update_module MCP tool call.
func (s *Server) UpdateModule(ctx context.Context, req *mcp.CallToolRequest, in UpdateModuleInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.UpdateModule(ctx, in.CourseID, in.ModuleID, in.Name, canvas.ModuleOptions{
		Position:                  in.Position,
		UnlockAt:                  in.UnlockAt,
		RequireSequentialProgress: in.RequireSequentialProgress,
		PrerequisiteModuleIDs:     in.PrerequisiteModuleIDs,
		PublishFinalGrade:         in.PublishFinalGrade,
	})
	return s.toolResult(result, err)
}

// DeleteModule handles the delete_module MCP tool call.
func (s *Server) DeleteModule(ctx context.Context, req *mcp.CallToolRequest, in DeleteModuleInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.DeleteModule(ctx, in.CourseID, in.ModuleID)
	return s.toolResult(result, err)
}
