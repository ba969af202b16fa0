package mcp

import (
	"context"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListModuleItemsInput defines the input schema for list_module_items.
type ListModuleItemsInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string `json:"module_id" jsonschema:"The Canvas module ID"`
}

// GetModuleItemInput defines the input schema for get_module_item.
type GetModuleItemInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string `json:"module_id" jsonschema:"The Canvas module ID"`
	ItemID   string `json:"item_id" jsonschema:"The Canvas module item ID"`
}

// CreateModuleItemInput defines the input schema for create_module_item.
type CreateModuleItemInput struct {
	CourseID                  string   `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID                  string   `json:"module_id" jsonschema:"The Canvas module ID"`
	Title                     string   `json:"title" jsonschema:"The title of the item"`
	Type                      string   `json:"type" jsonschema:"The type of item (File, Page, Assignment, Discussion, Quiz, ExternalUrl, ...)"`
	ContentID                 *string  `json:"content_id,omitempty" jsonschema:"The ID of the content (required except for ExternalUrl or Page)"`
	Position                  *int     `json:"position,omitempty" jsonschema:"Position of the item in the module (1-based)"`
	Indent                    *int     `json:"indent,omitempty" jsonschema:"Indentation level"`
	PageURL                   *string  `json:"page_url,omitempty" jsonschema:"Page URL slug for Page type items"`
	ExternalURL               *string  `json:"external_url,omitempty" jsonschema:"URL for ExternalUrl type items"`
	NewTab                    *bool    `json:"new_tab,omitempty" jsonschema:"Whether the item should open in a new tab"`
	CompletionRequirementType *string  `json:"completion_requirement_type,omitempty" jsonschema:"Completion requirement type (must_view, must_submit, must_contribute, min_score)"`
	MinScore                  *float64 `json:"min_score,omitempty" jsonschema:"Minimum score required (used with the min_score requirement type)"`
}

// UpdateModuleItemInput defines the input schema for update_module_item.
type UpdateModuleItemInput struct {
	CourseID                  string   `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID                  string   `json:"module_id" jsonschema:"The Canvas module ID"`
	ItemID                    string   `json:"item_id" jsonschema:"The Canvas module item ID"`
	Title                     *string  `json:"title,omitempty" jsonschema:"New title for the item"`
	Position                  *int     `json:"position,omitempty" jsonschema:"New position"`
	Indent                    *int     `json:"indent,omitempty" jsonschema:"New indentation level"`
	ExternalURL               *string  `json:"external_url,omitempty" jsonschema:"New URL for ExternalUrl type items"`
	NewTab                    *bool    `json:"new_tab,omitempty" jsonschema:"Whether the item should open in a new tab"`
	CompletionRequirementType *string  `json:"completion_requirement_type,omitempty" jsonschema:"Completion requirement type (must_view, must_submit, must_contribute, min_score)"`
	MinScore                  *float64 `json:"min_score,omitempty" jsonschema:"Minimum score required (used with the min_score requirement type)"`
}

// DeleteModuleItemInput defines the input schema for delete_module_item.
type DeleteModuleItemInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string `json:"module_id" jsonschema:"The Canvas module ID"`
	ItemID   string `json:"item_id" jsonschema:"The Canvas module item ID"`
}

// registerModuleItemTools registers the module item tools.
// Tools: list_module_items, get_module_item, create_module_item,
// update_module_item, delete_module_item
func (s *Server) registerModuleItemTools() error {
	if err := addTool(s, "list_module_items",
		"Get all items in a module.", s.ListModuleItems); err != nil {
		return err
	}
	if err := addTool(s, "get_module_item",
		"Get a specific module item by ID.", s.GetModuleItem); err != nil {
		return err
	}
	if err := addTool(s, "create_module_item",
		"Create a new item in a module.", s.CreateModuleItem); err != nil {
		return err
	}
	if err := addTool(s, "update_module_item",
		"Update a module item.", s.UpdateModuleItem); err != nil {
		return err
	}
	return addTool(s, "delete_module_item",
		"Delete a module item.", s.DeleteModuleItem)
}

// completionRequirement assembles the nested completion requirement
// from the flat tool inputs. The threshold is only attached for the
// min_score requirement type.
func completionRequirement(reqType *string, minScore *float64) *canvas.CompletionRequirement {
	if reqType == nil || *reqType == "" {
		return nil
	}
	cr := &canvas.CompletionRequirement{Type: *reqType}
	if *reqType == canvas.CompletionMinScore {
		cr.MinScore = minScore
	}
	return cr
}

// ListModuleItems handles the list_module_items MCP tool call.
func (s *Server) ListModuleItems(ctx context.Context, req *mcp.CallToolRequest, in ListModuleItemsInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.ListModuleItems(ctx, in.CourseID, in.ModuleID)
	return s.toolResult(result, err)
}

// GetModuleItem handles the get_module_item MCP tool call.
func (s *Server) GetModuleItem(ctx context.Context, req *mcp.CallToolRequest, in GetModuleItemInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetModuleItem(ctx, in.CourseID, in.ModuleID, in.ItemID)
	return s.toolResult(result, err)
}

// CreateModuleItem handles the create_module_item MCP tool call.
func (s *Server) CreateModuleItem(ctx context.Context, req *mcp.CallToolRequest, in CreateModuleItemInput) (*mcp.CallToolResult, any, error) {
	var contentID string
	if in.ContentID != nil {
		contentID = *in.ContentID
	}

	result, err := s.client.CreateModuleItem(ctx, in.CourseID, in.ModuleID, in.Title, in.Type, contentID, canvas.CreateModuleItemOptions{
		Position:    in.Position,
		Indent:      in.Indent,
		PageURL:     in.PageURL,
		ExternalURL: in.ExternalURL,
		NewTab:      in.NewTab,
		Completion:  completionRequirement(in.CompletionRequirementType, in.MinScore),
	})
	return s.toolResult(result, err)
}

// UpdateModuleItem handles the update_module_item MCP tool call.
func (s *Server) UpdateModuleItem(ctx context.Context, req *mcp.CallToolRequest, in UpdateModuleItemInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.UpdateModuleItem(ctx, in.CourseID, in.ModuleID, in.ItemID, canvas.UpdateModuleItemOptions{
		Title:       in.Title,
		Position:    in.Position,
		Indent:      in.Indent,
		ExternalURL: in.ExternalURL,
		NewTab:      in.NewTab,
		Completion:  completionRequirement(in.CompletionRequirementType, in.MinScore),
	})
	return s.toolResult(result, err)
}

// DeleteModuleItem handles the delete_module_item MCP tool call.
func (s *Server) DeleteModuleItem(ctx context.Context, req *mcp.CallToolRequest, in DeleteModuleItemInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.DeleteModuleItem(ctx, in.CourseID, in.ModuleID, in.ItemID)
	return s.toolResult(result, err)
}
