package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListSectionsInput defines the input schema for list_sections.
type ListSectionsInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
}

// GetSectionInput defines the input schema for get_section.
type GetSectionInput struct {
	SectionID string `json:"section_id" jsonschema:"The Canvas section ID"`
}

// CreateSectionInput defines the input schema for create_section.
type CreateSectionInput struct {
	CourseID     string  `json:"course_id" jsonschema:"The Canvas course ID"`
	SectionName  string  `json:"section_name" jsonschema:"The name of the section"`
	SISSectionID *string `json:"sis_section_id,omitempty" jsonschema:"Optional SIS ID for the section"`
}

// UpdateSectionInput defines the input schema for update_section.
type UpdateSectionInput struct {
	SectionID   string  `json:"section_id" jsonschema:"The Canvas section ID"`
	SectionName *string `json:"section_name,omitempty" jsonschema:"New name for the section"`
}

// DeleteSectionInput defines the input schema for delete_section.
type DeleteSectionInput struct {
	SectionID string `json:"section_id" jsonschema:"The Canvas section ID"`
}

// CrossListSectionInput defines the input schema for cross_list_section.
type CrossListSectionInput struct {
	SectionID   string `json:"section_id" jsonschema:"The Canvas section ID"`
	NewCourseID string `json:"new_course_id" jsonschema:"The destination course ID"`
}

// registerSectionTools registers the section tools.
// Tools: list_sections, get_section, create_section, update_section,
// delete_section, cross_list_section
func (s *Server) registerSectionTools() error {
	if err := addTool(s, "list_sections",
		"List all sections in a course.", s.ListSections); err != nil {
		return err
	}
	if err := addTool(s, "get_section",
		"Get a specific section by ID.", s.GetSection); err != nil {
		return err
	}
	if err := addTool(s, "create_section",
		"Create a new section in a course.", s.CreateSection); err != nil {
		return err
	}
	if err := addTool(s, "update_section",
		"Update a section.", s.UpdateSection); err != nil {
		return err
	}
	if err := addTool(s, "delete_section",
		"Delete a section.", s.DeleteSection); err != nil {
		return err
	}
	return addTool(s, "cross_list_section",
		"Move a section to a different course.", s.CrossListSection)
}

// ListSections handles the list_sections MCP tool call.
func (s *Server) ListSections(ctx context.Context, req *mcp.CallToolRequest, in ListSectionsInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.ListSections(ctx, in.CourseID)
	return s.toolResult(result, err)
}

// GetSection handles the get_section MCP tool call.
func (s *Server) GetSection(ctx context.Context, req *mcp.CallToolRequest, in GetSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetSection(ctx, in.SectionID)
	return s.toolResult(result, err)
}

// CreateSection handles the create_section MCP tool call.
func (s *Server) CreateSection(ctx context.Context, req *mcp.CallToolRequest, in CreateSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.CreateSection(ctx, in.CourseID, in.SectionName, in.SISSectionID)
	return s.toolResult(result, err)
}

// UpdateSection handles the update_section MCP tool call.
func (s *Server) UpdateSection(ctx context.Context, req *mcp.CallToolRequest, in UpdateSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.UpdateSection(ctx, in.SectionID, in.SectionName)
	return s.toolResult(result, err)
}

// DeleteSection handles the delete_section MCP tool call.
func (s *Server) DeleteSection(ctx context.Context, req *mcp.CallToolRequest, in DeleteSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.DeleteSection(ctx, in.SectionID)
	return s.toolResult(result, err)
}

// CrossListSection handles the cross_list_section MCP tool call.
func (s *Server) CrossListSection(ctx context.Context, req *mcp.CallToolRequest, in CrossListSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.CrossListSection(ctx, in.SectionID, in.NewCourseID)
	return s.toolResult(result, err)
}
