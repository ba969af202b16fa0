package mcp

import (
	"context"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListPagesInput defines the input schema for list_pages.
type ListPagesInput struct {
	CourseID   string  `json:"course_id" jsonschema:"The Canvas course ID"`
	SearchTerm *string `json:"search_term,omitempty" jsonschema:"Optional term to search for in page titles"`
}

// GetPageInput defines the input schema for get_page.
type GetPageInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	PageURL  string `json:"page_url" jsonschema:"The Canvas page URL slug"`
}

// CreatePageInput defines the input schema for create_page.
type CreatePageInput struct {
	CourseID     string  `json:"course_id" jsonschema:"The Canvas course ID"`
	Title        string  `json:"title" jsonschema:"The title of the page"`
	Body         string  `json:"body" jsonschema:"The content of the page in HTML format"`
	EditingRoles *string `json:"editing_roles,omitempty" jsonschema:"Comma-separated roles allowed to edit (e.g. teachers,students,public)"`
	Published    *bool   `json:"published,omitempty" jsonschema:"Whether the page is published"`
	FrontPage    *bool   `json:"front_page,omitempty" jsonschema:"Whether this page is the front page"`
}

// UpdatePageInput defines the input schema for update_page.
type UpdatePageInput struct {
	CourseID     string  `json:"course_id" jsonschema:"The Canvas course ID"`
	PageURL      string  `json:"page_url" jsonschema:"The Canvas page URL slug"`
	Title        *string `json:"title,omitempty" jsonschema:"New title for the page"`
	Body         *string `json:"body,omitempty" jsonschema:"New content for the page in HTML format"`
	EditingRoles *string `json:"editing_roles,omitempty" jsonschema:"Comma-separated roles allowed to edit"`
	Published    *bool   `json:"published,omitempty" jsonschema:"Whether the page is published"`
	FrontPage    *bool   `json:"front_page,omitempty" jsonschema:"Whether this page is the front page"`
}

// DeletePageInput defines the input schema for delete_page.
type DeletePageInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
	PageURL  string `json:"page_url" jsonschema:"The Canvas page URL slug"`
}

// AddPageToModuleInput defines the input schema for add_page_to_module.
type AddPageToModuleInput struct {
	CourseID string  `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID string  `json:"module_id" jsonschema:"The Canvas module ID"`
	PageURL  string  `json:"page_url" jsonschema:"The Canvas page URL slug"`
	Title    *string `json:"title,omitempty" jsonschema:"Title for the module item (defaults to the page title)"`
	Position *int    `json:"position,omitempty" jsonschema:"Position in the module (1-based)"`
	Indent   *int    `json:"indent,omitempty" jsonschema:"Indentation level"`
	NewTab   *bool   `json:"new_tab,omitempty" jsonschema:"Whether the page should open in a new tab"`
}

// CreatePageAndAddToModuleInput defines the input schema for
// create_page_and_add_to_module.
type CreatePageAndAddToModuleInput struct {
	CourseID           string  `json:"course_id" jsonschema:"The Canvas course ID"`
	ModuleID           string  `json:"module_id" jsonschema:"The Canvas module ID"`
	Title              string  `json:"title" jsonschema:"The title of the page"`
	Body               string  `json:"body" jsonschema:"The content of the page in HTML format"`
	EditingRoles       *string `json:"editing_roles,omitempty" jsonschema:"Comma-separated roles allowed to edit"`
	Published          *bool   `json:"published,omitempty" jsonschema:"Whether the page is published (defaults to true)"`
	FrontPage          *bool   `json:"front_page,omitempty" jsonschema:"Whether this page is the front page"`
	ModuleItemPosition *int    `json:"module_item_position,omitempty" jsonschema:"Position of the module item (1-based)"`
	ModuleItemIndent   *int    `json:"module_item_indent,omitempty" jsonschema:"Indentation level of the module item"`
	NewTab             *bool   `json:"new_tab,omitempty" jsonschema:"Whether the page should open in a new tab"`
}

// registerPageTools registers the page tools.
// Tools: list_pages, get_page, create_page, update_page, delete_page,
// add_page_to_module, create_page_and_add_to_module
func (s *Server) registerPageTools() error {
	if err := addTool(s, "list_pages",
		"List all pages in a course.", s.ListPages); err != nil {
		return err
	}
	if err := addTool(s, "get_page",
		"Get a specific page by URL slug.", s.GetPage); err != nil {
		return err
	}
	if err := addTool(s, "create_page",
		"Create a new page in a course.", s.CreatePage); err != nil {
		return err
	}
	if err := addTool(s, "update_page",
		"Update a page in a course.", s.UpdatePage); err != nil {
		return err
	}
	if err := addTool(s, "delete_page",
		"Delete a page from a course.", s.DeletePage); err != nil {
		return err
	}
	if err := addTool(s, "add_page_to_module",
		"Add an existing page to a module.", s.AddPageToModule); err != nil {
		return err
	}
	return addTool(s, "create_page_and_add_to_module",
		"Create a new page and add it to a module in one operation.", s.CreatePageAndAddToModule)
}

// ListPages handles the list_pages MCP tool call.
func (s *Server) ListPages(ctx context.Context, req *mcp.CallToolRequest, in ListPagesInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.ListPages(ctx, in.CourseID, in.SearchTerm)
	return s.toolResult(result, err)
}

// GetPage handles the get_page MCP tool call.
func (s *Server) GetPage(ctx context.Context, req *mcp.CallToolRequest, in GetPageInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetPage(ctx, in.CourseID, in.PageURL)
	return s.toolResult(result, err)
}

// CreatePage handles the create_page MCP tool call.
func (s *Server) CreatePage(ctx context.Context, req *mcp.CallToolRequest, in CreatePageInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.CreatePage(ctx, in.CourseID, in.Title, in.Body, canvas.PageOptions{
		EditingRoles: in.EditingRoles,
		Published:    in.Published,
		FrontPage:    in.FrontPage,
	})
	return s.toolResult(result, err)
}

// UpdatePage handles the update_page MCP tool call.
func (s *Server) UpdatePage(ctx context.Context, req *mcp.CallToolRequest, in UpdatePageInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.UpdatePage(ctx, in.CourseID, in.PageURL, canvas.UpdatePageOptions{
		Title:        in.Title,
		Body:         in.Body,
		EditingRoles: in.EditingRoles,
		Published:    in.Published,
		FrontPage:    in.FrontPage,
	})
	return s.toolResult(result, err)
}

// DeletePage handles the delete_page MCP tool call.
func (s *Server) DeletePage(ctx context.Context, req *mcp.CallToolRequest, in DeletePageInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.DeletePage(ctx, in.CourseID, in.PageURL)
	return s.toolResult(result, err)
}

// AddPageToModule handles the add_page_to_module MCP tool call.
func (s *Server) AddPageToModule(ctx context.Context, req *mcp.CallToolRequest, in AddPageToModuleInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.AddPageToModule(ctx, in.CourseID, in.ModuleID, in.PageURL, canvas.PageItemOptions{
		Title:    in.Title,
		Position: in.Position,
		Indent:   in.Indent,
		NewTab:   in.NewTab,
	})
	return s.toolResult(result, err)
}

// CreatePageAndAddToModule handles the create_page_and_add_to_module
// MCP tool call. Pages created through this tool are published unless
// the caller says otherwise.
func (s *Server) CreatePageAndAddToModule(ctx context.Context, req *mcp.CallToolRequest, in CreatePageAndAddToModuleInput) (*mcp.CallToolResult, any, error) {
	published := in.Published
	if published == nil {
		t := true
		published = &t
	}

	result, err := s.client.CreatePageAndAddToModule(ctx, in.CourseID, in.ModuleID, in.Title, in.Body,
		canvas.PageOptions{
			EditingRoles: in.EditingRoles,
			Published:    published,
			FrontPage:    in.FrontPage,
		},
		canvas.PageItemOptions{
			Position: in.ModuleItemPosition,
			Indent:   in.ModuleItemIndent,
			NewTab:   in.NewTab,
		})
	return s.toolResult(result, err)
}
