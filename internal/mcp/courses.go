package mcp

import (
	"context"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCoursesInput defines the input schema for get_courses.
type GetCoursesInput struct{}

// GetCourseInput defines the input schema for get_course.
type GetCourseInput struct {
	CourseID string `json:"course_id" jsonschema:"The Canvas course ID"`
}

// CreateCourseInput defines the input schema for create_course.
type CreateCourseInput struct {
	AccountID   string  `json:"account_id" jsonschema:"The Canvas account ID"`
	Name        string  `json:"name" jsonschema:"The name of the course"`
	CourseCode  *string `json:"course_code,omitempty" jsonschema:"Optional course code"`
	SISCourseID *string `json:"sis_course_id,omitempty" jsonschema:"Optional SIS ID for the course"`
}

// registerCourseTools registers the course tools.
// Tools: get_courses, get_course, create_course
func (s *Server) registerCourseTools() error {
	if err := addTool(s, "get_courses",
		"Get all available courses.", s.GetCourses); err != nil {
		return err
	}
	if err := addTool(s, "get_course",
		"Get a specific course by ID.", s.GetCourse); err != nil {
		return err
	}
	return addTool(s, "create_course",
		"Create a new course under an account.", s.CreateCourse)
}

// GetCourses handles the get_courses MCP tool call.
func (s *Server) GetCourses(ctx context.Context, req *mcp.CallToolRequest, in GetCoursesInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.ListCourses(ctx)
	return s.toolResult(result, err)
}

// GetCourse handles the get_course MCP tool call.
func (s *Server) GetCourse(ctx context.Context, req *mcp.CallToolRequest, in GetCourseInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.GetCourse(ctx, in.CourseID)
	return s.toolResult(result, err)
}

// CreateCourse handles the create_course MCP tool call.
func (s *Server) CreateCourse(ctx context.Context, req *mcp.CallToolRequest, in CreateCourseInput) (*mcp.CallToolResult, any, error) {
	result, err := s.client.CreateCourse(ctx, in.AccountID, in.Name, canvas.CreateCourseOptions{
		CourseCode:  in.CourseCode,
		SISCourseID: in.SISCourseID,
	})
	return s.toolResult(result, err)
}
