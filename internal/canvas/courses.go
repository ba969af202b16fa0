package canvas

import (
	"context"
	"fmt"
)

// CreateCourseOptions holds the optional parameters for CreateCourse.
type CreateCourseOptions struct {
	CourseCode  *string
	SISCourseID *string
}

// ListCourses returns all courses visible to the token's user.
func (c *Client) ListCourses(ctx context.Context) (any, error) {
	return c.get(ctx, "courses", nil)
}

// GetCourse returns a single course by ID.
func (c *Client) GetCourse(ctx context.Context, courseID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s", courseID), nil)
}

// CreateCourse creates a course under the given account.
func (c *Client) CreateCourse(ctx context.Context, accountID, name string, opts CreateCourseOptions) (any, error) {
	p := newParams()
	p.set("course[name]", name)
	p.setOptString("course[course_code]", opts.CourseCode)
	p.setOptString("course[sis_course_id]", opts.SISCourseID)

	return c.post(ctx, fmt.Sprintf("accounts/%s/courses", accountID), p.values)
}
