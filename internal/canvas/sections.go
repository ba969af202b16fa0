package canvas

import (
	"context"
	"fmt"
)

// ListSections returns all sections in a course.
func (c *Client) ListSections(ctx context.Context, courseID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/sections", courseID), nil)
}

// GetSection returns a single section by ID.
func (c *Client) GetSection(ctx context.Context, sectionID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("sections/%s", sectionID), nil)
}

// CreateSection creates a section in a course. sisSectionID is optional.
func (c *Client) CreateSection(ctx context.Context, courseID, name string, sisSectionID *string) (any, error) {
	p := newParams()
	p.set("course_section[name]", name)
	p.setOptString("course_section[sis_section_id]", sisSectionID)

	return c.post(ctx, fmt.Sprintf("courses/%s/sections", courseID), p.values)
}

// UpdateSection renames a section. A nil name sends an empty update,
// which Canvas treats as a no-op.
func (c *Client) UpdateSection(ctx context.Context, sectionID string, name *string) (any, error) {
	p := newParams()
	p.setOptString("course_section[name]", name)

	return c.put(ctx, fmt.Sprintf("sections/%s", sectionID), p.values)
}

// DeleteSection deletes a section.
func (c *Client) DeleteSection(ctx context.Context, sectionID string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("sections/%s", sectionID))
}

// CrossListSection moves a section into a different course.
func (c *Client) CrossListSection(ctx context.Context, sectionID, newCourseID string) (any, error) {
	return c.post(ctx, fmt.Sprintf("sections/%s/crosslist/%s", sectionID, newCourseID), nil)
}
