package canvas

import (
	"context"
	"fmt"
)

// ModuleOptions holds the optional parameters shared by CreateModule
// and UpdateModule.
//
// PrerequisiteModuleIDs distinguishes nil (not provided) from an empty
// non-nil slice (explicitly clear the prerequisites): on update the
// latter emits the module[prerequisite_module_ids][] sentinel Canvas
// expects, while on create an empty list is simply omitted.
type ModuleOptions struct {
	Position                  *int
	UnlockAt                  *string
	RequireSequentialProgress *bool
	PrerequisiteModuleIDs     []string
	PublishFinalGrade         *bool
}

func (o ModuleOptions) apply(p *params, clearable bool) {
	p.setOptInt("module[position]", o.Position)
	p.setOptString("module[unlock_at]", o.UnlockAt)
	p.setOptBool("module[require_sequential_progress]", o.RequireSequentialProgress)
	switch {
	case len(o.PrerequisiteModuleIDs) > 0:
		p.setIndexed("module[prerequisite_module_ids]", o.PrerequisiteModuleIDs)
	case clearable && o.PrerequisiteModuleIDs != nil:
		p.set("module[prerequisite_module_ids][]", "")
	}
	p.setOptBool("module[publish_final_grade]", o.PublishFinalGrade)
}

// ListModules returns all modules in a course.
func (c *Client) ListModules(ctx context.Context, courseID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/modules", courseID), nil)
}

// GetModule returns a single module by ID.
func (c *Client) GetModule(ctx context.Context, courseID, moduleID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/modules/%s", courseID, moduleID), nil)
}

// CreateModule creates a module in a course.
func (c *Client) CreateModule(ctx context.Context, courseID, name string, opts ModuleOptions) (any, error) {
	p := newParams()
	p.set("module[name]", name)
	opts.apply(p, false)

	return c.post(ctx, fmt.Sprintf("courses/%s/modules", courseID), p.values)
}

// UpdateModule updates a module. name is optional; see ModuleOptions for
// the prerequisite-clearing sentinel.
func (c *Client) UpdateModule(ctx context.Context, courseID, moduleID string, name *string, opts ModuleOptions) (any, error) {
	p := newParams()
	p.setOptString("module[name]", name)
	opts.apply(p, true)

	return c.put(ctx, fmt.Sprintf("courses/%s/modules/%s", courseID, moduleID), p.values)
}

// DeleteModule deletes a module from a course.
func (c *Client) DeleteModule(ctx context.Context, courseID, moduleID string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("courses/%s/modules/%s", courseID, moduleID))
}
