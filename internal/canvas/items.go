package canvas

import (
	"context"
	"fmt"
)

// Module item types with special payload handling. Other types (File,
// Assignment, Discussion, Quiz, ...) are passed through unchanged.
const (
	ItemTypePage        = "Page"
	ItemTypeExternalURL = "ExternalUrl"
)

// Completion requirement types defined by Canvas.
const (
	CompletionMustView       = "must_view"
	CompletionMustSubmit     = "must_submit"
	CompletionMustContribute = "must_contribute"
	CompletionMinScore       = "min_score"
)

// CompletionRequirement is the progress-gating rule attached to a
// module item. MinScore is only meaningful for the min_score type.
type CompletionRequirement struct {
	Type     string
	MinScore *float64
}

func (r *CompletionRequirement) apply(p *params) {
	if r == nil {
		return
	}
	p.set("module_item[completion_requirement][type]", r.Type)
	p.setOptFloat("module_item[completion_requirement][min_score]", r.MinScore)
}

// CreateModuleItemOptions holds the optional parameters for CreateModuleItem.
type CreateModuleItemOptions struct {
	Position    *int
	Indent      *int
	PageURL     *string
	ExternalURL *string
	NewTab      *bool
	Completion  *CompletionRequirement
}

// UpdateModuleItemOptions holds the optional parameters for UpdateModuleItem.
// Unlike create, external_url is not gated on the item type here; the
// item's type is already fixed upstream.
type UpdateModuleItemOptions struct {
	Title       *string
	Position    *int
	Indent      *int
	ExternalURL *string
	NewTab      *bool
	Completion  *CompletionRequirement
}

// ListModuleItems returns all items in a module.
func (c *Client) ListModuleItems(ctx context.Context, courseID, moduleID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/modules/%s/items", courseID, moduleID), nil)
}

// GetModuleItem returns a single module item by ID.
func (c *Client) GetModuleItem(ctx context.Context, courseID, moduleID, itemID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/modules/%s/items/%s", courseID, moduleID, itemID), nil)
}

// CreateModuleItem creates an item in a module.
//
// contentID identifies the underlying resource and is mandatory for
// every type except ExternalUrl, where it has no meaning and is omitted
// from the payload. PageURL is only sent for Page items and ExternalURL
// only for ExternalUrl items; a mismatched URL field is silently
// dropped rather than rejected.
func (c *Client) CreateModuleItem(ctx context.Context, courseID, moduleID, title, itemType, contentID string, opts CreateModuleItemOptions) (any, error) {
	p := newParams()
	p.set("module_item[title]", title)
	p.set("module_item[type]", itemType)

	if itemType != ItemTypeExternalURL {
		p.set("module_item[content_id]", contentID)
	}

	p.setOptInt("module_item[position]", opts.Position)
	p.setOptInt("module_item[indent]", opts.Indent)
	if itemType == ItemTypePage {
		p.setOptString("module_item[page_url]", opts.PageURL)
	}
	if itemType == ItemTypeExternalURL {
		p.setOptString("module_item[external_url]", opts.ExternalURL)
	}
	p.setOptBool("module_item[new_tab]", opts.NewTab)
	opts.Completion.apply(p)

	return c.post(ctx, fmt.Sprintf("courses/%s/modules/%s/items", courseID, moduleID), p.values)
}

// UpdateModuleItem updates a module item.
func (c *Client) UpdateModuleItem(ctx context.Context, courseID, moduleID, itemID string, opts UpdateModuleItemOptions) (any, error) {
	p := newParams()
	p.setOptString("module_item[title]", opts.Title)
	p.setOptInt("module_item[position]", opts.Position)
	p.setOptInt("module_item[indent]", opts.Indent)
	p.setOptString("module_item[external_url]", opts.ExternalURL)
	p.setOptBool("module_item[new_tab]", opts.NewTab)
	opts.Completion.apply(p)

	return c.put(ctx, fmt.Sprintf("courses/%s/modules/%s/items/%s", courseID, moduleID, itemID), p.values)
}

// DeleteModuleItem deletes a module item.
func (c *Client) DeleteModuleItem(ctx context.Context, courseID, moduleID, itemID string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("courses/%s/modules/%s/items/%s", courseID, moduleID, itemID))
}
