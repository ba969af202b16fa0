package canvas

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// PageOptions holds the optional parameters for CreatePage.
type PageOptions struct {
	EditingRoles *string
	Published    *bool
	FrontPage    *bool
}

func (o PageOptions) apply(p *params) {
	p.setOptString("wiki_page[editing_roles]", o.EditingRoles)
	p.setOptBool("wiki_page[published]", o.Published)
	p.setOptBool("wiki_page[front_page]", o.FrontPage)
}

// UpdatePageOptions holds the optional parameters for UpdatePage.
type UpdatePageOptions struct {
	Title        *string
	Body         *string
	EditingRoles *string
	Published    *bool
	FrontPage    *bool
}

// PageItemOptions holds the optional module-item parameters used by the
// page/module composites.
type PageItemOptions struct {
	Title    *string
	Position *int
	Indent   *int
	NewTab   *bool
}

// ListPages returns all pages in a course, optionally filtered by a
// search term matched against page titles.
func (c *Client) ListPages(ctx context.Context, courseID string, searchTerm *string) (any, error) {
	p := newParams()
	p.setOptString("search_term", searchTerm)

	return c.get(ctx, fmt.Sprintf("courses/%s/pages", courseID), p.values)
}

// GetPage returns a single page by its URL slug.
func (c *Client) GetPage(ctx context.Context, courseID, pageURL string) (any, error) {
	return c.get(ctx, fmt.Sprintf("courses/%s/pages/%s", courseID, pageURL), nil)
}

// CreatePage creates a wiki page in a course. body is HTML.
func (c *Client) CreatePage(ctx context.Context, courseID, title, body string, opts PageOptions) (any, error) {
	p := newParams()
	p.set("wiki_page[title]", title)
	p.set("wiki_page[body]", body)
	opts.apply(p)

	return c.post(ctx, fmt.Sprintf("courses/%s/pages", courseID), p.values)
}

// UpdatePage updates a wiki page.
func (c *Client) UpdatePage(ctx context.Context, courseID, pageURL string, opts UpdatePageOptions) (any, error) {
	p := newParams()
	p.setOptString("wiki_page[title]", opts.Title)
	p.setOptString("wiki_page[body]", opts.Body)
	p.setOptString("wiki_page[editing_roles]", opts.EditingRoles)
	p.setOptBool("wiki_page[published]", opts.Published)
	p.setOptBool("wiki_page[front_page]", opts.FrontPage)

	return c.put(ctx, fmt.Sprintf("courses/%s/pages/%s", courseID, pageURL), p.values)
}

// DeletePage deletes a wiki page.
func (c *Client) DeletePage(ctx context.Context, courseID, pageURL string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("courses/%s/pages/%s", courseID, pageURL))
}

// AddPageToModule adds an existing page to a module as a Page item.
//
// Two sequential requests with no atomicity guarantee: the page is
// fetched to resolve its numeric ID (and title, when none is supplied),
// then the module item is created. A failure in the second request is
// surfaced as-is; nothing is rolled back.
func (c *Client) AddPageToModule(ctx context.Context, courseID, moduleID, pageURL string, opts PageItemOptions) (any, error) {
	page, err := c.GetPage(ctx, courseID, pageURL)
	if err != nil {
		return nil, err
	}
	fields, _ := page.(map[string]any)

	title := stringField(fields, "title")
	if opts.Title != nil {
		title = *opts.Title
	}

	return c.CreateModuleItem(ctx, courseID, moduleID, title, ItemTypePage, scalarField(fields, "id"), CreateModuleItemOptions{
		Position: opts.Position,
		Indent:   opts.Indent,
		PageURL:  &pageURL,
		NewTab:   opts.NewTab,
	})
}

// CreatePageAndAddToModule creates a page and links it into a module in
// one logical action. The module item's page slug is derived from the
// trailing path segment of the created page's returned URL.
//
// Same two-request composition as AddPageToModule; if the module-item
// step fails the created page is left in place with no module
// reference, and no cleanup is attempted.
func (c *Client) CreatePageAndAddToModule(ctx context.Context, courseID, moduleID, title, body string, pageOpts PageOptions, itemOpts PageItemOptions) (any, error) {
	page, err := c.CreatePage(ctx, courseID, title, body, pageOpts)
	if err != nil {
		return nil, err
	}
	fields, _ := page.(map[string]any)

	pageURL := stringField(fields, "url")
	if i := strings.LastIndex(pageURL, "/"); i >= 0 {
		pageURL = pageURL[i+1:]
	}

	return c.CreateModuleItem(ctx, courseID, moduleID, title, ItemTypePage, scalarField(fields, "id"), CreateModuleItemOptions{
		Position: itemOpts.Position,
		Indent:   itemOpts.Indent,
		PageURL:  &pageURL,
		NewTab:   itemOpts.NewTab,
	})
}

// stringField reads a string field from a decoded JSON object,
// returning "" when absent or of another type.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// scalarField reads a field that may arrive as a JSON number or string
// (Canvas IDs are numeric) and renders it as a string.
func scalarField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
