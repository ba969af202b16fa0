package canvas

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPages_SearchTerm(t *testing.T) {
	t.Run("omitted when nil", func(t *testing.T) {
		c, reqs := testClient(t, jsonResponse(http.StatusOK, `[]`))

		_, err := c.ListPages(context.Background(), "1", nil)
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		_, present := (*reqs)[0].Query["search_term"]
		assert.False(t, present)
	})

	t.Run("included when set", func(t *testing.T) {
		c, reqs := testClient(t, jsonResponse(http.StatusOK, `[]`))

		_, err := c.ListPages(context.Background(), "1", ptr("syllabus"))
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		assert.Equal(t, "syllabus", (*reqs)[0].Query.Get("search_term"))
	})
}

func TestCreatePage_Payload(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.CreatePage(context.Background(), "1", "Intro", "<p>hello</p>", PageOptions{
		Published: ptr(false),
	})
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	form := (*reqs)[0].Form
	assert.Equal(t, "Intro", form.Get("wiki_page[title]"))
	assert.Equal(t, "<p>hello</p>", form.Get("wiki_page[body]"))
	assert.Equal(t, "false", form.Get("wiki_page[published]"),
		"explicitly set false must appear in the payload")
	_, present := form["wiki_page[editing_roles]"]
	assert.False(t, present)
}

func TestUpdatePage(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.UpdatePage(context.Background(), "1", "intro", UpdatePageOptions{
		Body:      ptr("<p>updated</p>"),
		FrontPage: ptr(true),
	})
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/courses/1/pages/intro", req.Path)
	assert.Equal(t, "<p>updated</p>", req.Form.Get("wiki_page[body]"))
	assert.Equal(t, "true", req.Form.Get("wiki_page[front_page]"))
	_, present := req.Form["wiki_page[title]"]
	assert.False(t, present)
}

// pageModuleHandler serves a page fetch/create plus a module item
// create, the two-step sequence both composites issue.
func pageModuleHandler(pageBody string, itemStatus int, itemBody string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/courses/1/modules/20/items" {
			w.WriteHeader(itemStatus)
			w.Write([]byte(itemBody))
			return
		}
		w.Write([]byte(pageBody))
	}
}

func TestAddPageToModule(t *testing.T) {
	t.Run("resolves page and defaults title", func(t *testing.T) {
		c, reqs := testClient(t, pageModuleHandler(
			`{"id": 42, "title": "Intro", "url": "intro"}`,
			http.StatusOK, `{"id": 301}`,
		))

		result, err := c.AddPageToModule(context.Background(), "1", "20", "intro", PageItemOptions{})
		require.NoError(t, err)

		require.Len(t, *reqs, 2, "composite issues exactly two requests")

		fetch := (*reqs)[0]
		assert.Equal(t, http.MethodGet, fetch.Method)
		assert.Equal(t, "/courses/1/pages/intro", fetch.Path)

		create := (*reqs)[1]
		assert.Equal(t, http.MethodPost, create.Method)
		assert.Equal(t, "/courses/1/modules/20/items", create.Path)
		assert.Equal(t, "Intro", create.Form.Get("module_item[title]"), "title defaults to the page title")
		assert.Equal(t, "Page", create.Form.Get("module_item[type]"))
		assert.Equal(t, "42", create.Form.Get("module_item[content_id]"), "numeric page ID is rendered without decimals")
		assert.Equal(t, "intro", create.Form.Get("module_item[page_url]"))

		item, ok := result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(301), item["id"])
	})

	t.Run("explicit title wins", func(t *testing.T) {
		c, reqs := testClient(t, pageModuleHandler(
			`{"id": 42, "title": "Intro", "url": "intro"}`,
			http.StatusOK, `{}`,
		))

		_, err := c.AddPageToModule(context.Background(), "1", "20", "intro", PageItemOptions{
			Title: ptr("Week 1: Intro"),
		})
		require.NoError(t, err)

		require.Len(t, *reqs, 2)
		assert.Equal(t, "Week 1: Intro", (*reqs)[1].Form.Get("module_item[title]"))
	})

	t.Run("first step failure aborts immediately", func(t *testing.T) {
		c, reqs := testClient(t, jsonResponse(http.StatusNotFound, `{"message": "page not found"}`))

		_, err := c.AddPageToModule(context.Background(), "1", "20", "missing", PageItemOptions{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Len(t, *reqs, 1, "module item creation must not be attempted")
	})

	t.Run("second step failure is surfaced with no rollback", func(t *testing.T) {
		c, reqs := testClient(t, pageModuleHandler(
			`{"id": 42, "title": "Intro", "url": "intro"}`,
			http.StatusBadRequest, `{"errors": ["invalid position"]}`,
		))

		_, err := c.AddPageToModule(context.Background(), "1", "20", "intro", PageItemOptions{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "invalid position", apiErr.Message)
		assert.Len(t, *reqs, 2, "no compensating request is issued")
	})
}

func TestCreatePageAndAddToModule(t *testing.T) {
	t.Run("derives slug from trailing URL segment", func(t *testing.T) {
		c, reqs := testClient(t, pageModuleHandler(
			`{"id": 43, "title": "Intro", "url": "https://canvas.example.com/courses/1/pages/intro"}`,
			http.StatusOK, `{"id": 302}`,
		))

		_, err := c.CreatePageAndAddToModule(context.Background(), "1", "20", "Intro", "<p>hi</p>",
			PageOptions{Published: ptr(true)}, PageItemOptions{Position: ptr(2)})
		require.NoError(t, err)

		require.Len(t, *reqs, 2, "composite issues exactly two requests")

		create := (*reqs)[0]
		assert.Equal(t, http.MethodPost, create.Method)
		assert.Equal(t, "/courses/1/pages", create.Path)
		assert.Equal(t, "Intro", create.Form.Get("wiki_page[title]"))
		assert.Equal(t, "true", create.Form.Get("wiki_page[published]"))

		item := (*reqs)[1]
		assert.Equal(t, "/courses/1/modules/20/items", item.Path)
		assert.Equal(t, "intro", item.Form.Get("module_item[page_url]"), "slug is the final path segment only")
		assert.Equal(t, "43", item.Form.Get("module_item[content_id]"))
		assert.Equal(t, "Intro", item.Form.Get("module_item[title]"))
		assert.Equal(t, "2", item.Form.Get("module_item[position]"))
	})

	t.Run("page creation failure skips the module item step", func(t *testing.T) {
		c, reqs := testClient(t, jsonResponse(http.StatusUnauthorized, `{"errors": {"message": "Unauthorized"}}`))

		_, err := c.CreatePageAndAddToModule(context.Background(), "1", "20", "Intro", "<p>hi</p>",
			PageOptions{}, PageItemOptions{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Unauthorized", apiErr.Message)
		assert.Len(t, *reqs, 1)
	})

	t.Run("orphaned page is left in place on second step failure", func(t *testing.T) {
		c, reqs := testClient(t, pageModuleHandler(
			`{"id": 43, "title": "Intro", "url": "https://canvas.example.com/courses/1/pages/intro"}`,
			http.StatusForbidden, `{"message": "module locked"}`,
		))

		_, err := c.CreatePageAndAddToModule(context.Background(), "1", "20", "Intro", "<p>hi</p>",
			PageOptions{}, PageItemOptions{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Len(t, *reqs, 2, "no cleanup request follows the failure")
		for _, req := range *reqs {
			assert.NotEqual(t, http.MethodDelete, req.Method)
		}
	})
}

func TestDeletePage(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.DeletePage(context.Background(), "1", "intro")
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodDelete, (*reqs)[0].Method)
	assert.Equal(t, "/courses/1/pages/intro", (*reqs)[0].Path)
}
