package canvas

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSection_MinimalPayload(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.CreateSection(context.Background(), "123", "Test Section", nil)
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/courses/123/sections", req.Path)
	assert.Equal(t, "Test Section", req.Form.Get("course_section[name]"))
	assert.Len(t, req.Form, 1, "payload must contain no other keys")
}

func TestCreateSection_WithSISID(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.CreateSection(context.Background(), "123", "Test Section", ptr("SIS-42"))
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "SIS-42", (*reqs)[0].Form.Get("course_section[sis_section_id]"))
}

func TestUpdateSection(t *testing.T) {
	t.Run("with name", func(t *testing.T) {
		c, reqs := testClient(t, nil)

		_, err := c.UpdateSection(context.Background(), "55", ptr("Renamed"))
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		req := (*reqs)[0]
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/sections/55", req.Path)
		assert.Equal(t, "Renamed", req.Form.Get("course_section[name]"))
	})

	t.Run("nil name sends empty payload", func(t *testing.T) {
		c, reqs := testClient(t, nil)

		_, err := c.UpdateSection(context.Background(), "55", nil)
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		assert.Empty(t, (*reqs)[0].Form)
	})

	t.Run("explicit empty name is sent", func(t *testing.T) {
		c, reqs := testClient(t, nil)

		_, err := c.UpdateSection(context.Background(), "55", ptr(""))
		require.NoError(t, err)

		require.Len(t, *reqs, 1)
		form := (*reqs)[0].Form
		_, present := form["course_section[name]"]
		assert.True(t, present, "explicitly set empty string must appear in the payload")
	})
}

func TestListSections(t *testing.T) {
	c, reqs := testClient(t, jsonResponse(http.StatusOK, `[{"id": 1}]`))

	result, err := c.ListSections(context.Background(), "123")
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/courses/123/sections", req.Path)
	assert.Empty(t, req.Form, "read operations must not carry a body")
	assert.IsType(t, []any{}, result)
}

func TestDeleteSection(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.DeleteSection(context.Background(), "55")
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodDelete, (*reqs)[0].Method)
	assert.Equal(t, "/sections/55", (*reqs)[0].Path)
}

func TestCrossListSection(t *testing.T) {
	c, reqs := testClient(t, nil)

	_, err := c.CrossListSection(context.Background(), "55", "999")
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodPost, (*reqs)[0].Method)
	assert.Equal(t, "/sections/55/crosslist/999", (*reqs)[0].Path)
	assert.Empty(t, (*reqs)[0].Form)
}
