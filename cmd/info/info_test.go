package info

import (
	"testing"

	"github.com/loomcms/cli/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlog() *api.BlogDetails {
	return &api.BlogDetails{
		Blog: api.Blog{
			BlogID:    7,
			NetworkID: 1,
			Slug:      "docs",
			Domain:    "docs.example.com",
			Path:      "/",
			URL:       "https://docs.example.com/",
			Title:     "Documentation",
			Public:    true,
		},
		OwnerEmail: "docs@example.com",
		Language:   "en",
		Created:    "2026-01-10T12:00:00Z",
		Updated:    "2026-02-01T09:30:00Z",
	}
}

func TestFieldValue(t *testing.T) {
	blog := testBlog()

	tests := []struct {
		field string
		want  string
	}{
		{"id", "7"},
		{"network_id", "1"},
		{"slug", "docs"},
		{"title", "Documentation"},
		{"domain", "docs.example.com"},
		{"path", "/"},
		{"url", "https://docs.example.com/"},
		{"owner_email", "docs@example.com"},
		{"public", "true"},
		{"archived", "false"},
		{"deleted", "false"},
		{"language", "en"},
		{"created", "2026-01-10T12:00:00Z"},
		{"updated", "2026-02-01T09:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := fieldValue(blog, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldValue_CaseAndWhitespace(t *testing.T) {
	blog := testBlog()

	got, err := fieldValue(blog, " URL ")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/", got)
}

func TestFieldValue_Unknown(t *testing.T) {
	_, err := fieldValue(testBlog(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field 'nope'")
}

func TestSelectFields_CanonicalOrder(t *testing.T) {
	selected, err := selectFields([]string{"url", "id", "slug"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "slug", "url"}, selected)
}

func TestSelectFields_Unknown(t *testing.T) {
	_, err := selectFields([]string{"id", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field 'bogus'")
}

func TestBlogFieldOrder_AllResolvable(t *testing.T) {
	blog := testBlog()
	for _, name := range blogFieldOrder {
		_, err := fieldValue(blog, name)
		assert.NoError(t, err, "field %s", name)
	}
}
