package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loomcms/cli/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:   server.URL,
		AgentName: "loom-cli",
	})
	require.NoError(t, err)

	return client
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	raw, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(api.APIResponse{
		Data:    raw,
		Success: true,
	})
}

func TestResolveBlog_ByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blogs/42", r.URL.Path)
		writeEnvelope(w, api.BlogDetails{
			Blog: api.Blog{BlogID: 42, Slug: "docs"},
		})
	})

	blog, err := ResolveBlog(client, 1, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), blog.BlogID)
}

func TestResolveBlog_BySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/networks/1/blogs":
			assert.Equal(t, "docs", r.URL.Query().Get("slug"))
			writeEnvelope(w, api.ListBlogsResponse{
				Blogs: []api.Blog{{BlogID: 42, Slug: "docs"}},
			})
		case "/blogs/42":
			writeEnvelope(w, api.BlogDetails{
				Blog: api.Blog{BlogID: 42, Slug: "docs"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	// Slug arguments are normalized before lookup
	blog, err := ResolveBlog(client, 1, " Docs ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), blog.BlogID)
}

func TestResolveBlog_InvalidSlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected for an invalid slug")
	})

	_, err := ResolveBlog(client, 1, "not valid!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
}
