package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
blogs:
  - slug: docs
    title: Documentation
    email: docs@example.com
  - slug: team-42
    title: Team 42
    networkId: 2
    private: true
`)

	m, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, m.Blogs, 2)

	assert.Equal(t, "docs", m.Blogs[0].Slug)
	assert.Equal(t, "Documentation", m.Blogs[0].Title)
	assert.Equal(t, "docs@example.com", m.Blogs[0].Email)
	assert.False(t, m.Blogs[0].Private)

	assert.Equal(t, "team-42", m.Blogs[1].Slug)
	assert.Equal(t, int64(2), m.Blogs[1].NetworkID)
	assert.True(t, m.Blogs[1].Private)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty", data: "", wantErr: "no blogs"},
		{name: "no blogs", data: "blogs: []", wantErr: "no blogs"},
		{name: "missing slug", data: "blogs:\n  - title: Docs", wantErr: "slug is required"},
		{name: "missing title", data: "blogs:\n  - slug: docs", wantErr: "title is required"},
		{name: "bad yaml", data: "blogs: [", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
