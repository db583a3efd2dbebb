package address

import (
	"testing"

	"github.com/loomcms/cli/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "myblog", NormalizeSlug("  MyBlog "))
	assert.Equal(t, "my-blog", NormalizeSlug("My-Blog"))
	assert.Equal(t, "", NormalizeSlug("   "))
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr string
	}{
		{name: "simple", slug: "myblog"},
		{name: "with digits and hyphens", slug: "team-42"},
		{name: "single character", slug: "a"},
		{name: "empty", slug: "", wantErr: "slug is required"},
		{name: "uppercase", slug: "MyBlog", wantErr: "invalid character"},
		{name: "underscore", slug: "my_blog", wantErr: "invalid character"},
		{name: "dot", slug: "my.blog", wantErr: "invalid character"},
		{name: "space", slug: "my blog", wantErr: "invalid character"},
		{name: "leading hyphen", slug: "-blog", wantErr: "must not start or end with a hyphen"},
		{name: "trailing hyphen", slug: "blog-", wantErr: "must not start or end with a hyphen"},
		{name: "reserved www", slug: "www", wantErr: "reserved"},
		{name: "reserved admin", slug: "admin", wantErr: "reserved"},
		{name: "reserved api", slug: "api", wantErr: "reserved"},
		{name: "too long", slug: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateSlug_MaxLength(t *testing.T) {
	slug := ""
	for i := 0; i < maxSlugLen; i++ {
		slug += "a"
	}
	assert.NoError(t, ValidateSlug(slug))
	assert.Error(t, ValidateSlug(slug+"a"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("owner@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@example.co.uk"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Owner <owner@example.com>"))
	assert.Error(t, ValidateEmail("owner@"))
}

func TestDerive_Subdomain(t *testing.T) {
	network := &api.Network{
		Domain:     "example.com",
		Path:       "/",
		Subdomains: true,
	}

	domain, path := Derive(network, "myblog")
	assert.Equal(t, "myblog.example.com", domain)
	assert.Equal(t, "/", path)
}

func TestDerive_Subdirectory(t *testing.T) {
	network := &api.Network{
		Domain:     "example.com",
		Path:       "/",
		Subdomains: false,
	}

	domain, path := Derive(network, "myblog")
	assert.Equal(t, "example.com", domain)
	assert.Equal(t, "/myblog/", path)
}

func TestDerive_NestedNetworkPath(t *testing.T) {
	network := &api.Network{
		Domain:     "example.com",
		Path:       "/sites/",
		Subdomains: false,
	}

	domain, path := Derive(network, "myblog")
	assert.Equal(t, "example.com", domain)
	assert.Equal(t, "/sites/myblog/", path)
}

func TestDerive_SubdomainIgnoresSlugInPath(t *testing.T) {
	network := &api.Network{
		Domain:     "example.com",
		Path:       "/sites",
		Subdomains: true,
	}

	domain, path := Derive(network, "myblog")
	assert.Equal(t, "myblog.example.com", domain)
	assert.Equal(t, "/sites/", path)
}

func TestDerive_NormalizesMissingSlashes(t *testing.T) {
	network := &api.Network{
		Domain:     "example.com",
		Path:       "", // platform should never send this, but don't produce a broken path
		Subdomains: false,
	}

	_, path := Derive(network, "myblog")
	assert.Equal(t, "/myblog/", path)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://myblog.example.com/", URL("myblog.example.com", "/"))
	assert.Equal(t, "https://example.com/myblog/", URL("example.com", "/myblog/"))
	assert.Equal(t, "https://example.com/myblog/", URL("example.com", "myblog"))
}
