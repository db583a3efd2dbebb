package utils

import (
	"strconv"

	"github.com/loomcms/cli/internal/address"
	"github.com/loomcms/cli/internal/api"
)

// ResolveBlog resolves a blog from a command argument that is either a
// numeric blog ID or a slug within the given network.
func ResolveBlog(client *api.Client, networkID int64, arg string) (*api.BlogDetails, error) {
	if blogID, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return client.GetBlog(blogID)
	}

	slug := address.NormalizeSlug(arg)
	if err := address.ValidateSlug(slug); err != nil {
		return nil, err
	}

	return client.GetBlogBySlug(networkID, slug)
}
