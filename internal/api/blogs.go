package api

import (
	"fmt"
	"strconv"
)

// CreateBlog creates a new blog inside a network. The platform owns the
// transactional creation of the blog record, its content tables, and the
// owner's role assignment.
func (c *Client) CreateBlog(networkID int64, req CreateBlogRequest) (*CreateBlogResponse, error) {
	path := fmt.Sprintf("/networks/%d/blogs", networkID)
	var response CreateBlogResponse
	if err := c.Post(path, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetBlog fetches the full detail record for a blog by its numeric ID
func (c *Client) GetBlog(blogID int64) (*BlogDetails, error) {
	path := fmt.Sprintf("/blogs/%d", blogID)
	var details BlogDetails
	if err := c.Get(path, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GetBlogBySlug resolves a blog within a network by its slug.
// Returns an ErrorResponse with status 404 if no blog has that slug.
func (c *Client) GetBlogBySlug(networkID int64, slug string) (*BlogDetails, error) {
	path := fmt.Sprintf("/networks/%d/blogs", networkID)
	opts := RequestOptions{
		Query: map[string]string{
			"slug": slug,
		},
	}

	var response ListBlogsResponse
	if err := c.Get(path, &response, opts); err != nil {
		return nil, err
	}

	if len(response.Blogs) == 0 {
		return nil, &ErrorResponse{
			Message: fmt.Sprintf("blog '%s' not found", slug),
			Status:  404,
		}
	}

	return c.GetBlog(response.Blogs[0].BlogID)
}

// ListBlogs lists the blogs in a network
func (c *Client) ListBlogs(networkID int64) (*ListBlogsResponse, error) {
	path := fmt.Sprintf("/networks/%d/blogs", networkID)
	var response ListBlogsResponse
	if err := c.Get(path, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteBlog deletes a blog. When keepTables is true the platform removes
// the blog record but retains its content tables.
func (c *Client) DeleteBlog(blogID int64, keepTables bool) error {
	path := fmt.Sprintf("/blogs/%d", blogID)
	opts := RequestOptions{
		Query: map[string]string{
			"keepTables": strconv.FormatBool(keepTables),
		},
	}
	var result EmptyResponse
	return c.Delete(path, &result, opts)
}
