package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Client represents the API client configuration
type Client struct {
	BaseURL           string
	AgentName         string
	Token             string
	SessionCookieName string
	CSRFToken         string
	HTTPClient        *HTTPClient
}

// HTTPClient wraps the standard http.Client with additional configuration
type HTTPClient struct {
	Timeout time.Duration
}

// RequestOptions contains optional parameters for API requests
type RequestOptions struct {
	Headers map[string]string
	Query   map[string]string
}

// FlexibleBool can unmarshal from both boolean and string JSON values
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case bool:
		*b = FlexibleBool(value)
	case string:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			// If string is non-empty, treat as true (error condition)
			*b = FlexibleBool(value != "" && value != "false")
		} else {
			*b = FlexibleBool(boolValue)
		}
	default:
		*b = false
	}
	return nil
}

func (b FlexibleBool) Bool() bool {
	return bool(b)
}

// APIResponse represents the standard API response format
type APIResponse struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Error   FlexibleBool    `json:"error"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Error implements the error interface.
// Returns just the message if present, otherwise just the status code.
func (e *ErrorResponse) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d", e.Status)
}

// IsNotFound reports whether err is an API error with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*ErrorResponse)
	return ok && apiErr.Status == 404
}

// EmptyResponse is used for endpoints that return no data
type EmptyResponse struct{}

// LoginRequest represents the request payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the response from login
type LoginResponse struct {
	EmailVerificationRequired bool `json:"emailVerificationRequired,omitempty"`
}

// User represents a user retrieved from the API
type User struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	NetworkAdmin bool   `json:"networkAdmin"`
}

// CreateUserRequest represents the request payload for creating a user.
// The platform generates the initial password and mails the credentials.
type CreateUserRequest struct {
	Email string `json:"email"`
}

// Network represents a multisite network (the top-level installation
// grouping one or more blogs)
type Network struct {
	NetworkID  int64  `json:"networkId"`
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	Path       string `json:"path"`
	Subdomains bool   `json:"subdomains"`
}

// ListNetworksResponse represents the response from listing networks
type ListNetworksResponse struct {
	Networks   []Network `json:"networks"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

// Blog represents an individual sub-site within a network
type Blog struct {
	BlogID    int64  `json:"blogId"`
	NetworkID int64  `json:"networkId"`
	Slug      string `json:"slug"`
	Domain    string `json:"domain"`
	Path      string `json:"path"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Public    bool   `json:"public"`
}

// BlogDetails represents the full detail record for a blog
type BlogDetails struct {
	Blog
	OwnerEmail string `json:"ownerEmail"`
	Language   string `json:"language"`
	Archived   bool   `json:"archived"`
	Deleted    bool   `json:"deleted"`
	Created    string `json:"created"`
	Updated    string `json:"updated"`
}

// ListBlogsResponse represents the response from listing blogs in a network
type ListBlogsResponse struct {
	Blogs      []Blog `json:"blogs"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

// CreateBlogRequest represents the request payload for creating a blog
type CreateBlogRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Domain      string `json:"domain"`
	Path        string `json:"path"`
	OwnerUserID string `json:"ownerUserId"`
	Public      bool   `json:"public"`
}

// CreateBlogResponse represents the response from creating a blog
type CreateBlogResponse struct {
	BlogID int64  `json:"blogId"`
	URL    string `json:"url"`
}
