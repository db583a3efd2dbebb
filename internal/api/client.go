package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/loomcms/cli/internal/version"
)

// ClientConfig holds configuration for creating a new client
type ClientConfig struct {
	BaseURL           string
	AgentName         string
	Token             string
	SessionCookieName string
	CSRFToken         string
}

// NewClient creates a new API client with the provided configuration
func NewClient(config ClientConfig) (*Client, error) {
	baseURL := normalizeBaseURL(config.BaseURL)

	sessionCookieName := config.SessionCookieName
	if sessionCookieName == "" {
		sessionCookieName = "l_session_token"
	}

	client := &Client{
		BaseURL:           baseURL,
		AgentName:         config.AgentName,
		Token:             config.Token,
		SessionCookieName: sessionCookieName,
		CSRFToken:         config.CSRFToken,
		HTTPClient: &HTTPClient{
			Timeout: 30 * time.Second,
		},
	}

	return client, nil
}

// Get performs a GET request to the API
func (c *Client) Get(endpoint string, result interface{}, opts ...RequestOptions) error {
	return c.request(http.MethodGet, endpoint, nil, result, opts...)
}

// Post performs a POST request to the API
func (c *Client) Post(endpoint string, payload interface{}, result interface{}, opts ...RequestOptions) error {
	return c.request(http.MethodPost, endpoint, payload, result, opts...)
}

// Put performs a PUT request to the API
func (c *Client) Put(endpoint string, payload interface{}, result interface{}, opts ...RequestOptions) error {
	return c.request(http.MethodPut, endpoint, payload, result, opts...)
}

// Delete performs a DELETE request to the API
func (c *Client) Delete(endpoint string, result interface{}, opts ...RequestOptions) error {
	return c.request(http.MethodDelete, endpoint, nil, result, opts...)
}

// request is the core method that handles all HTTP requests
func (c *Client) request(method, endpoint string, payload interface{}, result interface{}, opts ...RequestOptions) error {
	requestURL, err := c.buildURL(endpoint, opts...)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", getUserAgent(c.AgentName))

	if c.CSRFToken != "" {
		req.Header.Set("X-CSRF-Token", c.CSRFToken)
	}

	// The session token is sent as a cookie
	if c.Token != "" {
		req.AddCookie(&http.Cookie{
			Name:  c.SessionCookieName,
			Value: c.Token,
		})
	}

	// Apply custom headers from options
	if len(opts) > 0 && opts[0].Headers != nil {
		for key, value := range opts[0].Headers {
			req.Header.Set(key, value)
		}
	}

	httpClient := &http.Client{
		Timeout: c.HTTPClient.Timeout,
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if len(bodyBytes) == 0 {
		return nil
	}

	apiResp, err := parseAPIResponseBody(bodyBytes)
	if err != nil {
		return err
	}

	if apiResp.Error.Bool() || !apiResp.Success {
		return createErrorResponse(apiResp, resp.StatusCode)
	}

	if result != nil && apiResp.Data != nil {
		if err := json.Unmarshal(apiResp.Data, result); err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

// buildURL constructs the full URL for the request
func (c *Client) buildURL(endpoint string, opts ...RequestOptions) (string, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	fullURL := strings.TrimSuffix(c.BaseURL, "/") + endpoint

	if len(opts) > 0 && len(opts[0].Query) > 0 {
		u, err := url.Parse(fullURL)
		if err != nil {
			return "", err
		}

		q := u.Query()
		for key, value := range opts[0].Query {
			q.Set(key, value)
		}
		u.RawQuery = q.Encode()
		fullURL = u.String()
	}

	return fullURL, nil
}

// SetBaseURL updates the base URL for the client
func (c *Client) SetBaseURL(baseURL string) {
	c.BaseURL = normalizeBaseURL(baseURL)
}

// SetToken updates the session token for the client
func (c *Client) SetToken(token string) {
	c.Token = token
}

// Logout logs out the current user
func (c *Client) Logout() error {
	var result EmptyResponse
	return c.Post("/auth/logout", nil, &result)
}

// GetUser retrieves the current user information
func (c *Client) GetUser() (*User, error) {
	var user User
	if err := c.Get("/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks up a user by email address.
// Returns an ErrorResponse with status 404 if no user has that email.
func (c *Client) GetUserByEmail(email string) (*User, error) {
	var user User
	opts := RequestOptions{
		Query: map[string]string{
			"email": email,
		},
	}
	if err := c.Get("/users", &user, opts); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user with the given email. The platform generates
// the initial password and mails the credentials to the new user.
func (c *Client) CreateUser(email string) (*User, error) {
	requestBody := CreateUserRequest{
		Email: email,
	}
	var user User
	if err := c.Post("/users", requestBody, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckHealth checks if the server is reachable and responding.
// Returns true if status is 200-299, 401, or 403 (server is up).
func (c *Client) CheckHealth() (bool, error) {
	testClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", getUserAgent(c.AgentName))
	req.Header.Set("Accept", "application/json")

	resp, err := testClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if (resp.StatusCode >= 200 && resp.StatusCode < 300) || resp.StatusCode == 401 || resp.StatusCode == 403 {
		return true, nil
	}

	return false, fmt.Errorf("server returned status %d", resp.StatusCode)
}

// Helper functions for API calls

// normalizeBaseURL normalizes a base URL by adding protocol if missing and
// trimming trailing slashes. An empty base URL stays empty; the client is
// only usable once login has pointed it at an installation.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	return strings.TrimSuffix(baseURL, "/")
}

// buildAPIBaseURL builds the API v1 base URL, ensuring it ends with /api/v1
func buildAPIBaseURL(baseURL string) string {
	baseURL = normalizeBaseURL(baseURL)
	if !strings.HasSuffix(baseURL, "/api/v1") {
		baseURL = baseURL + "/api/v1"
	}
	return baseURL
}

// getUserAgent returns the user agent string formatted as "loom-cli-version"
func getUserAgent(agentName string) string {
	return fmt.Sprintf("%s-%s", agentName, version.Version)
}

// parseAPIResponseBody parses the response body into an APIResponse struct
func parseAPIResponseBody(bodyBytes []byte) (*APIResponse, error) {
	var apiResp APIResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &apiResp, nil
}

// createErrorResponse creates an ErrorResponse from an APIResponse and HTTP status code
func createErrorResponse(apiResp *APIResponse, httpStatusCode int) *ErrorResponse {
	errorResp := ErrorResponse{
		Message: apiResp.Message,
		Status:  apiResp.Status,
	}

	if errorResp.Status == 0 {
		errorResp.Status = httpStatusCode
	}

	if errorResp.Message == "" {
		errorResp.Message = getDefaultErrorMessage(errorResp.Status)
	}

	return &errorResp
}

// getDefaultErrorMessage returns a default error message based on status code
func getDefaultErrorMessage(statusCode int) string {
	switch statusCode {
	case 400:
		return "Bad request"
	case 401, 403:
		return "Unauthorized"
	case 404:
		return "Not found"
	case 429:
		return "Rate limit exceeded"
	case 500:
		return "Internal server error"
	default:
		return "An error occurred"
	}
}
