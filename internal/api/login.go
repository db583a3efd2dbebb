package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// LoginWithCookie performs a login request and returns the session cookie.
// The client only needs BaseURL set; no authentication token is required.
func LoginWithCookie(client *Client, req LoginRequest) (*LoginResponse, string, error) {
	var response LoginResponse
	sessionToken := ""

	url := buildAPIBaseURL(client.BaseURL) + "/auth/login"

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", getUserAgent(client.AgentName))

	csrfToken := client.CSRFToken
	if csrfToken == "" {
		csrfToken = "x-csrf-protection"
	}
	httpReq.Header.Set("X-CSRF-Token", csrfToken)

	httpClient := &http.Client{
		Timeout: client.HTTPClient.Timeout,
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Extract session cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == client.SessionCookieName {
			sessionToken = cookie.Value
			break
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	if len(bodyBytes) == 0 {
		// Return empty response but with token if available
		return &response, sessionToken, nil
	}

	apiResp, err := parseAPIResponseBody(bodyBytes)
	if err != nil {
		return nil, "", err
	}

	if apiResp.Error.Bool() || !apiResp.Success {
		return nil, "", createErrorResponse(apiResp, resp.StatusCode)
	}

	if apiResp.Data != nil {
		if err := json.Unmarshal(apiResp.Data, &response); err != nil {
			return nil, "", fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return &response, sessionToken, nil
}
