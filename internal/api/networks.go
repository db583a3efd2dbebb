package api

import "fmt"

// GetNetwork gets a network by its numeric ID
func (c *Client) GetNetwork(networkID int64) (*Network, error) {
	path := fmt.Sprintf("/networks/%d", networkID)
	var network Network
	if err := c.Get(path, &network); err != nil {
		return nil, err
	}
	return &network, nil
}

// ListNetworks lists the networks visible to the current user
func (c *Client) ListNetworks() (*ListNetworksResponse, error) {
	var response ListNetworksResponse
	if err := c.Get("/networks", &response); err != nil {
		return nil, err
	}
	return &response, nil
}
