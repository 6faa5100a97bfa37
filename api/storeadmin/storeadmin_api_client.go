package storeadmin

import (
	"sf-server/api"
	"sf-server/models"
)

// storeIDsResponse is the envelope returned by GET /stores.
type storeIDsResponse struct {
	StoreIDs []string `json:"store_ids"`
}

// StoreAdminApiClient embeds the common HTTPClient
type StoreAdminApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewStoreAdminApiClient creates a new instance of StoreAdminApiClient
func NewStoreAdminApiClient(httpClient *api.HTTPClient) *StoreAdminApiClient {
	return &StoreAdminApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent on every request to the admin panel
func (c *StoreAdminApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// ListStoreIDs retrieves the IDs of all tenant stores
func (c *StoreAdminApiClient) ListStoreIDs() ([]string, error) {
	var response storeIDsResponse
	err := c.Request("GET", "/stores", c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return response.StoreIDs, nil
}

// GetStore retrieves a tenant store document, schedule included, by its ID
func (c *StoreAdminApiClient) GetStore(storeID string) (*models.Store, error) {
	var response models.Store
	err := c.Request("GET", "/stores/"+storeID, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *StoreAdminApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}
