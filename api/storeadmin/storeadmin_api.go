package storeadmin

import (
	"sf-server/models"
)

// StoreAdminAPI defines the interface for interacting with the admin panel,
// the upstream source of truth for tenant storefront documents
type StoreAdminAPI interface {
	ListStoreIDs() ([]string, error)
	GetStore(storeID string) (*models.Store, error)
	SetAPIKey(apiKey string)
}
