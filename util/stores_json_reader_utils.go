package util

import (
	"encoding/json"
	"fmt"
	"os"

	"sf-server/models"
)

// ReadStoresFromJSON loads a list of tenant store documents from JSON on disk,
// used to seed the document store in environments without an admin panel.
func ReadStoresFromJSON(filePath string) ([]models.Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var stores []models.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stores: %w", err)
	}
	return stores, nil
}
