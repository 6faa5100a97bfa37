package db_test

import (
	"context"
	"sort"

	"testing"

	"sf-server/db"
)

// Test the Set and Get methods for the MockRedisClient
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"StoreRedisClient", db.NewStoreRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

// Test the Keys and Del methods for the MockRedisClient
func TestRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_ = client.Set("store_doc_v1:a", "{}")
	_ = client.Set("store_doc_v1:b", "{}")
	_ = client.Set("store_status_v1:a", "{}")

	keys, err := client.Keys("store_doc_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "store_doc_v1:a" || keys[1] != "store_doc_v1:b" {
		t.Errorf("Unexpected keys: %v", keys)
	}

	if err := client.Del("store_doc_v1:a"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("store_doc_v1:a"); err == nil {
		t.Error("Expected an error after deletion")
	}
}

// Test that Get reports missing keys
func TestRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	if _, err := client.Get("nope"); err == nil {
		t.Error("Expected an error for a missing key")
	}
}
