package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"sf-server/db"
	"sf-server/models"
	"sf-server/models/schedule"
)

const STORE_DOC_KEY_FORMAT_V1 = "store_doc_v1:%s"

// STORE_STATUS_KEY_FORMAT_V1 is used to cache precomputed statuses per store.
const STORE_STATUS_KEY_FORMAT_V1 = "store_status_v1:%s"

// RedisStoreDAO handles storefront document operations using Redis.
type RedisStoreDAO struct {
	client db.RedisClient
}

// NewRedisStoreDAO initializes a RedisStoreDAO with the Redis client.
func NewRedisStoreDAO(client db.RedisClient) *RedisStoreDAO {
	return &RedisStoreDAO{client: client}
}

// UpsertStore stores the tenant document, schedule included, as JSON.
func (dao *RedisStoreDAO) UpsertStore(s models.Store) error {
	key := fmt.Sprintf(STORE_DOC_KEY_FORMAT_V1, s.StoreID)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal store %s: %w", s.StoreID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set store in redis: %w", err)
	}
	return nil
}

// GetStore retrieves a tenant document by its store ID.
func (dao *RedisStoreDAO) GetStore(storeID string) (*models.Store, error) {
	key := fmt.Sprintf(STORE_DOC_KEY_FORMAT_V1, storeID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get store from redis: %w", err)
	}
	var s models.Store
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store JSON: %w", err)
	}
	return &s, nil
}

// ListStoreIDs returns the IDs of all persisted tenant documents.
func (dao *RedisStoreDAO) ListStoreIDs() ([]string, error) {
	pattern := fmt.Sprintf(STORE_DOC_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list store keys: %w", err)
	}
	prefix := fmt.Sprintf(STORE_DOC_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetCachedStatus caches a precomputed status document for a store.
func (dao *RedisStoreDAO) SetCachedStatus(storeID string, st *schedule.StoreStatus) error {
	key := fmt.Sprintf(STORE_STATUS_KEY_FORMAT_V1, storeID)
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal status for store %s: %w", storeID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set status in redis: %w", err)
	}
	return nil
}

// GetCachedStatus retrieves the cached status for a store, if any.
func (dao *RedisStoreDAO) GetCachedStatus(storeID string) (*schedule.StoreStatus, error) {
	key := fmt.Sprintf(STORE_STATUS_KEY_FORMAT_V1, storeID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get status from redis: %w", err)
	}
	var st schedule.StoreStatus
	if err := json.Unmarshal([]byte(str), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status JSON: %w", err)
	}
	return &st, nil
}

// DeleteCachedStatus drops the cached status so the next refresh recomputes it.
func (dao *RedisStoreDAO) DeleteCachedStatus(storeID string) error {
	key := fmt.Sprintf(STORE_STATUS_KEY_FORMAT_V1, storeID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete status key %s: %w", key, err)
	}
	log.Printf("[RedisStoreDAO] Deleted cached status for %s", storeID)
	return nil
}
