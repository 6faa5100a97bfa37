package services

import (
	"log"
	"time"

	"sf-server/api/storeadmin"
	redisdao "sf-server/dao/redis"
)

// StatusRefresherService periodically syncs tenant store documents from the
// admin panel and precomputes their status documents. The hours engine never
// owns a timer; this service is the polling caller that keeps the cached
// dashboard view fresh.
type StatusRefresherService struct {
	storeDao      *redisdao.RedisStoreDAO
	storeAdminAPI storeadmin.StoreAdminAPI
	statusService *StoreStatusService
}

// NewStatusRefresherService constructs a new refresher with dependencies.
func NewStatusRefresherService(
	storeDao *redisdao.RedisStoreDAO,
	storeAdminAPI storeadmin.StoreAdminAPI,
	statusService *StoreStatusService,
) *StatusRefresherService {
	return &StatusRefresherService{
		storeDao:      storeDao,
		storeAdminAPI: storeAdminAPI,
		statusService: statusService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *StatusRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *StatusRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[StatusRefresherService] Running periodic store status refresher job.")
		if err := sr.RefreshStoresData(); err != nil {
			log.Printf("[StatusRefresherService] RefreshStoresData returned error: %v", err)
		} else {
			log.Println("[StatusRefresherService] RefreshStoresData completed successfully.")
		}
	}
}

// RefreshStoresData orchestrates the three steps: pull store documents from
// the admin panel, upsert them into Redis, recompute and cache each status.
func (sr *StatusRefresherService) RefreshStoresData() error {
	ids, err := sr.storeAdminAPI.ListStoreIDs()
	if err != nil {
		return err
	}
	log.Printf("[StatusRefresherService] Refreshing %d stores", len(ids))

	for _, id := range ids {
		store, err := sr.storeAdminAPI.GetStore(id)
		if err != nil {
			log.Printf("[StatusRefresherService] Failed to fetch store %s: %v", id, err)
			continue
		}
		if err := sr.storeDao.UpsertStore(*store); err != nil {
			log.Printf("[StatusRefresherService] Failed to upsert store %s: %v", id, err)
			continue
		}

		st := sr.statusService.statusFor(store, time.Now())
		if err := sr.storeDao.SetCachedStatus(id, &st); err != nil {
			log.Printf("[StatusRefresherService] Failed to cache status for %s: %v", id, err)
			continue
		}
	}
	return nil
}
