package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"sf-server/config"
	"sf-server/di"
	"sf-server/util"
)

// seedStoresFromResources loads the seed store documents into Redis, for
// environments without a reachable admin panel.
func seedStoresFromResources(container *di.Container) {
	path := config.GetResourcePath(config.STORES_SEED_RESOURCE)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[MAIN] No seed file at %s, skipping seed", path)
		return
	}

	stores, err := util.ReadStoresFromJSON(path)
	if err != nil {
		log.Printf("[MAIN] Failed to read seed stores: %v", err)
		return
	}
	for _, s := range stores {
		if err := container.RedisStoreDao.UpsertStore(s); err != nil {
			log.Printf("[MAIN] Failed to seed store %s: %v", s.StoreID, err)
		}
	}
	log.Printf("[MAIN] Seeded %d stores", len(stores))
}

func main() {
	config.LoadEnv()
	env := config.Env()

	container := di.NewContainer(env)

	if env != "prod" {
		seedStoresFromResources(container)
	}

	fmt.Println("refreshing!")
	if err := container.StatusRefresherService.RefreshStoresData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.StatusRefresherService.StartPeriodicJob(config.STATUS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.StorefrontHttpServer.Start()
	fmt.Println("server stopped!")
}
