package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"sf-server/api"
	"sf-server/api/storeadmin"
	"sf-server/config"
	"sf-server/dao/redis"
	"sf-server/db"
	"sf-server/server"
	"sf-server/server/handlers"
	services "sf-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisStoreDao          *redis.RedisStoreDAO
	StoreAdminAPI          storeadmin.StoreAdminAPI
	StoreStatusService     *services.StoreStatusService
	StatusRefresherService *services.StatusRefresherService
	StoreHandler           *handlers.StoreHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	StorefrontHttpServer   *server.StorefrontHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewStoreRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Store DAO
	redisStoreDao := redis.NewRedisStoreDAO(redisClient)

	// Initialize Store Admin API - mock everywhere but prod
	var storeAdminAPI storeadmin.StoreAdminAPI
	if env != "prod" {
		storeAdminAPI = storeadmin.NewStoreAdminApiClientMock()
		log.Printf("Using mock store admin api")
	} else {
		log.Printf("Using prod store admin api")
		httpClient := api.NewHTTPClient(config.STORE_ADMIN_ENDPOINT_BASE_V1)

		storeAdminAPI = storeadmin.NewStoreAdminApiClient(httpClient)
		storeAdminAPI.SetAPIKey(config.StoreAdminAPIKey())
	}

	// Initialize service layer with Redis client dependency
	storeStatusService := services.NewStoreStatusService(redisStoreDao)

	statusRefresherService := services.NewStatusRefresherService(redisStoreDao, storeAdminAPI, storeStatusService)

	// Initialize store handler
	storeHandler := handlers.NewStoreHandler(redisStoreDao, storeStatusService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(storeHandler, muxRouter)

	// initialize storefront server
	storefrontHttpServer := server.NewStorefrontHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:            redisClient,
		RedisStoreDao:          redisStoreDao,
		StoreAdminAPI:          storeAdminAPI,
		StoreStatusService:     storeStatusService,
		StatusRefresherService: statusRefresherService,
		StoreHandler:           storeHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		StorefrontHttpServer:   storefrontHttpServer,
	}
}
