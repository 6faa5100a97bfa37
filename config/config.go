package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Status refresher config
const STATUS_REFRESHER_SCHEDULE_MINUTES = 1

// Store Admin API
const STORE_ADMIN_ENDPOINT_BASE_V1 = "http://admin:9090/api/v1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STORES_SEED_RESOURCE = "stores_seed.json"

// LoadEnv loads a local .env file if present, then falls back to the process
// environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// Getenv returns the value of an environment variable, or the fallback when
// it is unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Env returns the deployment environment name ("prod" or "dev").
func Env() string {
	return Getenv("SF_ENV", "dev")
}

// RedisAddress returns the Redis address, overridable via SF_REDIS_ADDRESS.
func RedisAddress() string {
	return Getenv("SF_REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// ServerAddress returns the HTTP listen address, overridable via SF_SERVER_ADDRESS.
func ServerAddress() string {
	return Getenv("SF_SERVER_ADDRESS", SERVER_ADDRESS)
}

// StoreAdminAPIKey returns the admin panel API key.
func StoreAdminAPIKey() string {
	return Getenv("SF_STORE_ADMIN_API_KEY", "")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
