package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	StorageDriver  string
	RedisURL       string
	MongoURI       string
	MongoDatabase  string
	PostgresURL    string
	CustomFoodsKey string
	RecipesKey     string
	AllowedOrigins []string
}

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageMongoDB  = "mongodb"
	StoragePostgres = "postgres"
)

// LoadEnvFile loads variables from an env file without overriding ones that
// are already set. A missing file is not an error.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading %s: %v", path, err)
	}
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "nutrisnap"),
		PostgresURL:    getEnv("POSTGRES_URL", "postgres://postgres@localhost:5432/nutrisnap"),
		CustomFoodsKey: getEnv("CUSTOM_FOODS_KEY", "nutrisnap_customFoods"),
		RecipesKey:     getEnv("RECIPES_KEY", "nutrisnap_recipes"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:9002")),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
