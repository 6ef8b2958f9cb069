package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// StoreDriver selects the persistence backend: "sqlite" for the embedded
	// relational file store, "file" for the JSON document store.
	StoreDriver string
	DBSource    string
	BlobPath    string
	Port        string
	LogLevel    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "pos.db"),
		BlobPath:    getEnv("BLOB_PATH", "pos-local-db.json"),
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
