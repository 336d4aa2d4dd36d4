// Package config reads server settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port             string
	DataPath         string
	DBPath           string
	CORSOrigins      []string
	FrontendDistPath string
	GormLogLevel     string

	ViewCacheSize int

	PackSize          int
	PackRatePerMinute int
	PackBurst         int
	PackHistoryKeep   int
	PackSeed          int64
	PackSeeded        bool
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Load builds the configuration from environment variables, applying
// defaults for anything unset. Malformed numbers are logged and ignored.
func Load() Config {
	cfg := Config{
		Port:              getString("PORT", "8080"),
		DataPath:          getString("DEX_DATA_PATH", "./data/data.json"),
		DBPath:            getString("DB_PATH", "./gingerdex.db"),
		CORSOrigins:       defaultCORSOrigins,
		FrontendDistPath:  os.Getenv("FRONTEND_DIST_PATH"),
		GormLogLevel:      getString("GORM_LOG_LEVEL", "warn"),
		ViewCacheSize:     getInt("VIEW_CACHE_SIZE", 256),
		PackSize:          getInt("PACK_SIZE", 5),
		PackRatePerMinute: getInt("PACK_RATE_PER_MINUTE", 30),
		PackBurst:         getInt("PACK_BURST", 5),
		PackHistoryKeep:   getInt("PACK_HISTORY_KEEP", 1000),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if seed := os.Getenv("PACK_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			log.Printf("Warning: ignoring invalid PACK_SEED %q: %v", seed, err)
		} else {
			cfg.PackSeed = n
			cfg.PackSeeded = true
		}
	}

	return cfg
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: ignoring invalid %s %q: %v", key, v, err)
		return fallback
	}
	return n
}
