package utils

import (
	"os"
	"strconv"
)

// DatasetSource selects where the anime table is loaded from at startup.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

type AppConfig struct {
	CSVPath    string // dataset CSV (source=csv)
	Source     string // "csv" or "sqlite"
	SampleSize int    // max rows kept before index build
	SampleSeed int64  // seed for the one-time subsample
	Port       int
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		CSVPath:    GetStringEnv("ANIMEHUB_CSV_PATH", "final_animedataset.csv"),
		Source:     GetStringEnv("ANIMEHUB_SOURCE", SourceCSV),
		SampleSize: GetIntEnv("SAMPLE_SIZE", 10000),
		SampleSeed: GetInt64Env("ANIMEHUB_SAMPLE_SEED", 42),
		Port:       GetIntEnv("PORT", 5000),
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
