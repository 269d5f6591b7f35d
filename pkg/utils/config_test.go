package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, key := range []string{"ANIMEHUB_CSV_PATH", "ANIMEHUB_SOURCE", "SAMPLE_SIZE", "ANIMEHUB_SAMPLE_SEED", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := LoadAppConfig()

	assert.Equal(t, "final_animedataset.csv", cfg.CSVPath)
	assert.Equal(t, SourceCSV, cfg.Source)
	assert.Equal(t, 10000, cfg.SampleSize)
	assert.Equal(t, int64(42), cfg.SampleSeed)
	assert.Equal(t, 5000, cfg.Port)
}

func TestLoadAppConfigFromEnv(t *testing.T) {
	t.Setenv("ANIMEHUB_CSV_PATH", "/data/anime.csv")
	t.Setenv("ANIMEHUB_SOURCE", "sqlite")
	t.Setenv("SAMPLE_SIZE", "2500")
	t.Setenv("ANIMEHUB_SAMPLE_SEED", "7")
	t.Setenv("PORT", "8080")

	cfg := LoadAppConfig()

	assert.Equal(t, "/data/anime.csv", cfg.CSVPath)
	assert.Equal(t, SourceSQLite, cfg.Source)
	assert.Equal(t, 2500, cfg.SampleSize)
	assert.Equal(t, int64(7), cfg.SampleSeed)
	assert.Equal(t, 8080, cfg.Port)
}

func TestGetIntEnvInvalidFallsBack(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "not-a-number")
	assert.Equal(t, 10000, GetIntEnv("SAMPLE_SIZE", 10000))
}
