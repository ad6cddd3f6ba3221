package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("WORKER_CONCURRENCY", "")

	cfg, _ := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 3, cfg.Worker.Concurrency)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("S3_BUCKET", "resumes")
	t.Setenv("WORKER_CONCURRENCY", "8")
	t.Setenv("COACH_RPS", "0.5")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("DB_NAME", "scans")

	cfg, _ := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	assert.Equal(t, 8, cfg.Worker.Concurrency)
	assert.Equal(t, 0.5, cfg.Gemini.RequestsPerSecond)
	assert.True(t, cfg.Log.JSON)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=scans")
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "many")
	t.Setenv("MAX_FILE_SIZE", "big")

	cfg, _ := Load()

	assert.Equal(t, 3, cfg.Worker.Concurrency)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Driver: StorageDriverS3, MaxFileSize: 1}}
	assert.ErrorContains(t, cfg.Validate(), "S3_BUCKET")

	cfg.Storage.Driver = "ftp"
	assert.ErrorContains(t, cfg.Validate(), "unknown STORAGE_DRIVER")

	cfg.Storage.Driver = StorageDriverLocal
	cfg.Storage.MaxFileSize = 0
	assert.Error(t, cfg.Validate())
}
