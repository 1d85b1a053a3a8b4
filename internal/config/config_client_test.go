package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "/data/herd.db"}},
		Workers: ClientWorkers{SyncInterval: 45 * time.Second},
	}
}

func TestClientConfig_Validate_OK(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfig_Validate_Storage(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	// the durable queue must not live in a throwaway database
	cfg.Storage.DB.DSN = "file::memory:?cache=shared"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_Adapter(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = validClientConfig()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfig_Validate_Workers(t *testing.T) {
	cfg := validClientConfig()
	cfg.Workers.SyncInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
