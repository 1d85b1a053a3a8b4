// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_HTTP_ADDRESS":    "http://sync.example.com:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"SERVER_ADDRESS": "localhost:8080",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/herdsync/local.db",

		"WORKERS_SYNC_INTERVAL": "45s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://sync.example.com:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/var/lib/herdsync/local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://localhost:8080")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}
