// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for herdsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote sync endpoint address and request timeout
	// used by the client transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the reference sync server binary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes such as
	// the periodic sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the remote sync server.
	HTTPAddress string `env:"HTTP_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path of the client's local database.
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the reference sync server binary.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`
}

// Workers contains background worker settings.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
