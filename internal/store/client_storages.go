package store

import (
	"context"
	"fmt"

	"github.com/jmoliner/herdsync/internal/config"
	"github.com/jmoliner/herdsync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SyncQueue is the durable queue of pending local mutations plus the
	// sync metadata (device id, checkpoint).
	SyncQueue SyncQueueRepository

	// Animals, Breedings, HealthRecords, and ProductionRecords are the
	// SQLite-backed repositories for the tracked entity tables.
	Animals           AnimalsRepository
	Breedings         BreedingsRepository
	HealthRecords     HealthRecordsRepository
	ProductionRecords ProductionRecordsRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories; the sync queue receives the compaction function from
//     the service layer.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger, consolidate ConsolidateFunc) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SyncQueue:         NewSyncQueueRepository(db, logger, consolidate),
		Animals:           NewAnimalsRepository(db, logger),
		Breedings:         NewBreedingsRepository(db, logger),
		HealthRecords:     NewHealthRecordsRepository(db, logger),
		ProductionRecords: NewProductionRecordsRepository(db, logger),
	}, nil
}
