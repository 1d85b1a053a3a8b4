package service

import (
	"context"
	"time"

	"github.com/jmoliner/herdsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService defines the client-side contract for reconciling the local
// database with the remote server.
type SyncService interface {
	// SyncNow runs one full sync cycle for the given user: push the
	// consolidated pending queue, resolve conflicts server-wins, clear the
	// acknowledged entries, pull remote changes since the last checkpoint,
	// and merge them into the local tables. Concurrent calls while a cycle
	// is in flight are dropped, as are calls before the current backoff
	// window has elapsed. SyncNow never returns an error: every outcome is
	// published through the state publisher instead.
	SyncNow(ctx context.Context, userID string)

	// HydrateState refreshes the published pending-changes counter and
	// last-sync timestamp from the local store. Called on startup and after
	// every cycle.
	HydrateState(ctx context.Context) error

	// EnqueueChange records a local mutation in the durable queue and
	// refreshes the published pending counter. The queue compacts entries
	// for the same record on write.
	EnqueueChange(ctx context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error
}

// SyncJob defines the contract for a background worker that periodically
// runs a sync cycle for the authenticated user.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 45 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Kick requests an immediate sync cycle outside the regular tick, for
	// example right after a local mutation. Safe to call at any time; no-op
	// when the job is not running.
	Kick()

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// MutationService defines the local-first write path: every mutation is
// applied to the local database immediately, recorded in the sync queue,
// and pushed to the server on the next sync cycle.
type MutationService interface {
	CreateAnimal(ctx context.Context, userID string, input models.AnimalCreateInput) (models.Animal, error)
	UpdateAnimal(ctx context.Context, id string, input models.AnimalUpdateInput) (models.Animal, error)
	DeleteAnimal(ctx context.Context, id string) error

	CreateBreeding(ctx context.Context, userID string, input models.BreedingCreateInput) (models.Breeding, error)
	UpdateBreeding(ctx context.Context, id string, input models.BreedingUpdateInput) (models.Breeding, error)
	DeleteBreeding(ctx context.Context, id string) error

	CreateHealthRecord(ctx context.Context, userID string, input models.HealthRecordCreateInput) (models.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, id string, input models.HealthRecordUpdateInput) (models.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, id string) error

	CreateProductionRecord(ctx context.Context, userID string, input models.ProductionRecordCreateInput) (models.ProductionRecord, error)
	UpdateProductionRecord(ctx context.Context, id string, input models.ProductionRecordUpdateInput) (models.ProductionRecord, error)
	DeleteProductionRecord(ctx context.Context, id string) error
}
