package store

import (
	"context"

	"github.com/jmoliner/herdsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConsolidateFunc collapses a chronological set of queue entries into the
// minimal equivalent set, one entry per (table, record). The sync queue
// repository applies it on every enqueue so the queue stays small under
// heavy local churn; the actual implementation lives in the service layer.
type ConsolidateFunc func(entries []models.QueueEntry) []models.ConsolidatedEntry

// SyncQueueRepository is the durable log of pending local mutations plus the
// small key-value metadata the sync engine needs (device id, checkpoint).
type SyncQueueRepository interface {
	// Enqueue records a local mutation. Existing rows for the same
	// (table, record) pair are folded together with the new entry and
	// replaced by the compacted result in a single transaction.
	// Any failure propagates: the caller must know the mutation is not
	// guaranteed to sync.
	Enqueue(ctx context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error

	// ListPending returns all raw queue rows in ascending creation order.
	ListPending(ctx context.Context) ([]models.QueueEntry, error)

	// ClearByIDs permanently removes rows by identifier. A no-op on an
	// empty list; ids that are already gone are silently skipped.
	ClearByIDs(ctx context.Context, ids []string) error

	// PendingCount returns the number of raw queue rows.
	PendingCount(ctx context.Context) (int, error)

	// GetOrCreateDeviceID lazily creates and persists a stable device
	// identifier on first call, reused forever after.
	GetOrCreateDeviceID(ctx context.Context) (string, error)

	// GetLastSyncAt returns the persisted sync checkpoint, or an empty
	// string when the client has never completed a pull.
	GetLastSyncAt(ctx context.Context) (string, error)

	// SetLastSyncAt persists the server-declared sync checkpoint.
	SetLastSyncAt(ctx context.Context, value string) error
}

// AnimalsRepository is the local repository for herd animals.
type AnimalsRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Animal, error)
	GetByID(ctx context.Context, id string) (models.Animal, error)
	CreateLocal(ctx context.Context, animal models.Animal) error
	UpdateLocal(ctx context.Context, animal models.Animal) error
	SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error
	// UpsertFromServer merges authoritative server records into the local
	// table: update when the id exists, insert otherwise. Server values
	// win unconditionally.
	UpsertFromServer(ctx context.Context, records []models.Animal) error
}

// BreedingsRepository is the local repository for breeding records.
type BreedingsRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Breeding, error)
	GetByID(ctx context.Context, id string) (models.Breeding, error)
	CreateLocal(ctx context.Context, breeding models.Breeding) error
	UpdateLocal(ctx context.Context, breeding models.Breeding) error
	SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error
	UpsertFromServer(ctx context.Context, records []models.Breeding) error
}

// HealthRecordsRepository is the local repository for animal health events.
type HealthRecordsRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.HealthRecord, error)
	GetByID(ctx context.Context, id string) (models.HealthRecord, error)
	CreateLocal(ctx context.Context, record models.HealthRecord) error
	UpdateLocal(ctx context.Context, record models.HealthRecord) error
	SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error
	UpsertFromServer(ctx context.Context, records []models.HealthRecord) error
}

// ProductionRecordsRepository is the local repository for production
// measurements.
type ProductionRecordsRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.ProductionRecord, error)
	GetByID(ctx context.Context, id string) (models.ProductionRecord, error)
	CreateLocal(ctx context.Context, record models.ProductionRecord) error
	UpdateLocal(ctx context.Context, record models.ProductionRecord) error
	SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error
	UpsertFromServer(ctx context.Context, records []models.ProductionRecord) error
}
