// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/models"
)

// Keys of the app_meta rows owned by the sync engine.
const (
	deviceIDKey   = "device_id"
	lastSyncAtKey = "last_sync_at"
)

var queueColumns = []string{
	"id",
	"table_name",
	"record_id",
	"action",
	"payload",
	"client_version",
	"created_at",
}

type syncQueueRepository struct {
	*DB
	logger      *logger.Logger
	consolidate ConsolidateFunc
}

// NewSyncQueueRepository builds the SQLite-backed sync queue. The compaction
// function is injected by the service layer so the repository stays free of
// reduction rules while still collapsing rows on every enqueue.
func NewSyncQueueRepository(db *DB, logger *logger.Logger, consolidate ConsolidateFunc) SyncQueueRepository {
	return &syncQueueRepository{
		DB:          db,
		logger:      logger,
		consolidate: consolidate,
	}
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Msg("failed to begin enqueue transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	existing, err := r.entriesForKey(ctx, tx, tableName, recordID)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("table_name", tableName).
			Str("record_id", recordID).
			Msg("failed to load existing queue rows")
		return err
	}

	incoming := models.QueueEntry{
		ID:            uuid.NewString(),
		TableName:     tableName,
		RecordID:      recordID,
		Action:        action,
		Payload:       payload,
		ClientVersion: clientVersion,
		CreatedAt:     time.Now().UnixMilli(),
	}
	compacted := r.consolidate(append(existing, incoming))

	deleteQuery, deleteArgs, err := sq.Delete("sync_queue").
		Where(sq.Eq{"table_name": tableName, "record_id": recordID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("table_name", tableName).
			Str("record_id", recordID).
			Msg("failed to replace queue rows for record")
		return fmt.Errorf("failed to replace queue rows (record_id=%s): %w", recordID, err)
	}

	for _, entry := range compacted {
		serialized, serErr := marshalPayload(entry.Payload)
		if serErr != nil {
			return fmt.Errorf("failed to serialize queue payload (record_id=%s): %w", entry.RecordID, serErr)
		}

		insertQuery, insertArgs, buildErr := sq.Insert("sync_queue").
			Columns(queueColumns...).
			Values(uuid.NewString(), entry.TableName, entry.RecordID, entry.Action, serialized, entry.ClientVersion, entry.CreatedAt).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "syncQueueRepository.Enqueue").
				Str("table_name", entry.TableName).
				Str("record_id", entry.RecordID).
				Msg("failed to insert compacted queue row")
			return fmt.Errorf("failed to insert queue row (record_id=%s): %w", entry.RecordID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Msg("failed to commit enqueue transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *syncQueueRepository) ListPending(ctx context.Context) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(queueColumns...).
		From("sync_queue").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.ListPending").
			Msg("failed to query pending queue rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.QueueEntry
	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncQueueRepository.ListPending").
				Msg("failed to scan queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating queue rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *syncQueueRepository) ClearByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("sync_queue").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// Rows already gone simply do not match; the delete stays idempotent.
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.ClearByIDs").
			Int("ids", len(ids)).
			Msg("failed to clear queue rows")
		return fmt.Errorf("failed to clear queue rows: %w", err)
	}

	return nil
}

func (r *syncQueueRepository) PendingCount(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COUNT(*)").From("sync_queue").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.PendingCount").
			Msg("failed to count pending queue rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *syncQueueRepository) GetOrCreateDeviceID(ctx context.Context) (string, error) {
	existing, err := r.getMeta(ctx, deviceIDKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrMetaNotFound) {
		return "", err
	}

	deviceID := "client-" + uuid.NewString()
	if err = r.upsertMeta(ctx, deviceIDKey, deviceID); err != nil {
		return "", err
	}

	return deviceID, nil
}

func (r *syncQueueRepository) GetLastSyncAt(ctx context.Context) (string, error) {
	value, err := r.getMeta(ctx, lastSyncAtKey)
	if errors.Is(err, ErrMetaNotFound) {
		return "", nil
	}
	return value, err
}

func (r *syncQueueRepository) SetLastSyncAt(ctx context.Context, value string) error {
	return r.upsertMeta(ctx, lastSyncAtKey, value)
}

func (r *syncQueueRepository) entriesForKey(ctx context.Context, tx *sql.Tx, tableName, recordID string) ([]models.QueueEntry, error) {
	query, args, err := sq.Select(queueColumns...).
		From("sync_queue").
		Where(sq.Eq{"table_name": tableName, "record_id": recordID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.QueueEntry
	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating queue rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *syncQueueRepository) getMeta(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("meta_value").
		From("app_meta").
		Where(sq.Eq{"meta_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrMetaNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *syncQueueRepository) upsertMeta(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	const query = `
		INSERT INTO app_meta (meta_key, meta_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (meta_key) DO UPDATE SET
			meta_value = excluded.meta_value,
			updated_at = excluded.updated_at;`

	if _, err := r.DB.ExecContext(ctx, query, key, value, time.Now().UnixMilli()); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.upsertMeta").
			Str("meta_key", key).
			Msg("failed to upsert metadata row")
		return fmt.Errorf("failed to upsert metadata (key=%s): %w", key, err)
	}

	return nil
}

func scanQueueEntry(rows *sql.Rows) (models.QueueEntry, error) {
	var entry models.QueueEntry
	var payload sql.NullString

	if err := rows.Scan(
		&entry.ID,
		&entry.TableName,
		&entry.RecordID,
		&entry.Action,
		&payload,
		&entry.ClientVersion,
		&entry.CreatedAt,
	); err != nil {
		return models.QueueEntry{}, err
	}

	entry.Payload = unmarshalPayload(payload)
	return entry, nil
}

func marshalPayload(payload map[string]any) (sql.NullString, error) {
	if payload == nil {
		return sql.NullString{}, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(raw), Valid: true}, nil
}

// unmarshalPayload tolerates corrupted payloads by treating them as empty;
// a delete row legitimately has no payload, and a damaged row must not wedge
// the whole queue.
func unmarshalPayload(payload sql.NullString) map[string]any {
	if !payload.Valid || payload.String == "" {
		return nil
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(payload.String), &decoded); err != nil {
		return nil
	}

	return decoded
}
