package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/models"
)

const (
	healthRecordColumns = `
			id,
			animal_id,
			type,
			date,
			notes,
			next_due_date,
			completed,
			user_id,
			sync_status,
			sync_version,
			created_at,
			updated_at,
			deleted_at`

	insertHealthRecord = `
		INSERT INTO health_records (` + healthRecordColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	getHealthRecordByID = `
		SELECT ` + healthRecordColumns + `
		FROM health_records
		WHERE id = $1;`

	listHealthRecordsByUser = `
		SELECT ` + healthRecordColumns + `
		FROM health_records
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC;`

	updateHealthRecord = `
		UPDATE health_records SET
			animal_id     = $1,
			type          = $2,
			date          = $3,
			notes         = $4,
			next_due_date = $5,
			completed     = $6,
			sync_status   = $7,
			sync_version  = $8,
			updated_at    = $9,
			deleted_at    = $10
		WHERE id = $11;`

	softDeleteHealthRecord = `
		UPDATE health_records SET
			deleted_at  = $1,
			updated_at  = $1,
			sync_status = $2
		WHERE id = $3;`

	upsertHealthRecord = `
		INSERT INTO health_records (` + healthRecordColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			animal_id     = excluded.animal_id,
			type          = excluded.type,
			date          = excluded.date,
			notes         = excluded.notes,
			next_due_date = excluded.next_due_date,
			completed     = excluded.completed,
			user_id       = excluded.user_id,
			sync_status   = excluded.sync_status,
			sync_version  = excluded.sync_version,
			created_at    = excluded.created_at,
			updated_at    = excluded.updated_at,
			deleted_at    = excluded.deleted_at;`
)

type healthRecordsRepository struct {
	*DB
	logger *logger.Logger
}

func NewHealthRecordsRepository(db *DB, logger *logger.Logger) HealthRecordsRepository {
	return &healthRecordsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *healthRecordsRepository) ListByUser(ctx context.Context, userID string) ([]models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listHealthRecordsByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "healthRecordsRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to query health records")
		return nil, fmt.Errorf("failed to query health records: %w", err)
	}
	defer rows.Close()

	var records []models.HealthRecord
	for rows.Next() {
		record, scanErr := scanHealthRecord(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating health record rows: %w", rowsErr)
	}

	return records, nil
}

func (r *healthRecordsRepository) GetByID(ctx context.Context, id string) (models.HealthRecord, error) {
	row := r.DB.QueryRowContext(ctx, getHealthRecordByID, id)

	record, err := scanHealthRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HealthRecord{}, fmt.Errorf("%w: health record %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *healthRecordsRepository) CreateLocal(ctx context.Context, record models.HealthRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertHealthRecord,
		record.ID,
		record.AnimalID,
		record.Type,
		record.Date,
		record.Notes,
		record.NextDueDate,
		record.Completed,
		record.UserID,
		record.SyncStatus,
		record.SyncVersion,
		record.CreatedAt,
		record.UpdatedAt,
		record.DeletedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "healthRecordsRepository.CreateLocal").
			Str("id", record.ID).
			Msg("failed to insert health record")
		return fmt.Errorf("failed to create health record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *healthRecordsRepository) UpdateLocal(ctx context.Context, record models.HealthRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateHealthRecord,
		record.AnimalID,
		record.Type,
		record.Date,
		record.Notes,
		record.NextDueDate,
		record.Completed,
		record.SyncStatus,
		record.SyncVersion,
		record.UpdatedAt,
		record.DeletedAt,
		record.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "healthRecordsRepository.UpdateLocal").
			Str("id", record.ID).
			Msg("failed to update health record")
		return fmt.Errorf("failed to update health record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *healthRecordsRepository) SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, softDeleteHealthRecord, deletedAt, models.RecordPending, id)
	if err != nil {
		log.Err(err).
			Str("func", "healthRecordsRepository.SoftDeleteLocal").
			Str("id", id).
			Msg("failed to soft delete health record")
		return fmt.Errorf("failed to delete health record (id=%s): %w", id, err)
	}

	return nil
}

func (r *healthRecordsRepository) UpsertFromServer(ctx context.Context, records []models.HealthRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.DB.ExecContext(ctx, upsertHealthRecord,
			record.ID,
			record.AnimalID,
			record.Type,
			record.Date,
			record.Notes,
			record.NextDueDate,
			record.Completed,
			record.UserID,
			record.SyncStatus,
			record.SyncVersion,
			record.CreatedAt,
			record.UpdatedAt,
			record.DeletedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "healthRecordsRepository.UpsertFromServer").
				Str("id", record.ID).
				Msg("failed to upsert health record from server")
			return fmt.Errorf("failed to upsert health record (id=%s): %w", record.ID, err)
		}
	}

	return nil
}

func scanHealthRecord(scan func(dest ...any) error) (models.HealthRecord, error) {
	var record models.HealthRecord

	err := scan(
		&record.ID,
		&record.AnimalID,
		&record.Type,
		&record.Date,
		&record.Notes,
		&record.NextDueDate,
		&record.Completed,
		&record.UserID,
		&record.SyncStatus,
		&record.SyncVersion,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.DeletedAt,
	)
	if err != nil {
		return models.HealthRecord{}, err
	}

	return record, nil
}
