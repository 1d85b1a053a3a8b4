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
	productionRecordColumns = `
			id,
			animal_id,
			type,
			date,
			value,
			unit,
			quality_score,
			notes,
			user_id,
			sync_status,
			sync_version,
			created_at,
			updated_at,
			deleted_at`

	insertProductionRecord = `
		INSERT INTO production_records (` + productionRecordColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	getProductionRecordByID = `
		SELECT ` + productionRecordColumns + `
		FROM production_records
		WHERE id = $1;`

	listProductionRecordsByUser = `
		SELECT ` + productionRecordColumns + `
		FROM production_records
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC;`

	updateProductionRecord = `
		UPDATE production_records SET
			animal_id     = $1,
			type          = $2,
			date          = $3,
			value         = $4,
			unit          = $5,
			quality_score = $6,
			notes         = $7,
			sync_status   = $8,
			sync_version  = $9,
			updated_at    = $10,
			deleted_at    = $11
		WHERE id = $12;`

	softDeleteProductionRecord = `
		UPDATE production_records SET
			deleted_at  = $1,
			updated_at  = $1,
			sync_status = $2
		WHERE id = $3;`

	upsertProductionRecord = `
		INSERT INTO production_records (` + productionRecordColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			animal_id     = excluded.animal_id,
			type          = excluded.type,
			date          = excluded.date,
			value         = excluded.value,
			unit          = excluded.unit,
			quality_score = excluded.quality_score,
			notes         = excluded.notes,
			user_id       = excluded.user_id,
			sync_status   = excluded.sync_status,
			sync_version  = excluded.sync_version,
			created_at    = excluded.created_at,
			updated_at    = excluded.updated_at,
			deleted_at    = excluded.deleted_at;`
)

type productionRecordsRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductionRecordsRepository(db *DB, logger *logger.Logger) ProductionRecordsRepository {
	return &productionRecordsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *productionRecordsRepository) ListByUser(ctx context.Context, userID string) ([]models.ProductionRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listProductionRecordsByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "productionRecordsRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to query production records")
		return nil, fmt.Errorf("failed to query production records: %w", err)
	}
	defer rows.Close()

	var records []models.ProductionRecord
	for rows.Next() {
		record, scanErr := scanProductionRecord(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating production record rows: %w", rowsErr)
	}

	return records, nil
}

func (r *productionRecordsRepository) GetByID(ctx context.Context, id string) (models.ProductionRecord, error) {
	row := r.DB.QueryRowContext(ctx, getProductionRecordByID, id)

	record, err := scanProductionRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductionRecord{}, fmt.Errorf("%w: production record %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *productionRecordsRepository) CreateLocal(ctx context.Context, record models.ProductionRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertProductionRecord,
		record.ID,
		record.AnimalID,
		record.Type,
		record.Date,
		record.Value,
		record.Unit,
		record.QualityScore,
		record.Notes,
		record.UserID,
		record.SyncStatus,
		record.SyncVersion,
		record.CreatedAt,
		record.UpdatedAt,
		record.DeletedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "productionRecordsRepository.CreateLocal").
			Str("id", record.ID).
			Msg("failed to insert production record")
		return fmt.Errorf("failed to create production record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *productionRecordsRepository) UpdateLocal(ctx context.Context, record models.ProductionRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateProductionRecord,
		record.AnimalID,
		record.Type,
		record.Date,
		record.Value,
		record.Unit,
		record.QualityScore,
		record.Notes,
		record.SyncStatus,
		record.SyncVersion,
		record.UpdatedAt,
		record.DeletedAt,
		record.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "productionRecordsRepository.UpdateLocal").
			Str("id", record.ID).
			Msg("failed to update production record")
		return fmt.Errorf("failed to update production record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *productionRecordsRepository) SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, softDeleteProductionRecord, deletedAt, models.RecordPending, id)
	if err != nil {
		log.Err(err).
			Str("func", "productionRecordsRepository.SoftDeleteLocal").
			Str("id", id).
			Msg("failed to soft delete production record")
		return fmt.Errorf("failed to delete production record (id=%s): %w", id, err)
	}

	return nil
}

func (r *productionRecordsRepository) UpsertFromServer(ctx context.Context, records []models.ProductionRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.DB.ExecContext(ctx, upsertProductionRecord,
			record.ID,
			record.AnimalID,
			record.Type,
			record.Date,
			record.Value,
			record.Unit,
			record.QualityScore,
			record.Notes,
			record.UserID,
			record.SyncStatus,
			record.SyncVersion,
			record.CreatedAt,
			record.UpdatedAt,
			record.DeletedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "productionRecordsRepository.UpsertFromServer").
				Str("id", record.ID).
				Msg("failed to upsert production record from server")
			return fmt.Errorf("failed to upsert production record (id=%s): %w", record.ID, err)
		}
	}

	return nil
}

func scanProductionRecord(scan func(dest ...any) error) (models.ProductionRecord, error) {
	var record models.ProductionRecord

	err := scan(
		&record.ID,
		&record.AnimalID,
		&record.Type,
		&record.Date,
		&record.Value,
		&record.Unit,
		&record.QualityScore,
		&record.Notes,
		&record.UserID,
		&record.SyncStatus,
		&record.SyncVersion,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.DeletedAt,
	)
	if err != nil {
		return models.ProductionRecord{}, err
	}

	return record, nil
}
