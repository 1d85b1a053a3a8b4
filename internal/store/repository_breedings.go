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
	breedingColumns = `
			id,
			male_id,
			female_id,
			projected_coi,
			risk_level,
			offspring_id,
			breeding_date,
			notes,
			user_id,
			sync_status,
			sync_version,
			created_at,
			updated_at,
			deleted_at`

	insertBreeding = `
		INSERT INTO breedings (` + breedingColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	getBreedingByID = `
		SELECT ` + breedingColumns + `
		FROM breedings
		WHERE id = $1;`

	listBreedingsByUser = `
		SELECT ` + breedingColumns + `
		FROM breedings
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC;`

	updateBreeding = `
		UPDATE breedings SET
			male_id       = $1,
			female_id     = $2,
			projected_coi = $3,
			risk_level    = $4,
			offspring_id  = $5,
			breeding_date = $6,
			notes         = $7,
			sync_status   = $8,
			sync_version  = $9,
			updated_at    = $10,
			deleted_at    = $11
		WHERE id = $12;`

	softDeleteBreeding = `
		UPDATE breedings SET
			deleted_at  = $1,
			updated_at  = $1,
			sync_status = $2
		WHERE id = $3;`

	upsertBreeding = `
		INSERT INTO breedings (` + breedingColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			male_id       = excluded.male_id,
			female_id     = excluded.female_id,
			projected_coi = excluded.projected_coi,
			risk_level    = excluded.risk_level,
			offspring_id  = excluded.offspring_id,
			breeding_date = excluded.breeding_date,
			notes         = excluded.notes,
			user_id       = excluded.user_id,
			sync_status   = excluded.sync_status,
			sync_version  = excluded.sync_version,
			created_at    = excluded.created_at,
			updated_at    = excluded.updated_at,
			deleted_at    = excluded.deleted_at;`
)

type breedingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewBreedingsRepository(db *DB, logger *logger.Logger) BreedingsRepository {
	return &breedingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *breedingsRepository) ListByUser(ctx context.Context, userID string) ([]models.Breeding, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listBreedingsByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "breedingsRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to query breedings")
		return nil, fmt.Errorf("failed to query breedings: %w", err)
	}
	defer rows.Close()

	var breedings []models.Breeding
	for rows.Next() {
		breeding, scanErr := scanBreeding(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		breedings = append(breedings, breeding)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating breeding rows: %w", rowsErr)
	}

	return breedings, nil
}

func (r *breedingsRepository) GetByID(ctx context.Context, id string) (models.Breeding, error) {
	row := r.DB.QueryRowContext(ctx, getBreedingByID, id)

	breeding, err := scanBreeding(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Breeding{}, fmt.Errorf("%w: breeding %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.Breeding{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return breeding, nil
}

func (r *breedingsRepository) CreateLocal(ctx context.Context, breeding models.Breeding) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertBreeding,
		breeding.ID,
		breeding.MaleID,
		breeding.FemaleID,
		breeding.ProjectedCOI,
		breeding.RiskLevel,
		breeding.OffspringID,
		breeding.BreedingDate,
		breeding.Notes,
		breeding.UserID,
		breeding.SyncStatus,
		breeding.SyncVersion,
		breeding.CreatedAt,
		breeding.UpdatedAt,
		breeding.DeletedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "breedingsRepository.CreateLocal").
			Str("id", breeding.ID).
			Msg("failed to insert breeding")
		return fmt.Errorf("failed to create breeding (id=%s): %w", breeding.ID, err)
	}

	return nil
}

func (r *breedingsRepository) UpdateLocal(ctx context.Context, breeding models.Breeding) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateBreeding,
		breeding.MaleID,
		breeding.FemaleID,
		breeding.ProjectedCOI,
		breeding.RiskLevel,
		breeding.OffspringID,
		breeding.BreedingDate,
		breeding.Notes,
		breeding.SyncStatus,
		breeding.SyncVersion,
		breeding.UpdatedAt,
		breeding.DeletedAt,
		breeding.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "breedingsRepository.UpdateLocal").
			Str("id", breeding.ID).
			Msg("failed to update breeding")
		return fmt.Errorf("failed to update breeding (id=%s): %w", breeding.ID, err)
	}

	return nil
}

func (r *breedingsRepository) SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, softDeleteBreeding, deletedAt, models.RecordPending, id)
	if err != nil {
		log.Err(err).
			Str("func", "breedingsRepository.SoftDeleteLocal").
			Str("id", id).
			Msg("failed to soft delete breeding")
		return fmt.Errorf("failed to delete breeding (id=%s): %w", id, err)
	}

	return nil
}

func (r *breedingsRepository) UpsertFromServer(ctx context.Context, records []models.Breeding) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.DB.ExecContext(ctx, upsertBreeding,
			record.ID,
			record.MaleID,
			record.FemaleID,
			record.ProjectedCOI,
			record.RiskLevel,
			record.OffspringID,
			record.BreedingDate,
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
				Str("func", "breedingsRepository.UpsertFromServer").
				Str("id", record.ID).
				Msg("failed to upsert breeding from server")
			return fmt.Errorf("failed to upsert breeding (id=%s): %w", record.ID, err)
		}
	}

	return nil
}

func scanBreeding(scan func(dest ...any) error) (models.Breeding, error) {
	var breeding models.Breeding

	err := scan(
		&breeding.ID,
		&breeding.MaleID,
		&breeding.FemaleID,
		&breeding.ProjectedCOI,
		&breeding.RiskLevel,
		&breeding.OffspringID,
		&breeding.BreedingDate,
		&breeding.Notes,
		&breeding.UserID,
		&breeding.SyncStatus,
		&breeding.SyncVersion,
		&breeding.CreatedAt,
		&breeding.UpdatedAt,
		&breeding.DeletedAt,
	)
	if err != nil {
		return models.Breeding{}, err
	}

	return breeding, nil
}
