// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

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
	animalColumns = `
			id,
			crotal,
			sex,
			species,
			birth_date,
			is_founder,
			father_id,
			mother_id,
			user_id,
			sync_status,
			sync_version,
			created_at,
			updated_at,
			deleted_at`

	insertAnimal = `
		INSERT INTO animals (` + animalColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	getAnimalByID = `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE id = $1;`

	listAnimalsByUser = `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC;`

	updateAnimal = `
		UPDATE animals SET
			crotal       = $1,
			sex          = $2,
			species      = $3,
			birth_date   = $4,
			is_founder   = $5,
			father_id    = $6,
			mother_id    = $7,
			sync_status  = $8,
			sync_version = $9,
			updated_at   = $10,
			deleted_at   = $11
		WHERE id = $12;`

	softDeleteAnimal = `
		UPDATE animals SET
			deleted_at  = $1,
			updated_at  = $1,
			sync_status = $2
		WHERE id = $3;`

	upsertAnimal = `
		INSERT INTO animals (` + animalColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			crotal       = excluded.crotal,
			sex          = excluded.sex,
			species      = excluded.species,
			birth_date   = excluded.birth_date,
			is_founder   = excluded.is_founder,
			father_id    = excluded.father_id,
			mother_id    = excluded.mother_id,
			user_id      = excluded.user_id,
			sync_status  = excluded.sync_status,
			sync_version = excluded.sync_version,
			created_at   = excluded.created_at,
			updated_at   = excluded.updated_at,
			deleted_at   = excluded.deleted_at;`
)

type animalsRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnimalsRepository(db *DB, logger *logger.Logger) AnimalsRepository {
	return &animalsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *animalsRepository) ListByUser(ctx context.Context, userID string) ([]models.Animal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAnimalsByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "animalsRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to query animals")
		return nil, fmt.Errorf("failed to query animals: %w", err)
	}
	defer rows.Close()

	var animals []models.Animal
	for rows.Next() {
		animal, scanErr := scanAnimal(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "animalsRepository.ListByUser").
				Str("user_id", userID).
				Msg("failed to scan animal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		animals = append(animals, animal)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating animal rows: %w", rowsErr)
	}

	return animals, nil
}

func (r *animalsRepository) GetByID(ctx context.Context, id string) (models.Animal, error) {
	row := r.DB.QueryRowContext(ctx, getAnimalByID, id)

	animal, err := scanAnimal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Animal{}, fmt.Errorf("%w: animal %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.Animal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return animal, nil
}

func (r *animalsRepository) CreateLocal(ctx context.Context, animal models.Animal) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertAnimal,
		animal.ID,
		animal.Crotal,
		animal.Sex,
		animal.Species,
		animal.BirthDate,
		animal.IsFounder,
		animal.FatherID,
		animal.MotherID,
		animal.UserID,
		animal.SyncStatus,
		animal.SyncVersion,
		animal.CreatedAt,
		animal.UpdatedAt,
		animal.DeletedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "animalsRepository.CreateLocal").
			Str("id", animal.ID).
			Msg("failed to insert animal")
		return fmt.Errorf("failed to create animal (id=%s): %w", animal.ID, err)
	}

	return nil
}

func (r *animalsRepository) UpdateLocal(ctx context.Context, animal models.Animal) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateAnimal,
		animal.Crotal,
		animal.Sex,
		animal.Species,
		animal.BirthDate,
		animal.IsFounder,
		animal.FatherID,
		animal.MotherID,
		animal.SyncStatus,
		animal.SyncVersion,
		animal.UpdatedAt,
		animal.DeletedAt,
		animal.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "animalsRepository.UpdateLocal").
			Str("id", animal.ID).
			Msg("failed to update animal")
		return fmt.Errorf("failed to update animal (id=%s): %w", animal.ID, err)
	}

	return nil
}

func (r *animalsRepository) SoftDeleteLocal(ctx context.Context, id string, deletedAt string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, softDeleteAnimal, deletedAt, models.RecordPending, id)
	if err != nil {
		log.Err(err).
			Str("func", "animalsRepository.SoftDeleteLocal").
			Str("id", id).
			Msg("failed to soft delete animal")
		return fmt.Errorf("failed to delete animal (id=%s): %w", id, err)
	}

	return nil
}

func (r *animalsRepository) UpsertFromServer(ctx context.Context, records []models.Animal) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.DB.ExecContext(ctx, upsertAnimal,
			record.ID,
			record.Crotal,
			record.Sex,
			record.Species,
			record.BirthDate,
			record.IsFounder,
			record.FatherID,
			record.MotherID,
			record.UserID,
			record.SyncStatus,
			record.SyncVersion,
			record.CreatedAt,
			record.UpdatedAt,
			record.DeletedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "animalsRepository.UpsertFromServer").
				Str("id", record.ID).
				Msg("failed to upsert animal from server")
			return fmt.Errorf("failed to upsert animal (id=%s): %w", record.ID, err)
		}
	}

	return nil
}

func scanAnimal(scan func(dest ...any) error) (models.Animal, error) {
	var animal models.Animal

	err := scan(
		&animal.ID,
		&animal.Crotal,
		&animal.Sex,
		&animal.Species,
		&animal.BirthDate,
		&animal.IsFounder,
		&animal.FatherID,
		&animal.MotherID,
		&animal.UserID,
		&animal.SyncStatus,
		&animal.SyncVersion,
		&animal.CreatedAt,
		&animal.UpdatedAt,
		&animal.DeletedAt,
	)
	if err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}
