// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/store"
	"github.com/jmoliner/herdsync/models"
)

type mutationService struct {
	storages *store.ClientStorages
	sync     SyncService
	job      SyncJob
	logger   *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewMutationService builds the local-first write path. Every mutation lands
// in SQLite first, then in the sync queue, then the background job is kicked
// so the change reaches the server as soon as connectivity allows.
func NewMutationService(storages *store.ClientStorages, syncSvc SyncService, job SyncJob, log *logger.Logger) MutationService {
	return &mutationService{
		storages: storages,
		sync:     syncSvc,
		job:      job,
		logger:   log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *mutationService) CreateAnimal(ctx context.Context, userID string, input models.AnimalCreateInput) (models.Animal, error) {
	if userID == "" {
		return models.Animal{}, ErrEmptyUserID
	}

	now := s.nowISO()
	animal := models.Animal{
		ID:          s.newID(),
		Crotal:      input.Crotal,
		Sex:         input.Sex,
		Species:     input.Species,
		BirthDate:   input.BirthDate,
		IsFounder:   input.IsFounder,
		FatherID:    input.FatherID,
		MotherID:    input.MotherID,
		UserID:      userID,
		SyncStatus:  models.RecordPending,
		SyncVersion: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storages.Animals.CreateLocal(ctx, animal); err != nil {
		return models.Animal{}, fmt.Errorf("create animal locally: %w", err)
	}
	if err := s.enqueue(ctx, models.TableAnimals, models.ActionCreate, animal.ID, recordPayload(animal), 1); err != nil {
		return models.Animal{}, err
	}
	return animal, nil
}

func (s *mutationService) UpdateAnimal(ctx context.Context, id string, input models.AnimalUpdateInput) (models.Animal, error) {
	if id == "" {
		return models.Animal{}, ErrEmptyRecordID
	}

	animal, err := s.storages.Animals.GetByID(ctx, id)
	if err != nil {
		return models.Animal{}, fmt.Errorf("load animal %s: %w", id, err)
	}

	changes := map[string]any{}
	if input.Crotal != nil {
		animal.Crotal = *input.Crotal
		changes["crotal"] = *input.Crotal
	}
	if input.Species != nil {
		animal.Species = *input.Species
		changes["species"] = *input.Species
	}
	if input.BirthDate != nil {
		animal.BirthDate = input.BirthDate
		changes["birthDate"] = *input.BirthDate
	}
	if input.IsFounder != nil {
		animal.IsFounder = *input.IsFounder
		changes["isFounder"] = *input.IsFounder
	}
	if input.FatherID != nil {
		animal.FatherID = input.FatherID
		changes["fatherId"] = *input.FatherID
	}
	if input.MotherID != nil {
		animal.MotherID = input.MotherID
		changes["motherId"] = *input.MotherID
	}
	if len(changes) == 0 {
		return animal, nil
	}

	now := s.nowISO()
	animal.SyncVersion++
	animal.SyncStatus = models.RecordPending
	animal.UpdatedAt = now
	changes["updatedAt"] = now

	if err = s.storages.Animals.UpdateLocal(ctx, animal); err != nil {
		return models.Animal{}, fmt.Errorf("update animal locally: %w", err)
	}
	if err = s.enqueue(ctx, models.TableAnimals, models.ActionUpdate, id, changes, animal.SyncVersion); err != nil {
		return models.Animal{}, err
	}
	return animal, nil
}

func (s *mutationService) DeleteAnimal(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyRecordID
	}

	animal, err := s.storages.Animals.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load animal %s: %w", id, err)
	}

	if err = s.storages.Animals.SoftDeleteLocal(ctx, id, s.nowISO()); err != nil {
		return fmt.Errorf("delete animal locally: %w", err)
	}
	return s.enqueue(ctx, models.TableAnimals, models.ActionDelete, id, nil, animal.SyncVersion+1)
}

func (s *mutationService) CreateBreeding(ctx context.Context, userID string, input models.BreedingCreateInput) (models.Breeding, error) {
	if userID == "" {
		return models.Breeding{}, ErrEmptyUserID
	}

	now := s.nowISO()
	breeding := models.Breeding{
		ID:           s.newID(),
		MaleID:       input.MaleID,
		FemaleID:     input.FemaleID,
		ProjectedCOI: input.ProjectedCOI,
		RiskLevel:    input.RiskLevel,
		BreedingDate: input.BreedingDate,
		Notes:        input.Notes,
		UserID:       userID,
		SyncStatus:   models.RecordPending,
		SyncVersion:  1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storages.Breedings.CreateLocal(ctx, breeding); err != nil {
		return models.Breeding{}, fmt.Errorf("create breeding locally: %w", err)
	}
	if err := s.enqueue(ctx, models.TableBreedings, models.ActionCreate, breeding.ID, recordPayload(breeding), 1); err != nil {
		return models.Breeding{}, err
	}
	return breeding, nil
}

func (s *mutationService) UpdateBreeding(ctx context.Context, id string, input models.BreedingUpdateInput) (models.Breeding, error) {
	if id == "" {
		return models.Breeding{}, ErrEmptyRecordID
	}

	breeding, err := s.storages.Breedings.GetByID(ctx, id)
	if err != nil {
		return models.Breeding{}, fmt.Errorf("load breeding %s: %w", id, err)
	}

	changes := map[string]any{}
	if input.BreedingDate != nil {
		breeding.BreedingDate = input.BreedingDate
		changes["breedingDate"] = *input.BreedingDate
	}
	if input.Notes != nil {
		breeding.Notes = input.Notes
		changes["notes"] = *input.Notes
	}
	if input.OffspringID != nil {
		breeding.OffspringID = input.OffspringID
		changes["offspringId"] = *input.OffspringID
	}
	if len(changes) == 0 {
		return breeding, nil
	}

	now := s.nowISO()
	breeding.SyncVersion++
	breeding.SyncStatus = models.RecordPending
	breeding.UpdatedAt = now
	changes["updatedAt"] = now

	if err = s.storages.Breedings.UpdateLocal(ctx, breeding); err != nil {
		return models.Breeding{}, fmt.Errorf("update breeding locally: %w", err)
	}
	if err = s.enqueue(ctx, models.TableBreedings, models.ActionUpdate, id, changes, breeding.SyncVersion); err != nil {
		return models.Breeding{}, err
	}
	return breeding, nil
}

func (s *mutationService) DeleteBreeding(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyRecordID
	}

	breeding, err := s.storages.Breedings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load breeding %s: %w", id, err)
	}

	if err = s.storages.Breedings.SoftDeleteLocal(ctx, id, s.nowISO()); err != nil {
		return fmt.Errorf("delete breeding locally: %w", err)
	}
	return s.enqueue(ctx, models.TableBreedings, models.ActionDelete, id, nil, breeding.SyncVersion+1)
}

func (s *mutationService) CreateHealthRecord(ctx context.Context, userID string, input models.HealthRecordCreateInput) (models.HealthRecord, error) {
	if userID == "" {
		return models.HealthRecord{}, ErrEmptyUserID
	}

	now := s.nowISO()
	record := models.HealthRecord{
		ID:          s.newID(),
		AnimalID:    input.AnimalID,
		Type:        input.Type,
		Date:        input.Date,
		Notes:       input.Notes,
		NextDueDate: input.NextDueDate,
		Completed:   input.Completed,
		UserID:      userID,
		SyncStatus:  models.RecordPending,
		SyncVersion: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storages.HealthRecords.CreateLocal(ctx, record); err != nil {
		return models.HealthRecord{}, fmt.Errorf("create health record locally: %w", err)
	}
	if err := s.enqueue(ctx, models.TableHealthRecords, models.ActionCreate, record.ID, recordPayload(record), 1); err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

func (s *mutationService) UpdateHealthRecord(ctx context.Context, id string, input models.HealthRecordUpdateInput) (models.HealthRecord, error) {
	if id == "" {
		return models.HealthRecord{}, ErrEmptyRecordID
	}

	record, err := s.storages.HealthRecords.GetByID(ctx, id)
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("load health record %s: %w", id, err)
	}

	changes := map[string]any{}
	if input.Type != nil {
		record.Type = *input.Type
		changes["type"] = *input.Type
	}
	if input.Date != nil {
		record.Date = *input.Date
		changes["date"] = *input.Date
	}
	if input.Notes != nil {
		record.Notes = input.Notes
		changes["notes"] = *input.Notes
	}
	if input.NextDueDate != nil {
		record.NextDueDate = input.NextDueDate
		changes["nextDueDate"] = *input.NextDueDate
	}
	if input.Completed != nil {
		record.Completed = *input.Completed
		changes["completed"] = *input.Completed
	}
	if len(changes) == 0 {
		return record, nil
	}

	now := s.nowISO()
	record.SyncVersion++
	record.SyncStatus = models.RecordPending
	record.UpdatedAt = now
	changes["updatedAt"] = now

	if err = s.storages.HealthRecords.UpdateLocal(ctx, record); err != nil {
		return models.HealthRecord{}, fmt.Errorf("update health record locally: %w", err)
	}
	if err = s.enqueue(ctx, models.TableHealthRecords, models.ActionUpdate, id, changes, record.SyncVersion); err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

func (s *mutationService) DeleteHealthRecord(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyRecordID
	}

	record, err := s.storages.HealthRecords.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load health record %s: %w", id, err)
	}

	if err = s.storages.HealthRecords.SoftDeleteLocal(ctx, id, s.nowISO()); err != nil {
		return fmt.Errorf("delete health record locally: %w", err)
	}
	return s.enqueue(ctx, models.TableHealthRecords, models.ActionDelete, id, nil, record.SyncVersion+1)
}

func (s *mutationService) CreateProductionRecord(ctx context.Context, userID string, input models.ProductionRecordCreateInput) (models.ProductionRecord, error) {
	if userID == "" {
		return models.ProductionRecord{}, ErrEmptyUserID
	}

	now := s.nowISO()
	record := models.ProductionRecord{
		ID:           s.newID(),
		AnimalID:     input.AnimalID,
		Type:         input.Type,
		Date:         input.Date,
		Value:        input.Value,
		Unit:         input.Unit,
		QualityScore: input.QualityScore,
		Notes:        input.Notes,
		UserID:       userID,
		SyncStatus:   models.RecordPending,
		SyncVersion:  1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storages.ProductionRecords.CreateLocal(ctx, record); err != nil {
		return models.ProductionRecord{}, fmt.Errorf("create production record locally: %w", err)
	}
	if err := s.enqueue(ctx, models.TableProductionRecords, models.ActionCreate, record.ID, recordPayload(record), 1); err != nil {
		return models.ProductionRecord{}, err
	}
	return record, nil
}

func (s *mutationService) UpdateProductionRecord(ctx context.Context, id string, input models.ProductionRecordUpdateInput) (models.ProductionRecord, error) {
	if id == "" {
		return models.ProductionRecord{}, ErrEmptyRecordID
	}

	record, err := s.storages.ProductionRecords.GetByID(ctx, id)
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("load production record %s: %w", id, err)
	}

	changes := map[string]any{}
	if input.Date != nil {
		record.Date = *input.Date
		changes["date"] = *input.Date
	}
	if input.Value != nil {
		record.Value = *input.Value
		changes["value"] = *input.Value
	}
	if input.Unit != nil {
		record.Unit = *input.Unit
		changes["unit"] = *input.Unit
	}
	if input.QualityScore != nil {
		record.QualityScore = input.QualityScore
		changes["qualityScore"] = *input.QualityScore
	}
	if input.Notes != nil {
		record.Notes = input.Notes
		changes["notes"] = *input.Notes
	}
	if len(changes) == 0 {
		return record, nil
	}

	now := s.nowISO()
	record.SyncVersion++
	record.SyncStatus = models.RecordPending
	record.UpdatedAt = now
	changes["updatedAt"] = now

	if err = s.storages.ProductionRecords.UpdateLocal(ctx, record); err != nil {
		return models.ProductionRecord{}, fmt.Errorf("update production record locally: %w", err)
	}
	if err = s.enqueue(ctx, models.TableProductionRecords, models.ActionUpdate, id, changes, record.SyncVersion); err != nil {
		return models.ProductionRecord{}, err
	}
	return record, nil
}

func (s *mutationService) DeleteProductionRecord(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyRecordID
	}

	record, err := s.storages.ProductionRecords.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load production record %s: %w", id, err)
	}

	if err = s.storages.ProductionRecords.SoftDeleteLocal(ctx, id, s.nowISO()); err != nil {
		return fmt.Errorf("delete production record locally: %w", err)
	}
	return s.enqueue(ctx, models.TableProductionRecords, models.ActionDelete, id, nil, record.SyncVersion+1)
}

// enqueue records the mutation in the durable queue and nudges the
// background job so the change leaves the device as soon as possible.
func (s *mutationService) enqueue(ctx context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error {
	if err := s.sync.EnqueueChange(ctx, tableName, action, recordID, payload, clientVersion); err != nil {
		return err
	}
	if s.job != nil {
		s.job.Kick()
	}
	return nil
}

func (s *mutationService) nowISO() string {
	return s.now().UTC().Format(time.RFC3339)
}

// recordPayload flattens a record into the generic field map carried by the
// sync queue, dropping the client-only bookkeeping columns.
func recordPayload(record any) map[string]any {
	raw, err := json.Marshal(record)
	if err != nil {
		return map[string]any{}
	}
	payload := map[string]any{}
	if err = json.Unmarshal(raw, &payload); err != nil {
		return map[string]any{}
	}
	delete(payload, "syncStatus")
	delete(payload, "syncVersion")
	return payload
}
