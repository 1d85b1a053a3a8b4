// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/mock"
	"github.com/jmoliner/herdsync/internal/store"
	"github.com/jmoliner/herdsync/models"
)

type enqueueCall struct {
	table    string
	action   models.SyncAction
	recordID string
	payload  map[string]any
	version  int64
}

// captureSync records EnqueueChange calls instead of hitting a real queue.
type captureSync struct {
	err   error
	calls []enqueueCall
}

func (c *captureSync) SyncNow(_ context.Context, _ string) {}

func (c *captureSync) HydrateState(_ context.Context) error { return nil }

func (c *captureSync) EnqueueChange(_ context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error {
	c.calls = append(c.calls, enqueueCall{tableName, action, recordID, payload, clientVersion})
	return c.err
}

type stubJob struct {
	kicks atomic.Int64
}

func (j *stubJob) Start(_ context.Context, _ string, _ time.Duration) {}
func (j *stubJob) Kick()                                             { j.kicks.Add(1) }
func (j *stubJob) Stop()                                             {}

func newTestMutations(t *testing.T, ctrl *gomock.Controller) (*mutationService, orchestratorMocks, *captureSync, *stubJob) {
	t.Helper()

	m := orchestratorMocks{
		queue:      mock.NewMockSyncQueueRepository(ctrl),
		animals:    mock.NewMockAnimalsRepository(ctrl),
		breedings:  mock.NewMockBreedingsRepository(ctrl),
		health:     mock.NewMockHealthRecordsRepository(ctrl),
		production: mock.NewMockProductionRecordsRepository(ctrl),
	}
	storages := &store.ClientStorages{
		SyncQueue:         m.queue,
		Animals:           m.animals,
		Breedings:         m.breedings,
		HealthRecords:     m.health,
		ProductionRecords: m.production,
	}

	sink := &captureSync{}
	job := &stubJob{}

	svc := NewMutationService(storages, sink, job, logger.Nop()).(*mutationService)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "fixed-id" }

	return svc, m, sink, job
}

// ── animals ──────────────────────────────────────────────────────────────────

func TestCreateAnimal_LocalFirstThenQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, job := newTestMutations(t, ctrl)
	ctx := context.Background()

	var saved models.Animal
	m.animals.EXPECT().
		CreateLocal(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Animal) error {
			saved = a
			return nil
		})

	got, err := svc.CreateAnimal(ctx, "user-1", models.AnimalCreateInput{
		Crotal:  "ES-001",
		Sex:     models.SexFemale,
		Species: "ovine",
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", got.ID)
	assert.Equal(t, models.RecordPending, got.SyncStatus)
	assert.Equal(t, int64(1), got.SyncVersion)
	assert.Equal(t, "2026-08-29T12:00:00Z", got.CreatedAt)
	assert.Equal(t, got, saved, "the queued record matches the stored one")

	require.Len(t, sink.calls, 1)
	call := sink.calls[0]
	assert.Equal(t, models.TableAnimals, call.table)
	assert.Equal(t, models.ActionCreate, call.action)
	assert.Equal(t, "fixed-id", call.recordID)
	assert.Equal(t, int64(1), call.version)
	assert.Equal(t, "ES-001", call.payload["crotal"])
	assert.NotContains(t, call.payload, "syncStatus", "bookkeeping columns never travel")
	assert.NotContains(t, call.payload, "syncVersion")

	assert.Equal(t, int64(1), job.kicks.Load(), "a local mutation nudges the sync job")
}

func TestCreateAnimal_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestMutations(t, ctrl)

	_, err := svc.CreateAnimal(context.Background(), "", models.AnimalCreateInput{Crotal: "ES-001"})
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestUpdateAnimal_PartialChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	existing := models.Animal{
		ID: "a1", Crotal: "ES-001", Species: "ovine", UserID: "user-1",
		SyncStatus: models.RecordSynced, SyncVersion: 3,
		CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-01T00:00:00Z",
	}
	m.animals.EXPECT().GetByID(ctx, "a1").Return(existing, nil)

	var updated models.Animal
	m.animals.EXPECT().
		UpdateLocal(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Animal) error {
			updated = a
			return nil
		})

	crotal := "ES-099"
	got, err := svc.UpdateAnimal(ctx, "a1", models.AnimalUpdateInput{Crotal: &crotal})
	require.NoError(t, err)

	assert.Equal(t, "ES-099", got.Crotal)
	assert.Equal(t, "ovine", got.Species, "untouched fields survive")
	assert.Equal(t, int64(4), got.SyncVersion)
	assert.Equal(t, models.RecordPending, got.SyncStatus)
	assert.Equal(t, got, updated)

	require.Len(t, sink.calls, 1)
	call := sink.calls[0]
	assert.Equal(t, models.ActionUpdate, call.action)
	assert.Equal(t, int64(4), call.version)
	// sólo los campos tocados viajan en el payload
	assert.Equal(t, "ES-099", call.payload["crotal"])
	assert.Contains(t, call.payload, "updatedAt")
	assert.NotContains(t, call.payload, "species")
}

func TestUpdateAnimal_NoChanges_NoWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	existing := models.Animal{ID: "a1", Crotal: "ES-001", SyncVersion: 3}
	m.animals.EXPECT().GetByID(ctx, "a1").Return(existing, nil)

	got, err := svc.UpdateAnimal(ctx, "a1", models.AnimalUpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.Empty(t, sink.calls)
}

func TestDeleteAnimal_SoftDeleteAndQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	m.animals.EXPECT().GetByID(ctx, "a1").Return(models.Animal{ID: "a1", SyncVersion: 2}, nil)
	m.animals.EXPECT().SoftDeleteLocal(ctx, "a1", "2026-08-29T12:00:00Z").Return(nil)

	require.NoError(t, svc.DeleteAnimal(ctx, "a1"))

	require.Len(t, sink.calls, 1)
	call := sink.calls[0]
	assert.Equal(t, models.ActionDelete, call.action)
	assert.Nil(t, call.payload)
	assert.Equal(t, int64(3), call.version)
}

func TestDeleteAnimal_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, _, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	m.animals.EXPECT().GetByID(ctx, "missing").Return(models.Animal{}, store.ErrRecordNotFound)

	err := svc.DeleteAnimal(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestCreateAnimal_QueueFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, job := newTestMutations(t, ctrl)
	ctx := context.Background()

	m.animals.EXPECT().CreateLocal(ctx, gomock.Any()).Return(nil)
	sink.err = errors.New("db locked")

	_, err := svc.CreateAnimal(ctx, "user-1", models.AnimalCreateInput{Crotal: "ES-001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db locked")
	assert.Zero(t, job.kicks.Load(), "no kick when the queue write failed")
}

// ── other entities ───────────────────────────────────────────────────────────

func TestCreateBreeding_QueuesFullPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	m.breedings.EXPECT().CreateLocal(ctx, gomock.Any()).Return(nil)

	got, err := svc.CreateBreeding(ctx, "user-1", models.BreedingCreateInput{
		MaleID: "a1", FemaleID: "a2", ProjectedCOI: 0.0625, RiskLevel: models.RiskYellow,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SyncVersion)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, models.TableBreedings, sink.calls[0].table)
	assert.Equal(t, "a1", sink.calls[0].payload["maleId"])
	assert.Equal(t, 0.0625, sink.calls[0].payload["projectedCOI"])
}

func TestUpdateHealthRecord_TogglesCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	existing := models.HealthRecord{ID: "h1", AnimalID: "a1", Type: "vaccine", SyncVersion: 1}
	m.health.EXPECT().GetByID(ctx, "h1").Return(existing, nil)
	m.health.EXPECT().UpdateLocal(ctx, gomock.Any()).Return(nil)

	done := true
	got, err := svc.UpdateHealthRecord(ctx, "h1", models.HealthRecordUpdateInput{Completed: &done})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, int64(2), got.SyncVersion)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, true, sink.calls[0].payload["completed"])
}

func TestCreateProductionRecord_KeepsOptionalFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, sink, _ := newTestMutations(t, ctrl)
	ctx := context.Background()

	m.production.EXPECT().CreateLocal(ctx, gomock.Any()).Return(nil)

	score := 8.5
	got, err := svc.CreateProductionRecord(ctx, "user-1", models.ProductionRecordCreateInput{
		AnimalID: "a1", Type: "milk", Date: "2026-08-29", Value: 3.2, Unit: "l", QualityScore: &score,
	})
	require.NoError(t, err)
	require.NotNil(t, got.QualityScore)
	assert.Equal(t, 8.5, *got.QualityScore)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, models.TableProductionRecords, sink.calls[0].table)
	assert.Equal(t, 8.5, sink.calls[0].payload["qualityScore"])
}

func TestDeleteProductionRecord_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestMutations(t, ctrl)

	err := svc.DeleteProductionRecord(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyRecordID)
}
