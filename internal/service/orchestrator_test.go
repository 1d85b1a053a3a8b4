// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmoliner/herdsync/internal/adapter"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/mock"
	"github.com/jmoliner/herdsync/internal/store"
	"github.com/jmoliner/herdsync/models"
)

type orchestratorMocks struct {
	queue      *mock.MockSyncQueueRepository
	animals    *mock.MockAnimalsRepository
	breedings  *mock.MockBreedingsRepository
	health     *mock.MockHealthRecordsRepository
	production *mock.MockProductionRecordsRepository
	api        *mock.MockSyncAPI
	reach      *mock.MockReachability
	state      *StatePublisher
}

func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller) (*syncOrchestrator, orchestratorMocks) {
	t.Helper()

	m := orchestratorMocks{
		queue:      mock.NewMockSyncQueueRepository(ctrl),
		animals:    mock.NewMockAnimalsRepository(ctrl),
		breedings:  mock.NewMockBreedingsRepository(ctrl),
		health:     mock.NewMockHealthRecordsRepository(ctrl),
		production: mock.NewMockProductionRecordsRepository(ctrl),
		api:        mock.NewMockSyncAPI(ctrl),
		reach:      mock.NewMockReachability(ctrl),
		state:      NewStatePublisher(),
	}

	storages := &store.ClientStorages{
		SyncQueue:         m.queue,
		Animals:           m.animals,
		Breedings:         m.breedings,
		HealthRecords:     m.health,
		ProductionRecords: m.production,
	}

	svc := NewSyncOrchestrator(storages, m.api, m.reach, m.state, logger.Nop()).(*syncOrchestrator)
	svc.jitter = func() time.Duration { return 0 }

	return svc, m
}

// expectHydrate wires the store calls performed after every cycle.
func expectHydrate(m orchestratorMocks, count int, lastSyncAt string) {
	m.queue.EXPECT().PendingCount(gomock.Any()).Return(count, nil)
	m.queue.EXPECT().GetLastSyncAt(gomock.Any()).Return(lastSyncAt, nil)
}

// ── SyncNow ──────────────────────────────────────────────────────────────────

func TestSyncNow_EmptyUserID_NoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	svc.SyncNow(context.Background(), "")

	assert.Equal(t, models.SyncStatusIdle, m.state.Snapshot().Status)
}

func TestSyncNow_Offline_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.reach.EXPECT().IsOnline(ctx).Return(false)

	svc.SyncNow(ctx, "user-1")

	got := m.state.Snapshot()
	assert.Equal(t, models.SyncStatusOffline, got.Status)
	assert.Empty(t, got.Error)
}

func TestSyncNow_EmptyQueue_PullOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.reach.EXPECT().IsOnline(ctx).Return(true)
	m.queue.EXPECT().GetOrCreateDeviceID(ctx).Return("client-abc", nil)
	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.queue.EXPECT().GetLastSyncAt(ctx).Return("", nil)

	pulled := models.PullResult{
		Animals:       []models.Animal{{ID: "a1", Crotal: "ES-001"}},
		SyncTimestamp: "2026-08-29T10:00:00Z",
	}
	m.api.EXPECT().
		Pull(ctx, models.PullRequest{
			UserID:   "user-1",
			DeviceID: "client-abc",
			Tables:   models.TrackedTables(),
		}).
		Return(pulled, nil)

	m.animals.EXPECT().UpsertFromServer(ctx, pulled.Animals).Return(nil)
	m.breedings.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.health.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.production.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.queue.EXPECT().SetLastSyncAt(ctx, "2026-08-29T10:00:00Z").Return(nil)

	expectHydrate(m, 0, "2026-08-29T10:00:00Z")

	svc.SyncNow(ctx, "user-1")

	got := m.state.Snapshot()
	assert.Equal(t, models.SyncStatusIdle, got.Status)
	assert.Equal(t, "2026-08-29T10:00:00Z", got.LastSyncAt)
	assert.Zero(t, got.PendingChanges)
	assert.Empty(t, got.Error)
}

func TestSyncNow_PushWithConflict_ResolvedServerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := []models.QueueEntry{
		{ID: "q1", TableName: models.TableAnimals, RecordID: "a1", Action: models.ActionUpdate,
			Payload: map[string]any{"crotal": "ES-002"}, ClientVersion: 2, CreatedAt: 100},
	}

	m.reach.EXPECT().IsOnline(ctx).Return(true)
	m.queue.EXPECT().GetOrCreateDeviceID(ctx).Return("client-abc", nil)
	m.queue.EXPECT().ListPending(ctx).Return(pending, nil)

	m.api.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{
		Success: true,
		Conflicts: []models.PushConflict{
			{TableName: models.TableAnimals, RecordID: "a1", ServerVersion: 5, ClientVersion: 2},
		},
	}, nil)
	m.api.EXPECT().ResolveConflict(ctx, models.ResolveConflictRequest{
		Resolution: models.ResolutionServer,
		TableName:  models.TableAnimals,
		RecordID:   "a1",
	}).Return(nil)

	// Conflicted rows are cleared: the pull brings the server copy.
	m.queue.EXPECT().ClearByIDs(ctx, []string{"q1"}).Return(nil)

	m.queue.EXPECT().GetLastSyncAt(ctx).Return("T0", nil)
	m.api.EXPECT().Pull(ctx, gomock.Any()).Return(models.PullResult{SyncTimestamp: "T1"}, nil)
	m.animals.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.breedings.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.health.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.production.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.queue.EXPECT().SetLastSyncAt(ctx, "T1").Return(nil)

	expectHydrate(m, 0, "T1")

	svc.SyncNow(ctx, "user-1")

	assert.Equal(t, models.SyncStatusIdle, m.state.Snapshot().Status)
}

func TestSyncNow_PushRejection_KeepsRowsAndReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := []models.QueueEntry{
		{ID: "q1", TableName: models.TableAnimals, RecordID: "a1", Action: models.ActionUpdate,
			Payload: map[string]any{"crotal": "ES-002"}, ClientVersion: 2, CreatedAt: 100},
		{ID: "q2", TableName: models.TableBreedings, RecordID: "b1", Action: models.ActionDelete,
			ClientVersion: 3, CreatedAt: 200},
	}

	m.reach.EXPECT().IsOnline(ctx).Return(true)
	m.queue.EXPECT().GetOrCreateDeviceID(ctx).Return("client-abc", nil)
	m.queue.EXPECT().ListPending(ctx).Return(pending, nil)

	m.api.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{
		Success:       false,
		SyncedChanges: 1,
		Errors: []models.PushError{
			{TableName: models.TableBreedings, RecordID: "b1", Message: "foreign key violation"},
		},
	}, nil)

	// Only the accepted entry is cleared; the rejected one stays queued.
	m.queue.EXPECT().ClearByIDs(ctx, []string{"q1"}).Return(nil)

	m.queue.EXPECT().GetLastSyncAt(ctx).Return("T0", nil)
	m.api.EXPECT().Pull(ctx, gomock.Any()).Return(models.PullResult{SyncTimestamp: "T1"}, nil)
	m.animals.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.breedings.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.health.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.production.EXPECT().UpsertFromServer(ctx, gomock.Len(0)).Return(nil)
	m.queue.EXPECT().SetLastSyncAt(ctx, "T1").Return(nil)

	expectHydrate(m, 1, "T1")

	svc.SyncNow(ctx, "user-1")

	got := m.state.Snapshot()
	assert.Equal(t, models.SyncStatusError, got.Status)
	assert.Equal(t, "foreign key violation", got.Error)
	assert.Equal(t, 1, got.PendingChanges)
	assert.Equal(t, 1, svc.consecutiveFailures, "partial rejection arms backoff")
}

func TestSyncNow_NetworkFailure_BecomesOfflineWithoutBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	// Arm a previous failure so we can see it reset.
	svc.consecutiveFailures = 3

	m.reach.EXPECT().IsOnline(ctx).Return(true)
	m.queue.EXPECT().GetOrCreateDeviceID(ctx).Return("client-abc", nil)
	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.queue.EXPECT().GetLastSyncAt(ctx).Return("", nil)
	m.api.EXPECT().Pull(ctx, gomock.Any()).
		Return(models.PullResult{}, adapter.ErrNetworkUnavailable)

	expectHydrate(m, 0, "")

	svc.SyncNow(ctx, "user-1")

	got := m.state.Snapshot()
	assert.Equal(t, models.SyncStatusOffline, got.Status)
	assert.Empty(t, got.Error, "going offline is not an error")
	assert.Zero(t, svc.consecutiveFailures, "transport failure resets backoff")
}

func TestSyncNow_StoreFailure_ArmsBackoffAndSkipsUntilRetryWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	now := base
	svc.now = func() time.Time { return now }

	m.reach.EXPECT().IsOnline(ctx).Return(true)
	m.queue.EXPECT().GetOrCreateDeviceID(ctx).Return("", errors.New("disk gone"))
	expectHydrate(m, 0, "")

	svc.SyncNow(ctx, "user-1")

	got := m.state.Snapshot()
	assert.Equal(t, models.SyncStatusError, got.Status)
	assert.Contains(t, got.Error, "disk gone")

	// Inside the 5s window: nothing runs, not even the reachability probe
	// matters past the gate.
	now = base.Add(2 * time.Second)
	svc.SyncNow(ctx, "user-1")

	// Past the window the cycle runs again.
	now = base.Add(6 * time.Second)
	m.reach.EXPECT().IsOnline(ctx).Return(false)
	svc.SyncNow(ctx, "user-1")
	assert.Equal(t, models.SyncStatusOffline, m.state.Snapshot().Status)
}

func TestSyncNow_AlreadyRunning_Skipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)

	require.True(t, svc.tryAcquire())
	defer svc.release()

	svc.SyncNow(context.Background(), "user-1")
	assert.Equal(t, models.SyncStatusIdle, m.state.Snapshot().Status)
}

// ── backoff ──────────────────────────────────────────────────────────────────

func TestMarkSyncFailure_ExponentialGrowthWithCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestOrchestrator(t, ctrl)

	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	expected := []time.Duration{
		5 * time.Second,
		10 * time.Second,
		20 * time.Second,
		40 * time.Second,
		80 * time.Second,
		160 * time.Second,
		5 * time.Minute, // 320s capped
		5 * time.Minute,
	}
	for i, want := range expected {
		svc.markSyncFailure()
		assert.Equal(t, base.Add(want), svc.nextRetryAt, "failure #%d", i+1)
	}

	svc.markSyncSuccess()
	assert.Zero(t, svc.consecutiveFailures)
	assert.True(t, svc.nextRetryAt.IsZero())
}

// ── HydrateState / EnqueueChange ─────────────────────────────────────────────

func TestHydrateState_PublishesCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().PendingCount(ctx).Return(4, nil)
	m.queue.EXPECT().GetLastSyncAt(ctx).Return("T9", nil)

	require.NoError(t, svc.HydrateState(ctx))

	got := m.state.Snapshot()
	assert.Equal(t, 4, got.PendingChanges)
	assert.Equal(t, "T9", got.LastSyncAt)
}

func TestEnqueueChange_PersistsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	payload := map[string]any{"crotal": "ES-001"}
	m.queue.EXPECT().
		Enqueue(ctx, models.TableAnimals, models.ActionCreate, "a1", payload, int64(1)).
		Return(nil)
	m.queue.EXPECT().PendingCount(ctx).Return(1, nil)

	require.NoError(t, svc.EnqueueChange(ctx, models.TableAnimals, models.ActionCreate, "a1", payload, 1))
	assert.Equal(t, 1, m.state.Snapshot().PendingChanges)
}

func TestEnqueueChange_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().
		Enqueue(ctx, models.TableAnimals, models.ActionCreate, "a1", gomock.Any(), int64(1)).
		Return(errors.New("db locked"))

	err := svc.EnqueueChange(ctx, models.TableAnimals, models.ActionCreate, "a1", nil, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db locked")
}
