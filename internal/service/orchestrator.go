// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jmoliner/herdsync/internal/adapter"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/store"
	"github.com/jmoliner/herdsync/models"
)

const (
	baseRetryDelay = 5 * time.Second
	maxRetryDelay  = 5 * time.Minute
	maxRetryJitter = time.Second
)

type syncOrchestrator struct {
	storages     *store.ClientStorages
	api          adapter.SyncAPI
	reachability adapter.Reachability
	state        *StatePublisher
	logger       *logger.Logger

	// running guards the whole cycle: at most one in flight per process.
	runMu   sync.Mutex
	running bool

	backoffMu           sync.Mutex
	consecutiveFailures int
	nextRetryAt         time.Time

	now    func() time.Time
	jitter func() time.Duration
}

// NewSyncOrchestrator builds the sync engine around the local storages, the
// remote API, and a reachability probe. All observable outcomes flow through
// state; SyncNow itself never reports errors to the caller.
func NewSyncOrchestrator(storages *store.ClientStorages, api adapter.SyncAPI, reachability adapter.Reachability, state *StatePublisher, log *logger.Logger) SyncService {
	return &syncOrchestrator{
		storages:     storages,
		api:          api,
		reachability: reachability,
		state:        state,
		logger:       log,
		now:          time.Now,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(maxRetryJitter)))
		},
	}
}

// SyncNow implements SyncService. The cycle is: consolidate and push the
// pending queue, resolve reported conflicts server-wins, clear the
// acknowledged rows, pull remote changes since the checkpoint, merge them
// into the local tables, and advance the checkpoint. A transport failure at
// any step flips the state to offline without counting as a failure; any
// other error arms the exponential backoff.
func (o *syncOrchestrator) SyncNow(ctx context.Context, userID string) {
	log := o.logger.GetChildLogger()

	if userID == "" {
		return
	}
	if !o.tryAcquire() {
		log.Debug().Msg("sync already running, skipping")
		return
	}
	defer o.release()

	if wait := o.retryWait(); wait > 0 {
		log.Debug().Dur("wait", wait).Msg("inside backoff window, skipping")
		return
	}

	if !o.reachability.IsOnline(ctx) {
		o.state.SetStatus(models.SyncStatusOffline)
		o.state.SetError("")
		return
	}

	o.state.SetStatus(models.SyncStatusSyncing)
	o.state.SetError("")

	// Counters and checkpoint are refreshed whatever the outcome.
	defer func() {
		if err := o.HydrateState(ctx); err != nil {
			log.Warn().Err(err).Msg("hydrate state after cycle")
		}
	}()

	pushErrMsg, err := o.runCycle(ctx, userID)
	switch {
	case err != nil && errors.Is(err, adapter.ErrNetworkUnavailable):
		// Going offline mid-cycle is not a failure: the next probe
		// should retry immediately, not after a backoff window.
		log.Info().Err(err).Msg("server unreachable, staying offline")
		o.markSyncSuccess()
		o.state.SetStatus(models.SyncStatusOffline)
		o.state.SetError("")
	case err != nil:
		log.Error().Err(err).Msg("sync cycle failed")
		o.markSyncFailure()
		o.state.SetStatus(models.SyncStatusError)
		o.state.SetError(err.Error())
	case pushErrMsg != "":
		// Pull succeeded but the server rejected part of the push; the
		// rejected rows stay queued for the next cycle.
		log.Warn().Str("reason", pushErrMsg).Msg("push partially rejected")
		o.markSyncFailure()
		o.state.SetStatus(models.SyncStatusError)
		o.state.SetError(pushErrMsg)
	default:
		o.markSyncSuccess()
		o.state.SetStatus(models.SyncStatusIdle)
	}
}

// runCycle executes one push/pull round. It returns a non-empty pushErrMsg
// when the server rejected part of the batch but the cycle itself completed.
func (o *syncOrchestrator) runCycle(ctx context.Context, userID string) (pushErrMsg string, err error) {
	deviceID, err := o.storages.SyncQueue.GetOrCreateDeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("get device id: %w", err)
	}

	pending, err := o.storages.SyncQueue.ListPending(ctx)
	if err != nil {
		return "", fmt.Errorf("list pending queue: %w", err)
	}

	entries := Consolidate(pending)
	if len(entries) > 0 {
		pushErrMsg, err = o.pushEntries(ctx, userID, deviceID, entries)
		if err != nil {
			return "", err
		}
	}

	if err = o.pullAndMerge(ctx, userID, deviceID); err != nil {
		return "", err
	}

	return pushErrMsg, nil
}

func (o *syncOrchestrator) pushEntries(ctx context.Context, userID, deviceID string, entries []models.ConsolidatedEntry) (string, error) {
	log := o.logger.GetChildLogger()

	changes := make([]models.PushChange, 0, len(entries))
	for _, entry := range entries {
		data := entry.Payload
		if data == nil {
			data = map[string]any{}
		}
		changes = append(changes, models.PushChange{
			Action:        entry.Action,
			TableName:     entry.TableName,
			RecordID:      entry.RecordID,
			Data:          data,
			ClientVersion: entry.ClientVersion,
		})
	}

	result, err := o.api.Push(ctx, models.PushRequest{
		UserID:   userID,
		DeviceID: deviceID,
		Changes:  changes,
	})
	if err != nil {
		return "", fmt.Errorf("push changes: %w", err)
	}
	log.Info().
		Int("pushed", len(changes)).
		Int("conflicts", len(result.Conflicts)).
		Int("errors", len(result.Errors)).
		Msg("push completed")

	known := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		known[models.EntryKey(entry.TableName, entry.RecordID)] = struct{}{}
	}

	// Only conflicts and errors that refer to a record we actually pushed
	// matter; anything else the server reports is ignored.
	conflictKeys := make(map[string]struct{})
	for _, c := range result.Conflicts {
		key := models.EntryKey(c.TableName, c.RecordID)
		if _, ok := known[key]; ok {
			conflictKeys[key] = struct{}{}
		}
	}
	errorKeys := make(map[string]struct{})
	for _, e := range result.Errors {
		key := models.EntryKey(e.TableName, e.RecordID)
		if _, ok := known[key]; ok {
			errorKeys[key] = struct{}{}
		}
	}

	for _, c := range result.Conflicts {
		if _, ok := conflictKeys[models.EntryKey(c.TableName, c.RecordID)]; !ok {
			continue
		}
		// Server wins on every conflict; the authoritative copy arrives
		// with the pull that follows.
		if err = o.api.ResolveConflict(ctx, models.ResolveConflictRequest{
			Resolution: models.ResolutionServer,
			TableName:  c.TableName,
			RecordID:   c.RecordID,
		}); err != nil {
			return "", fmt.Errorf("resolve conflict %s/%s: %w", c.TableName, c.RecordID, err)
		}
	}

	// Conflicted entries are cleared too: the server copy supersedes them.
	// Only rejected entries stay queued for a retry.
	var idsToClear []string
	for _, entry := range entries {
		if _, rejected := errorKeys[models.EntryKey(entry.TableName, entry.RecordID)]; rejected {
			continue
		}
		idsToClear = append(idsToClear, entry.SourceEntryIDs...)
	}
	if err = o.storages.SyncQueue.ClearByIDs(ctx, idsToClear); err != nil {
		return "", fmt.Errorf("clear synced queue rows: %w", err)
	}

	if !result.Success || len(errorKeys) > 0 {
		if len(result.Errors) > 0 && result.Errors[0].Message != "" {
			return result.Errors[0].Message, nil
		}
		return "failed to sync pending change queue", nil
	}
	return "", nil
}

func (o *syncOrchestrator) pullAndMerge(ctx context.Context, userID, deviceID string) error {
	lastSyncAt, err := o.storages.SyncQueue.GetLastSyncAt(ctx)
	if err != nil {
		return fmt.Errorf("get sync checkpoint: %w", err)
	}

	result, err := o.api.Pull(ctx, models.PullRequest{
		UserID:     userID,
		DeviceID:   deviceID,
		LastSyncAt: lastSyncAt,
		Tables:     models.TrackedTables(),
	})
	if err != nil {
		return fmt.Errorf("pull changes: %w", err)
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	merge := func(name string, fn func() error) {
		defer wg.Done()
		if err := fn(); err != nil {
			errMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("merge %s: %w", name, err)
			}
			errMu.Unlock()
		}
	}
	wg.Add(4)
	go merge(models.TableAnimals, func() error {
		return o.storages.Animals.UpsertFromServer(ctx, result.Animals)
	})
	go merge(models.TableBreedings, func() error {
		return o.storages.Breedings.UpsertFromServer(ctx, result.Breedings)
	})
	go merge(models.TableHealthRecords, func() error {
		return o.storages.HealthRecords.UpsertFromServer(ctx, result.HealthRecords)
	})
	go merge(models.TableProductionRecords, func() error {
		return o.storages.ProductionRecords.UpsertFromServer(ctx, result.ProductionRecords)
	})
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	if result.SyncTimestamp != "" {
		if err = o.storages.SyncQueue.SetLastSyncAt(ctx, result.SyncTimestamp); err != nil {
			return fmt.Errorf("persist sync checkpoint: %w", err)
		}
	}
	return nil
}

// HydrateState implements SyncService.
func (o *syncOrchestrator) HydrateState(ctx context.Context) error {
	count, err := o.storages.SyncQueue.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("pending count: %w", err)
	}
	o.state.SetPendingChanges(count)

	lastSyncAt, err := o.storages.SyncQueue.GetLastSyncAt(ctx)
	if err != nil {
		return fmt.Errorf("get sync checkpoint: %w", err)
	}
	o.state.SetLastSyncAt(lastSyncAt)
	return nil
}

// EnqueueChange implements SyncService.
func (o *syncOrchestrator) EnqueueChange(ctx context.Context, tableName string, action models.SyncAction, recordID string, payload map[string]any, clientVersion int64) error {
	if err := o.storages.SyncQueue.Enqueue(ctx, tableName, action, recordID, payload, clientVersion); err != nil {
		return fmt.Errorf("enqueue %s %s/%s: %w", action, tableName, recordID, err)
	}

	count, err := o.storages.SyncQueue.PendingCount(ctx)
	if err != nil {
		o.logger.Warn().Err(err).Msg("refresh pending count after enqueue")
		return nil
	}
	o.state.SetPendingChanges(count)
	return nil
}

func (o *syncOrchestrator) tryAcquire() bool {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	if o.running {
		return false
	}
	o.running = true
	return true
}

func (o *syncOrchestrator) release() {
	o.runMu.Lock()
	o.running = false
	o.runMu.Unlock()
}

func (o *syncOrchestrator) retryWait() time.Duration {
	o.backoffMu.Lock()
	defer o.backoffMu.Unlock()
	if wait := o.nextRetryAt.Sub(o.now()); wait > 0 {
		return wait
	}
	return 0
}

func (o *syncOrchestrator) markSyncSuccess() {
	o.backoffMu.Lock()
	o.consecutiveFailures = 0
	o.nextRetryAt = time.Time{}
	o.backoffMu.Unlock()
}

// markSyncFailure arms the next retry window: 5s doubled per consecutive
// failure, capped at 5 minutes, plus up to 1s of jitter.
func (o *syncOrchestrator) markSyncFailure() {
	o.backoffMu.Lock()
	defer o.backoffMu.Unlock()

	o.consecutiveFailures++
	delay := baseRetryDelay
	for i := 1; i < o.consecutiveFailures && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	o.nextRetryAt = o.now().Add(delay + o.jitter())
}
