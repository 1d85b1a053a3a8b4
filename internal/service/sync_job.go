package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 45 * time.Second

type clientSyncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// kick is buffered so that a burst of local mutations collapses into
	// a single extra cycle.
	kick chan struct{}
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.SyncNow on
// a ticker and on every Kick. The job is idle until Start is called.
func NewClientSyncJob(syncService SyncService) SyncJob {
	return &clientSyncJob{
		syncService: syncService,
		kick:        make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to 45 seconds. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		// One immediate cycle on startup to drain whatever accumulated
		// while the app was closed.
		j.syncService.SyncNow(jobCtx, userID)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncService.SyncNow(jobCtx, userID)
			case <-j.kick:
				j.syncService.SyncNow(jobCtx, userID)
			}
		}
	}()
}

// Kick implements SyncJob. The request is dropped when one is already
// queued.
func (j *clientSyncJob) Kick() {
	select {
	case j.kick <- struct{}{}:
	default:
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
