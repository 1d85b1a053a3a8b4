package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoliner/herdsync/internal/config"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/service"
	"github.com/jmoliner/herdsync/models"
)

// App runs the sync client until the process receives a stop signal: it
// hydrates the published state from the local store, starts the background
// sync job, and logs every sync state transition.
type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	logger   *logger.Logger
	userID   string
}

func NewApp(services *service.ClientServices, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	userID := os.Getenv("HERDSYNC_USER_ID")
	if userID == "" {
		return nil, errors.New("HERDSYNC_USER_ID is not set")
	}

	return &App{
		services: services,
		workers:  workers,
		logger:   logger,
		userID:   userID,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.services.Sync.HydrateState(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("hydrate sync state on startup")
	}

	states, cancel := a.services.State.Subscribe()
	defer cancel()
	go a.logStateTransitions(ctx, states)

	a.services.SyncJob.Start(ctx, a.userID, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down")
	return nil
}

func (a *App) logStateTransitions(ctx context.Context, states <-chan models.SyncState) {
	var last models.SyncState
	for {
		select {
		case <-ctx.Done():
			return
		case state := <-states:
			if state == last {
				continue
			}
			last = state

			event := a.logger.Info()
			if state.Status == models.SyncStatusError {
				event = a.logger.Warn()
			}
			event.
				Str("status", string(state.Status)).
				Int("pending", state.PendingChanges).
				Str("last_sync_at", state.LastSyncAt).
				Str("error", state.Error).
				Msg("sync state changed")
		}
	}
}
