package service

import (
	"github.com/jmoliner/herdsync/internal/adapter"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/internal/store"
)

type ClientServices struct {
	State     *StatePublisher
	Sync      SyncService
	SyncJob   SyncJob
	Mutations MutationService

	api adapter.SyncAPI
}

func NewClientServices(storages *store.ClientStorages, api adapter.SyncAPI, reachability adapter.Reachability, log *logger.Logger) *ClientServices {
	state := NewStatePublisher()
	syncSvc := NewSyncOrchestrator(storages, api, reachability, state, log)
	job := NewClientSyncJob(syncSvc)

	return &ClientServices{
		State:     state,
		Sync:      syncSvc,
		SyncJob:   job,
		Mutations: NewMutationService(storages, syncSvc, job, log),
		api:       api,
	}
}

// SetToken hands a fresh bearer token to the sync adapter.
func (s *ClientServices) SetToken(token string) {
	s.api.SetToken(token)
}

// Logout ends the session: the background job stops, the bearer token is
// dropped, and the published state returns to its initial value. Local data
// and the pending queue stay on disk for the next login.
func (s *ClientServices) Logout() {
	s.SyncJob.Stop()
	s.api.SetToken("")
	s.State.Reset()
}
