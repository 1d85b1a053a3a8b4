// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/models"
)

// Handler bundles the sync endpoints of the reference server around one
// in-memory store.
type Handler struct {
	store  *memoryStore
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:  newMemoryStore(),
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/health", h.health)
	router.Post("/api/sync/push", h.push)
	router.Post("/api/sync/pull", h.pull)
	router.Post("/api/sync/resolve-conflict", h.resolveConflict)

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	log := h.logger.GetChildLogger()

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	result := models.PushResult{Success: true}
	for _, change := range req.Changes {
		conflict, pushErr := h.store.apply(req.UserID, change)
		switch {
		case conflict != nil:
			result.Conflicts = append(result.Conflicts, *conflict)
		case pushErr != nil:
			result.Errors = append(result.Errors, *pushErr)
			result.Success = false
		default:
			result.SyncedChanges++
		}
	}

	log.Info().
		Str("user", req.UserID).
		Str("device", req.DeviceID).
		Int("synced", result.SyncedChanges).
		Int("conflicts", len(result.Conflicts)).
		Int("errors", len(result.Errors)).
		Msg("push applied")

	writeJSON(w, result, http.StatusOK)
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	log := h.logger.GetChildLogger()

	var req models.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	since := time.Time{}
	if req.LastSyncAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, req.LastSyncAt)
		if err != nil {
			http.Error(w, "invalid lastSyncAt timestamp", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	tables := req.Tables
	if len(tables) == 0 {
		tables = models.TrackedTables()
	}

	// The timestamp is taken before the snapshot so a write racing the
	// pull is re-delivered on the next cycle rather than lost.
	syncTimestamp := h.store.now().UTC().Format(time.RFC3339Nano)
	changes := h.store.changesSince(req.UserID, tables, since)

	result := models.PullResult{SyncTimestamp: syncTimestamp}
	if err := decodeTable(changes[models.TableAnimals], &result.Animals); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error decoding animal records")
		http.Error(w, "error decoding animal records", http.StatusInternalServerError)
		return
	}
	if err := decodeTable(changes[models.TableBreedings], &result.Breedings); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error decoding breeding records")
		http.Error(w, "error decoding breeding records", http.StatusInternalServerError)
		return
	}
	if err := decodeTable(changes[models.TableHealthRecords], &result.HealthRecords); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error decoding health records")
		http.Error(w, "error decoding health records", http.StatusInternalServerError)
		return
	}
	if err := decodeTable(changes[models.TableProductionRecords], &result.ProductionRecords); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error decoding production records")
		http.Error(w, "error decoding production records", http.StatusInternalServerError)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	log := h.logger.GetChildLogger()

	var req models.ResolveConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflict").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = r.Header.Get("X-User-ID")
	}

	if !h.store.resolveAny(userID, req) {
		http.Error(w, "nothing to resolve", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]string{"status": "resolved"}, http.StatusOK)
}

// decodeTable converts raw record snapshots into the typed slice dst points
// at, going through JSON so the field mapping matches the wire format.
func decodeTable(snaps []map[string]any, dst any) error {
	if len(snaps) == 0 {
		return nil
	}
	raw, err := json.Marshal(snaps)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
