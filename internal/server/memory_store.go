// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package server

import (
	"sync"
	"time"

	"github.com/jmoliner/herdsync/models"
)

// record is the server-side copy of one synced row. Data holds the raw
// field map as pushed by clients; Version is the authoritative version
// counter used for conflict detection.
type record struct {
	Data      map[string]any
	Version   int64
	UpdatedAt time.Time
	Deleted   bool
}

type userTables map[string]map[string]*record

// memoryStore is the in-memory backing of the reference sync server. It
// keeps one table set per user and implements last-writer-wins versioning:
// a pushed change is accepted only when its client version is strictly
// greater than the server's.
type memoryStore struct {
	mu    sync.RWMutex
	users map[string]userTables

	now func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[string]userTables),
		now:   time.Now,
	}
}

func (s *memoryStore) table(userID, tableName string) map[string]*record {
	tables, ok := s.users[userID]
	if !ok {
		tables = make(userTables)
		s.users[userID] = tables
	}
	rows, ok := tables[tableName]
	if !ok {
		rows = make(map[string]*record)
		tables[tableName] = rows
	}
	return rows
}

func trackedTable(name string) bool {
	for _, t := range models.TrackedTables() {
		if t == name {
			return true
		}
	}
	return false
}

// apply merges one pushed change into the store. Exactly one of the returned
// pointers is non-nil when the change was not accepted.
func (s *memoryStore) apply(userID string, change models.PushChange) (*models.PushConflict, *models.PushError) {
	if !trackedTable(change.TableName) {
		return nil, &models.PushError{
			TableName: change.TableName,
			RecordID:  change.RecordID,
			Message:   "unknown table " + change.TableName,
		}
	}
	if change.RecordID == "" {
		return nil, &models.PushError{
			TableName: change.TableName,
			Message:   "missing record id",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.table(userID, change.TableName)
	existing := rows[change.RecordID]

	if existing != nil && existing.Version >= change.ClientVersion {
		return &models.PushConflict{
			TableName:     change.TableName,
			RecordID:      change.RecordID,
			ServerVersion: existing.Version,
			ClientVersion: change.ClientVersion,
		}, nil
	}

	switch change.Action {
	case models.ActionCreate:
		rows[change.RecordID] = &record{
			Data:      cloneData(change.Data),
			Version:   change.ClientVersion,
			UpdatedAt: s.now(),
		}

	case models.ActionUpdate:
		if existing == nil {
			return nil, &models.PushError{
				TableName: change.TableName,
				RecordID:  change.RecordID,
				Message:   "record not found",
			}
		}
		merged := cloneData(existing.Data)
		for k, v := range change.Data {
			merged[k] = v
		}
		existing.Data = merged
		existing.Version = change.ClientVersion
		existing.UpdatedAt = s.now()
		existing.Deleted = false

	case models.ActionDelete:
		if existing == nil {
			// Deleting what the server never saw is fine: record the
			// tombstone so other devices pick it up.
			rows[change.RecordID] = &record{
				Data:      map[string]any{"id": change.RecordID, "userId": userID},
				Version:   change.ClientVersion,
				UpdatedAt: s.now(),
				Deleted:   true,
			}
			break
		}
		existing.Version = change.ClientVersion
		existing.UpdatedAt = s.now()
		existing.Deleted = true

	default:
		return nil, &models.PushError{
			TableName: change.TableName,
			RecordID:  change.RecordID,
			Message:   "unknown action " + string(change.Action),
		}
	}

	return nil, nil
}

// resolve settles a previously reported conflict. A server resolution leaves
// the authoritative copy untouched. A client resolution drops the server's
// version guard so the client's next push of the record is accepted.
func (s *memoryStore) resolve(userID string, req models.ResolveConflictRequest) bool {
	if req.Resolution != models.ResolutionServer && req.Resolution != models.ResolutionClient {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.table(userID, req.TableName)
	existing := rows[req.RecordID]
	if existing == nil {
		return false
	}
	if req.Resolution == models.ResolutionClient {
		existing.Version = 0
	}
	return true
}

// resolveAny is resolve without a known user scope: the wire format of a
// conflict resolution does not carry the user, so an empty userID falls
// back to scanning every user for the record.
func (s *memoryStore) resolveAny(userID string, req models.ResolveConflictRequest) bool {
	if userID != "" {
		return s.resolve(userID, req)
	}

	s.mu.RLock()
	var owners []string
	for id, tables := range s.users {
		if rows, ok := tables[req.TableName]; ok {
			if _, ok = rows[req.RecordID]; ok {
				owners = append(owners, id)
			}
		}
	}
	s.mu.RUnlock()

	resolved := false
	for _, owner := range owners {
		if s.resolve(owner, req) {
			resolved = true
		}
	}
	return resolved
}

// changesSince snapshots every record of the requested tables updated after
// since. Each snapshot carries the server-side bookkeeping fields merged
// into the raw data map.
func (s *memoryStore) changesSince(userID string, tables []string, since time.Time) map[string][]map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]map[string]any, len(tables))
	userData := s.users[userID]
	for _, tableName := range tables {
		rows := userData[tableName]
		for id, rec := range rows {
			if !rec.UpdatedAt.After(since) {
				continue
			}
			snap := cloneData(rec.Data)
			snap["id"] = id
			snap["userId"] = userID
			snap["syncStatus"] = string(models.RecordSynced)
			snap["syncVersion"] = rec.Version
			snap["updatedAt"] = rec.UpdatedAt.UTC().Format(time.RFC3339Nano)
			if rec.Deleted {
				snap["deletedAt"] = rec.UpdatedAt.UTC().Format(time.RFC3339Nano)
			}
			out[tableName] = append(out[tableName], snap)
		}
	}
	return out
}

func cloneData(data map[string]any) map[string]any {
	cloned := make(map[string]any, len(data))
	for k, v := range data {
		cloned[k] = v
	}
	return cloned
}
