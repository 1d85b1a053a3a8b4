// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package models

// PushChange is one compacted local mutation inside a push batch.
type PushChange struct {
	Action        SyncAction     `json:"action"`
	TableName     string         `json:"tableName"`
	RecordID      string         `json:"recordId"`
	Data          map[string]any `json:"data"`
	ClientVersion int64          `json:"clientVersion"`
}

// PushRequest is the batch of pending local changes sent to the server.
// The server is expected to apply the batch atomically per record.
type PushRequest struct {
	UserID   string       `json:"userId"`
	DeviceID string       `json:"deviceId"`
	Changes  []PushChange `json:"changes"`
}

// PushConflict reports that the server holds a newer version of a record
// than the one the client pushed.
type PushConflict struct {
	TableName     string `json:"tableName"`
	RecordID      string `json:"recordId"`
	ServerVersion int64  `json:"serverVersion"`
	ClientVersion int64  `json:"clientVersion"`
}

// PushError reports a change the server rejected outright. The client keeps
// the corresponding queue rows for the next cycle.
type PushError struct {
	TableName string `json:"tableName"`
	RecordID  string `json:"recordId"`
	Message   string `json:"message"`
}

// PushResult is the server's per-batch outcome of a push.
type PushResult struct {
	Success       bool           `json:"success"`
	SyncedChanges int            `json:"syncedChanges"`
	Conflicts     []PushConflict `json:"conflicts,omitempty"`
	Errors        []PushError    `json:"errors,omitempty"`
}

// Conflict resolution policies accepted by the server.
const (
	ResolutionServer = "server"
	ResolutionClient = "client"
)

// ResolveConflictRequest tells the server which side of a conflicting record
// to keep.
type ResolveConflictRequest struct {
	Resolution string `json:"resolution"`
	TableName  string `json:"tableName"`
	RecordID   string `json:"recordId"`
}

// PullRequest asks the server for every authoritative change across the
// tracked tables since LastSyncAt, scoped to the device and user.
type PullRequest struct {
	UserID     string   `json:"userId"`
	DeviceID   string   `json:"deviceId"`
	LastSyncAt string   `json:"lastSyncAt,omitempty"`
	Tables     []string `json:"tables"`
}

// PullResult carries the authoritative record deltas, one optional slice per
// requested table, plus the server's sync timestamp. SyncTimestamp becomes
// the client's next checkpoint; it is server time, never the client clock.
type PullResult struct {
	Animals           []Animal           `json:"animals,omitempty"`
	Breedings         []Breeding         `json:"breedings,omitempty"`
	HealthRecords     []HealthRecord     `json:"health_records,omitempty"`
	ProductionRecords []ProductionRecord `json:"production_records,omitempty"`
	SyncTimestamp     string             `json:"syncTimestamp"`
}
