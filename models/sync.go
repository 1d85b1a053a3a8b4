// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package models

// SyncAction is the kind of local mutation recorded in the sync queue.
type SyncAction string

const (
	ActionCreate SyncAction = "CREATE"
	ActionUpdate SyncAction = "UPDATE"
	ActionDelete SyncAction = "DELETE"
)

// QueueEntry is a single durable row of the sync queue: one not-yet-confirmed
// local mutation awaiting transmission to the server.
type QueueEntry struct {
	// ID is the internal queue row identifier (UUID).
	ID string `json:"id"`

	// TableName is the entity table the mutation belongs to.
	TableName string `json:"table_name"`

	// RecordID identifies the mutated record within TableName.
	RecordID string `json:"record_id"`

	// Action is the mutation kind.
	Action SyncAction `json:"action"`

	// Payload holds the mutated fields. Nil for deletes.
	Payload map[string]any `json:"payload,omitempty"`

	// ClientVersion is the record's version counter after this mutation.
	ClientVersion int64 `json:"client_version"`

	// CreatedAt is the enqueue time in Unix milliseconds, used for ordering.
	CreatedAt int64 `json:"created_at"`
}

// ConsolidatedEntry is the compactor's output: the single entry standing in
// for every queued mutation of one (table, record) pair, plus the identifiers
// of the raw rows it subsumes so exactly those rows can be cleared once the
// change is confirmed synced.
type ConsolidatedEntry struct {
	TableName     string         `json:"table_name"`
	RecordID      string         `json:"record_id"`
	Action        SyncAction     `json:"action"`
	Payload       map[string]any `json:"payload,omitempty"`
	ClientVersion int64          `json:"client_version"`
	CreatedAt     int64          `json:"created_at"`

	// SourceEntryIDs lists the raw queue row ids folded into this entry,
	// in the order they were applied.
	SourceEntryIDs []string `json:"source_entry_ids"`
}

// EntryKey builds the grouping key used to match queue entries, push
// conflicts, and push errors that refer to the same record.
func EntryKey(tableName, recordID string) string {
	return tableName + ":" + recordID
}
