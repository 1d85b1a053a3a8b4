package models

// SyncStatus is the coarse health of the sync engine as shown to the UI layer.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusError   SyncStatus = "error"
	SyncStatusOffline SyncStatus = "offline"
)

// SyncState is the last-known observable state of the sync engine. It is
// mutated only by the orchestrator and read by any number of observers.
type SyncState struct {
	Status SyncStatus `json:"status"`

	// PendingChanges is the number of raw queue rows awaiting sync.
	PendingChanges int `json:"pending_changes"`

	// LastSyncAt is the server-declared timestamp of the last successful
	// pull, in the server's own format. Empty when the client has never
	// completed a pull.
	LastSyncAt string `json:"last_sync_at,omitempty"`

	// Error is the message of the last failed cycle, empty otherwise.
	Error string `json:"error,omitempty"`
}
