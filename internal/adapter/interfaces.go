package adapter

import (
	"context"

	"github.com/jmoliner/herdsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SyncAPI is the client-side contract for talking to the remote sync
// authority. Implementations translate transport-level failures into
// [ErrNetworkUnavailable] so the orchestrator can distinguish "offline"
// from a real error.
type SyncAPI interface {
	// Push sends the batch of compacted pending changes and returns the
	// server's per-batch outcome (conflicts and rejected changes included).
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)

	// Pull requests all authoritative changes across the tracked tables
	// since the checkpoint carried in req.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResult, error)

	// ResolveConflict tells the server which side of a conflicting record
	// to keep.
	ResolveConflict(ctx context.Context, req models.ResolveConflictRequest) error

	// SetToken stores the bearer token used on all subsequent requests.
	SetToken(token string)
}

// Reachability reports whether the remote authority is currently considered
// reachable. It is injected into the orchestrator so the sync state machine
// stays testable without a real network stack.
type Reachability interface {
	IsOnline(ctx context.Context) bool
}
