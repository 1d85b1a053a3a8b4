package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoliner/herdsync/models"
)

func TestStatePublisher_InitialState(t *testing.T) {
	p := NewStatePublisher()

	got := p.Snapshot()
	assert.Equal(t, models.SyncStatusIdle, got.Status)
	assert.Zero(t, got.PendingChanges)
	assert.Empty(t, got.LastSyncAt)
	assert.Empty(t, got.Error)
}

func TestStatePublisher_SettersAndSnapshot(t *testing.T) {
	p := NewStatePublisher()

	p.SetStatus(models.SyncStatusSyncing)
	p.SetPendingChanges(7)
	p.SetLastSyncAt("2026-08-29T10:00:00Z")
	p.SetError("boom")

	got := p.Snapshot()
	assert.Equal(t, models.SyncStatusSyncing, got.Status)
	assert.Equal(t, 7, got.PendingChanges)
	assert.Equal(t, "2026-08-29T10:00:00Z", got.LastSyncAt)
	assert.Equal(t, "boom", got.Error)
}

func TestStatePublisher_Reset(t *testing.T) {
	p := NewStatePublisher()
	p.SetStatus(models.SyncStatusError)
	p.SetPendingChanges(3)
	p.SetError("boom")

	p.Reset()

	got := p.Snapshot()
	assert.Equal(t, models.SyncStatusIdle, got.Status)
	assert.Zero(t, got.PendingChanges)
	assert.Empty(t, got.Error)
}

func TestStatePublisher_Subscribe_ReceivesCurrentStateFirst(t *testing.T) {
	p := NewStatePublisher()
	p.SetPendingChanges(2)

	ch, cancel := p.Subscribe()
	defer cancel()

	select {
	case got := <-ch:
		assert.Equal(t, 2, got.PendingChanges)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot received")
	}
}

func TestStatePublisher_Subscribe_KeepsLatestSnapshot(t *testing.T) {
	p := NewStatePublisher()

	ch, cancel := p.Subscribe()
	defer cancel()
	<-ch // drain initial snapshot

	// A subscriber that never reads only sees the most recent state.
	p.SetPendingChanges(1)
	p.SetPendingChanges(2)
	p.SetPendingChanges(3)

	select {
	case got := <-ch:
		assert.Equal(t, 3, got.PendingChanges)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestStatePublisher_Cancel_StopsDelivery(t *testing.T) {
	p := NewStatePublisher()

	ch, cancel := p.Subscribe()
	<-ch
	cancel()

	p.SetPendingChanges(9)

	select {
	case _, ok := <-ch:
		require.False(t, ok, "cancelled subscriber must not receive further snapshots")
	default:
		// nothing queued: also fine
	}
}
