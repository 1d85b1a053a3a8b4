package service

import (
	"sync"

	"github.com/jmoliner/herdsync/models"
)

// StatePublisher holds the current sync state and fans out a snapshot to
// subscribers on every change. Reads never block writers and a slow
// subscriber never blocks the sync cycle: each subscriber channel keeps
// only the most recent snapshot.
type StatePublisher struct {
	mu     sync.RWMutex
	state  models.SyncState
	subs   map[int]chan models.SyncState
	nextID int
}

func NewStatePublisher() *StatePublisher {
	return &StatePublisher{
		state: models.SyncState{Status: models.SyncStatusIdle},
		subs:  make(map[int]chan models.SyncState),
	}
}

// Snapshot returns a copy of the current state.
func (p *StatePublisher) Snapshot() models.SyncState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Subscribe registers a listener for state changes. The returned channel
// receives a snapshot after every mutation, starting with the current
// state. The cancel func must be called to release the subscription.
func (p *StatePublisher) Subscribe() (<-chan models.SyncState, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++

	ch := make(chan models.SyncState, 1)
	ch <- p.state
	p.subs[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
	return ch, cancel
}

func (p *StatePublisher) SetStatus(status models.SyncStatus) {
	p.update(func(s *models.SyncState) { s.Status = status })
}

func (p *StatePublisher) SetPendingChanges(count int) {
	p.update(func(s *models.SyncState) { s.PendingChanges = count })
}

func (p *StatePublisher) SetLastSyncAt(lastSyncAt string) {
	p.update(func(s *models.SyncState) { s.LastSyncAt = lastSyncAt })
}

func (p *StatePublisher) SetError(message string) {
	p.update(func(s *models.SyncState) { s.Error = message })
}

// Reset returns the state to its initial value. Used on logout.
func (p *StatePublisher) Reset() {
	p.update(func(s *models.SyncState) {
		*s = models.SyncState{Status: models.SyncStatusIdle}
	})
}

func (p *StatePublisher) update(apply func(*models.SyncState)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	apply(&p.state)

	for _, ch := range p.subs {
		// Keep only the latest snapshot per subscriber.
		select {
		case ch <- p.state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- p.state:
			default:
			}
		}
	}
}
