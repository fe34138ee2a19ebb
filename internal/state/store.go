package state

import (
	"fmt"
	"log/slog"
	"sync"
)

// Listener receives the full snapshot after every SetState.
type Listener func(AppState)

// Store is the single source of truth for client state.
// All mutation goes through SetState; readers get immutable snapshots.
type Store struct {
	logger *slog.Logger

	mu        sync.RWMutex
	state     AppState
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store holding Initial().
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger, state: Initial()}
}

// State returns the current snapshot.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState applies updates as one shallow merge, then notifies every listener
// synchronously, in registration order. Each listener receives the snapshot
// current when it is called, which may already include nested or concurrent
// updates. Keys without an update are left untouched.
func (s *Store) SetState(updates ...Update) AppState {
	s.mu.Lock()
	next := s.state
	for _, u := range updates {
		if u != nil {
			u(&next)
		}
	}
	s.state = next
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Listeners run outside the lock so they may read or update the store.
	for _, l := range listeners {
		s.notify(l, s.State())
	}
	return next
}

func (s *Store) notify(l subscription, snapshot AppState) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("State listener panicked",
				slog.Int("listener_id", l.id),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	l.fn(snapshot)
}

// Subscribe registers fn for every future SetState. The returned func removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
