package state

import "sync"

// LoadingTracker mirrors in-flight request scopes into UI.Loading.
// Scopes nest: the flag is set on the first Begin and cleared on the last End.
type LoadingTracker struct {
	store *Store

	mu     sync.Mutex
	active int
}

// NewLoadingTracker creates a tracker updating store.
func NewLoadingTracker(store *Store) *LoadingTracker {
	return &LoadingTracker{store: store}
}

// Begin enters a loading scope.
func (t *LoadingTracker) Begin() {
	t.mu.Lock()
	t.active++
	first := t.active == 1
	t.mu.Unlock()

	if first {
		t.publish()
	}
}

// End leaves a loading scope. Unbalanced calls are ignored.
func (t *LoadingTracker) End() {
	t.mu.Lock()
	if t.active == 0 {
		t.mu.Unlock()
		return
	}
	t.active--
	last := t.active == 0
	t.mu.Unlock()

	if last {
		t.publish()
	}
}

// Active returns the number of open scopes.
func (t *LoadingTracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// publish writes the flag from the scope count read inside the store merge, so
// whichever transition writes last leaves the flag matching the open scopes.
func (t *LoadingTracker) publish() {
	t.store.SetState(func(s *AppState) {
		s.UI.Loading = t.Active() > 0
	})
}
