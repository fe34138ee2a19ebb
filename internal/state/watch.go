package state

import "sync"

// ChangeDetector remembers the last value extracted from a snapshot and
// calls onChange only when a new snapshot yields a different value.
type ChangeDetector[T comparable] struct {
	extract  func(AppState) T
	onChange func(T)

	mu   sync.Mutex
	last T
}

// NewChangeDetector starts from the zero value of T, so the first snapshot
// fires onChange only if it already differs from zero.
func NewChangeDetector[T comparable](extract func(AppState) T, onChange func(T)) *ChangeDetector[T] {
	return &ChangeDetector[T]{extract: extract, onChange: onChange}
}

// Observe is a Listener.
func (d *ChangeDetector[T]) Observe(s AppState) {
	v := d.extract(s)

	d.mu.Lock()
	changed := v != d.last
	d.last = v
	d.mu.Unlock()

	if changed {
		d.onChange(v)
	}
}

// Watch subscribes a ChangeDetector for extract to store.
func Watch[T comparable](store *Store, extract func(AppState) T, onChange func(T)) func() {
	return store.Subscribe(NewChangeDetector(extract, onChange).Observe)
}

// DefaultCurrencyKey extracts the user's default currency id, 0 when unset.
func DefaultCurrencyKey(s AppState) int {
	id, _ := s.DefaultCurrencyID()
	return id
}

// CurrencyCountKey extracts the number of loaded currencies.
func CurrencyCountKey(s AppState) int {
	return len(s.Currencies)
}
