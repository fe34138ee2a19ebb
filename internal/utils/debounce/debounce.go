// Package debounce coalesces bursts of calls into a single delayed invocation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays fn until no Trigger has happened for the configured delay.
// Only the argument of the last Trigger in a burst is delivered.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	arg     T
	gen     uint64
}

// New creates a Debouncer for fn.
func New[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Trigger cancels any pending invocation and schedules a new one with arg.
func (d *Debouncer[T]) Trigger(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.arg = arg
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs fn if no newer Trigger superseded generation gen.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.pending = false
	d.mu.Unlock()

	d.fn(arg)
}

// Stop drops the pending invocation, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = false
}

// Flush runs the pending invocation immediately. It reports whether one ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	arg := d.arg
	d.pending = false
	d.mu.Unlock()

	d.fn(arg)
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Func wraps fn into a plain trigger closure.
func Func[T any](fn func(T), delay time.Duration) func(T) {
	return New(fn, delay).Trigger
}

// Action is Func for callbacks without arguments.
func Action(fn func(), delay time.Duration) func() {
	d := New(func(struct{}) { fn() }, delay)
	return func() { d.Trigger(struct{}{}) }
}
