package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	args []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, v)
}

func (r *recorder) calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.args...)
}

func TestDebouncer_CoalescesBurstKeepsLastArgument(t *testing.T) {
	rec := &recorder{}
	d := New(rec.record, 50*time.Millisecond)

	d.Trigger(1)
	d.Trigger(2)
	d.Trigger(3)

	require.Eventually(t, func() bool { return len(rec.calls()) == 1 }, time.Second, 5*time.Millisecond)
	// Give a superseded timer a chance to misfire.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []int{3}, rec.calls())
	assert.False(t, d.Pending())
}

func TestDebouncer_SeparateWindowsRunSeparately(t *testing.T) {
	rec := &recorder{}
	d := New(rec.record, 20*time.Millisecond)

	d.Trigger(1)
	require.Eventually(t, func() bool { return len(rec.calls()) == 1 }, time.Second, 5*time.Millisecond)
	d.Trigger(2)
	require.Eventually(t, func() bool { return len(rec.calls()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []int{1, 2}, rec.calls())
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := New(rec.record, 20*time.Millisecond)

	d.Trigger(1)
	d.Stop()
	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, rec.calls())
}

func TestDebouncer_FlushRunsImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(rec.record, time.Hour)

	assert.False(t, d.Flush(), "nothing pending yet")
	d.Trigger(7)
	assert.True(t, d.Flush())
	assert.Equal(t, []int{7}, rec.calls())
	assert.False(t, d.Flush())
}

func TestAction(t *testing.T) {
	var n atomic.Int32
	trigger := Action(func() { n.Add(1) }, 30*time.Millisecond)

	for i := 0; i < 5; i++ {
		trigger()
	}

	require.Eventually(t, func() bool { return n.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), n.Load())
}
