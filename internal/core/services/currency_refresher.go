package services

import (
	"time"

	"github.com/SscSPs/finance_client/internal/state"
	"github.com/SscSPs/finance_client/internal/utils/debounce"
)

// CurrencyRefreshDelay coalesces bursts of currency changes into one refresh.
const CurrencyRefreshDelay = 80 * time.Millisecond

// CurrencyRefresher calls refresh, debounced, whenever the user's default
// currency or the number of loaded currencies changes.
type CurrencyRefresher struct {
	debouncer *debounce.Debouncer[struct{}]
	unwatch   []func()
}

// NewCurrencyRefresher starts watching store. delay <= 0 uses CurrencyRefreshDelay.
func NewCurrencyRefresher(store *state.Store, delay time.Duration, refresh func()) *CurrencyRefresher {
	if delay <= 0 {
		delay = CurrencyRefreshDelay
	}
	r := &CurrencyRefresher{
		debouncer: debounce.New(func(struct{}) { refresh() }, delay),
	}
	trigger := func(int) { r.debouncer.Trigger(struct{}{}) }
	r.unwatch = []func(){
		state.Watch(store, state.DefaultCurrencyKey, trigger),
		state.Watch(store, state.CurrencyCountKey, trigger),
	}
	return r
}

// Stop unsubscribes from the store and drops any pending refresh.
func (r *CurrencyRefresher) Stop() {
	for _, unwatch := range r.unwatch {
		unwatch()
	}
	r.debouncer.Stop()
}
