package domain

import "time"

// ExchangeRate is a directional edge: 1 base = Rate target.
type ExchangeRate struct {
	ID               int       `json:"id,omitempty"`
	BaseCurrencyID   int       `json:"base_currency_id"`
	TargetCurrencyID int       `json:"target_currency_id"`
	Rate             float64   `json:"rate"`
	LastUpdated      time.Time `json:"last_updated,omitempty"`
	BaseCurrency     *Currency `json:"base_currency,omitempty"`
	TargetCurrency   *Currency `json:"target_currency,omitempty"`
}

// CurrencyPair is an ordered (base, target) pair of currency ids.
type CurrencyPair struct {
	Base   int
	Target int
}

// RateTable indexes a sparse rate snapshot by ordered pair.
// Only the first edge for a given pair is kept. A nil table is empty.
type RateTable struct {
	list  []ExchangeRate
	edges map[CurrencyPair]float64
}

// NewRateTable indexes rates.
func NewRateTable(rates []ExchangeRate) *RateTable {
	t := &RateTable{
		list:  rates,
		edges: make(map[CurrencyPair]float64, len(rates)),
	}
	for _, r := range rates {
		p := CurrencyPair{Base: r.BaseCurrencyID, Target: r.TargetCurrencyID}
		if _, ok := t.edges[p]; !ok {
			t.edges[p] = r.Rate
		}
	}
	return t
}

// Edge returns the stored rate for 1 base -> target.
func (t *RateTable) Edge(base, target int) (float64, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.edges[CurrencyPair{Base: base, Target: target}]
	return r, ok
}

// Len returns the number of rate records in the snapshot.
func (t *RateTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.list)
}

// All returns the underlying snapshot. Callers must not modify it.
func (t *RateTable) All() []ExchangeRate {
	if t == nil {
		return nil
	}
	return t.list
}
