package services

import (
	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/SscSPs/finance_client/internal/utils"
)

// DefaultPivotCurrency is the intermediate currency used for triangulation.
const DefaultPivotCurrency = "USD"

// RateResolver computes conversion rates from a sparse table of directional edges.
// It is pure: it only reads the snapshots passed to it and never returns an error.
type RateResolver struct {
	pivot string
}

// NewRateResolver creates a resolver triangulating through pivot ("" means USD).
func NewRateResolver(pivot string) *RateResolver {
	if pivot == "" {
		pivot = DefaultPivotCurrency
	}
	return &RateResolver{pivot: pivot}
}

// Pivot returns the triangulation currency code.
func (r *RateResolver) Pivot() string {
	return r.pivot
}

// Resolve returns how many `to` units one `from` unit buys.
// The lookup order is identity, direct edge, inverse edge, then one hop
// through the pivot. ok is false when either code is unknown or no path exists.
func (r *RateResolver) Resolve(fromCode, toCode string, currencies *domain.CurrencyIndex, rates *domain.RateTable) (float64, bool) {
	if fromCode == toCode {
		return 1, true
	}
	from, ok := currencies.ByCode(fromCode)
	if !ok {
		return 0, false
	}
	to, ok := currencies.ByCode(toCode)
	if !ok {
		return 0, false
	}
	if rate, ok := edgeRate(rates, from.ID, to.ID); ok {
		return rate, true
	}

	pivot, ok := currencies.ByCode(r.pivot)
	if !ok {
		return 0, false
	}
	// Pivot units per 1 from, then to units per 1 pivot.
	fromToPivot, ok := edgeRate(rates, from.ID, pivot.ID)
	if !ok {
		return 0, false
	}
	pivotToTo, ok := edgeRate(rates, pivot.ID, to.ID)
	if !ok {
		return 0, false
	}
	return fromToPivot * pivotToTo, true
}

// edgeRate returns target units per 1 base using the direct edge, else the inverse one.
func edgeRate(rates *domain.RateTable, base, target int) (float64, bool) {
	if rate, ok := rates.Edge(base, target); ok {
		return rate, true
	}
	if rate, ok := rates.Edge(target, base); ok && rate != 0 {
		return 1 / rate, true
	}
	return 0, false
}

// Equivalents converts amount into every code, once per distinct code, keeping
// first-seen order. Unresolvable codes get "0.00"; amounts are rounded to 2 places.
func (r *RateResolver) Equivalents(amount float64, fromCode string, codes []string, currencies *domain.CurrencyIndex, rates *domain.RateTable) []dto.EquivalentResponse {
	seen := make(map[string]struct{}, len(codes))
	out := make([]dto.EquivalentResponse, 0, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		rate, ok := r.Resolve(fromCode, code, currencies, rates)
		if !ok {
			rate = 0
		}
		out = append(out, dto.EquivalentResponse{Code: code, Amount: utils.FormatAmount(amount * rate)})
	}
	return out
}

// ResolveState is Resolve over a store snapshot.
func (r *RateResolver) ResolveState(s state.AppState, fromCode, toCode string) (float64, bool) {
	return r.Resolve(fromCode, toCode, s.CurrencyIndex(), s.RateTable())
}

// EquivalentsState is Equivalents over a store snapshot.
func (r *RateResolver) EquivalentsState(s state.AppState, amount float64, fromCode string, codes []string) []dto.EquivalentResponse {
	return r.Equivalents(amount, fromCode, codes, s.CurrencyIndex(), s.RateTable())
}
