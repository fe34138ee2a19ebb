package services

import (
	"fmt"

	"github.com/SscSPs/finance_client/internal/core/domain"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/SscSPs/finance_client/internal/utils"
)

type currencyDisplay struct {
	store    *state.Store
	resolver *RateResolver
}

// NewCurrencyDisplay creates a display service over the current snapshot.
func NewCurrencyDisplay(store *state.Store, resolver *RateResolver) portssvc.CurrencyDisplaySvc {
	if resolver == nil {
		resolver = NewRateResolver("")
	}
	return &currencyDisplay{store: store, resolver: resolver}
}

// Symbol prefers the server symbol, then the static table; unknown codes get "$".
func (d *currencyDisplay) Symbol(code string) string {
	if c, ok := d.store.State().CurrencyIndex().ByCode(code); ok {
		return c.DisplaySymbol()
	}
	return domain.FallbackSymbol(code)
}

func (d *currencyDisplay) DefaultCurrency() (domain.Currency, bool) {
	s := d.store.State()
	id, ok := s.DefaultCurrencyID()
	if !ok {
		return domain.Currency{}, false
	}
	return s.CurrencyIndex().ByID(id)
}

func (d *currencyDisplay) Format(amount float64) string {
	symbol := domain.DefaultSymbol
	if c, ok := d.DefaultCurrency(); ok {
		symbol = c.DisplaySymbol()
	}
	return fmt.Sprintf("%s %s", utils.FormatAmount(amount), symbol)
}

// AccountEquivalents converts the account balance into codes.
// An account whose currency is unknown converts to "0.00" everywhere.
func (d *currencyDisplay) AccountEquivalents(account domain.Account, codes []string) []dto.EquivalentResponse {
	s := d.store.State()
	from := ""
	if account.Currency != nil && account.Currency.Code != "" {
		from = account.Currency.Code
	} else if c, ok := s.CurrencyIndex().ByID(account.CurrencyID); ok {
		from = c.Code
	}
	return d.resolver.EquivalentsState(s, account.Balance, from, codes)
}

var _ portssvc.CurrencyDisplaySvc = (*currencyDisplay)(nil)
