package services

import (
	"context"

	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/dto"
)

// ConversionSvcFacade converts amounts, locally from the rate snapshot or on the server.
type ConversionSvcFacade interface {
	// Convert asks the server for an authoritative conversion.
	Convert(ctx context.Context, fromID, toID int, amount float64) (*dto.ConvertSimpleResponse, error)
	// Rate resolves a rate from the current snapshot.
	Rate(fromCode, toCode string) dto.RateResponse
	// Equivalents converts amount into each distinct code from the current snapshot.
	Equivalents(amount float64, fromCode string, codes []string) []dto.EquivalentResponse
}

// CurrencyDisplaySvc renders amounts for the signed-in user.
type CurrencyDisplaySvc interface {
	Symbol(code string) string
	DefaultCurrency() (domain.Currency, bool)
	// Format renders amount in the default currency, e.g. "1234.50 ₽".
	Format(amount float64) string
	AccountEquivalents(account domain.Account, codes []string) []dto.EquivalentResponse
}
