package gateways

import (
	"context"

	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/dto"
)

// Note: these mirror the REST endpoints one to one; the apiclient.API type implements all of them.

// CurrencyReader reads currency and rate reference data.
type CurrencyReader interface {
	Currencies(ctx context.Context) ([]domain.Currency, error)
	// ExchangeRates lists rates; limit <= 0 means all.
	ExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error)
}

// ConversionGateway asks the server for an authoritative conversion.
type ConversionGateway interface {
	ConvertSimple(ctx context.Context, req dto.ConvertSimpleRequest) (*dto.ConvertSimpleResponse, error)
}

// AccountReader reads the user's accounts.
type AccountReader interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
}

// CategoryReader reads the user's categories.
type CategoryReader interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// TransactionReader reads transactions and their summaries.
type TransactionReader interface {
	Transactions(ctx context.Context, filter dto.TransactionFilter) ([]domain.Transaction, error)
	DefaultAccountTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	Summary(ctx context.Context, start, end string) (*domain.TransactionSummary, error)
	DefaultAccountSummary(ctx context.Context, start, end string) (*domain.TransactionSummary, error)
	ByCategory(ctx context.Context, start, end string) ([]domain.CategorySummary, error)
	MonthlySummary(ctx context.Context, year int) ([]domain.MonthlySummary, error)
}

// ProfileGateway reads and updates the signed-in user.
type ProfileGateway interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
	RefreshProfile(ctx context.Context) (*domain.UserProfile, error)
	SetDefaultCurrency(ctx context.Context, currencyID int) error
}

// AuthGateway manages the server session.
type AuthGateway interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Logout(ctx context.Context) error
}

// DataGateway combines the readers used by the data loader.
type DataGateway interface {
	CurrencyReader
	AccountReader
	CategoryReader
	TransactionReader
}

// CacheInvalidator drops every cached response.
type CacheInvalidator interface {
	InvalidateCache()
}
