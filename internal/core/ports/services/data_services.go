package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_client/internal/dto"
)

// DataLoaderSvc fetches server data into the state store.
// Each loader replaces only its own slice and reports failures to the user.
type DataLoaderSvc interface {
	LoadCurrencies(ctx context.Context) error
	LoadExchangeRates(ctx context.Context) error
	LoadAccounts(ctx context.Context) error
	LoadCategories(ctx context.Context) error
	LoadTransactions(ctx context.Context, filter dto.TransactionFilter) error
	LoadDefaultAccountTransactions(ctx context.Context) error
	// LoadSummary loads the summary of the month containing now, up to now.
	LoadSummary(ctx context.Context, now time.Time) error
	LoadDefaultAccountSummary(ctx context.Context, now time.Time) error
	// LoadPublicData loads what an anonymous user can see.
	LoadPublicData(ctx context.Context) error
	// LoadInitialData runs the signed-in loaders concurrently.
	LoadInitialData(ctx context.Context) error
}
