package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/sourcegraph/conc/pool"
)

// RecentTransactionsLimit is how many default-account transactions the overview loads.
const RecentTransactionsLimit = 5

const periodDateLayout = "2006-01-02"

// dataLoader implements portssvc.DataLoaderSvc.
type dataLoader struct {
	BaseService
	api      gateways.DataGateway
	store    *state.Store
	notifier gateways.Notifier
	now      func() time.Time
}

// DataLoaderOption configures the data loader.
type DataLoaderOption func(*dataLoader)

// WithLoaderClock overrides the clock used by LoadInitialData for the summary period.
func WithLoaderClock(now func() time.Time) DataLoaderOption {
	return func(d *dataLoader) { d.now = now }
}

// WithLoaderLogger sets the fallback logger.
func WithLoaderLogger(logger *slog.Logger) DataLoaderOption {
	return func(d *dataLoader) { d.Logger = logger }
}

// NewDataLoader creates a data loader writing into store.
func NewDataLoader(api gateways.DataGateway, store *state.Store, notifier gateways.Notifier, opts ...DataLoaderOption) portssvc.DataLoaderSvc {
	d := &dataLoader{
		api:      api,
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *dataLoader) LoadCurrencies(ctx context.Context) error {
	currencies, err := d.api.Currencies(ctx)
	if err != nil {
		return d.fail(ctx, err, "Failed to load currencies")
	}
	d.store.SetState(state.WithCurrencies(currencies))
	d.LogDebug(ctx, "Currencies loaded", slog.Int("count", len(currencies)))
	return nil
}

func (d *dataLoader) LoadExchangeRates(ctx context.Context) error {
	rates, err := d.api.ExchangeRates(ctx, 0)
	if err != nil {
		return d.fail(ctx, err, "Failed to load exchange rates")
	}
	d.store.SetState(state.WithExchangeRates(rates))
	d.LogDebug(ctx, "Exchange rates loaded", slog.Int("count", len(rates)))
	return nil
}

func (d *dataLoader) LoadAccounts(ctx context.Context) error {
	accounts, err := d.api.Accounts(ctx)
	if err != nil {
		return d.fail(ctx, err, "Failed to load accounts")
	}
	d.store.SetState(state.WithAccounts(accounts))
	return nil
}

func (d *dataLoader) LoadCategories(ctx context.Context) error {
	categories, err := d.api.Categories(ctx)
	if err != nil {
		return d.fail(ctx, err, "Failed to load categories")
	}
	d.store.SetState(state.WithCategories(categories))
	return nil
}

func (d *dataLoader) LoadTransactions(ctx context.Context, filter dto.TransactionFilter) error {
	txns, err := d.api.Transactions(ctx, filter)
	if err != nil {
		return d.fail(ctx, err, "Failed to load transactions")
	}
	d.store.SetState(state.WithTransactions(txns))
	return nil
}

// LoadDefaultAccountTransactions is an overview loader: failures are logged only.
func (d *dataLoader) LoadDefaultAccountTransactions(ctx context.Context) error {
	txns, err := d.api.DefaultAccountTransactions(ctx, RecentTransactionsLimit)
	if err != nil {
		d.LogWarn(ctx, err, "Failed to load default account transactions")
		return err
	}
	d.store.SetState(state.WithTransactions(txns))
	return nil
}

// LoadSummary is an overview loader: failures are logged only.
func (d *dataLoader) LoadSummary(ctx context.Context, now time.Time) error {
	start, end := monthToDate(now)
	summary, err := d.api.Summary(ctx, start, end)
	if err != nil {
		d.LogWarn(ctx, err, "Failed to load summary", slog.String("start", start), slog.String("end", end))
		return err
	}
	d.store.SetState(state.WithSummary(summary))
	return nil
}

// LoadDefaultAccountSummary is an overview loader: failures are logged only.
func (d *dataLoader) LoadDefaultAccountSummary(ctx context.Context, now time.Time) error {
	start, end := monthToDate(now)
	summary, err := d.api.DefaultAccountSummary(ctx, start, end)
	if err != nil {
		d.LogWarn(ctx, err, "Failed to load default account summary", slog.String("start", start), slog.String("end", end))
		return err
	}
	d.store.SetState(state.WithSummary(summary))
	return nil
}

func (d *dataLoader) LoadPublicData(ctx context.Context) error {
	return d.parallel(ctx,
		d.LoadCurrencies,
		d.LoadExchangeRates,
	)
}

func (d *dataLoader) LoadInitialData(ctx context.Context) error {
	now := d.now()
	err := d.parallel(ctx,
		d.LoadCurrencies,
		d.LoadExchangeRates,
		d.LoadAccounts,
		d.LoadCategories,
		d.LoadDefaultAccountTransactions,
		func(ctx context.Context) error { return d.LoadDefaultAccountSummary(ctx, now) },
	)
	if err != nil {
		d.LogWarn(ctx, err, "Initial data load finished with errors")
		return err
	}
	d.LogInfo(ctx, "Initial data loaded")
	return nil
}

// parallel runs every loader to completion and joins their errors.
// A failing loader never cancels its siblings.
func (d *dataLoader) parallel(ctx context.Context, loaders ...func(context.Context) error) error {
	p := pool.New().WithErrors()
	for _, load := range loaders {
		p.Go(func() error { return load(ctx) })
	}
	return p.Wait()
}

func (d *dataLoader) fail(ctx context.Context, err error, msg string) error {
	d.LogError(ctx, err, msg)
	if d.notifier != nil {
		d.notifier.Notify(gateways.NoticeError, msg)
	}
	return err
}

// monthToDate returns the first day of now's month and now's date.
func monthToDate(now time.Time) (start, end string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.Format(periodDateLayout), now.Format(periodDateLayout)
}

var _ portssvc.DataLoaderSvc = (*dataLoader)(nil)
