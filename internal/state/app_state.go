package state

import "github.com/SscSPs/finance_client/internal/core/domain"

// DefaultTab is the tab shown before the user navigates.
const DefaultTab = "overview"

// UIState is replaced as a whole by WithUI; callers must carry over the fields they keep.
type UIState struct {
	CurrentTab string `json:"currentTab"`
	Loading    bool   `json:"loading"`
}

// AppState is one immutable snapshot of the client's data.
// Slices are shared between snapshots and must not be modified in place.
type AppState struct {
	User          *domain.UserProfile        `json:"user"`
	Transactions  []domain.Transaction       `json:"transactions"`
	Accounts      []domain.Account           `json:"accounts"`
	Categories    []domain.Category          `json:"categories"`
	Currencies    []domain.Currency          `json:"currencies"`
	ExchangeRates []domain.ExchangeRate      `json:"exchangeRates"`
	UI            UIState                    `json:"ui"`
	Summary       *domain.TransactionSummary `json:"summary,omitempty"`

	currencyIndex *domain.CurrencyIndex
	rateTable     *domain.RateTable
}

// Initial returns the default shape the store starts from.
func Initial() AppState {
	return AppState{
		Transactions:  []domain.Transaction{},
		Accounts:      []domain.Account{},
		Categories:    []domain.Category{},
		Currencies:    []domain.Currency{},
		ExchangeRates: []domain.ExchangeRate{},
		UI:            UIState{CurrentTab: DefaultTab},
		currencyIndex: domain.NewCurrencyIndex(nil),
		rateTable:     domain.NewRateTable(nil),
	}
}

// CurrencyIndex returns the id/code index built when Currencies was last replaced.
func (s AppState) CurrencyIndex() *domain.CurrencyIndex {
	return s.currencyIndex
}

// RateTable returns the pair index built when ExchangeRates was last replaced.
func (s AppState) RateTable() *domain.RateTable {
	return s.rateTable
}

// DefaultCurrencyID returns the user's default currency id, if any.
func (s AppState) DefaultCurrencyID() (int, bool) {
	return s.User.DefaultCurrency()
}

// Update replaces one top-level key of a snapshot.
type Update func(*AppState)

// WithUser replaces the user. nil signs the user out of the snapshot.
func WithUser(u *domain.UserProfile) Update {
	return func(s *AppState) { s.User = u }
}

// WithTransactions replaces the transaction list.
func WithTransactions(txns []domain.Transaction) Update {
	return func(s *AppState) { s.Transactions = txns }
}

// WithAccounts replaces the account list.
func WithAccounts(accounts []domain.Account) Update {
	return func(s *AppState) { s.Accounts = accounts }
}

// WithCategories replaces the category list.
func WithCategories(categories []domain.Category) Update {
	return func(s *AppState) { s.Categories = categories }
}

// WithCurrencies replaces the currency list and rebuilds its index.
func WithCurrencies(currencies []domain.Currency) Update {
	idx := domain.NewCurrencyIndex(currencies)
	return func(s *AppState) {
		s.Currencies = currencies
		s.currencyIndex = idx
	}
}

// WithExchangeRates replaces the rate list and rebuilds its pair index.
func WithExchangeRates(rates []domain.ExchangeRate) Update {
	table := domain.NewRateTable(rates)
	return func(s *AppState) {
		s.ExchangeRates = rates
		s.rateTable = table
	}
}

// WithUI replaces the whole UI sub-state.
func WithUI(ui UIState) Update {
	return func(s *AppState) { s.UI = ui }
}

// WithSummary replaces the period summary.
func WithSummary(summary *domain.TransactionSummary) Update {
	return func(s *AppState) { s.Summary = summary }
}
