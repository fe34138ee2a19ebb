package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/dto"
)

// API exposes the server endpoints the client consumes.
type API struct {
	c *Client
}

// NewAPI wraps c.
func NewAPI(c *Client) *API {
	return &API{c: c}
}

// Client returns the underlying request client.
func (a *API) Client() *Client {
	return a.c
}

// --- Auth ---

func (a *API) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := a.c.Post(ctx, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) Register(ctx context.Context, req dto.RegisterRequest) error {
	return a.c.Post(ctx, "/register", req, nil)
}

func (a *API) Logout(ctx context.Context) error {
	return a.c.Post(ctx, "/logout", nil, nil)
}

// Health calls GET /health directly, bypassing cache and retries.
func (a *API) Health(ctx context.Context) (*dto.HealthResponse, error) {
	body, err := a.c.transport.Do(ctx, Request{Path: "/health"})
	if err != nil {
		return nil, err
	}
	var resp dto.HealthResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Currencies and rates ---

func (a *API) Currencies(ctx context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	if err := a.c.Get(ctx, "/currencies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExchangeRates lists rates; limit <= 0 requests all of them.
func (a *API) ExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error) {
	path := "/exchange/rates"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.ExchangeRate
	if err := a.c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) ConvertSimple(ctx context.Context, req dto.ConvertSimpleRequest) (*dto.ConvertSimpleResponse, error) {
	var resp dto.ConvertSimpleResponse
	if err := a.c.Post(ctx, "/exchange/convert-simple", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- User ---

func (a *API) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := a.c.Get(ctx, "/user/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshProfile re-reads the profile ignoring any cached copy.
func (a *API) RefreshProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := a.c.Refresh(ctx, "/user/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) SetDefaultCurrency(ctx context.Context, currencyID int) error {
	return a.c.Put(ctx, "/user/default-currency", dto.SetDefaultCurrencyRequest{CurrencyID: currencyID}, nil)
}

func (a *API) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error {
	return a.c.Put(ctx, "/user/profile", req, nil)
}

func (a *API) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	return a.c.Put(ctx, "/user/password", req, nil)
}

// --- Accounts ---

func (a *API) Accounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	if err := a.c.Get(ctx, "/accounts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Account(ctx context.Context, id int) (*domain.Account, error) {
	var out domain.Account
	if err := a.c.Get(ctx, fmt.Sprintf("/accounts/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	var out domain.Account
	if err := a.c.Post(ctx, "/accounts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) SetDefaultAccount(ctx context.Context, id int) error {
	return a.c.Put(ctx, fmt.Sprintf("/accounts/%d/default", id), nil, nil)
}

// --- Categories ---

func (a *API) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := a.c.Get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	var out domain.Category
	if err := a.c.Post(ctx, "/categories", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) DeleteCategory(ctx context.Context, id int) error {
	return a.c.Delete(ctx, fmt.Sprintf("/categories/%d", id), nil)
}

// --- Transactions ---

func (a *API) Transactions(ctx context.Context, filter dto.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := a.c.Get(ctx, withQuery("/transactions", filter.Query()), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultAccountTransactions lists transactions of the user's default account.
func (a *API) DefaultAccountTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := a.c.Get(ctx, withQuery("/transactions/default", dto.TransactionFilter{Limit: limit}.Query()), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := a.c.Post(ctx, "/transactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Summary(ctx context.Context, start, end string) (*domain.TransactionSummary, error) {
	return a.summary(ctx, "/transactions/summary", start, end)
}

func (a *API) DefaultAccountSummary(ctx context.Context, start, end string) (*domain.TransactionSummary, error) {
	return a.summary(ctx, "/transactions/default/summary", start, end)
}

func (a *API) summary(ctx context.Context, path, start, end string) (*domain.TransactionSummary, error) {
	var out domain.TransactionSummary
	if err := a.c.Get(ctx, withQuery(path, periodQuery(start, end)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) ByCategory(ctx context.Context, start, end string) ([]domain.CategorySummary, error) {
	var out []domain.CategorySummary
	if err := a.c.Get(ctx, withQuery("/transactions/by-category", periodQuery(start, end)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) MonthlySummary(ctx context.Context, year int) ([]domain.MonthlySummary, error) {
	var out []domain.MonthlySummary
	if err := a.c.Get(ctx, "/transactions/monthly-summary?year="+strconv.Itoa(year), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func periodQuery(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
