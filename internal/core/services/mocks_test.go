package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/core/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock finance API ---
type MockFinanceAPI struct {
	mock.Mock
}

func (m *MockFinanceAPI) Currencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockFinanceAPI) ExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockFinanceAPI) Accounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockFinanceAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockFinanceAPI) Transactions(ctx context.Context, filter dto.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockFinanceAPI) DefaultAccountTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockFinanceAPI) Summary(ctx context.Context, start, end string) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

func (m *MockFinanceAPI) DefaultAccountSummary(ctx context.Context, start, end string) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

func (m *MockFinanceAPI) ByCategory(ctx context.Context, start, end string) ([]domain.CategorySummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySummary), args.Error(1)
}

func (m *MockFinanceAPI) MonthlySummary(ctx context.Context, year int) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummary), args.Error(1)
}

func (m *MockFinanceAPI) ConvertSimple(ctx context.Context, req dto.ConvertSimpleRequest) (*dto.ConvertSimpleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertSimpleResponse), args.Error(1)
}

func (m *MockFinanceAPI) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockFinanceAPI) Register(ctx context.Context, req dto.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockFinanceAPI) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFinanceAPI) Profile(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockFinanceAPI) RefreshProfile(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockFinanceAPI) SetDefaultCurrency(ctx context.Context, currencyID int) error {
	return m.Called(ctx, currencyID).Error(0)
}

func (m *MockFinanceAPI) InvalidateCache() {
	m.Called()
}

var (
	_ gateways.DataGateway       = (*MockFinanceAPI)(nil)
	_ gateways.ConversionGateway = (*MockFinanceAPI)(nil)
	_ services.SessionGateway    = (*MockFinanceAPI)(nil)
	_ gateways.CacheInvalidator  = (*MockFinanceAPI)(nil)
)

// --- Mock session repository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Load(ctx context.Context) (gateways.PersistedSession, error) {
	args := m.Called(ctx)
	return args.Get(0).(gateways.PersistedSession), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, s gateways.PersistedSession) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ gateways.SessionRepository = (*MockSessionRepository)(nil)

// --- Mock data loader ---
type MockDataLoader struct {
	mock.Mock
}

func (m *MockDataLoader) LoadCurrencies(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadExchangeRates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadAccounts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadCategories(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadTransactions(ctx context.Context, filter dto.TransactionFilter) error {
	return m.Called(ctx, filter).Error(0)
}

func (m *MockDataLoader) LoadDefaultAccountTransactions(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadSummary(ctx context.Context, now time.Time) error {
	return m.Called(ctx, now).Error(0)
}

func (m *MockDataLoader) LoadDefaultAccountSummary(ctx context.Context, now time.Time) error {
	return m.Called(ctx, now).Error(0)
}

func (m *MockDataLoader) LoadPublicData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataLoader) LoadInitialData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.DataLoaderSvc = (*MockDataLoader)(nil)

// --- Recording notifier ---
type notice struct {
	Level   gateways.NoticeLevel
	Message string
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(level gateways.NoticeLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{Level: level, Message: message})
}

func (n *recordingNotifier) All() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice(nil), n.notices...)
}
