package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/finance_client/internal/apperrors"
	"github.com/SscSPs/finance_client/internal/core/domain"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/core/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/handlers"
	"github.com/SscSPs/finance_client/internal/middleware"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock conversion gateway ---
type MockConversionGateway struct {
	mock.Mock
}

func (m *MockConversionGateway) ConvertSimple(ctx context.Context, req dto.ConvertSimpleRequest) (*dto.ConvertSimpleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertSimpleResponse), args.Error(1)
}

// --- Mock session ---
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Restore(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockSession) Login(ctx context.Context, req dto.LoginRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockSession) Register(ctx context.Context, req dto.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockSession) Logout(ctx context.Context) { m.Called(ctx) }
func (m *MockSession) ChooseDefaultCurrency(ctx context.Context, currencyID int) error {
	return m.Called(ctx, currencyID).Error(0)
}
func (m *MockSession) NeedsPrimaryCurrency() bool { return m.Called().Bool(0) }
func (m *MockSession) Token() string              { return m.Called().String(0) }

var _ portssvc.SessionSvcFacade = (*MockSession)(nil)

// --- Test Suite ---
type BridgeHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *state.Store
	gateway *MockConversionGateway
	session *MockSession
}

func (suite *BridgeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = state.NewStore(nil)
	suite.gateway = new(MockConversionGateway)
	suite.session = new(MockSession)

	rub := 3
	suite.store.SetState(
		state.WithUser(&domain.UserProfile{ID: 1, DefaultCurrencyID: &rub}),
		state.WithCurrencies([]domain.Currency{
			{ID: 1, Code: "USD", Symbol: "$"},
			{ID: 2, Code: "EUR"},
			{ID: 3, Code: "RUB"},
		}),
		state.WithExchangeRates([]domain.ExchangeRate{
			{BaseCurrencyID: 1, TargetCurrencyID: 2, Rate: 0.5},
			{BaseCurrencyID: 1, TargetCurrencyID: 3, Rate: 100},
		}),
	)

	resolver := services.NewRateResolver("USD")
	container := &portssvc.ServiceContainer{
		Session:    suite.session,
		Conversion: services.NewConversionService(suite.gateway, suite.store, resolver),
		Display:    services.NewCurrencyDisplay(suite.store, resolver),
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))
	handlers.RegisterRoutes(suite.router, suite.store, container, nil)
}

func (suite *BridgeHandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BridgeHandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
}

func (suite *BridgeHandlerTestSuite) TestGetState() {
	suite.session.On("NeedsPrimaryCurrency").Return(false).Once()

	w := suite.do(http.MethodGet, "/state", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("RUB", body["defaultCurrencyCode"])
	suite.Equal("₽", body["defaultSymbol"])
	suite.Equal(false, body["needsPrimaryCurrency"])
	suite.Len(body["currencies"], 3)
	suite.Equal(map[string]any{"currentTab": "overview", "loading": false}, body["ui"])
	suite.session.AssertExpectations(suite.T())
}

func (suite *BridgeHandlerTestSuite) TestSetTab() {
	w := suite.do(http.MethodPut, "/ui/tab", `{"tab":"analytics"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("analytics", suite.store.State().UI.CurrentTab)
}

func (suite *BridgeHandlerTestSuite) TestSetTab_KeepsLoadingFlag() {
	suite.store.SetState(state.WithUI(state.UIState{CurrentTab: "overview", Loading: true}))

	w := suite.do(http.MethodPut, "/ui/tab", `{"tab":"accounts"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(state.UIState{CurrentTab: "accounts", Loading: true}, suite.store.State().UI)
}

func (suite *BridgeHandlerTestSuite) TestSetTab_UnknownTab() {
	w := suite.do(http.MethodPut, "/ui/tab", `{"tab":"settings"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(state.DefaultTab, suite.store.State().UI.CurrentTab)
}

func (suite *BridgeHandlerTestSuite) TestGetRate() {
	tests := []struct {
		target string
		status int
		rate   float64
	}{
		{"/rates/USD/EUR", http.StatusOK, 0.5},
		{"/rates/eur/usd", http.StatusOK, 2},
		{"/rates/EUR/RUB", http.StatusOK, 200},
		{"/rates/RUB/RUB", http.StatusOK, 1},
		{"/rates/USD/GBP", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.target, func() {
			w := suite.do(http.MethodGet, tt.target, "")

			suite.Equal(tt.status, w.Code)
			var resp dto.RateResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.InDelta(tt.rate, resp.Rate, 1e-9)
			suite.Equal(tt.status == http.StatusOK, resp.Resolved)
		})
	}
}

func (suite *BridgeHandlerTestSuite) TestGetEquivalents() {
	w := suite.do(http.MethodGet, "/equivalents?amount=10&from=usd&codes=EUR,rub,,GBP,EUR", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"code":"EUR","amount":"5.00"},{"code":"RUB","amount":"1000.00"},{"code":"GBP","amount":"0.00"}]`, w.Body.String())
}

func (suite *BridgeHandlerTestSuite) TestGetEquivalents_BadQuery() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/equivalents?amount=abc&from=USD&codes=EUR", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/equivalents?amount=1&codes=EUR", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/equivalents?amount=-1&from=USD&codes=EUR", "").Code)
}

func (suite *BridgeHandlerTestSuite) TestConvert_Success() {
	req := dto.ConvertSimpleRequest{FromCurrencyID: 1, ToCurrencyID: 3, Amount: 2.5}
	resp := &dto.ConvertSimpleResponse{FromCurrencyID: 1, ToCurrencyID: 3, Amount: 2.5, ConvertedAmount: 250, ExchangeRate: 100}
	suite.gateway.On("ConvertSimple", mock.Anything, req).Return(resp, nil).Once()

	w := suite.do(http.MethodPost, "/convert", `{"from_currency_id":1,"to_currency_id":3,"amount":2.5}`)

	suite.Require().Equal(http.StatusOK, w.Code)
	var got dto.ConvertSimpleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(*resp, got)
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *BridgeHandlerTestSuite) TestConvert_InvalidBody() {
	w := suite.do(http.MethodPost, "/convert", `{"from_currency_id":1,"to_currency_id":3,"amount":0}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.gateway.AssertNotCalled(suite.T(), "ConvertSimple", mock.Anything, mock.Anything)
}

func (suite *BridgeHandlerTestSuite) TestConvert_UpstreamErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"network", apperrors.NewNetworkError(errors.New("refused")), http.StatusBadGateway, apperrors.NetworkMessage},
		{"unauthorized", &apperrors.APIError{Status: 401, Message: "token expired"}, http.StatusUnauthorized, "token expired"},
		{"validation", &apperrors.APIError{Status: 400, Message: "unknown currency"}, http.StatusBadRequest, "unknown currency"},
		{"server error", &apperrors.APIError{Status: 500, Message: "boom"}, http.StatusBadGateway, "boom"},
		{"other", errors.New("decode"), http.StatusInternalServerError, "Failed to convert amount"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.gateway.On("ConvertSimple", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/convert", `{"from_currency_id":1,"to_currency_id":2,"amount":1}`)

			suite.Equal(tt.status, w.Code)
			var body map[string]string
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
			suite.Equal(tt.body, body["error"])
		})
	}
}

func TestBridgeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeHandlerTestSuite))
}
