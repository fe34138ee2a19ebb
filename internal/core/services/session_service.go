package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/finance_client/internal/apperrors"
	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/golang-jwt/jwt/v5"
)

// User-facing notices.
const (
	MsgSignedIn        = "Signed in successfully"
	MsgRegistered      = "Account created successfully"
	MsgSignedOut       = "You have been signed out"
	MsgSessionExpired  = "Session expired. Please sign in again."
	MsgOffline         = "No connection to the server. Working offline."
	MsgCurrencySetFmt  = "Primary currency set: %s"
	MsgCurrencySetFail = "Failed to set the primary currency"
)

// SessionGateway is the part of the API the session needs.
type SessionGateway interface {
	gateways.AuthGateway
	gateways.ProfileGateway
}

type sessionService struct {
	BaseService
	api      SessionGateway
	repo     gateways.SessionRepository
	loader   portssvc.DataLoaderSvc
	store    *state.Store
	notifier gateways.Notifier
	cache    gateways.CacheInvalidator
	now      func() time.Time

	mu                  sync.RWMutex
	token               string
	needsCurrencySelect bool
}

// SessionOption configures the session service.
type SessionOption func(*sessionService)

// WithCacheInvalidator clears cached responses whenever the signed-in user changes.
func WithCacheInvalidator(c gateways.CacheInvalidator) SessionOption {
	return func(s *sessionService) { s.cache = c }
}

// WithSessionClock overrides the clock used for token expiry checks.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *sessionService) { s.now = now }
}

// WithSessionLogger sets the fallback logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *sessionService) { s.Logger = logger }
}

// NewSessionService creates the session service. It starts anonymous until
// Restore or Login runs.
func NewSessionService(
	api SessionGateway,
	repo gateways.SessionRepository,
	loader portssvc.DataLoaderSvc,
	store *state.Store,
	notifier gateways.Notifier,
	opts ...SessionOption,
) portssvc.SessionSvcFacade {
	s := &sessionService{
		api:      api,
		repo:     repo,
		loader:   loader,
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token implements apiclient.TokenSource.
func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *sessionService) Restore(ctx context.Context) error {
	saved, err := s.repo.Load(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read persisted session, starting anonymous")
		saved = gateways.PersistedSession{}
	}

	if saved.Token == "" {
		s.store.SetState(state.WithUser(nil))
		return s.loader.LoadPublicData(ctx)
	}

	if tokenExpired(saved.Token, s.now()) {
		s.LogInfo(ctx, "Persisted token has expired")
		s.expire(ctx)
		return s.loader.LoadPublicData(ctx)
	}

	s.mu.Lock()
	s.token = saved.Token
	s.needsCurrencySelect = saved.NeedsCurrencySelect
	s.mu.Unlock()

	// Show the cached profile until the server confirms the session.
	optimistic := saved.User
	if optimistic == nil {
		optimistic = &domain.UserProfile{}
	}
	s.store.SetState(state.WithUser(optimistic))

	profile, err := s.api.RefreshProfile(ctx)
	switch {
	case err == nil:
		s.store.SetState(state.WithUser(profile))
		s.persist(ctx, profile)
		return s.loader.LoadInitialData(ctx)
	case apperrors.IsUnauthorized(err):
		s.LogInfo(ctx, "Server rejected the persisted session", slog.String("error", err.Error()))
		s.expire(ctx)
		return nil
	default:
		s.LogWarn(ctx, err, "Profile revalidation failed, keeping the cached session")
		_ = s.loader.LoadInitialData(ctx)
		s.notify(gateways.NoticeInfo, MsgOffline)
		return nil
	}
}

func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) error {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		s.LogWarn(ctx, err, "Login failed")
		return err
	}
	if resp.Token == "" {
		return apperrors.ErrUnauthorized
	}

	s.mu.Lock()
	s.token = resp.Token
	s.mu.Unlock()
	s.invalidateCache()

	s.store.SetState(state.WithUser(resp.User))
	s.persist(ctx, resp.User)
	s.notify(gateways.NoticeSuccess, MsgSignedIn)
	s.LogInfo(ctx, "User signed in")

	// Loader failures are already reported to the user.
	_ = s.loader.LoadInitialData(ctx)
	return nil
}

func (s *sessionService) Register(ctx context.Context, req dto.RegisterRequest) error {
	if err := s.api.Register(ctx, req); err != nil {
		s.LogWarn(ctx, err, "Registration failed")
		return err
	}
	s.notify(gateways.NoticeSuccess, MsgRegistered)

	s.mu.Lock()
	s.needsCurrencySelect = true
	s.mu.Unlock()

	return s.Login(ctx, dto.LoginRequest{Email: req.Email, Password: req.Password})
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.LogWarn(ctx, err, "Server logout failed, clearing the local session anyway")
	}
	s.clear(ctx)
	s.notify(gateways.NoticeInfo, MsgSignedOut)
}

func (s *sessionService) ChooseDefaultCurrency(ctx context.Context, currencyID int) error {
	if err := s.api.SetDefaultCurrency(ctx, currencyID); err != nil {
		s.LogWarn(ctx, err, "Failed to set default currency", slog.Int("currency_id", currencyID))
		msg := err.Error()
		if msg == "" {
			msg = MsgCurrencySetFail
		}
		s.notify(gateways.NoticeError, msg)
		return err
	}

	code := strconv.Itoa(currencyID)
	if c, ok := s.store.State().CurrencyIndex().ByID(currencyID); ok {
		code = c.Code
	}
	s.notifyf(gateways.NoticeSuccess, MsgCurrencySetFmt, code)

	s.mu.Lock()
	s.needsCurrencySelect = false
	s.mu.Unlock()

	profile, err := s.api.RefreshProfile(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to refresh profile after currency change")
	} else {
		s.store.SetState(state.WithUser(profile))
	}
	s.persist(ctx, s.store.State().User)

	_ = s.loader.LoadInitialData(ctx)
	return nil
}

func (s *sessionService) NeedsPrimaryCurrency() bool {
	user := s.store.State().User
	if user == nil {
		return false
	}
	s.mu.RLock()
	flagged := s.needsCurrencySelect
	s.mu.RUnlock()
	return flagged || user.NeedsPrimaryCurrency()
}

// expire drops the session and tells the user to sign in again.
func (s *sessionService) expire(ctx context.Context) {
	s.clear(ctx)
	s.notify(gateways.NoticeError, MsgSessionExpired)
}

func (s *sessionService) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.needsCurrencySelect = false
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear persisted session")
	}
	s.invalidateCache()
	s.store.SetState(
		state.WithUser(nil),
		state.WithAccounts([]domain.Account{}),
		state.WithCategories([]domain.Category{}),
		state.WithTransactions([]domain.Transaction{}),
		state.WithSummary(nil),
	)
}

func (s *sessionService) persist(ctx context.Context, user *domain.UserProfile) {
	s.mu.RLock()
	saved := gateways.PersistedSession{
		Token:               s.token,
		User:                user,
		NeedsCurrencySelect: s.needsCurrencySelect,
	}
	s.mu.RUnlock()

	if err := s.repo.Save(ctx, saved); err != nil {
		s.LogError(ctx, err, "Failed to persist session")
	}
}

func (s *sessionService) invalidateCache() {
	if s.cache != nil {
		s.cache.InvalidateCache()
	}
}

func (s *sessionService) notify(level gateways.NoticeLevel, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(level, msg)
	}
}

func (s *sessionService) notifyf(level gateways.NoticeLevel, format string, args ...any) {
	s.notify(level, fmt.Sprintf(format, args...))
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Opaque or unparsable tokens are left for the server to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)
