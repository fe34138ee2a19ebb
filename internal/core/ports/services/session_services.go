package services

import (
	"context"

	"github.com/SscSPs/finance_client/internal/dto"
)

// SessionSvcFacade owns the bearer token and the signed-in user.
type SessionSvcFacade interface {
	// Restore resumes the persisted session at startup.
	Restore(ctx context.Context) error
	Login(ctx context.Context, req dto.LoginRequest) error
	Register(ctx context.Context, req dto.RegisterRequest) error
	// Logout always clears the local session, even when the server call fails.
	Logout(ctx context.Context)
	ChooseDefaultCurrency(ctx context.Context, currencyID int) error
	NeedsPrimaryCurrency() bool
	// Token returns the current bearer token, "" when anonymous.
	Token() string
}
