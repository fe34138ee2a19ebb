package gateways

import (
	"context"

	"github.com/SscSPs/finance_client/internal/core/domain"
)

// PersistedSession is what survives a restart: the token and the last known profile.
type PersistedSession struct {
	Token               string              `json:"token"`
	User                *domain.UserProfile `json:"user,omitempty"`
	NeedsCurrencySelect bool                `json:"needs_currency_select,omitempty"`
}

// SessionRepository persists the session between runs.
// Load returns an empty session, not an error, when nothing was saved.
type SessionRepository interface {
	Load(ctx context.Context) (PersistedSession, error)
	Save(ctx context.Context, s PersistedSession) error
	Clear(ctx context.Context) error
}

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(level NoticeLevel, message string)
}
