package domain

import "time"

// UserProfile is the signed-in user as returned by GET /user/profile.
type UserProfile struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	DefaultCurrencyID *int      `json:"default_currency_id,omitempty"` // nil until a primary currency is chosen
	CreatedAt         time.Time `json:"created_at,omitempty"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

// NeedsPrimaryCurrency reports the onboarding state where no default currency is set.
func (u *UserProfile) NeedsPrimaryCurrency() bool {
	return u != nil && u.DefaultCurrencyID == nil
}

// DefaultCurrency returns the default currency id and whether one is set.
func (u *UserProfile) DefaultCurrency() (int, bool) {
	if u == nil || u.DefaultCurrencyID == nil {
		return 0, false
	}
	return *u.DefaultCurrencyID, true
}
