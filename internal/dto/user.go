package dto

// SetDefaultCurrencyRequest is the body of PUT /user/default-currency.
type SetDefaultCurrencyRequest struct {
	CurrencyID int `json:"currency_id" binding:"required,gt=0"`
}

// UpdateProfileRequest is the body of PUT /user/profile.
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
}

// ChangePasswordRequest is the body of PUT /user/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
