package dto

// CreateAccountRequest is the body of POST /accounts.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required"`
	CurrencyID     int     `json:"currency_id" binding:"required,gt=0"`
	InitialBalance float64 `json:"initial_balance"`
	IsDefault      *bool   `json:"is_default,omitempty"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
}
