package domain

// Account is a money account. The core only reads CurrencyID and Balance.
type Account struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Name       string    `json:"name,omitempty"`
	CurrencyID int       `json:"currency_id"`
	Balance    float64   `json:"balance"`
	IsDefault  bool      `json:"is_default"`
	Currency   *Currency `json:"currency,omitempty"`
	Timestamps
}

// Category groups transactions. Type is "income" or "expense".
type Category struct {
	ID          int             `json:"id"`
	UserID      *int            `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Timestamps
}
