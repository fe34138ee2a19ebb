package domain

import (
	"fmt"
	"time"
)

// TransactionType is either income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	CategoryID  int             `json:"category_id"`
	AccountID   *int            `json:"account_id,omitempty"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	Account     *Account        `json:"account,omitempty"`
	Category    *Category       `json:"category,omitempty"`
}

// CurrencyID returns the currency of the transaction's account, if embedded.
func (t Transaction) CurrencyID() (int, bool) {
	if t.Account == nil {
		return 0, false
	}
	return t.Account.CurrencyID, true
}

// Validate checks the fields a client must get right before sending the record.
func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	return nil
}
