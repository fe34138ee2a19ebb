package dto

import (
	"net/url"
	"strconv"

	"github.com/SscSPs/finance_client/internal/core/domain"
)

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	CategoryID  int     `json:"category_id" binding:"required,gt=0"`
	AccountID   *int    `json:"account_id,omitempty"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
}

// TransactionFilter narrows GET /transactions.
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Types     []domain.TransactionType
	Limit     int
}

// Query encodes the filter. Dates are cut to YYYY-MM-DD and sent only as a pair;
// unknown types are dropped.
func (f TransactionFilter) Query() url.Values {
	q := url.Values{}
	if f.StartDate != "" && f.EndDate != "" {
		q.Set("start", dateOnly(f.StartDate))
		q.Set("end", dateOnly(f.EndDate))
	}
	for _, t := range f.Types {
		if t.Valid() {
			q.Add("type", string(t))
		}
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
