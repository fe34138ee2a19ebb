package dto

import (
	"testing"

	"github.com/SscSPs/finance_client/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFilter_Query(t *testing.T) {
	tests := []struct {
		name   string
		filter TransactionFilter
		want   string
	}{
		{name: "empty", filter: TransactionFilter{}, want: ""},
		{
			name:   "dates are truncated",
			filter: TransactionFilter{StartDate: "2025-01-01T00:00:00Z", EndDate: "2025-01-31"},
			want:   "end=2025-01-31&start=2025-01-01",
		},
		{
			name:   "single date is ignored",
			filter: TransactionFilter{StartDate: "2025-01-01"},
			want:   "",
		},
		{
			name:   "unknown types dropped",
			filter: TransactionFilter{Types: []domain.TransactionType{domain.Income, "transfer", domain.Expense}},
			want:   "type=income&type=expense",
		},
		{
			name:   "limit",
			filter: TransactionFilter{Limit: 5},
			want:   "limit=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Query().Encode())
		})
	}
}
