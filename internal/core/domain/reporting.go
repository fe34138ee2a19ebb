package domain

// TransactionSummary is returned by /transactions/summary for a period.
type TransactionSummary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	NetAmount        float64 `json:"net_amount"`
	TransactionCount int     `json:"transaction_count"`
	PeriodStart      string  `json:"period_start"`
	PeriodEnd        string  `json:"period_end"`
}

// SavingsRate returns net/income as a percentage, 0 when there is no income.
func (s TransactionSummary) SavingsRate() float64 {
	if s.TotalIncome <= 0 {
		return 0
	}
	return s.NetAmount / s.TotalIncome * 100
}

// CategorySummary is one row of /transactions/by-category.
type CategorySummary struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Type         string  `json:"type"`
	TotalAmount  float64 `json:"total_amount"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// MonthlySummary is one row of /transactions/monthly-summary.
type MonthlySummary struct {
	Month        string  `json:"month"` // "2025-01"
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetAmount    float64 `json:"net_amount"`
}
