package dto

// ConvertSimpleRequest is the body of POST /exchange/convert-simple.
type ConvertSimpleRequest struct {
	FromCurrencyID int     `json:"from_currency_id" binding:"required,gt=0"`
	ToCurrencyID   int     `json:"to_currency_id" binding:"required,gt=0"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

// ConvertSimpleResponse is the server-authoritative conversion result.
type ConvertSimpleResponse struct {
	FromCurrencyID  int     `json:"from_currency_id"`
	ToCurrencyID    int     `json:"to_currency_id"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
}

// RateResponse is returned by the local bridge for a resolved pair.
type RateResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Rate     float64 `json:"rate"`
	Resolved bool    `json:"resolved"`
}

// EquivalentResponse is one converted amount, already rounded for display.
type EquivalentResponse struct {
	Code   string `json:"code"`
	Amount string `json:"amount"`
}

// EquivalentsQuery is the query of GET /equivalents on the local bridge.
// Codes is a comma-separated list.
type EquivalentsQuery struct {
	Amount float64 `form:"amount" binding:"gte=0"`
	From   string  `form:"from" binding:"required"`
	Codes  string  `form:"codes" binding:"required"`
}
