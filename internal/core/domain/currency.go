package domain

import "time"

// DefaultSymbol is shown when a currency code has neither a server symbol nor a known glyph.
const DefaultSymbol = "$"

// fallbackSymbols supplies glyphs for codes the server returns without a symbol.
var fallbackSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"RUB": "₽",
	"TJS": "SM",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KZT": "₸",
	"INR": "₹",
	"UZS": "so'm",
	"KGS": "⃀",
	"AZN": "₼",
	"BYN": "Br",
	"UAH": "₴",
}

// Currency represents a supported currency as returned by GET /currencies.
type Currency struct {
	ID        int       `json:"id"`     // Stable for the session
	Code      string    `json:"code"`   // e.g. "USD"
	Name      string    `json:"name"`   // e.g. "US Dollar"
	Symbol    string    `json:"symbol"` // May be empty
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// DisplaySymbol returns the server symbol, or the fallback glyph for the code.
func (c Currency) DisplaySymbol() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return FallbackSymbol(c.Code)
}

// FallbackSymbol returns the static glyph for code, or DefaultSymbol when unknown.
func FallbackSymbol(code string) string {
	if sym, ok := fallbackSymbols[code]; ok {
		return sym
	}
	return DefaultSymbol
}

// CurrencyIndex is a read-only view over a currency snapshot with O(1) lookups.
// The zero value and a nil pointer are both valid empty indices.
type CurrencyIndex struct {
	list   []Currency
	byID   map[int]Currency
	byCode map[string]Currency
}

// NewCurrencyIndex indexes currencies. When ids or codes repeat the first record wins.
func NewCurrencyIndex(currencies []Currency) *CurrencyIndex {
	idx := &CurrencyIndex{
		list:   currencies,
		byID:   make(map[int]Currency, len(currencies)),
		byCode: make(map[string]Currency, len(currencies)),
	}
	for _, c := range currencies {
		if _, ok := idx.byID[c.ID]; !ok {
			idx.byID[c.ID] = c
		}
		if _, ok := idx.byCode[c.Code]; !ok {
			idx.byCode[c.Code] = c
		}
	}
	return idx
}

// ByID looks a currency up by id.
func (idx *CurrencyIndex) ByID(id int) (Currency, bool) {
	if idx == nil {
		return Currency{}, false
	}
	c, ok := idx.byID[id]
	return c, ok
}

// ByCode looks a currency up by code.
func (idx *CurrencyIndex) ByCode(code string) (Currency, bool) {
	if idx == nil {
		return Currency{}, false
	}
	c, ok := idx.byCode[code]
	return c, ok
}

// Len returns the number of currencies in the snapshot.
func (idx *CurrencyIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.list)
}

// All returns the underlying snapshot. Callers must not modify it.
func (idx *CurrencyIndex) All() []Currency {
	if idx == nil {
		return nil
	}
	return idx.list
}
