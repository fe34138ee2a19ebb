package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits shown for money amounts.
const DisplayPrecision = 2

// FormatWithPrecision rounds amount half away from zero and always prints
// exactly precision fractional digits.
// Example: 12.345 with precision 2 returns "12.35"
// Example: 7 with precision 2 returns "7.00"
// Non-finite amounts format as zero.
func FormatWithPrecision(amount float64, precision int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatAmount formats amount with DisplayPrecision digits.
func FormatAmount(amount float64) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}
